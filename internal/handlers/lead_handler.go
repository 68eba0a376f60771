package handlers

import (
	"encoding/json"
	"net/http"

	"insure-backend/internal/models"
	"insure-backend/internal/services"
	"insure-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type LeadHandler struct {
	Service *services.LeadService
}

func NewLeadHandler(s *services.LeadService) *LeadHandler {
	return &LeadHandler{Service: s}
}

func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Service.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if leads == nil {
		leads = []*models.Lead{}
	}
	utils.JSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	lead, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lead, err := h.Service.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "lead deleted"})
}
