package handlers

import (
	"encoding/json"
	"net/http"

	"insure-backend/internal/models"
	"insure-backend/internal/services"
	"insure-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type PolicyHandler struct {
	Service *services.PolicyService
}

func NewPolicyHandler(s *services.PolicyService) *PolicyHandler {
	return &PolicyHandler{Service: s}
}

func (h *PolicyHandler) CreatePolicy(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	policy, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, policy)
}

func (h *PolicyHandler) ListPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.Service.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if policies == nil {
		policies = []*models.Policy{}
	}
	utils.JSON(w, http.StatusOK, policies)
}

func (h *PolicyHandler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	policy, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, policy)
}

func (h *PolicyHandler) UpdatePolicy(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	policy, err := h.Service.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, policy)
}

func (h *PolicyHandler) DeletePolicy(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "policy deleted"})
}
