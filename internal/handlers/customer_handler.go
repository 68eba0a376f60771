package handlers

import (
	"encoding/json"
	"net/http"

	"insure-backend/internal/models"
	"insure-backend/internal/services"
	"insure-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type CustomerHandler struct {
	Service *services.CustomerService
}

func NewCustomerHandler(s *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{Service: s}
}

func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	customer, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if customers == nil {
		customers = []*models.Customer{}
	}
	utils.JSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, customer)
}

// GetCustomerPolicies lists the customer's policies, soonest-ending first.
func (h *CustomerHandler) GetCustomerPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.Service.ListPolicies(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if policies == nil {
		policies = []*models.Policy{}
	}
	utils.JSON(w, http.StatusOK, policies)
}

func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	customer, err := h.Service.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "customer deleted"})
}

// ConvertLead creates a customer from a lead and marks the lead converted.
func (h *CustomerHandler) ConvertLead(w http.ResponseWriter, r *http.Request) {
	customer, err := h.Service.ConvertLead(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, customer)
}
