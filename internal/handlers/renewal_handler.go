package handlers

import (
	"fmt"
	"net/http"

	"insure-backend/internal/models"
	"insure-backend/internal/services"
	"insure-backend/internal/timeutil"
	"insure-backend/pkg/utils"
)

type RenewalHandler struct {
	Service *services.RenewalService
	Reports *services.ReportService
}

func NewRenewalHandler(s *services.RenewalService, reports *services.ReportService) *RenewalHandler {
	return &RenewalHandler{Service: s, Reports: reports}
}

// ListRenewals serves the renewals tracker. ?range= selects the window:
// all, expired, week, month or twomonths.
func (h *RenewalHandler) ListRenewals(w http.ResponseWriter, r *http.Request) {
	rng, ok := services.ParseRenewalRange(r.URL.Query().Get("range"))
	if !ok {
		utils.Error(w, http.StatusBadRequest, "range must be one of: all, expired, week, month, twomonths")
		return
	}

	entries, err := h.Service.List(r.Context(), rng)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if entries == nil {
		entries = []models.RenewalEntry{}
	}
	utils.JSON(w, http.StatusOK, entries)
}

// ExportRenewals streams the renewals report as a PDF download.
func (h *RenewalHandler) ExportRenewals(w http.ResponseWriter, r *http.Request) {
	rng, ok := services.ParseRenewalRange(r.URL.Query().Get("range"))
	if !ok {
		utils.Error(w, http.StatusBadRequest, "range must be one of: all, expired, week, month, twomonths")
		return
	}

	data, err := h.Reports.GenerateRenewalsPDF(r.Context(), rng)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	filename := fmt.Sprintf("renewals-%s-%s.pdf", rng, timeutil.Today().Format(timeutil.DateLayout))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
