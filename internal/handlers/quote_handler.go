package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"insure-backend/internal/metrics"
	"insure-backend/internal/models"
	"insure-backend/internal/services"
	"insure-backend/pkg/utils"
)

// QuoteHandler is the one unauthenticated write endpoint: the public
// website's quote form posts here.
type QuoteHandler struct {
	Service *services.QuoteService
}

func NewQuoteHandler(s *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{Service: s}
}

func (h *QuoteHandler) SubmitQuote(w http.ResponseWriter, r *http.Request) {
	var req models.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.QuoteSubmissionsTotal.WithLabelValues("rejected").Inc()
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lead, err := h.Service.Submit(r.Context(), &req)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			metrics.QuoteSubmissionsTotal.WithLabelValues("rejected").Inc()
		} else {
			metrics.QuoteSubmissionsTotal.WithLabelValues("failed").Inc()
		}
		writeServiceError(w, err)
		return
	}

	metrics.QuoteSubmissionsTotal.WithLabelValues("accepted").Inc()
	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Quote request received. We will contact you shortly.",
		"lead_id": lead.ID,
	})
}
