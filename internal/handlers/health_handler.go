package handlers

import (
	"net/http"

	"insure-backend/internal/health"
	"insure-backend/pkg/utils"
)

type HealthHandler struct {
	Checker *health.HealthChecker
}

func NewHealthHandler(c *health.HealthChecker) *HealthHandler {
	return &HealthHandler{Checker: c}
}

// Health is the liveness probe: the process is up, so it always answers
// 200, reporting dependency state in the body.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Checker.CheckBasic())
}

// Ready is the readiness probe: it fails when the database is unreachable
// so load balancers stop routing traffic here.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status := h.Checker.CheckBasic()
	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	utils.JSON(w, code, status)
}
