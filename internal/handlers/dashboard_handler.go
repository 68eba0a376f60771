package handlers

import (
	"encoding/json"
	"net/http"

	"insure-backend/internal/cache"
	"insure-backend/internal/services"
	"insure-backend/pkg/utils"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(s *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

// GetDashboard serves the dashboard snapshot, preferring the short-lived
// cached copy. Writes invalidate the cache so staleness stays bounded.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	if data, ok := cache.GetCachedDashboard(r.Context()); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
		return
	}

	snapshot, err := h.Service.Snapshot(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to load dashboard data")
		return
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to load dashboard data")
		return
	}
	cache.CacheDashboard(r.Context(), data)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
