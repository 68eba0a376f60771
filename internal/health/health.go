package health

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthChecker struct {
	db *pgxpool.Pool
}

// HealthStatus is the /health payload. Status is "healthy" only when
// every dependency check passed.
type HealthStatus struct {
	Status   string         `json:"status"`
	Database DatabaseHealth `json:"database"`
}

type DatabaseHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

func NewHealthChecker(db *pgxpool.Pool) *HealthChecker {
	return &HealthChecker{db: db}
}

// CheckBasic pings the database with a short deadline and reports overall
// service health.
func (h *HealthChecker) CheckBasic() HealthStatus {
	dbHealth := h.checkDatabase()

	status := "healthy"
	if dbHealth.Status != "healthy" {
		status = "degraded"
	}

	return HealthStatus{
		Status:   status,
		Database: dbHealth,
	}
}

func (h *HealthChecker) checkDatabase() DatabaseHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		return DatabaseHealth{Status: "unhealthy", ResponseTime: elapsed}
	}
	return DatabaseHealth{Status: "healthy", ResponseTime: elapsed}
}
