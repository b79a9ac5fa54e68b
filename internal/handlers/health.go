package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
}

// HealthHandler reports process liveness
type HealthHandler struct {
	startedAt time.Time
	now       func() time.Time
}

// NewHealthHandler creates a health handler; uptime is measured from startedAt
func NewHealthHandler(startedAt time.Time) *HealthHandler {
	return &HealthHandler{
		startedAt: startedAt,
		now:       time.Now,
	}
}

// Check handles health check requests
// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	now := h.now()

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: now.UTC().Format(time.RFC3339),
		Uptime:    now.Sub(h.startedAt).Truncate(time.Second).String(),
	})
}
