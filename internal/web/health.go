package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"todo-app/internal/services"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	tasks     services.TaskService
	startTime time.Time
	timeout   time.Duration
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(tasks services.TaskService) *HealthHandler {
	return &HealthHandler{
		tasks:     tasks,
		startTime: time.Now(),
		timeout:   5 * time.Second,
	}
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Uptime    string            `json:"uptime,omitempty"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// Liveness returns simple alive status
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness reports whether the database answers
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	checks := make(map[string]string)
	status := "healthy"
	statusCode := http.StatusOK

	if err := h.tasks.Ping(ctx); err != nil {
		checks["database"] = "unhealthy: " + err.Error()
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	} else {
		checks["database"] = "healthy"
	}

	c.JSON(statusCode, HealthResponse{
		Status:    status,
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	})
}
