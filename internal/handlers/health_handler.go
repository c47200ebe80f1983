package handlers

import (
	"context"
	"net/http"
	"time"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/repositories"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	store   repositories.KeyValueStoreInterface
	backend string
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(store repositories.KeyValueStoreInterface, backend string) *HealthCheckHandler {
	return &HealthCheckHandler{store: store, backend: backend}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API and storage backend connectivity status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,backend=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (storage backend unreachable)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		traceID := getTraceIDFromContext(c)
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			traceID,
			errors.WithDetails("Storage backend unreachable"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"backend": h.backend,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// Helper to get trace ID from context
func getTraceIDFromContext(c echo.Context) string {
	traceID := c.Response().Header().Get("X-Trace-ID")
	if traceID == "" {
		if tid, ok := c.Get("trace_id").(string); ok {
			traceID = tid
		}
	}
	if traceID == "" {
		traceID = "unknown"
	}
	return traceID
}
