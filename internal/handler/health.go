/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/labstack/echo/v4"

	"github.com/suparena/userstore"
	"github.com/suparena/userstore/internal/middleware"
	"github.com/suparena/userstore/internal/server"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"

	healthCheckTimeout = 5 * time.Second
)

type HealthCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   strfmt.DateTime        `json:"timestamp"`
	Environment string                 `json:"environment"`
	Version     string                 `json:"version"`
	Checks      map[string]HealthCheck `json:"checks"`
}

// HealthHandler reports whether the service and its table are reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns 200 when the table is ACTIVE and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      statusHealthy,
		Timestamp:   strfmt.DateTime(time.Now().UTC()),
		Environment: h.server.Config.Primary.Env,
		Version:     userstore.Version,
		Checks:      make(map[string]HealthCheck),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	storeStart := time.Now()
	if err := h.server.Store.Ping(ctx); err != nil {
		response.Status = statusUnhealthy
		response.Checks["store"] = HealthCheck{
			Status:       statusUnhealthy,
			ResponseTime: time.Since(storeStart).String(),
			Error:        err.Error(),
		}

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(storeStart)).
			Msg("store health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	response.Checks["store"] = HealthCheck{
		Status:       statusHealthy,
		ResponseTime: time.Since(storeStart).String(),
	}
	return c.JSON(http.StatusOK, response)
}
