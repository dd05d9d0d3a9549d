/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/suparena/userstore/internal/handler"
	"github.com/suparena/userstore/internal/server"
)

func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/metrics", echo.WrapHandler(s.Metrics.Handler()))
}
