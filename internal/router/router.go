/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package router wires the echo instance: middleware chain, error handler
// and routes.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/suparena/userstore/internal/handler"
	"github.com/suparena/userstore/internal/middleware"
	"github.com/suparena/userstore/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	r.Use(
		middleware.RequestID(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Metrics.Observe(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Timeout(),
	)

	registerSystemRoutes(r, s, h)
	registerUserRoutes(r, h)

	return r
}
