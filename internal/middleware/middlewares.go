/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package middleware contains the echo middleware chain and the global
// error handler.
package middleware

import (
	"github.com/suparena/userstore/internal/server"
)

// Middlewares groups the middleware constructors that need the server.
type Middlewares struct {
	Global *GlobalMiddlewares

	ContextEnhancer *ContextEnhancer

	Metrics *MetricsMiddleware
}

func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Metrics:         NewMetricsMiddleware(s),
	}
}
