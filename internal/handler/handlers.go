/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package handler is the HTTP layer: it parses and validates requests, makes
// exactly one store call and shapes the response.
package handler

import (
	"github.com/suparena/userstore/internal/server"
)

// Handlers groups all HTTP handlers.
type Handlers struct {
	Health *HealthHandler
	User   *UserHandler
}

func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		User:   NewUserHandler(s),
	}
}
