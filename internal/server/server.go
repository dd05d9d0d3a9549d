/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package server holds the application container shared by middleware and
// handlers, and owns the HTTP server lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/suparena/userstore/datastore"
	"github.com/suparena/userstore/internal/config"
	"github.com/suparena/userstore/internal/metrics"
	"github.com/suparena/userstore/models"
)

// Server carries the dependencies created once at startup.
type Server struct {
	Config *config.Config

	Logger *zerolog.Logger

	// Store is the users table. Safe for concurrent use.
	Store datastore.DataStore[models.User]

	Metrics *metrics.Metrics

	httpServer *http.Server
}

// New assembles the container around an already constructed store.
func New(cfg *config.Config, logger *zerolog.Logger, store datastore.DataStore[models.User]) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if store == nil {
		return nil, errors.New("store is required")
	}

	return &Server{
		Config:  cfg,
		Logger:  logger,
		Store:   store,
		Metrics: metrics.New(),
	}, nil
}

// SetupHTTPServer binds handler to the configured port and timeouts.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  s.Config.Server.ReadTimeout,
		WriteTimeout: s.Config.Server.WriteTimeout,
		IdleTimeout:  s.Config.Server.IdleTimeout,
	}
}

// Start listens on the configured port and serves until Shutdown.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ln)
}

// Serve serves on ln. A clean shutdown returns nil.
func (s *Server) Serve(ln net.Listener) error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("addr", ln.Addr().String()).
		Str("env", s.Config.Primary.Env).
		Str("table", s.Config.Store.TableName).
		Msg("starting server")

	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	s.Logger.Info().Msg("server stopped")
	return nil
}
