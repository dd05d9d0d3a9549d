/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package logger builds the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/suparena/userstore/internal/config"
)

// ServiceName is attached to every log line.
const ServiceName = "usersvc"

// New returns a logger configured from cfg writing to stdout.
func New(cfg config.LoggingConfig, env string) zerolog.Logger {
	return NewWithWriter(cfg, env, os.Stdout)
}

// NewWithWriter is New with an explicit output.
func NewWithWriter(cfg config.LoggingConfig, env string, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	out := w
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "2006-01-02 15:04:05"}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", ServiceName).
		Str("env", env).
		Logger()
}
