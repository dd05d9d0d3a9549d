/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	storeerrors "github.com/suparena/userstore/errors"
	"github.com/suparena/userstore/internal/errs"
	"github.com/suparena/userstore/internal/server"
)

type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// RequestLogger writes one line per request, at a level chosen by status class.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogError:     true,
		LogLatency:   true,
		LogMethod:    true,
		LogRoutePath: true,
		HandleError:  true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status
			if v.Error != nil {
				if status, ok := statusFromError(v.Error); ok {
					statusCode = status
				}
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("uri", v.URI).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Timeout puts a deadline on each request's context. A handler that fails
// with context.DeadlineExceeded is answered with 503.
func (global *GlobalMiddlewares) Timeout() echo.MiddlewareFunc {
	return middleware.ContextTimeout(global.server.Config.Server.RequestTimeout)
}

// GlobalErrorHandler renders every error returned by the chain as JSON.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	httpErr := toHTTPError(err)

	if httpErr.Status >= http.StatusInternalServerError {
		cause := err
		if httpErr.Internal != nil {
			cause = httpErr.Internal
		}
		GetLogger(c).Error().Stack().
			Err(cause).
			Int("status", httpErr.Status).
			Msg("request failed")
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}
	_ = c.JSON(httpErr.Status, httpErr)
}

// toHTTPError maps chain errors onto the client error shape.
// An *echo.HTTPError at the top of the chain (e.g. the 503 from the timeout
// middleware) takes precedence over any error it wraps.
func toHTTPError(err error) *errs.HTTPError {
	echoErr, topLevel := err.(*echo.HTTPError)

	var httpErr *errs.HTTPError
	if !topLevel && errors.As(err, &httpErr) {
		return httpErr
	}

	if topLevel || errors.As(err, &echoErr) {
		msg, ok := echoErr.Message.(string)
		if !ok {
			msg = http.StatusText(echoErr.Code)
		}
		switch echoErr.Code {
		case http.StatusNotFound:
			return errs.NewNotFoundError(errs.MsgRouteNotFound)
		case http.StatusMethodNotAllowed:
			return errs.NewMethodNotAllowedError(msg)
		default:
			return &errs.HTTPError{Status: echoErr.Code, Detail: msg, Internal: echoErr.Internal}
		}
	}

	switch {
	case storeerrors.IsNotFound(err), storeerrors.IsConditionFailed(err):
		return errs.NewNotFoundError(errs.MsgUserNotFound)
	case storeerrors.IsValidationError(err):
		return errs.NewBadRequestError(err.Error())
	default:
		return errs.NewInternalServerError(err)
	}
}

func statusFromError(err error) (int, bool) {
	if echoErr, ok := err.(*echo.HTTPError); ok {
		return echoErr.Code, true
	}
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status, true
	}
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return echoErr.Code, true
	}
	return 0, false
}
