/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package validation binds request payloads and checks them against their
// `validate` struct tags before any store call is made.
package validation

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/suparena/userstore/internal/errs"
)

// Validatable is implemented by every request payload.
type Validatable interface {
	Validate() error
}

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator. Field names in errors use the json
// tag, falling back to the param tag.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(fieldName)
	})
	return validate
}

// Struct validates s against its struct tags.
func Struct(s interface{}) error {
	return Validator().Struct(s)
}

// BindAndValidate binds the request into payload and validates it. Failures
// are returned as *errs.HTTPError.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := unescapePathParams(c); err != nil {
		return err
	}

	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if err := payload.Validate(); err != nil {
		return errs.NewBadRequestError(Message(err))
	}
	return nil
}

// Message renders a validation error as a single client-facing line, e.g.
// "validation failed: emp_id is required, doj is required".
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "validation failed: " + err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fieldMessage(fe))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s: %s", field, fe.Tag())
	}
}

// unescapePathParams decodes path parameters once. echo matches routes on
// URL.RawPath when it is set (e.g. the path holds %2F) and then leaves the
// parameters escaped; otherwise they come from the already decoded URL.Path.
func unescapePathParams(c echo.Context) error {
	if c.Request().URL.RawPath == "" {
		return nil
	}

	raw := c.ParamValues()
	values := make([]string, len(raw))
	for i, v := range raw {
		decoded, err := url.PathUnescape(v)
		if err != nil {
			return errs.NewBadRequestError(fmt.Sprintf("invalid path parameter %q", v))
		}
		values[i] = decoded
	}
	c.SetParamValues(values...)
	return nil
}

func bindError(err error) error {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return errs.NewBadRequestError(err.Error())
	}

	msg, ok := he.Message.(string)
	if !ok {
		msg = http.StatusText(he.Code)
	}
	if he.Code == http.StatusUnsupportedMediaType {
		return errs.NewUnsupportedMediaTypeError(msg)
	}
	return errs.NewBadRequestError(msg)
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "param"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}
