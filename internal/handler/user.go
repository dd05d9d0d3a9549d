/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	storeerrors "github.com/suparena/userstore/errors"
	"github.com/suparena/userstore/internal/errs"
	"github.com/suparena/userstore/internal/middleware"
	"github.com/suparena/userstore/internal/server"
	"github.com/suparena/userstore/internal/validation"
	"github.com/suparena/userstore/models"
	"github.com/suparena/userstore/storagemodels"
)

// Response messages.
const (
	MsgUserCreated = "User created successfully"
	MsgUserUpdated = "User updated successfully"
	MsgUserDeleted = "User deleted successfully"
)

type CreateUserRequest struct {
	EmpID   string `json:"emp_id" validate:"required"`
	EmpName string `json:"emp_name" validate:"required"`
	Doj     string `json:"doj" validate:"required"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.Struct(r)
}

// UserKeyRequest addresses a single record by path parameter.
type UserKeyRequest struct {
	EmpID string `param:"emp_id" validate:"required"`
}

func (r *UserKeyRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateUserRequest struct {
	// Taken from the path only; a body emp_id is ignored.
	EmpID   string `param:"emp_id" json:"-" validate:"required"`
	EmpName string `json:"emp_name" validate:"required"`
	Doj     string `json:"doj" validate:"required"`
}

func (r *UpdateUserRequest) Validate() error {
	return validation.Struct(r)
}

type ListUsersRequest struct{}

func (r *ListUsersRequest) Validate() error {
	return nil
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UpdateUserResponse struct {
	Message           string                 `json:"message"`
	UpdatedAttributes map[string]interface{} `json:"updatedAttributes"`
}

type UserHandler struct {
	Handler
}

func NewUserHandler(s *server.Server) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
	}
}

// CreateUser stores the record unconditionally, replacing any existing one.
func (h *UserHandler) CreateUser(c echo.Context, req *CreateUserRequest) (*MessageResponse, error) {
	user := models.User{
		EmpID:   req.EmpID,
		EmpName: req.EmpName,
		Doj:     req.Doj,
	}

	if err := h.server.Store.Put(c.Request().Context(), user); err != nil {
		return nil, storeError(err)
	}

	middleware.GetLogger(c).Info().Str("emp_id", user.EmpID).Msg("user created")
	return &MessageResponse{Message: MsgUserCreated}, nil
}

func (h *UserHandler) GetUser(c echo.Context, req *UserKeyRequest) (*models.User, error) {
	user, err := h.server.Store.GetOne(c.Request().Context(), req.EmpID)
	if err != nil {
		return nil, storeError(err)
	}
	return user, nil
}

// UpdateUser sets emp_name and doj. A missing key is created unless strict
// updates are enabled, in which case it is a 404.
func (h *UserHandler) UpdateUser(c echo.Context, req *UpdateUserRequest) (*UpdateUserResponse, error) {
	patch := models.User{EmpName: req.EmpName, Doj: req.Doj}

	var opts []storagemodels.UpdateOption
	if h.server.Config.Store.StrictUpdate {
		opts = append(opts, storagemodels.WithRequireExisting())
	}

	attrs, err := h.server.Store.Update(c.Request().Context(), req.EmpID, patch.MutableAttributes(), opts...)
	if err != nil {
		return nil, storeError(err)
	}
	if attrs == nil {
		attrs = map[string]interface{}{}
	}

	middleware.GetLogger(c).Info().Str("emp_id", req.EmpID).Msg("user updated")
	return &UpdateUserResponse{
		Message:           MsgUserUpdated,
		UpdatedAttributes: attrs,
	}, nil
}

// DeleteUser succeeds whether or not the record existed.
func (h *UserHandler) DeleteUser(c echo.Context, req *UserKeyRequest) (*MessageResponse, error) {
	if err := h.server.Store.Delete(c.Request().Context(), req.EmpID); err != nil {
		return nil, storeError(err)
	}

	middleware.GetLogger(c).Info().Str("emp_id", req.EmpID).Msg("user deleted")
	return &MessageResponse{Message: MsgUserDeleted}, nil
}

// ListUsers scans the whole table, up to the configured item cap.
func (h *UserHandler) ListUsers(c echo.Context, _ *ListUsersRequest) ([]models.User, error) {
	users, err := h.server.Store.Scan(c.Request().Context(), h.scanParams())
	if err != nil {
		return nil, storeError(err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (h *UserHandler) scanParams() *storagemodels.ScanParams {
	cfg := h.server.Config.Store
	params := &storagemodels.ScanParams{MaxItems: cfg.ScanMaxItems}
	if cfg.ScanPageSize > 0 {
		pageSize := cfg.ScanPageSize
		params.PageSize = &pageSize
	}
	if cfg.ConsistentRead {
		consistent := true
		params.ConsistentRead = &consistent
	}
	return params
}

// storeError maps a datastore error onto the client error shape.
func storeError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return errs.NewServiceUnavailableError(http.StatusText(http.StatusServiceUnavailable), err)
	case storeerrors.IsNotFound(err), storeerrors.IsConditionFailed(err):
		return errs.NewNotFoundError(errs.MsgUserNotFound)
	case storeerrors.IsValidationError(err):
		return errs.NewBadRequestError(err.Error())
	default:
		return errs.NewInternalServerError(err)
	}
}
