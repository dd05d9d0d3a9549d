/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/suparena/userstore/internal/handler"
)

func registerUserRoutes(r *echo.Echo, h *handler.Handlers) {
	base := h.User.Handler
	users := r.Group("/users")

	users.POST("", handler.Handle(base, "create_user", h.User.CreateUser, http.StatusCreated,
		func() *handler.CreateUserRequest { return &handler.CreateUserRequest{} }))

	users.GET("", handler.Handle(base, "list_users", h.User.ListUsers, http.StatusOK,
		func() *handler.ListUsersRequest { return &handler.ListUsersRequest{} }))

	users.GET("/:emp_id", handler.Handle(base, "get_user", h.User.GetUser, http.StatusOK,
		func() *handler.UserKeyRequest { return &handler.UserKeyRequest{} }))

	users.PUT("/:emp_id", handler.Handle(base, "update_user", h.User.UpdateUser, http.StatusOK,
		func() *handler.UpdateUserRequest { return &handler.UpdateUserRequest{} }))

	users.DELETE("/:emp_id", handler.Handle(base, "delete_user", h.User.DeleteUser, http.StatusOK,
		func() *handler.UserKeyRequest { return &handler.UserKeyRequest{} }))
}
