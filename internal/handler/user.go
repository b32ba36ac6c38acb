package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/hotel-booking/internal/middleware"
	"github.com/deppfellow/hotel-booking/internal/model"
	"github.com/deppfellow/hotel-booking/internal/model/user"
	"github.com/deppfellow/hotel-booking/internal/server"
	"github.com/deppfellow/hotel-booking/internal/service"
)

// UserHandler serves both the /user and the /profile routes; a profile is
// the same record.
type UserHandler struct {
	Handler
	userService *service.UserService
}

func NewUserHandler(s *server.Server, userService *service.UserService) *UserHandler {
	return &UserHandler{
		Handler:     NewHandler(s),
		userService: userService,
	}
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, _ *model.Empty) (echo.Map, error) {
			users, err := h.userService.List(c.Request().Context())
			if err != nil {
				return nil, err
			}
			return echo.Map{"users": users}, nil
		},
		http.StatusOK,
		"All users",
	)(c)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *user.IDPayload) (echo.Map, error) {
			u, err := h.userService.Get(c.Request().Context(), payload.UserID())
			if err != nil {
				return nil, err
			}
			return echo.Map{"user": u}, nil
		},
		http.StatusOK,
		"User found",
	)(c)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *user.UpdateProfilePayload) (echo.Map, error) {
			u, err := h.userService.Update(c.Request().Context(), middleware.GetUserID(c), payload)
			if err != nil {
				return nil, err
			}
			return echo.Map{"user": u}, nil
		},
		http.StatusOK,
		"User updated successfully",
	)(c)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *user.IDPayload) (echo.Map, error) {
			return messageOnly(h.userService.Delete(c.Request().Context(), middleware.GetUserID(c), payload.UserID()))
		},
		http.StatusOK,
		"User deleted successfully",
	)(c)
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *user.IDPayload) (echo.Map, error) {
			u, err := h.userService.Get(c.Request().Context(), payload.UserID())
			if err != nil {
				return nil, err
			}
			return echo.Map{"profile": u}, nil
		},
		http.StatusOK,
		"Profile found",
	)(c)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *user.UpdateProfilePayload) (echo.Map, error) {
			u, err := h.userService.Update(c.Request().Context(), middleware.GetUserID(c), payload)
			if err != nil {
				return nil, err
			}
			return echo.Map{"profile": u}, nil
		},
		http.StatusOK,
		"Profile updated",
	)(c)
}
