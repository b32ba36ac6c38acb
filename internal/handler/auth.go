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

type AuthHandler struct {
	Handler
	authService *service.AuthService
}

func NewAuthHandler(s *server.Server, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler:     NewHandler(s),
		authService: authService,
	}
}

func (h *AuthHandler) SignUp(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *user.SignUpPayload) (echo.Map, error) {
			u, err := h.authService.SignUp(c.Request().Context(), payload)
			if err != nil {
				return nil, err
			}
			return echo.Map{"user": u}, nil
		},
		http.StatusCreated,
		"User registered successfully",
	)(c)
}

func (h *AuthHandler) SignIn(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *user.SignInPayload) (*user.SignInResult, error) {
			return h.authService.SignIn(c.Request().Context(), payload)
		},
		http.StatusOK,
		"Login successful",
	)(c)
}

// messageOnly returns a MessageResult as {"message": ...} data.
func messageOnly(res *user.MessageResult, err error) (echo.Map, error) {
	if err != nil {
		return nil, err
	}
	return echo.Map{"message": res.Message}, nil
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *user.ForgotPasswordPayload) (echo.Map, error) {
			return messageOnly(h.authService.ForgotPassword(c.Request().Context(), payload))
		},
		http.StatusOK,
		"Password reset link sent to your email",
	)(c)
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *user.ResetPasswordPayload) (echo.Map, error) {
			return messageOnly(h.authService.ResetPassword(c.Request().Context(), payload))
		},
		http.StatusOK,
		"Password successfully reset",
	)(c)
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *user.ChangePasswordPayload) (echo.Map, error) {
			return messageOnly(h.authService.ChangePassword(c.Request().Context(), middleware.GetUserID(c), payload))
		},
		http.StatusOK,
		"Password changed successfully",
	)(c)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, _ *model.Empty) (echo.Map, error) {
			return messageOnly(h.authService.Logout(c.Request().Context(), middleware.GetClaims(c)))
		},
		http.StatusOK,
		"Logged out successfully",
	)(c)
}
