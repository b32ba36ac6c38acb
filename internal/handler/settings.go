package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/hotel-booking/internal/middleware"
	"github.com/deppfellow/hotel-booking/internal/model/settings"
	"github.com/deppfellow/hotel-booking/internal/server"
	"github.com/deppfellow/hotel-booking/internal/service"
)

// SettingsHandler serves /settings with and without a :userId segment.
type SettingsHandler struct {
	Handler
	settingsService *service.SettingsService
}

func NewSettingsHandler(s *server.Server, settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		Handler:         NewHandler(s),
		settingsService: settingsService,
	}
}

func (h *SettingsHandler) GetSettings(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *settings.GetSettingsPayload) (echo.Map, error) {
			s, err := h.settingsService.Get(c.Request().Context(), middleware.GetUserID(c), payload.TargetUserID())
			if err != nil {
				return nil, err
			}
			return echo.Map{"settings": s}, nil
		},
		http.StatusOK,
		"Settings fetched",
	)(c)
}

func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *settings.UpdateSettingsPayload) (echo.Map, error) {
			s, err := h.settingsService.Update(c.Request().Context(), middleware.GetUserID(c), payload)
			if err != nil {
				return nil, err
			}
			return echo.Map{"settings": s}, nil
		},
		http.StatusOK,
		"Settings updated",
	)(c)
}
