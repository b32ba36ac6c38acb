package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/hotel-booking/internal/handler"
	"github.com/deppfellow/hotel-booking/internal/middleware"
)

func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, mw *middleware.Middlewares, metrics bool) {
	r.GET("/status", h.Health.CheckHealth)
	if metrics {
		r.GET("/metrics", mw.Metrics.Handler())
	}

	r.Static("/static", handler.StaticDir)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
