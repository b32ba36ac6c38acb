package handler

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/hotel-booking/internal/middleware"
	"github.com/deppfellow/hotel-booking/internal/server"
)

const defaultHealthCheckTimeout = 5 * time.Second

// Pinger is a dependency the health check can probe.
type Pinger func(ctx context.Context) error

// HealthHandler reports dependency health. Only the database is required;
// Redis is reported but never makes the service unhealthy.
type HealthHandler struct {
	Handler
	env     string
	timeout time.Duration
	db      Pinger
	redis   Pinger
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{
		Handler: NewHandler(s),
		env:     s.Config.Primary.Env,
		timeout: defaultHealthCheckTimeout,
	}

	enabled := func(string) bool { return true }
	if obs := s.Config.Observability; obs != nil {
		if obs.HealthChecks.Timeout > 0 {
			h.timeout = obs.HealthChecks.Timeout
		}
		checks := obs.HealthChecks
		enabled = func(name string) bool {
			return checks.Enabled && (len(checks.Checks) == 0 || slices.Contains(checks.Checks, name))
		}
	}

	if s.DB != nil && enabled("database") {
		h.db = s.DB.Pool.Ping
	}
	if s.Redis != nil && enabled("redis") {
		h.redis = func(ctx context.Context) error {
			return s.Redis.Ping(ctx).Err()
		}
	}
	return h
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

func (h *HealthHandler) recordFailure(check string, err error, elapsed time.Duration) {
	if h.server == nil || h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", map[string]any{
		"check_type":       check,
		"operation":        "health_check",
		"error_type":       check + "_unhealthy",
		"response_time_ms": elapsed.Milliseconds(),
		"error_message":    err.Error(),
	})
}

func (h *HealthHandler) probe(c echo.Context, name string, ping Pinger) (checkResult, bool) {
	logger := middleware.GetLogger(c)

	timeout := h.timeout
	if timeout <= 0 {
		timeout = defaultHealthCheckTimeout
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
	defer cancel()

	start := time.Now()
	err := ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error().Err(err).Str("check", name).Dur("response_time", elapsed).Msg("health check failed")
		h.recordFailure(name, err, elapsed)
		return checkResult{Status: "unhealthy", ResponseTime: elapsed.String(), Error: err.Error()}, false
	}

	return checkResult{Status: "healthy", ResponseTime: elapsed.String()}, true
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.env,
		Checks:      map[string]checkResult{},
	}

	healthy := true
	if h.db != nil {
		var ok bool
		response.Checks["database"], ok = h.probe(c, "database", h.db)
		healthy = ok
	}

	if h.redis != nil {
		response.Checks["redis"], _ = h.probe(c, "redis", h.redis)
	}

	if !healthy {
		response.Status = "unhealthy"
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}
