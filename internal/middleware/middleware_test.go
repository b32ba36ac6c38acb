package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/hotel-booking/internal/config"
	"github.com/deppfellow/hotel-booking/internal/errs"
	"github.com/deppfellow/hotel-booking/internal/lib/token"
	"github.com/deppfellow/hotel-booking/internal/model/user"
	"github.com/deppfellow/hotel-booking/internal/server"
)

func newTestServer(perMinute int) *server.Server {
	l := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server:  config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
			Auth:    config.AuthConfig{RateLimitPerMinute: perMinute},
		},
		Logger: &l,
	}
}

// newTestEcho wires the error handler the way the router does.
func newTestEcho(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

type fakeAuthenticator struct {
	tokens map[string]*user.User
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, raw string) (*user.User, *token.Claims, error) {
	u, ok := f.tokens[raw]
	if !ok {
		return nil, nil, errs.NewUnauthorizedError("Invalid or expired token", false)
	}
	return u, &token.Claims{}, nil
}

func authEcho(t *testing.T) *echo.Echo {
	t.Helper()

	s := newTestServer(10)
	e := newTestEcho(s)
	auth := NewAuthMiddleware(&fakeAuthenticator{tokens: map[string]*user.User{
		"good": {ID: 7, Email: "jane@example.com"},
	}})

	whoami := func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"user_id": GetUserID(c), "has_claims": GetClaims(c) != nil})
	}
	e.GET("/private", whoami, auth.RequireAuth)
	e.GET("/public", whoami, auth.OptionalAuth)
	return e
}

func TestRequireAuth(t *testing.T) {
	e := authEcho(t)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"empty bearer", "Bearer   ", http.StatusUnauthorized},
		{"unknown token", "Bearer bad", http.StatusUnauthorized},
		{"valid token", "Bearer good", http.StatusOK},
		{"case insensitive scheme", "bearer good", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusUnauthorized {
				body := decodeError(t, rec)
				assert.False(t, body.Success)
				assert.Equal(t, "UNAUTHORIZED", body.Code)
			}
		})
	}
}

func TestRequireAuth_SetsCaller(t *testing.T) {
	e := authEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":7,"has_claims":true}`, rec.Body.String())
}

func TestOptionalAuth(t *testing.T) {
	e := authEcho(t)

	for header, want := range map[string]string{
		"":            `{"user_id":0,"has_claims":false}`,
		"Bearer bad":  `{"user_id":0,"has_claims":false}`,
		"Bearer good": `{"user_id":7,"has_claims":true}`,
	} {
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, header)
		assert.JSONEq(t, want, rec.Body.String(), header)
	}
}

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "http error passes through",
			err:     errs.NewForbiddenError("Not your booking", false),
			status:  http.StatusForbidden,
			code:    "FORBIDDEN",
			message: "Not your booking",
		},
		{
			name:    "unknown route",
			err:     echo.ErrNotFound,
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "Route not found",
		},
		{
			name:    "method not allowed keeps echo status",
			err:     echo.ErrMethodNotAllowed,
			status:  http.StatusMethodNotAllowed,
			code:    "METHOD_NOT_ALLOWED",
			message: "Method Not Allowed",
		},
		{
			name:    "rate limited",
			err:     echo.ErrTooManyRequests,
			status:  http.StatusTooManyRequests,
			code:    "TOO_MANY_REQUESTS",
			message: "Too many requests, please try again later",
		},
		{
			name:    "unexpected error is hidden",
			err:     assert.AnError,
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toHTTPError(tt.err)

			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.code, got.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, got.Message)
			}
		})
	}
}

func TestGlobalErrorHandler_UnknownRoute(t *testing.T) {
	e := newTestEcho(newTestServer(10))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "Route not found", body.Message)
	assert.Equal(t, http.StatusNotFound, body.Status)
}

func TestGlobalErrorHandler_HeadHasNoBody(t *testing.T) {
	e := newTestEcho(newTestServer(10))
	e.HEAD("/gone", func(c echo.Context) error {
		return errs.NewNotFoundError("Hotel not found", true, nil)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/gone", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusCreated, statusOf(nil, http.StatusCreated))
	assert.Equal(t, http.StatusConflict, statusOf(errs.NewConflictError("taken", false), http.StatusOK))
	assert.Equal(t, http.StatusNotFound, statusOf(echo.ErrNotFound, http.StatusOK))
	assert.Equal(t, http.StatusInternalServerError, statusOf(assert.AnError, http.StatusOK))
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("reuses incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "req-123", rec.Body.String())
	})

	t.Run("generates one", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})
}

func TestContextEnhancer_LoggerReachesRequestContext(t *testing.T) {
	s := newTestServer(10)
	e := echo.New()
	e.Use(RequestID(), NewContextEnhancer(s).EnhanceContext())

	var fromEcho, fromCtx *zerolog.Logger
	e.GET("/", func(c echo.Context) error {
		fromEcho = GetLogger(c)
		fromCtx = zerolog.Ctx(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, fromEcho)
	require.NotNil(t, fromCtx)
}

func TestGetLogger_FallsBackToNop(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	l := GetLogger(c)
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}
