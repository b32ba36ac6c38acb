package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/hotel-booking/internal/config"
	"github.com/deppfellow/hotel-booking/internal/errs"
	"github.com/deppfellow/hotel-booking/internal/lib/serializer"
	"github.com/deppfellow/hotel-booking/internal/middleware"
	"github.com/deppfellow/hotel-booking/internal/server"
	"github.com/deppfellow/hotel-booking/internal/validation"
)

func newTestServer() *server.Server {
	l := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "test"}},
		Logger: &l,
	}
}

func newTestEcho(s *server.Server) *echo.Echo {
	e := echo.New()
	e.JSONSerializer = serializer.JSONSerializer{}
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler
	return e
}

type renamePayload struct {
	ID   int64  `param:"id" validate:"required,min=1"`
	Name string `json:"name" validate:"required,max=20"`
}

func (p *renamePayload) Validate() error {
	return validation.Validate(p)
}

type renamed struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func renameRoute(h Handler) echo.HandlerFunc {
	return Handle(h, func(c echo.Context, req *renamePayload) (echo.Map, error) {
		if req.Name == "taken" {
			return nil, errs.NewConflictError("Name already taken", false)
		}
		return echo.Map{"hotel": renamed{ID: req.ID, Name: req.Name}}, nil
	}, http.StatusCreated, "Renamed")
}

func serve(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandle_WrapsResultInEnvelope(t *testing.T) {
	s := newTestServer()
	e := newTestEcho(s)
	e.POST("/hotel/:id/name", renameRoute(NewHandler(s)))

	rec := serve(e, http.MethodPost, "/hotel/4/name", `{"name":"Sea View"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"success": true,
		"message": "Renamed",
		"data": {"hotel": {"id": 4, "name": "Sea View"}}
	}`, rec.Body.String())
}

func TestHandle_ValidationFailure(t *testing.T) {
	s := newTestServer()
	e := newTestEcho(s)
	e.POST("/hotel/:id/name", renameRoute(NewHandler(s)))

	rec := serve(e, http.MethodPost, "/hotel/4/name", `{"name":""}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is required"}}, body.Errors)
}

func TestHandle_RejectsBadBodies(t *testing.T) {
	s := newTestServer()
	e := newTestEcho(s)
	e.POST("/hotel/:id/name", renameRoute(NewHandler(s)))

	for name, body := range map[string]string{
		"unknown field": `{"name":"x","stars":5}`,
		"malformed":     `{"name":`,
		"wrong type":    `{"name":12}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := serve(e, http.MethodPost, "/hotel/4/name", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_BadPathParam(t *testing.T) {
	s := newTestServer()
	e := newTestEcho(s)
	e.POST("/hotel/:id/name", renameRoute(NewHandler(s)))

	rec := serve(e, http.MethodPost, "/hotel/abc/name", `{"name":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ServiceErrorGoesToErrorHandler(t *testing.T) {
	s := newTestServer()
	e := newTestEcho(s)
	e.POST("/hotel/:id/name", renameRoute(NewHandler(s)))

	rec := serve(e, http.MethodPost, "/hotel/4/name", `{"name":"taken"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Name already taken"`)
}

type exportPayload struct{}

func (p *exportPayload) Validate() error { return nil }

func TestHandleFile_SetsDownloadHeaders(t *testing.T) {
	s := newTestServer()
	e := newTestEcho(s)
	e.GET("/export", HandleFile(NewHandler(s), func(c echo.Context, _ *exportPayload) ([]byte, error) {
		return []byte("id,hotel\n1,Sea View\n"), nil
	}, "my-bookings.csv", "text/csv; charset=utf-8"))

	rec := serve(e, http.MethodGet, "/export", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="my-bookings.csv"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "id,hotel\n1,Sea View\n", rec.Body.String())
}
