package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/hotel-booking/internal/errs"
	"github.com/deppfellow/hotel-booking/internal/lib/token"
	"github.com/deppfellow/hotel-booking/internal/model/user"
)

// Authenticator resolves a bearer token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, raw string) (*user.User, *token.Claims, error)
}

type AuthMiddleware struct {
	auth Authenticator
}

func NewAuthMiddleware(auth Authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)

	scheme, raw, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

func (a *AuthMiddleware) authenticate(c echo.Context) error {
	raw, ok := bearerToken(c)
	if !ok {
		return errs.NewUnauthorizedError("Unauthorized", false)
	}

	u, claims, err := a.auth.Authenticate(c.Request().Context(), raw)
	if err != nil {
		return err
	}

	c.Set(UserIDKey, u.ID)
	c.Set(UserKey, u)
	c.Set(ClaimsKey, claims)

	setLogger(c, GetLogger(c).With().Int64("user_id", u.ID).Logger())

	return nil
}

// RequireAuth rejects the request with 401 unless a valid, unrevoked token
// for an existing user is presented.
func (a *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := a.authenticate(c); err != nil {
			GetLogger(c).Warn().Err(err).Msg("authentication failed")
			return err
		}
		return next(c)
	}
}

// OptionalAuth identifies the caller when it can and otherwise continues
// anonymously.
func (a *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := bearerToken(c); ok {
			if err := a.authenticate(c); err != nil {
				GetLogger(c).Debug().Err(err).Msg("ignoring invalid token on public route")
			}
		}
		return next(c)
	}
}

// GetUserID returns the authenticated caller's id, or 0.
func GetUserID(c echo.Context) int64 {
	if id, ok := c.Get(UserIDKey).(int64); ok {
		return id
	}
	return 0
}

func GetUser(c echo.Context) *user.User {
	u, _ := c.Get(UserKey).(*user.User)
	return u
}

func GetClaims(c echo.Context) *token.Claims {
	claims, _ := c.Get(ClaimsKey).(*token.Claims)
	return claims
}
