package service

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/deppfellow/hotel-booking/internal/config"
	"github.com/deppfellow/hotel-booking/internal/errs"
	"github.com/deppfellow/hotel-booking/internal/lib/job"
	"github.com/deppfellow/hotel-booking/internal/lib/token"
	"github.com/deppfellow/hotel-booking/internal/model/user"
)

type authUserStore interface {
	Create(ctx context.Context, u *user.User) (*user.User, error)
	GetByID(ctx context.Context, id int64) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
	UpdatePasswordByEmail(ctx context.Context, email, hash string) error
}

type resetTokenStore interface {
	Create(ctx context.Context, email, token string, expiresAt time.Time) error
	ExpiresAt(ctx context.Context, email, token string) (time.Time, error)
	Delete(ctx context.Context, email, token string) error
}

type tokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type AuthService struct {
	cfg     config.AuthConfig
	users   authUserStore
	resets  resetTokenStore
	revoked tokenDenylist
	tokens  *token.Manager
	jobs    Enqueuer

	bcryptCost int
	now        func() time.Time
}

func NewAuthService(
	cfg config.AuthConfig,
	users authUserStore,
	resets resetTokenStore,
	revoked tokenDenylist,
	tokens *token.Manager,
	jobs Enqueuer,
) *AuthService {
	return &AuthService{
		cfg:        cfg,
		users:      users,
		resets:     resets,
		revoked:    revoked,
		tokens:     tokens,
		jobs:       jobs,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}

func unauthorized() error {
	return errs.NewUnauthorizedError("Unauthorized", false)
}

func (s *AuthService) hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func passwordMatches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *AuthService) SignUp(ctx context.Context, p *user.SignUpPayload) (*user.User, error) {
	exists, err := s.users.EmailExists(ctx, p.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewConflictError("User already exists", true)
	}

	hash, err := s.hash(p.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &user.User{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		PasswordHash: hash,
	})
	if isUniqueViolation(err) {
		return nil, errs.NewConflictError("User already exists", true)
	}
	if err != nil {
		return nil, err
	}

	s.enqueueWelcome(ctx, created)

	return created, nil
}

// enqueueWelcome never fails the sign up; a lost welcome email is logged.
func (s *AuthService) enqueueWelcome(ctx context.Context, u *user.User) {
	logger := zerolog.Ctx(ctx)

	if s.jobs == nil {
		return
	}

	task, err := job.NewWelcomeEmailTask(u.Email, u.FirstName)
	if err == nil {
		_, err = s.jobs.EnqueueContext(ctx, task)
	}
	if err != nil {
		logger.Error().Err(err).Int64("user_id", u.ID).Msg("failed to enqueue welcome email")
	}
}

func (s *AuthService) SignIn(ctx context.Context, p *user.SignInPayload) (*user.SignInResult, error) {
	invalid := errs.NewUnauthorizedError("Invalid email or password", true)

	u, err := s.users.GetByEmail(ctx, p.Email)
	if isNotFound(err) {
		return nil, invalid
	}
	if err != nil {
		return nil, err
	}

	if !passwordMatches(u.PasswordHash, p.Password) {
		return nil, invalid
	}

	signed, _, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}

	return &user.SignInResult{Token: signed, User: u}, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, p *user.ForgotPasswordPayload) (*user.MessageResult, error) {
	if _, err := s.users.GetByEmail(ctx, p.Email); err != nil {
		if isNotFound(err) {
			return nil, errs.NewNotFoundError("Email not found", true, nil)
		}
		return nil, err
	}

	resetToken := uuid.NewString()
	if err := s.resets.Create(ctx, p.Email, resetToken, s.now().Add(s.cfg.ResetTokenTTL)); err != nil {
		return nil, err
	}

	link, err := s.resetLink(p.Email, resetToken)
	if err != nil {
		return nil, err
	}

	if s.jobs != nil {
		task, err := job.NewPasswordResetEmailTask(p.Email, link, s.cfg.ResetTokenTTL)
		if err != nil {
			return nil, err
		}
		if _, err := s.jobs.EnqueueContext(ctx, task); err != nil {
			return nil, err
		}
	}

	return &user.MessageResult{Message: "Password reset link sent to your email"}, nil
}

func (s *AuthService) resetLink(email, resetToken string) (string, error) {
	u, err := url.Parse(s.cfg.PasswordResetURL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("token", resetToken)
	q.Set("email", email)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (s *AuthService) ResetPassword(ctx context.Context, p *user.ResetPasswordPayload) (*user.MessageResult, error) {
	invalid := errs.NewBadRequestError("Invalid or expired reset token", true, nil, nil, nil)

	expiresAt, err := s.resets.ExpiresAt(ctx, p.Email, p.Token)
	if isNotFound(err) {
		return nil, invalid
	}
	if err != nil {
		return nil, err
	}

	if !s.now().Before(expiresAt) {
		_ = s.resets.Delete(ctx, p.Email, p.Token)
		return nil, invalid
	}

	hash, err := s.hash(p.NewPassword)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdatePasswordByEmail(ctx, p.Email, hash); err != nil {
		return nil, err
	}

	if err := s.resets.Delete(ctx, p.Email, p.Token); err != nil && !isNotFound(err) {
		return nil, err
	}

	return &user.MessageResult{Message: "Password successfully reset"}, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID int64, p *user.ChangePasswordPayload) (*user.MessageResult, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !passwordMatches(u.PasswordHash, p.CurrentPassword) {
		return nil, errs.NewUnauthorizedError("Current password is incorrect", true)
	}

	hash, err := s.hash(p.NewPassword)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return nil, err
	}

	return &user.MessageResult{Message: "Password changed successfully"}, nil
}

// Logout denylists the token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, claims *token.Claims) (*user.MessageResult, error) {
	if claims == nil {
		return nil, unauthorized()
	}

	if err := s.revoked.Revoke(ctx, claims.ID, claims.ExpiresIn(s.now())); err != nil {
		return nil, err
	}

	return &user.MessageResult{Message: "Logged out successfully"}, nil
}

// Authenticate resolves a bearer token to its user. Revocation lookups that
// fail are logged and the token is accepted.
func (s *AuthService) Authenticate(ctx context.Context, raw string) (*user.User, *token.Claims, error) {
	claims, err := s.tokens.Parse(raw)
	if err != nil {
		return nil, nil, unauthorized()
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("token denylist unavailable")
	} else if revoked {
		return nil, nil, unauthorized()
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, nil, unauthorized()
	}

	u, err := s.users.GetByID(ctx, userID)
	if isNotFound(err) {
		return nil, nil, unauthorized()
	}
	if err != nil {
		return nil, nil, err
	}

	return u, claims, nil
}
