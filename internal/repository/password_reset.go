package repository

import (
	"context"
	"time"
)

const passwordResetTable = "password_reset_tokens"

type PasswordResetRepository struct {
	db DBTX
}

func NewPasswordResetRepository(db DBTX) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) Create(ctx context.Context, email, token string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO password_reset_tokens (email, token, expires_at)
		VALUES ($1, $2, $3)`, email, token, expiresAt)
	return err
}

// ExpiresAt returns when the (email, token) pair expires.
func (r *PasswordResetRepository) ExpiresAt(ctx context.Context, email, token string) (time.Time, error) {
	var expiresAt time.Time
	err := r.db.QueryRow(ctx, `
		SELECT expires_at FROM password_reset_tokens
		WHERE email = $1 AND token = $2`, email, token).Scan(&expiresAt)
	return expiresAt, err
}

func (r *PasswordResetRepository) Delete(ctx context.Context, email, token string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM password_reset_tokens WHERE email = $1 AND token = $2`, email, token)
	return expectAffected(tag, err, passwordResetTable)
}

// DeleteExpired removes tokens that expired before now.
func (r *PasswordResetRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM password_reset_tokens WHERE expires_at < $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
