package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/hotel-booking/internal/model/user"
)

const usersTable = "users"

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	const stmt = `
		INSERT INTO users (first_name, last_name, email, password_hash)
		VALUES (@first_name, @last_name, @email, @password_hash)
		RETURNING *`

	rows, err := r.db.Query(ctx, stmt, pgx.NamedArgs{
		"first_name":    u.FirstName,
		"last_name":     u.LastName,
		"email":         u.Email,
		"password_hash": u.PasswordHash,
	})
	created, err := collectOne[user.User](rows, err, usersTable)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM users WHERE id = $1`, id)
	return collectOne[user.User](rows, err, usersTable)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM users WHERE email = $1`, strings.ToLower(email))
	return collectOne[user.User](rows, err, usersTable)
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, strings.ToLower(email)).Scan(&exists)
	return exists, err
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM users ORDER BY id`)
	return collectAll[user.User](rows, err)
}

// UpdateProfile sets the non-nil fields of upd and bumps updated_at.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, upd user.ProfileUpdate) (*user.User, error) {
	cols, vals := upd.Columns()
	if len(cols) == 0 {
		return r.GetByID(ctx, id)
	}

	sets := make([]string, 0, len(cols)+1)
	for i, col := range cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
	}
	sets = append(sets, "updated_at = now()")

	stmt := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING *`, strings.Join(sets, ", "), len(cols)+1)
	rows, err := r.db.Query(ctx, stmt, append(vals, id)...)
	return collectOne[user.User](rows, err, usersTable)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`, hash, id)
	return expectAffected(tag, err, usersTable)
}

func (r *UserRepository) UpdatePasswordByEmail(ctx context.Context, email, hash string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET password_hash = $1, updated_at = now() WHERE email = $2`, hash, strings.ToLower(email))
	return expectAffected(tag, err, usersTable)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return expectAffected(tag, err, usersTable)
}
