package service

import (
	"context"

	"github.com/deppfellow/hotel-booking/internal/errs"
	"github.com/deppfellow/hotel-booking/internal/model/user"
)

type userStore interface {
	List(ctx context.Context) ([]*user.User, error)
	GetByID(ctx context.Context, id int64) (*user.User, error)
	UpdateProfile(ctx context.Context, id int64, upd user.ProfileUpdate) (*user.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserService serves user and profile routes. Mutations are limited to the
// caller's own account.
type UserService struct {
	users userStore
}

func NewUserService(users userStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]*user.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*user.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, callerID int64, p *user.UpdateProfilePayload) (*user.User, error) {
	if p.UserID() != callerID {
		return nil, errs.NewForbiddenError("You can only update your own profile", true)
	}
	return s.users.UpdateProfile(ctx, callerID, p.Update())
}

func (s *UserService) Delete(ctx context.Context, callerID, id int64) (*user.MessageResult, error) {
	if id != callerID {
		return nil, errs.NewForbiddenError("You can only delete your own account", true)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &user.MessageResult{Message: "User deleted successfully"}, nil
}
