package service

import (
	"context"

	"github.com/deppfellow/hotel-booking/internal/errs"
	"github.com/deppfellow/hotel-booking/internal/model/settings"
)

type settingsStore interface {
	Get(ctx context.Context, userID int64) (*settings.Settings, error)
	Upsert(ctx context.Context, s *settings.Settings) (*settings.Settings, error)
}

type SettingsService struct {
	settings settingsStore
}

func NewSettingsService(store settingsStore) *SettingsService {
	return &SettingsService{settings: store}
}

// resolveTarget maps an optional :userId onto the caller.
func resolveTarget(callerID, target int64) (int64, error) {
	if target != 0 && target != callerID {
		return 0, errs.NewForbiddenError("You can only access your own settings", true)
	}
	return callerID, nil
}

func (s *SettingsService) Get(ctx context.Context, callerID, target int64) (*settings.Settings, error) {
	userID, err := resolveTarget(callerID, target)
	if err != nil {
		return nil, err
	}

	current, err := s.settings.Get(ctx, userID)
	if isNotFound(err) {
		return settings.Defaults(userID), nil
	}
	return current, err
}

func (s *SettingsService) Update(ctx context.Context, callerID int64, p *settings.UpdateSettingsPayload) (*settings.Settings, error) {
	current, err := s.Get(ctx, callerID, p.TargetUserID())
	if err != nil {
		return nil, err
	}

	p.Apply(current)
	return s.settings.Upsert(ctx, current)
}
