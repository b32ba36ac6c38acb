package repository

import (
	"context"

	"github.com/deppfellow/hotel-booking/internal/model/settings"
)

const settingsTable = "user_settings"

type SettingsRepository struct {
	db DBTX
}

func NewSettingsRepository(db DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context, userID int64) (*settings.Settings, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM user_settings WHERE user_id = $1`, userID)
	return collectOne[settings.Settings](rows, err, settingsTable)
}

// Upsert stores s in full, replacing any previous row.
func (r *SettingsRepository) Upsert(ctx context.Context, s *settings.Settings) (*settings.Settings, error) {
	rows, err := r.db.Query(ctx, `
		INSERT INTO user_settings (
			user_id, enable_notifications, email_notifications, push_notifications,
			booking_reminders, newsletter, special_offers, marketing_emails, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (user_id) DO UPDATE SET
			enable_notifications = EXCLUDED.enable_notifications,
			email_notifications  = EXCLUDED.email_notifications,
			push_notifications   = EXCLUDED.push_notifications,
			booking_reminders    = EXCLUDED.booking_reminders,
			newsletter           = EXCLUDED.newsletter,
			special_offers       = EXCLUDED.special_offers,
			marketing_emails     = EXCLUDED.marketing_emails,
			updated_at           = now()
		RETURNING *`,
		s.UserID, s.EnableNotifications, s.EmailNotifications, s.PushNotifications,
		s.BookingReminders, s.Newsletter, s.SpecialOffers, s.MarketingEmails,
	)
	return collectOne[settings.Settings](rows, err, settingsTable)
}
