package settings

import (
	"time"

	"github.com/deppfellow/hotel-booking/internal/validation"
)

// Settings are a user's notification preferences. A user without stored
// settings gets Defaults.
type Settings struct {
	UserID              int64     `json:"user_id" db:"user_id"`
	EnableNotifications bool      `json:"enable_notifications" db:"enable_notifications"`
	EmailNotifications  bool      `json:"email_notifications" db:"email_notifications"`
	PushNotifications   bool      `json:"push_notifications" db:"push_notifications"`
	BookingReminders    bool      `json:"booking_reminders" db:"booking_reminders"`
	Newsletter          bool      `json:"newsletter" db:"newsletter"`
	SpecialOffers       bool      `json:"special_offers" db:"special_offers"`
	MarketingEmails     bool      `json:"marketing_emails" db:"marketing_emails"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}

// Defaults returns all-false settings for userID.
func Defaults(userID int64) *Settings {
	return &Settings{UserID: userID}
}

// Patch is a partial settings update; nil fields keep their value.
type Patch struct {
	EnableNotifications *bool `json:"enable_notifications"`
	EmailNotifications  *bool `json:"email_notifications"`
	PushNotifications   *bool `json:"push_notifications"`
	BookingReminders    *bool `json:"booking_reminders"`
	Newsletter          *bool `json:"newsletter"`
	SpecialOffers       *bool `json:"special_offers"`
	MarketingEmails     *bool `json:"marketing_emails"`
}

// Apply merges p into s.
func (p Patch) Apply(s *Settings) {
	set := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}

	set(&s.EnableNotifications, p.EnableNotifications)
	set(&s.EmailNotifications, p.EmailNotifications)
	set(&s.PushNotifications, p.PushNotifications)
	set(&s.BookingReminders, p.BookingReminders)
	set(&s.Newsletter, p.Newsletter)
	set(&s.SpecialOffers, p.SpecialOffers)
	set(&s.MarketingEmails, p.MarketingEmails)
}

// GetSettingsPayload serves both /settings and /settings/:userId.
type GetSettingsPayload struct {
	UserID string `param:"userId" json:"-"`
	id     int64
}

func (p *GetSettingsPayload) Validate() error {
	if p.UserID == "" {
		return nil
	}
	id, err := validation.ParseID(p.UserID)
	if err != nil {
		return err
	}
	p.id = id
	return nil
}

// TargetUserID is the parsed :userId, or 0 when the route has none.
func (p *GetSettingsPayload) TargetUserID() int64 {
	return p.id
}

type UpdateSettingsPayload struct {
	GetSettingsPayload
	Patch
}

func (p *UpdateSettingsPayload) Validate() error {
	return p.GetSettingsPayload.Validate()
}
