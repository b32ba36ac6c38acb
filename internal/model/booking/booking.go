package booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/deppfellow/hotel-booking/internal/model/hotel"
)

// Stored booking states.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"

	PaymentPending = "pending"
)

// Display states derived from the stored status and the stay dates.
const (
	DisplayCancelled = "Cancelled"
	DisplayUpcoming  = "Upcoming"
	DisplayOngoing   = "Ongoing"
	DisplayCompleted = "Completed"
)

// DateLayout is the accepted check_in/check_out format.
const DateLayout = "2006-01-02"

type Booking struct {
	ID               int64           `json:"id" db:"id"`
	UserID           int64           `json:"user_id" db:"user_id"`
	HotelID          string          `json:"hotel_id" db:"hotel_id"`
	RoomID           *string         `json:"room_id" db:"room_id"`
	CheckIn          *time.Time      `json:"check_in" db:"check_in"`
	CheckOut         *time.Time      `json:"check_out" db:"check_out"`
	Guests           int             `json:"guests" db:"guests"`
	Status           string          `json:"status" db:"status"`
	PaymentStatus    string          `json:"payment_status" db:"payment_status"`
	PaymentReference *string         `json:"payment_reference" db:"payment_reference"`
	TotalPrice       decimal.Decimal `json:"total_price" db:"total_price"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`

	DisplayStatus string         `json:"display_status" db:"-"`
	Hotel         *hotel.Summary `json:"hotel,omitempty" db:"-"`
}

// DisplayStatusAt derives the user-facing state at now. Missing dates count
// as not yet started.
func (b *Booking) DisplayStatusAt(now time.Time) string {
	switch {
	case b.Status == StatusCancelled:
		return DisplayCancelled
	case b.CheckIn == nil || now.Before(*b.CheckIn):
		return DisplayUpcoming
	case b.CheckOut == nil || now.Before(*b.CheckOut):
		return DisplayOngoing
	default:
		return DisplayCompleted
	}
}

// Started reports whether the stay has begun at now.
func (b *Booking) Started(now time.Time) bool {
	return b.CheckIn != nil && !now.Before(*b.CheckIn)
}

// Nights is the number of nights between check-in and check-out dates.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}
