package booking

import (
	"time"

	"github.com/deppfellow/hotel-booking/internal/validation"
)

type CreateBookingPayload struct {
	HotelID  string `json:"hotel_id" validate:"required,notblank"`
	RoomID   string `json:"room_id" validate:"required,notblank"`
	CheckIn  string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests   *int   `json:"guests" validate:"omitnil,gte=1,lte=20"`

	checkIn  time.Time
	checkOut time.Time
}

func (p *CreateBookingPayload) Validate() error {
	if err := validation.Validate(p); err != nil {
		return err
	}

	// Both dates already passed the datetime rule.
	p.checkIn, _ = time.Parse(DateLayout, p.CheckIn)
	p.checkOut, _ = time.Parse(DateLayout, p.CheckOut)

	if !p.checkOut.After(p.checkIn) {
		return validation.CustomValidationErrors{
			{Field: "check_out", Message: "must be after check_in"},
		}
	}
	return nil
}

// Dates returns the parsed stay, valid after Validate.
func (p *CreateBookingPayload) Dates() (time.Time, time.Time) {
	return p.checkIn, p.checkOut
}

// GuestCount defaults to one guest.
func (p *CreateBookingPayload) GuestCount() int {
	if p.Guests == nil {
		return 1
	}
	return *p.Guests
}

type IDPayload struct {
	ID string `param:"id" json:"-" validate:"required"`
	id int64
}

func (p *IDPayload) Validate() error {
	id, err := validation.ParseID(p.ID)
	if err != nil {
		return err
	}
	p.id = id
	return nil
}

// BookingID is the parsed path id, valid after Validate.
func (p *IDPayload) BookingID() int64 {
	return p.id
}

type HotelBookingsPayload struct {
	HotelID string `param:"id" json:"-" validate:"required,notblank"`
}

func (p *HotelBookingsPayload) Validate() error {
	return validation.Validate(p)
}
