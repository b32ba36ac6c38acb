package favourite

import (
	"time"

	"github.com/deppfellow/hotel-booking/internal/model/hotel"
	"github.com/deppfellow/hotel-booking/internal/validation"
)

type Favourite struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	HotelID   string    `json:"hotel_id" db:"hotel_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Hotel is null when the hotel no longer exists.
	Hotel *hotel.Hotel `json:"hotel" db:"-"`
}

type AddFavouritePayload struct {
	HotelID string `json:"hotel_id" validate:"required,notblank"`
}

func (p *AddFavouritePayload) Validate() error {
	return validation.Validate(p)
}

type RemoveFavouritePayload struct {
	HotelID string `param:"hotelId" json:"-" validate:"required,notblank"`
}

func (p *RemoveFavouritePayload) Validate() error {
	return validation.Validate(p)
}
