package repository

import (
	"github.com/deppfellow/hotel-booking/internal/server"
)

// Repositories groups every repository behind the shared pool.
type Repositories struct {
	User          *UserRepository
	PasswordReset *PasswordResetRepository
	Hotel         *HotelRepository
	HotelColumns  *HotelColumnsRepository
	Booking       *BookingRepository
	Favourite     *FavouriteRepository
	Settings      *SettingsRepository
	Contact       *ContactRepository
	Tokens        *TokenStore
}

func NewRepositories(s *server.Server) *Repositories {
	db := s.DB.Pool

	return &Repositories{
		User:          NewUserRepository(db),
		PasswordReset: NewPasswordResetRepository(db),
		Hotel:         NewHotelRepository(db),
		HotelColumns:  NewHotelColumnsRepository(db),
		Booking:       NewBookingRepository(db),
		Favourite:     NewFavouriteRepository(db),
		Settings:      NewSettingsRepository(db),
		Contact:       NewContactRepository(db),
		Tokens:        NewTokenStore(s.Redis),
	}
}
