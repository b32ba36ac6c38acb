package handler

import (
	"github.com/deppfellow/hotel-booking/internal/server"
	"github.com/deppfellow/hotel-booking/internal/service"
)

type Handlers struct {
	Health    *HealthHandler
	OpenAPI   *OpenAPIHandler
	Auth      *AuthHandler
	User      *UserHandler
	Hotel     *HotelHandler
	Booking   *BookingHandler
	Favourite *FavouriteHandler
	Settings  *SettingsHandler
	Contact   *ContactHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		OpenAPI:   NewOpenAPIHandler(s),
		Auth:      NewAuthHandler(s, services.Auth),
		User:      NewUserHandler(s, services.User),
		Hotel:     NewHotelHandler(s, services.Hotel, services.Review),
		Booking:   NewBookingHandler(s, services.Booking),
		Favourite: NewFavouriteHandler(s, services.Favourite),
		Settings:  NewSettingsHandler(s, services.Settings),
		Contact:   NewContactHandler(s, services.Contact),
	}
}
