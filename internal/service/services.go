package service

import (
	"fmt"

	"github.com/deppfellow/hotel-booking/internal/lib/job"
	"github.com/deppfellow/hotel-booking/internal/lib/token"
	"github.com/deppfellow/hotel-booking/internal/repository"
	"github.com/deppfellow/hotel-booking/internal/server"
)

// Services groups every service, built once at startup.
type Services struct {
	Auth      *AuthService
	User      *UserService
	Hotel     *HotelService
	Review    *ReviewService
	Booking   *BookingService
	Favourite *FavouriteService
	Settings  *SettingsService
	Contact   *ContactService
	Seed      *SeedService
	Job       *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	tokens, err := token.NewManager(s.Config.Auth.JWTSecret, s.Config.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	var enqueuer Enqueuer
	if s.Job != nil {
		enqueuer = s.Job.Client
	}

	return &Services{
		Auth:      NewAuthService(s.Config.Auth, repos.User, repos.PasswordReset, repos.Tokens, tokens, enqueuer),
		User:      NewUserService(repos.User),
		Hotel:     NewHotelService(repos.Hotel, repos.Favourite),
		Review:    NewReviewService(repos.Hotel, repos.Booking),
		Booking:   NewBookingService(repos.Booking, repos.Hotel),
		Favourite: NewFavouriteService(repos.Favourite, repos.Hotel),
		Settings:  NewSettingsService(repos.Settings),
		Contact:   NewContactService(repos.Contact),
		Seed:      NewSeedService(repos.HotelColumns),
		Job:       s.Job,
	}, nil
}
