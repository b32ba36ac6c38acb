// Package router assembles the echo instance: serializer, error handler,
// global middleware and every route.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/hotel-booking/internal/handler"
	"github.com/deppfellow/hotel-booking/internal/lib/serializer"
	"github.com/deppfellow/hotel-booking/internal/middleware"
	"github.com/deppfellow/hotel-booking/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers, mw *middleware.Middlewares) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.JSONSerializer = serializer.JSONSerializer{}
	router.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
	)
	if metricsEnabled(s) {
		router.Use(mw.Metrics.Middleware())
	}
	router.Use(
		mw.Global.CORS(),
		mw.Global.Secure(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
	)

	registerSystemRoutes(router, h, mw, metricsEnabled(s))
	registerAuthRoutes(router, h, mw)
	registerUserRoutes(router, h, mw)
	registerHotelRoutes(router, h, mw)
	registerBookingRoutes(router, h, mw)
	registerAccountRoutes(router, h, mw)

	return router
}

// metricsEnabled defaults to true when observability is not configured.
func metricsEnabled(s *server.Server) bool {
	return s.Config.Observability == nil || s.Config.Observability.Metrics.Enabled
}

func registerAuthRoutes(r *echo.Echo, h *handler.Handlers, mw *middleware.Middlewares) {
	r.POST("/signup", h.Auth.SignUp, mw.RateLimit.Limit("signup"))
	r.POST("/signin", h.Auth.SignIn, mw.RateLimit.Limit("signin"))
	r.POST("/forgot-password", h.Auth.ForgotPassword)
	r.POST("/reset-password", h.Auth.ResetPassword)

	r.POST("/change-password", h.Auth.ChangePassword, mw.Auth.RequireAuth)
	r.POST("/logout", h.Auth.Logout, mw.Auth.RequireAuth)
}

// Auth is attached per route. An echo group with an empty prefix would also
// wrap the catch-all not-found route, turning unknown paths into 401s.
func registerUserRoutes(r *echo.Echo, h *handler.Handlers, mw *middleware.Middlewares) {
	auth := mw.Auth.RequireAuth

	r.GET("/users", h.User.ListUsers, auth)
	r.GET("/user/:id", h.User.GetUser, auth)
	r.PUT("/user/:id", h.User.UpdateUser, auth)
	r.DELETE("/user/:id", h.User.DeleteUser, auth)

	r.GET("/profile/:id", h.User.GetProfile, auth)
	r.PUT("/update-profile/:id", h.User.UpdateProfile, auth)
}

// Hotel paths share the /hotel/:id prefix; echo prefers the static
// segments (rooms, bookings) over the :roomId parameter.
func registerHotelRoutes(r *echo.Echo, h *handler.Handlers, mw *middleware.Middlewares) {
	r.GET("/hotels", h.Hotel.ListHotels, mw.Auth.OptionalAuth)
	r.GET("/hotel/:id", h.Hotel.GetHotel, mw.Auth.OptionalAuth)
	r.GET("/hotel/:id/rooms", h.Hotel.GetRooms)
	r.GET("/hotel/:id/:roomId", h.Hotel.GetRoom)

	r.POST("/hotel/:id/reviews", h.Hotel.CreateReview, mw.Auth.RequireAuth)
	r.PUT("/hotel/reviews/:reviewId", h.Hotel.EditReview, mw.Auth.RequireAuth)
}

func registerBookingRoutes(r *echo.Echo, h *handler.Handlers, mw *middleware.Middlewares) {
	auth := mw.Auth.RequireAuth

	r.POST("/create-booking", h.Booking.CreateBooking, auth)
	r.PATCH("/booking/:id/cancel", h.Booking.CancelBooking, auth)
	r.GET("/booking/:id", h.Booking.GetBooking, auth)
	r.GET("/mybookings", h.Booking.MyBookings, auth)
	r.GET("/mybookings/export", h.Booking.ExportMyBookings, auth)
	r.GET("/hotel/:id/bookings", h.Booking.HotelBookings, auth)
}

func registerAccountRoutes(r *echo.Echo, h *handler.Handlers, mw *middleware.Middlewares) {
	r.POST("/contact", h.Contact.CreateContact)

	auth := mw.Auth.RequireAuth

	r.POST("/favourite", h.Favourite.AddFavourite, auth)
	r.GET("/favourite", h.Favourite.ListFavourites, auth)
	r.DELETE("/favourite/:hotelId", h.Favourite.RemoveFavourite, auth)

	r.GET("/settings", h.Settings.GetSettings, auth)
	r.GET("/settings/:userId", h.Settings.GetSettings, auth)
	r.PUT("/settings", h.Settings.UpdateSettings, auth)
	r.PUT("/settings/:userId", h.Settings.UpdateSettings, auth)
}
