package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/hotel-booking/internal/middleware"
	"github.com/deppfellow/hotel-booking/internal/model"
	"github.com/deppfellow/hotel-booking/internal/model/booking"
	"github.com/deppfellow/hotel-booking/internal/server"
	"github.com/deppfellow/hotel-booking/internal/service"
)

const exportFilename = "my-bookings.csv"

type BookingHandler struct {
	Handler
	bookingService *service.BookingService
}

func NewBookingHandler(s *server.Server, bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{
		Handler:        NewHandler(s),
		bookingService: bookingService,
	}
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *booking.CreateBookingPayload) (echo.Map, error) {
			b, err := h.bookingService.Create(c.Request().Context(), middleware.GetUserID(c), payload)
			if err != nil {
				return nil, err
			}
			return echo.Map{"booking": b}, nil
		},
		http.StatusCreated,
		"Booking created",
	)(c)
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *booking.IDPayload) (echo.Map, error) {
			b, err := h.bookingService.Cancel(c.Request().Context(), middleware.GetUserID(c), payload.BookingID())
			if err != nil {
				return nil, err
			}
			return echo.Map{"booking": b}, nil
		},
		http.StatusOK,
		"Booking canceled",
	)(c)
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *booking.IDPayload) (echo.Map, error) {
			b, err := h.bookingService.Get(c.Request().Context(), middleware.GetUserID(c), payload.BookingID())
			if err != nil {
				return nil, err
			}
			return echo.Map{"booking": b}, nil
		},
		http.StatusOK,
		"Booking found",
	)(c)
}

func (h *BookingHandler) MyBookings(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, _ *model.Empty) (echo.Map, error) {
			bookings, err := h.bookingService.ListMine(c.Request().Context(), middleware.GetUserID(c))
			if err != nil {
				return nil, err
			}
			return echo.Map{"bookings": bookings}, nil
		},
		http.StatusOK,
		"My bookings",
	)(c)
}

func (h *BookingHandler) ExportMyBookings(c echo.Context) error {
	return HandleFile(
		h.Handler,
		func(c echo.Context, _ *model.Empty) ([]byte, error) {
			return h.bookingService.ExportMine(c.Request().Context(), middleware.GetUserID(c))
		},
		exportFilename,
		"text/csv; charset=utf-8",
	)(c)
}

func (h *BookingHandler) HotelBookings(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *booking.HotelBookingsPayload) (echo.Map, error) {
			bookings, err := h.bookingService.ListByHotel(c.Request().Context(), payload.HotelID)
			if err != nil {
				return nil, err
			}
			return echo.Map{"bookings": bookings}, nil
		},
		http.StatusOK,
		"Bookings for hotel",
	)(c)
}
