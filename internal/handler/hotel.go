package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/hotel-booking/internal/middleware"
	"github.com/deppfellow/hotel-booking/internal/model/hotel"
	"github.com/deppfellow/hotel-booking/internal/server"
	"github.com/deppfellow/hotel-booking/internal/service"
)

type HotelHandler struct {
	Handler
	hotelService  *service.HotelService
	reviewService *service.ReviewService
}

func NewHotelHandler(s *server.Server, hotelService *service.HotelService, reviewService *service.ReviewService) *HotelHandler {
	return &HotelHandler{
		Handler:       NewHandler(s),
		hotelService:  hotelService,
		reviewService: reviewService,
	}
}

// ListHotels is public; an authenticated caller also gets is_favourite.
func (h *HotelHandler) ListHotels(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *hotel.ListHotelsPayload) (*hotel.ListResult, error) {
			return h.hotelService.List(c.Request().Context(), middleware.GetUserID(c), payload.Query())
		},
		http.StatusOK,
		"Hotels fetched successfully",
	)(c)
}

func (h *HotelHandler) GetHotel(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *hotel.GetHotelPayload) (*hotel.Hotel, error) {
			return h.hotelService.Get(c.Request().Context(), middleware.GetUserID(c), payload.HotelID)
		},
		http.StatusOK,
		"Hotel details found",
	)(c)
}

func (h *HotelHandler) GetRooms(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *hotel.GetHotelPayload) ([]hotel.Room, error) {
			return h.hotelService.Rooms(c.Request().Context(), payload.HotelID)
		},
		http.StatusOK,
		"Hotel rooms found",
	)(c)
}

func (h *HotelHandler) GetRoom(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *hotel.GetRoomPayload) (hotel.RoomResult, error) {
			return h.hotelService.Room(c.Request().Context(), payload.HotelID, payload.RoomID)
		},
		http.StatusOK,
		"Room found",
	)(c)
}

func (h *HotelHandler) CreateReview(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *hotel.CreateReviewPayload) (echo.Map, error) {
			review, err := h.reviewService.Create(c.Request().Context(), middleware.GetUserID(c), payload)
			if err != nil {
				return nil, err
			}
			return echo.Map{"review": review}, nil
		},
		http.StatusCreated,
		"Review added successfully",
	)(c)
}

func (h *HotelHandler) EditReview(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *hotel.EditReviewPayload) (echo.Map, error) {
			review, err := h.reviewService.Edit(c.Request().Context(), middleware.GetUserID(c), payload)
			if err != nil {
				return nil, err
			}
			return echo.Map{"review": review}, nil
		},
		http.StatusOK,
		"Review updated successfully",
	)(c)
}
