package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/deppfellow/hotel-booking/internal/errs"
	"github.com/deppfellow/hotel-booking/internal/model/booking"
	"github.com/deppfellow/hotel-booking/internal/model/hotel"
	"github.com/deppfellow/hotel-booking/internal/repository"
)

type bookingStore interface {
	Create(ctx context.Context, b repository.NewBooking) (*booking.Booking, error)
	GetByID(ctx context.Context, id int64) (*booking.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]*booking.Booking, error)
	ListByHotel(ctx context.Context, hotelID string) ([]*booking.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*booking.Booking, error)
}

type hotelGetter interface {
	GetByID(ctx context.Context, id string) (*hotel.Hotel, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*hotel.Hotel, error)
}

type BookingService struct {
	bookings bookingStore
	hotels   hotelGetter
	now      func() time.Time
}

func NewBookingService(bookings bookingStore, hotels hotelGetter) *BookingService {
	return &BookingService{bookings: bookings, hotels: hotels, now: time.Now}
}

func (s *BookingService) Create(ctx context.Context, callerID int64, p *booking.CreateBookingPayload) (*booking.Booking, error) {
	h, err := s.hotels.GetByID(ctx, p.HotelID)
	if err != nil {
		return nil, err
	}

	room, ok := h.FindRoom(p.RoomID)
	if !ok {
		return nil, errs.NewNotFoundError("Room not found", true, nil)
	}

	basePrice, ok := room.BasePrice()
	if !ok {
		return nil, errs.NewBadRequestError("Room has no price", true, nil, nil, nil)
	}

	checkIn, checkOut := p.Dates()
	nights := booking.Nights(checkIn, checkOut)
	total := decimal.NewFromFloat(basePrice).Mul(decimal.NewFromInt(int64(nights))).Round(2)

	b, err := s.bookings.Create(ctx, repository.NewBooking{
		UserID:     callerID,
		HotelID:    p.HotelID,
		RoomID:     p.RoomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     p.GuestCount(),
		TotalPrice: total,
	})
	if err != nil {
		return nil, err
	}

	s.decorate(b, h)
	return b, nil
}

func (s *BookingService) decorate(b *booking.Booking, h *hotel.Hotel) {
	b.DisplayStatus = b.DisplayStatusAt(s.now())
	if h != nil {
		b.Hotel = h.Summary()
	}
}

// decorateAll attaches display status and hotel summaries in one hotel lookup.
func (s *BookingService) decorateAll(ctx context.Context, bookings []*booking.Booking) error {
	seen := map[string]bool{}
	ids := []string{}
	for _, b := range bookings {
		if !seen[b.HotelID] {
			seen[b.HotelID] = true
			ids = append(ids, b.HotelID)
		}
	}

	hotels, err := s.hotels.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, b := range bookings {
		s.decorate(b, hotels[b.HotelID])
	}
	return nil
}

func (s *BookingService) ownBooking(ctx context.Context, callerID, id int64, forbidden string) (*booking.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != callerID {
		return nil, errs.NewForbiddenError(forbidden, true)
	}
	return b, nil
}

func (s *BookingService) Get(ctx context.Context, callerID, id int64) (*booking.Booking, error) {
	b, err := s.ownBooking(ctx, callerID, id, "You can only view your own bookings")
	if err != nil {
		return nil, err
	}

	if err := s.decorateAll(ctx, []*booking.Booking{b}); err != nil {
		return nil, err
	}
	return b, nil
}

// Cancel is allowed only before the stay begins.
func (s *BookingService) Cancel(ctx context.Context, callerID, id int64) (*booking.Booking, error) {
	b, err := s.ownBooking(ctx, callerID, id, "You can only cancel your own bookings")
	if err != nil {
		return nil, err
	}

	if b.Status == booking.StatusCancelled {
		return nil, errs.NewConflictError("Booking already cancelled", true)
	}
	if b.Started(s.now()) {
		return nil, errs.NewBadRequestError("Cannot cancel a booking that has already started or completed", true, nil, nil, nil)
	}

	cancelled, err := s.bookings.UpdateStatus(ctx, id, booking.StatusCancelled)
	if err != nil {
		return nil, err
	}

	if err := s.decorateAll(ctx, []*booking.Booking{cancelled}); err != nil {
		return nil, err
	}
	return cancelled, nil
}

func (s *BookingService) ListMine(ctx context.Context, callerID int64) ([]*booking.Booking, error) {
	bookings, err := s.bookings.ListByUser(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if err := s.decorateAll(ctx, bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) ListByHotel(ctx context.Context, hotelID string) ([]*booking.Booking, error) {
	h, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		s.decorate(b, h)
	}
	return bookings, nil
}

var exportHeader = []string{
	"id", "hotel_id", "hotel_name", "room_id", "check_in", "check_out", "guests",
	"status", "display_status", "payment_status", "total_price", "created_at",
}

// ExportMine renders the caller's bookings as CSV.
func (s *BookingService) ExportMine(ctx context.Context, callerID int64) ([]byte, error) {
	bookings, err := s.ListMine(ctx, callerID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, b := range bookings {
		hotelName := ""
		if b.Hotel != nil {
			hotelName = b.Hotel.Name
		}

		record := []string{
			strconv.FormatInt(b.ID, 10),
			b.HotelID,
			hotelName,
			deref(b.RoomID),
			formatDate(b.CheckIn),
			formatDate(b.CheckOut),
			strconv.Itoa(b.Guests),
			b.Status,
			b.DisplayStatus,
			b.PaymentStatus,
			b.TotalPrice.StringFixed(2),
			b.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(booking.DateLayout)
}
