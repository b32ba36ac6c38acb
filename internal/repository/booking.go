package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/deppfellow/hotel-booking/internal/model/booking"
)

const bookingsTable = "bookings"

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

// NewBooking is the input of Create.
type NewBooking struct {
	UserID     int64
	HotelID    string
	RoomID     string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	TotalPrice decimal.Decimal
}

func (r *BookingRepository) Create(ctx context.Context, b NewBooking) (*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `
		INSERT INTO bookings (user_id, hotel_id, room_id, check_in, check_out, guests, status, payment_status, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING *`,
		b.UserID, b.HotelID, b.RoomID, b.CheckIn, b.CheckOut, b.Guests,
		booking.StatusConfirmed, booking.PaymentPending, b.TotalPrice,
	)
	return collectOne[booking.Booking](rows, err, bookingsTable)
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM bookings WHERE id = $1`, id)
	return collectOne[booking.Booking](rows, err, bookingsTable)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM bookings WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
	return collectAll[booking.Booking](rows, err)
}

func (r *BookingRepository) ListByHotel(ctx context.Context, hotelID string) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM bookings WHERE hotel_id = $1 ORDER BY check_in, id`, hotelID)
	return collectAll[booking.Booking](rows, err)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status string) (*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE bookings SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING *`, status, id)
	return collectOne[booking.Booking](rows, err, bookingsTable)
}
