package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/hotel-booking/internal/validation"
)

func day(s string) *time.Time {
	t, _ := time.Parse(DateLayout, s)
	return &t
}

func TestDisplayStatusAt(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		booking Booking
		want    string
	}{
		{"cancelled wins", Booking{Status: StatusCancelled, CheckIn: day("2026-05-01"), CheckOut: day("2026-05-03")}, DisplayCancelled},
		{"before check in", Booking{Status: StatusConfirmed, CheckIn: day("2026-06-01"), CheckOut: day("2026-06-03")}, DisplayUpcoming},
		{"during stay", Booking{Status: StatusConfirmed, CheckIn: day("2026-05-09"), CheckOut: day("2026-05-12")}, DisplayOngoing},
		{"after check out", Booking{Status: StatusConfirmed, CheckIn: day("2026-05-01"), CheckOut: day("2026-05-03")}, DisplayCompleted},
		{"missing dates", Booking{Status: StatusConfirmed}, DisplayUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.DisplayStatusAt(now))
		})
	}
}

func TestDisplayStatusAt_Boundaries(t *testing.T) {
	b := Booking{Status: StatusConfirmed, CheckIn: day("2026-05-10"), CheckOut: day("2026-05-12")}

	assert.Equal(t, DisplayOngoing, b.DisplayStatusAt(*b.CheckIn))
	assert.Equal(t, DisplayCompleted, b.DisplayStatusAt(*b.CheckOut))
	assert.True(t, b.Started(*b.CheckIn))
	assert.False(t, b.Started(b.CheckIn.Add(-time.Second)))
}

func TestCreateBookingPayload_Validate(t *testing.T) {
	p := &CreateBookingPayload{HotelID: "hotel-0001-uuid", RoomID: "room-001-deluxe", CheckIn: "2026-07-01", CheckOut: "2026-07-04"}
	require.NoError(t, p.Validate())

	in, out := p.Dates()
	assert.Equal(t, 3, Nights(in, out))
	assert.Equal(t, 1, p.GuestCount())

	bad := &CreateBookingPayload{HotelID: "h", RoomID: "r", CheckIn: "2026-07-04", CheckOut: "2026-07-04"}
	err := bad.Validate()
	require.Error(t, err)
	assert.IsType(t, validation.CustomValidationErrors{}, err)

	malformed := &CreateBookingPayload{HotelID: "h", RoomID: "r", CheckIn: "07/04/2026", CheckOut: "2026-07-05"}
	assert.Error(t, malformed.Validate())
}

func TestIDPayload_Validate(t *testing.T) {
	p := &IDPayload{ID: "42"}
	require.NoError(t, p.Validate())
	assert.Equal(t, int64(42), p.BookingID())

	assert.Error(t, (&IDPayload{ID: "abc"}).Validate())
}
