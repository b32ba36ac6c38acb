package service

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/hotel-booking/internal/errs"
	"github.com/deppfellow/hotel-booking/internal/model/booking"
	"github.com/deppfellow/hotel-booking/internal/model/hotel"
	"github.com/deppfellow/hotel-booking/internal/model/user"
	"github.com/deppfellow/hotel-booking/internal/repository"
	"github.com/deppfellow/hotel-booking/internal/sqlerr"
)

func ptr[T any](v T) *T { return &v }

func requireHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, status, httpErr.Status)
	if message != "" {
		assert.Equal(t, message, httpErr.Message)
	}
}

// requireNotFound checks that sqlerr turns err into a 404 with message.
func requireNotFound(t *testing.T, err error, message string) {
	t.Helper()
	requireHTTPError(t, sqlerr.HandleError(err), http.StatusNotFound, message)
}

// ------------------------------------------------------------
// users

type fakeUsers struct {
	byID   map[int64]*user.User
	nextID int64
}

func newFakeUsers(users ...*user.User) *fakeUsers {
	f := &fakeUsers{byID: map[int64]*user.User{}, nextID: 1}
	for _, u := range users {
		f.byID[u.ID] = u
		f.nextID = max(f.nextID, u.ID+1)
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, u *user.User) (*user.User, error) {
	c := *u
	c.ID = f.nextID
	f.nextID++
	f.byID[c.ID] = &c
	return &c, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, sqlerr.NotFound("users")
	}
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range f.byID {
		if u.Email == strings.ToLower(email) {
			return u, nil
		}
	}
	return nil, sqlerr.NotFound("users")
}

func (f *fakeUsers) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id int64, hash string) error {
	u, ok := f.byID[id]
	if !ok {
		return sqlerr.NotFound("users")
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeUsers) UpdatePasswordByEmail(ctx context.Context, email, hash string) error {
	u, err := f.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeUsers) List(context.Context) ([]*user.User, error) {
	out := []*user.User{}
	for _, u := range f.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, id int64, upd user.ProfileUpdate) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, sqlerr.NotFound("users")
	}
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	return u, nil
}

func (f *fakeUsers) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return sqlerr.NotFound("users")
	}
	delete(f.byID, id)
	return nil
}

// ------------------------------------------------------------
// reset tokens, denylist, queue

type resetKey struct{ email, token string }

type fakeResets struct {
	tokens map[resetKey]time.Time
}

func newFakeResets() *fakeResets {
	return &fakeResets{tokens: map[resetKey]time.Time{}}
}

func (f *fakeResets) Create(_ context.Context, email, token string, expiresAt time.Time) error {
	f.tokens[resetKey{email, token}] = expiresAt
	return nil
}

func (f *fakeResets) ExpiresAt(_ context.Context, email, token string) (time.Time, error) {
	at, ok := f.tokens[resetKey{email, token}]
	if !ok {
		return time.Time{}, sqlerr.NotFound("password_reset_tokens")
	}
	return at, nil
}

func (f *fakeResets) Delete(_ context.Context, email, token string) error {
	delete(f.tokens, resetKey{email, token})
	return nil
}

type fakeDenylist struct {
	revoked map[string]time.Duration
	err     error
}

func newFakeDenylist() *fakeDenylist {
	return &fakeDenylist{revoked: map[string]time.Duration{}}
}

func (f *fakeDenylist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	f.revoked[jti] = ttl
	return nil
}

func (f *fakeDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.revoked[jti]
	return ok, nil
}

type fakeQueue struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeQueue) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{Type: task.Type()}, nil
}

// ------------------------------------------------------------
// hotels

type fakeHotels struct {
	hotels  map[string]*hotel.Hotel
	order   []string
	updates int
}

func newFakeHotels(hotels ...*hotel.Hotel) *fakeHotels {
	f := &fakeHotels{hotels: map[string]*hotel.Hotel{}}
	for _, h := range hotels {
		f.hotels[h.ID] = h
		f.order = append(f.order, h.ID)
	}
	return f
}

func (f *fakeHotels) List(_ context.Context, filter hotel.ListFilter) ([]*hotel.Hotel, error) {
	out := []*hotel.Hotel{}
	for _, id := range f.order {
		h := f.hotels[id]
		if filter.IsFeatured != nil && h.IsFeatured != *filter.IsFeatured {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeHotels) GetByID(_ context.Context, id string) (*hotel.Hotel, error) {
	h, ok := f.hotels[id]
	if !ok {
		return nil, sqlerr.NotFound("hotels")
	}
	return h, nil
}

func (f *fakeHotels) GetByIDs(_ context.Context, ids []string) (map[string]*hotel.Hotel, error) {
	out := map[string]*hotel.Hotel{}
	for _, id := range ids {
		if h, ok := f.hotels[id]; ok {
			out[id] = h
		}
	}
	return out, nil
}

func (f *fakeHotels) UpdateReviews(ctx context.Context, id string, apply func(*hotel.Hotel) error) (*hotel.Hotel, error) {
	h, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	work := *h
	work.Reviews = append([]hotel.Review(nil), h.Reviews...)
	if err := apply(&work); err != nil {
		return nil, err
	}

	f.hotels[id] = &work
	f.updates++
	return &work, nil
}

func (f *fakeHotels) FindHotelIDByReviewID(_ context.Context, reviewID string) (string, error) {
	for _, id := range f.order {
		for _, r := range f.hotels[id].Reviews {
			if r.ID == reviewID {
				return id, nil
			}
		}
	}
	return "", sqlerr.NotFound("reviews")
}

func (f *fakeHotels) HasReviewForBooking(_ context.Context, userID, bookingID int64) (bool, error) {
	for _, h := range f.hotels {
		for _, r := range h.Reviews {
			if r.UserID != nil && *r.UserID == userID && r.BookingID != nil && *r.BookingID == bookingID {
				return true, nil
			}
		}
	}
	return false, nil
}

// ------------------------------------------------------------
// bookings

type fakeBookings struct {
	byID   map[int64]*booking.Booking
	nextID int64
}

func newFakeBookings(bookings ...*booking.Booking) *fakeBookings {
	f := &fakeBookings{byID: map[int64]*booking.Booking{}, nextID: 1}
	for _, b := range bookings {
		f.byID[b.ID] = b
		f.nextID = max(f.nextID, b.ID+1)
	}
	return f
}

func (f *fakeBookings) Create(_ context.Context, nb repository.NewBooking) (*booking.Booking, error) {
	b := &booking.Booking{
		ID:            f.nextID,
		UserID:        nb.UserID,
		HotelID:       nb.HotelID,
		RoomID:        ptr(nb.RoomID),
		CheckIn:       ptr(nb.CheckIn),
		CheckOut:      ptr(nb.CheckOut),
		Guests:        nb.Guests,
		Status:        booking.StatusConfirmed,
		PaymentStatus: booking.PaymentPending,
		TotalPrice:    nb.TotalPrice,
	}
	f.byID[b.ID] = b
	f.nextID++
	return b, nil
}

func (f *fakeBookings) GetByID(_ context.Context, id int64) (*booking.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, sqlerr.NotFound("bookings")
	}
	return b, nil
}

func (f *fakeBookings) list(keep func(*booking.Booking) bool) []*booking.Booking {
	out := []*booking.Booking{}
	for _, b := range f.byID {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeBookings) ListByUser(_ context.Context, userID int64) ([]*booking.Booking, error) {
	return f.list(func(b *booking.Booking) bool { return b.UserID == userID }), nil
}

func (f *fakeBookings) ListByHotel(_ context.Context, hotelID string) ([]*booking.Booking, error) {
	return f.list(func(b *booking.Booking) bool { return b.HotelID == hotelID }), nil
}

func (f *fakeBookings) UpdateStatus(ctx context.Context, id int64, status string) (*booking.Booking, error) {
	b, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Status = status
	return b, nil
}
