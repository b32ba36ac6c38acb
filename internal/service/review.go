package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/deppfellow/hotel-booking/internal/errs"
	"github.com/deppfellow/hotel-booking/internal/model/booking"
	"github.com/deppfellow/hotel-booking/internal/model/hotel"
	"github.com/deppfellow/hotel-booking/internal/sqlerr"
)

type reviewHotelStore interface {
	UpdateReviews(ctx context.Context, id string, apply func(*hotel.Hotel) error) (*hotel.Hotel, error)
	FindHotelIDByReviewID(ctx context.Context, reviewID string) (string, error)
	HasReviewForBooking(ctx context.Context, userID, bookingID int64) (bool, error)
}

type bookingLookup interface {
	GetByID(ctx context.Context, id int64) (*booking.Booking, error)
}

// ReviewService appends and edits reviews and keeps the hotel's rating in
// step with them.
type ReviewService struct {
	hotels   reviewHotelStore
	bookings bookingLookup
	now      func() time.Time
}

func NewReviewService(hotels reviewHotelStore, bookings bookingLookup) *ReviewService {
	return &ReviewService{hotels: hotels, bookings: bookings, now: time.Now}
}

// averageRating is the mean of all review ratings rounded to one decimal,
// or nil without reviews.
func averageRating(reviews []hotel.Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}

	sum := decimal.Zero
	for _, r := range reviews {
		sum = sum.Add(decimal.NewFromFloat(r.Rating))
	}

	avg, _ := sum.Div(decimal.NewFromInt(int64(len(reviews)))).Round(hotel.RatingDecimalPlaces).Float64()
	return &avg
}

func (s *ReviewService) Create(ctx context.Context, callerID int64, p *hotel.CreateReviewPayload) (*hotel.ReviewResult, error) {
	reviewed, err := s.hotels.HasReviewForBooking(ctx, callerID, p.BookingID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, errs.NewConflictError("You have already reviewed this booking", true)
	}

	b, err := s.bookings.GetByID(ctx, p.BookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != callerID {
		return nil, errs.NewForbiddenError("You can only review your own bookings", true)
	}
	if b.HotelID != p.HotelID {
		return nil, errs.NewForbiddenError("This booking is not for this hotel", true)
	}

	review := hotel.Review{
		ID:        hotel.ReviewIDPrefix + uuid.NewString(),
		BookingID: &p.BookingID,
		UserID:    &callerID,
		UserName:  p.UserName,
		Rating:    p.Rating,
		Comment:   p.Comment,
		Date:      s.now().Format(hotel.ReviewDateLayout),
	}

	_, err = s.hotels.UpdateReviews(ctx, p.HotelID, func(h *hotel.Hotel) error {
		h.Reviews = append(h.Reviews, review)
		h.Rating = averageRating(h.Reviews)
		h.ReviewCount++
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &hotel.ReviewResult{Review: review, HotelID: p.HotelID}, nil
}

func (s *ReviewService) Edit(ctx context.Context, callerID int64, p *hotel.EditReviewPayload) (*hotel.ReviewResult, error) {
	hotelID, err := s.hotels.FindHotelIDByReviewID(ctx, p.ReviewID)
	if err != nil {
		return nil, err
	}

	var edited hotel.Review
	_, err = s.hotels.UpdateReviews(ctx, hotelID, func(h *hotel.Hotel) error {
		for i := range h.Reviews {
			r := &h.Reviews[i]
			if r.ID != p.ReviewID {
				continue
			}
			if r.UserID == nil || *r.UserID != callerID {
				return errs.NewForbiddenError("You can only edit your own reviews", true)
			}

			r.Rating = p.Rating
			r.Comment = p.Comment
			r.Date = s.now().Format(hotel.ReviewDateLayout)
			edited = *r

			h.Rating = averageRating(h.Reviews)
			return nil
		}
		return sqlerr.NotFound("reviews")
	})
	if err != nil {
		return nil, err
	}

	return &hotel.ReviewResult{Review: edited, HotelID: hotelID}, nil
}
