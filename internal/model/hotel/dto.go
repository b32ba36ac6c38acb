package hotel

import (
	"math"
	"strconv"
	"strings"

	"github.com/deppfellow/hotel-booking/internal/errs"
	"github.com/deppfellow/hotel-booking/internal/validation"
)

// ListHotelsPayload is the GET /hotels query. Values arrive as strings and
// are converted by Query after validation.
type ListHotelsPayload struct {
	Location   string `query:"location" validate:"max=200"`
	MinPrice   string `query:"minPrice"`
	MaxPrice   string `query:"maxPrice"`
	MinRating  string `query:"minRating"`
	MaxRating  string `query:"maxRating"`
	IsFeatured string `query:"isFeatured"`
	SortBy     string `query:"sortBy" validate:"omitempty,oneof=featured price_low_to_high price_high_to_low highest_rating"`
	Page       string `query:"page"`
	Limit      string `query:"limit"`

	query ListQuery
}

func (p *ListHotelsPayload) Validate() error {
	if err := validation.Validate(p); err != nil {
		return err
	}

	var fieldErrs validation.CustomValidationErrors

	q := ListQuery{
		ListFilter: ListFilter{Location: strings.TrimSpace(p.Location)},
		SortBy:     p.SortBy,
		Page:       DefaultPage,
		Limit:      DefaultLimit,
	}
	if q.SortBy == "" {
		q.SortBy = DefaultSort
	}

	parseBound := func(field, raw string, max float64) *float64 {
		if raw == "" {
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			fieldErrs = append(fieldErrs, validation.CustomValidationError{Field: field, Message: "must be a number"})
			return nil
		}
		if v < 0 {
			fieldErrs = append(fieldErrs, validation.CustomValidationError{Field: field, Message: "must be at least 0"})
			return nil
		}
		if max > 0 && v > max {
			fieldErrs = append(fieldErrs, validation.CustomValidationError{
				Field:   field,
				Message: "must not exceed " + strconv.FormatFloat(max, 'f', -1, 64),
			})
			return nil
		}
		return &v
	}

	q.MinPrice = parseBound("minPrice", p.MinPrice, 0)
	q.MaxPrice = parseBound("maxPrice", p.MaxPrice, 0)
	q.MinRating = parseBound("minRating", p.MinRating, MaxRating)
	q.MaxRating = parseBound("maxRating", p.MaxRating, MaxRating)

	if p.IsFeatured != "" {
		featured, err := strconv.ParseBool(strings.TrimSpace(p.IsFeatured))
		if err != nil {
			fieldErrs = append(fieldErrs, validation.CustomValidationError{Field: "isFeatured", Message: "must be true or false"})
		} else {
			q.IsFeatured = &featured
		}
	}

	if p.Page != "" {
		page, err := strconv.ParseInt(strings.TrimSpace(p.Page), 10, 64)
		switch {
		case err != nil || page > MaxPage || int64(int(page)) != page:
			fieldErrs = append(fieldErrs, validation.CustomValidationError{
				Field:   "page",
				Message: "must be a whole number between 1 and " + strconv.FormatInt(MaxPage, 10),
			})
		case page < 1:
			fieldErrs = append(fieldErrs, validation.CustomValidationError{Field: "page", Message: "must be at least 1"})
		default:
			q.Page = int(page)
		}
	}

	if p.Limit != "" {
		limit, err := strconv.Atoi(strings.TrimSpace(p.Limit))
		if err != nil || limit < 1 || limit > MaxLimit {
			fieldErrs = append(fieldErrs, validation.CustomValidationError{Field: "limit", Message: "must be between 1 and 100"})
		} else {
			q.Limit = limit
		}
	}

	if len(fieldErrs) > 0 {
		return fieldErrs
	}

	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		return errs.NewBadRequestError("minPrice cannot be greater than maxPrice", true, nil, nil, nil)
	}
	if q.MinRating != nil && q.MaxRating != nil && *q.MinRating > *q.MaxRating {
		return errs.NewBadRequestError("minRating cannot be greater than maxRating", true, nil, nil, nil)
	}

	p.query = q
	return nil
}

// Query returns the parsed request, valid after Validate.
func (p *ListHotelsPayload) Query() ListQuery {
	return p.query
}

type GetHotelPayload struct {
	HotelID string `param:"id" json:"-" validate:"required,notblank"`
}

func (p *GetHotelPayload) Validate() error {
	return validation.Validate(p)
}

type GetRoomPayload struct {
	HotelID string `param:"id" json:"-" validate:"required,notblank"`
	RoomID  string `param:"roomId" json:"-" validate:"required,notblank"`
}

func (p *GetRoomPayload) Validate() error {
	return validation.Validate(p)
}

type CreateReviewPayload struct {
	HotelID   string  `param:"id" json:"-" validate:"required,notblank"`
	BookingID int64   `json:"booking_id" validate:"required,gt=0"`
	Rating    float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string  `json:"comment" validate:"required,notblank,max=2000"`
	UserName  string  `json:"user_name" validate:"required,notblank,max=100"`
}

func (p *CreateReviewPayload) Validate() error {
	return validation.Validate(p)
}

type EditReviewPayload struct {
	ReviewID string  `param:"reviewId" json:"-" validate:"required,notblank"`
	Rating   float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Comment  string  `json:"comment" validate:"required,notblank,max=2000"`
}

func (p *EditReviewPayload) Validate() error {
	return validation.Validate(p)
}
