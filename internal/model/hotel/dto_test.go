package hotel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/hotel-booking/internal/errs"
	"github.com/deppfellow/hotel-booking/internal/validation"
)

func TestListHotelsPayload_Defaults(t *testing.T) {
	p := &ListHotelsPayload{Location: "  Miami "}
	require.NoError(t, p.Validate())

	q := p.Query()
	assert.Equal(t, "Miami", q.Location)
	assert.Equal(t, DefaultSort, q.SortBy)
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)
	assert.Nil(t, q.MinPrice)
	assert.Nil(t, q.IsFeatured)
}

func TestListHotelsPayload_Parses(t *testing.T) {
	p := &ListHotelsPayload{
		MinPrice:   "100",
		MaxPrice:   "250.5",
		MinRating:  "3.5",
		MaxRating:  "5",
		IsFeatured: "false",
		SortBy:     SortHighestRating,
		Page:       "2",
		Limit:      "25",
	}
	require.NoError(t, p.Validate())

	q := p.Query()
	assert.Equal(t, 100.0, *q.MinPrice)
	assert.Equal(t, 250.5, *q.MaxPrice)
	assert.Equal(t, 3.5, *q.MinRating)
	assert.Equal(t, 5.0, *q.MaxRating)
	assert.False(t, *q.IsFeatured)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 25, q.Limit)
}

func TestListHotelsPayload_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		payload ListHotelsPayload
	}{
		{"bad sort", ListHotelsPayload{SortBy: "cheapest"}},
		{"rating above five", ListHotelsPayload{MinRating: "6"}},
		{"negative price", ListHotelsPayload{MinPrice: "-1"}},
		{"zero limit", ListHotelsPayload{Limit: "0"}},
		{"huge limit", ListHotelsPayload{Limit: "101"}},
		{"zero page", ListHotelsPayload{Page: "0"}},
		{"not a bool", ListHotelsPayload{IsFeatured: "yes"}},
		{"not a number", ListHotelsPayload{MaxPrice: "cheap"}},
		{"page overflows int", ListHotelsPayload{Page: "99999999999999999999", Limit: "10"}},
		{"page beyond safe integer", ListHotelsPayload{Page: "9007199254740992"}},
		{"fractional page", ListHotelsPayload{Page: "1.5"}},
		{"exponent page", ListHotelsPayload{Page: "1e18"}},
		{"NaN price", ListHotelsPayload{MinPrice: "NaN"}},
		{"infinite rating", ListHotelsPayload{MaxRating: "Inf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.payload
			assert.Error(t, p.Validate())
		})
	}
}

func TestListHotelsPayload_LenientScalars(t *testing.T) {
	p := &ListHotelsPayload{
		MinPrice:   "1e2",
		MaxPrice:   " 250 ",
		IsFeatured: "TRUE",
		Page:       "9007199254740991",
	}
	require.NoError(t, p.Validate())

	q := p.Query()
	assert.Equal(t, 100.0, *q.MinPrice)
	assert.Equal(t, 250.0, *q.MaxPrice)
	assert.True(t, *q.IsFeatured)
	assert.Equal(t, int64(MaxPage), int64(q.Page))

	for _, raw := range []string{"1", "t", "True"} {
		b := &ListHotelsPayload{IsFeatured: raw}
		require.NoError(t, b.Validate(), raw)
		assert.True(t, *b.Query().IsFeatured, raw)
	}
}

func TestListHotelsPayload_PageErrorNamesField(t *testing.T) {
	p := &ListHotelsPayload{Page: "99999999999999999999"}

	var fieldErrs validation.CustomValidationErrors
	require.True(t, errors.As(p.Validate(), &fieldErrs))
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "page", fieldErrs[0].Field)
}

func TestListHotelsPayload_InvertedRanges(t *testing.T) {
	p := &ListHotelsPayload{MinPrice: "300", MaxPrice: "100"}

	var httpErr *errs.HTTPError
	require.True(t, errors.As(p.Validate(), &httpErr))
	assert.Equal(t, "minPrice cannot be greater than maxPrice", httpErr.Message)

	r := &ListHotelsPayload{MinRating: "4", MaxRating: "3"}
	require.True(t, errors.As(r.Validate(), &httpErr))
	assert.Equal(t, "minRating cannot be greater than maxRating", httpErr.Message)
}

func TestRoom_BasePrice(t *testing.T) {
	price, ok := Room{"base_price": 210.0}.BasePrice()
	assert.True(t, ok)
	assert.Equal(t, 210.0, price)

	price, ok = Room{"base_price": "99.5"}.BasePrice()
	assert.True(t, ok)
	assert.Equal(t, 99.5, price)

	_, ok = Room{"base_price": "free"}.BasePrice()
	assert.False(t, ok)

	_, ok = Room{}.BasePrice()
	assert.False(t, ok)
}

func TestHotel_FindRoom(t *testing.T) {
	h := &Hotel{Rooms: []Room{{"id": "room-1"}, nil, {"id": "room-2"}}}

	room, ok := h.FindRoom("room-2")
	require.True(t, ok)
	assert.Equal(t, "room-2", room.ID())

	_, ok = h.FindRoom("room-9")
	assert.False(t, ok)
}
