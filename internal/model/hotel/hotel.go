package hotel

import (
	"math"
	"strconv"
)

// Sort orders accepted by the catalog.
const (
	SortFeatured        = "featured"
	SortPriceLowToHigh  = "price_low_to_high"
	SortPriceHighToLow  = "price_high_to_low"
	SortHighestRating   = "highest_rating"
	DefaultSort         = SortFeatured
	DefaultPage         = 1
	DefaultLimit        = 10
	MaxLimit            = 100
	MaxPage             = 1<<53 - 1
	ReviewIDPrefix      = "rev-"
	ReviewDateLayout    = "2006-01-02"
	MaxRating           = 5
	MinReviewRating     = 1
	RatingDecimalPlaces = 1
)

// Hotel is a catalog entry. Most nested documents are schema-less and kept
// as decoded JSON; Rooms and Reviews are typed because the service reads them.
type Hotel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rating      *float64 `json:"rating"`
	IsFeatured  bool     `json:"is_featured"`
	Price       *float64 `json:"price"`
	ReviewCount int      `json:"review_count"`
	Location    any      `json:"location"`
	Images      []any    `json:"images"`
	Tags        []any    `json:"tags"`
	Amenities   []any    `json:"amenities"`
	Policies    any      `json:"policies"`
	Contact     any      `json:"contact"`
	Services    any      `json:"services"`
	Rooms       []Room   `json:"rooms"`
	Reviews     []Review `json:"reviews"`

	// Attributes holds columns added by seeding that the catalog does not know.
	Attributes map[string]any `json:"attributes,omitempty"`

	Pricing     *Pricing `json:"pricing"`
	IsFavourite bool     `json:"is_favourite"`
}

// Pricing is the min/max base price over a hotel's rooms.
type Pricing struct {
	MinRoomPrice float64 `json:"min_room_price"`
	MaxRoomPrice float64 `json:"max_room_price"`
}

// Summary is the short hotel view embedded in rooms, bookings and exports.
type Summary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Rating      *float64 `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Location    any      `json:"location"`
}

// Summary returns the short view of h.
func (h *Hotel) Summary() *Summary {
	return &Summary{
		ID:          h.ID,
		Name:        h.Name,
		Rating:      h.Rating,
		ReviewCount: h.ReviewCount,
		Location:    h.Location,
	}
}

// FindRoom returns the room with the given id.
func (h *Hotel) FindRoom(roomID string) (Room, bool) {
	for _, r := range h.Rooms {
		if r != nil && r.ID() == roomID {
			return r, true
		}
	}
	return nil, false
}

// Room is a schema-less room document.
type Room map[string]any

// ID returns the room id, or "" when missing.
func (r Room) ID() string {
	id, _ := r["id"].(string)
	return id
}

// BasePrice returns the room's finite base_price.
func (r Room) BasePrice() (float64, bool) {
	var v float64

	switch p := r["base_price"].(type) {
	case float64:
		v = p
	case float32:
		v = float64(p)
	case int:
		v = float64(p)
	case int32:
		v = float64(p)
	case int64:
		v = float64(p)
	case string:
		parsed, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, false
		}
		v = parsed
	default:
		return 0, false
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Review is one entry of a hotel's append-only review list. Seeded reviews
// have no booking or user.
type Review struct {
	ID        string  `json:"id"`
	BookingID *int64  `json:"booking_id,omitempty"`
	UserID    *int64  `json:"user_id,omitempty"`
	UserName  string  `json:"user_name"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
	Date      string  `json:"date"`
}

// ReviewResult is a created or edited review with its hotel.
type ReviewResult struct {
	Review
	HotelID string `json:"hotel_id"`
}

// ListFilter holds the catalog conditions pushed down to SQL.
type ListFilter struct {
	Location   string
	IsFeatured *bool
	MinRating  *float64
	MaxRating  *float64
}

// ListQuery is a fully parsed catalog request.
type ListQuery struct {
	ListFilter
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
	Page     int
	Limit    int
}

// ListMeta describes the returned page.
type ListMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// ListResult is one catalog page.
type ListResult struct {
	Hotels []*Hotel  `json:"hotels"`
	Meta   ListMeta `json:"meta"`
}

// RoomResult is a room with its hotel summary.
type RoomResult map[string]any
