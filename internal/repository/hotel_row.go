package repository

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/deppfellow/hotel-booking/internal/model/hotel"
)

// normalizeHotelRow maps a hotels row onto hotel.Hotel. JSON documents are
// parsed even when stored as text, absent arrays become empty and columns the
// model does not know land in Attributes.
func normalizeHotelRow(cols []string, values []any) (*hotel.Hotel, error) {
	if len(cols) != len(values) {
		return nil, fmt.Errorf("hotel row has %d columns and %d values", len(cols), len(values))
	}

	h := &hotel.Hotel{
		Images:    []any{},
		Tags:      []any{},
		Amenities: []any{},
		Rooms:     []hotel.Room{},
		Reviews:   []hotel.Review{},
	}

	for i, col := range cols {
		v := values[i]

		switch col {
		case "id":
			h.ID = toText(v)
		case "name":
			h.Name = toText(v)
		case "description":
			h.Description = toText(v)
		case "rating":
			h.Rating = toFloatPtr(v)
		case "price":
			h.Price = toFloatPtr(v)
		case "is_featured":
			h.IsFeatured = toBool(v)
		case "review_count", "reviewcount":
			if f := toFloatPtr(v); f != nil {
				h.ReviewCount = int(*f)
			}
		case "location":
			h.Location = parseJSON(v)
		case "policies":
			h.Policies = parseJSON(v)
		case "contact":
			h.Contact = parseJSON(v)
		case "services":
			h.Services = parseJSON(v)
		case "images":
			h.Images = toArray(v)
		case "tags":
			h.Tags = toArray(v)
		case "amenities":
			h.Amenities = toArray(v)
		case "rooms":
			h.Rooms = toRooms(v)
		case "reviews":
			h.Reviews = toReviews(v)
		default:
			if h.Attributes == nil {
				h.Attributes = map[string]any{}
			}
			h.Attributes[col] = normalizeScalar(v)
		}
	}

	return h, nil
}

// parseJSON decodes JSON held in text or bytes. Non-JSON text is returned
// unchanged.
func parseJSON(v any) any {
	var raw []byte
	switch t := v.(type) {
	case string:
		raw = []byte(t)
	case []byte:
		raw = t
	default:
		return normalizeScalar(v)
	}

	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return string(raw)
	}

	var out any
	if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
		return string(raw)
	}
	return out
}

func toArray(v any) []any {
	if arr, ok := parseJSON(v).([]any); ok {
		return arr
	}
	return []any{}
}

func toRooms(v any) []hotel.Room {
	arr := toArray(v)
	rooms := make([]hotel.Room, 0, len(arr))
	for _, item := range arr {
		if m, ok := parseJSON(item).(map[string]any); ok {
			rooms = append(rooms, hotel.Room(m))
		}
	}
	return rooms
}

// toReviews decodes each element on its own. Seeded documents are
// schema-less, so numbers may arrive as strings and the reverse; elements
// that are not objects are dropped.
func toReviews(v any) []hotel.Review {
	arr := toArray(v)
	reviews := make([]hotel.Review, 0, len(arr))
	for _, item := range arr {
		m, ok := parseJSON(item).(map[string]any)
		if !ok {
			continue
		}

		r := hotel.Review{
			ID:       toText(m["id"]),
			UserName: toText(m["user_name"]),
			Comment:  toText(m["comment"]),
			Date:     toText(m["date"]),
		}
		if rating := toFloatPtr(m["rating"]); rating != nil {
			r.Rating = *rating
		}
		r.BookingID = toInt64Ptr(m["booking_id"])
		r.UserID = toInt64Ptr(m["user_id"])

		reviews = append(reviews, r)
	}
	return reviews
}

// toInt64Ptr accepts whole numbers in numeric or string form.
func toInt64Ptr(v any) *int64 {
	f := toFloatPtr(v)
	if f == nil || *f != math.Trunc(*f) || math.Abs(*f) > 1<<53 {
		return nil
	}
	n := int64(*f)
	return &n
}

// normalizeScalar converts driver types into JSON friendly values.
func normalizeScalar(v any) any {
	switch t := v.(type) {
	case pgtype.Numeric:
		f, err := t.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case [16]byte:
		return uuid.UUID(t).String()
	case int32:
		return int64(t)
	case int16:
		return int64(t)
	case float32:
		return float64(t)
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	default:
		return v
	}
}

func toText(v any) string {
	switch t := normalizeScalar(v).(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func toFloatPtr(v any) *float64 {
	var f float64

	switch t := normalizeScalar(v).(type) {
	case float64:
		f = t
	case int64:
		f = float64(t)
	case int:
		f = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func toBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, _ := strconv.ParseBool(t)
		return b
	default:
		return false
	}
}
