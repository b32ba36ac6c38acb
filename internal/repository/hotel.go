package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/hotel-booking/internal/model/hotel"
	"github.com/deppfellow/hotel-booking/internal/sqlerr"
)

const hotelsTable = "hotels"

type HotelRepository struct {
	db DBTX
}

func NewHotelRepository(db DBTX) *HotelRepository {
	return &HotelRepository{db: db}
}

// likeEscaper escapes LIKE wildcards so user input matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildHotelFilter renders the WHERE clause for f. Returns "" when f is empty.
func buildHotelFilter(f hotel.ListFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if loc := strings.TrimSpace(f.Location); loc != "" {
		p := next("%" + likeEscaper.Replace(loc) + "%")
		conds = append(conds, fmt.Sprintf(
			"(LOWER(location->>'city') LIKE LOWER(%[1]s) OR LOWER(location->>'state') LIKE LOWER(%[1]s) OR LOWER(location->>'country') LIKE LOWER(%[1]s))", p))
	}
	if f.IsFeatured != nil {
		conds = append(conds, "is_featured = "+next(*f.IsFeatured))
	}
	if f.MinRating != nil {
		conds = append(conds, "rating >= "+next(*f.MinRating))
	}
	if f.MaxRating != nil {
		conds = append(conds, "rating <= "+next(*f.MaxRating))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns every hotel matching the SQL-side filter, normalised.
func (r *HotelRepository) List(ctx context.Context, f hotel.ListFilter) ([]*hotel.Hotel, error) {
	where, args := buildHotelFilter(f)

	rows, err := r.db.Query(ctx, "SELECT * FROM hotels"+where+" ORDER BY id", args...)
	if err != nil {
		return nil, err
	}
	return collectHotels(rows)
}

func (r *HotelRepository) GetByID(ctx context.Context, id string) (*hotel.Hotel, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM hotels WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return collectHotel(rows)
}

// GetByIDs loads the given hotels keyed by id. Unknown ids are absent.
func (r *HotelRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*hotel.Hotel, error) {
	out := make(map[string]*hotel.Hotel, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx, `SELECT * FROM hotels WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}

	hotels, err := collectHotels(rows)
	if err != nil {
		return nil, err
	}
	for _, h := range hotels {
		out[h.ID] = h
	}
	return out, nil
}

// UpdateReviews locks the hotel row, lets apply mutate the loaded hotel and
// writes back reviews, rating and review_count in the same transaction.
func (r *HotelRepository) UpdateReviews(ctx context.Context, id string, apply func(*hotel.Hotel) error) (*hotel.Hotel, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `SELECT * FROM hotels WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, err
	}
	h, err := collectHotel(rows)
	if err != nil {
		return nil, err
	}

	if err := apply(h); err != nil {
		return nil, err
	}

	reviews, err := json.Marshal(h.Reviews)
	if err != nil {
		return nil, fmt.Errorf("encoding reviews: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE hotels SET reviews = $1::jsonb, rating = $2, review_count = $3 WHERE id = $4`,
		string(reviews), h.Rating, h.ReviewCount, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return h, nil
}

// FindHotelIDByReviewID returns the hotel holding reviewID.
func (r *HotelRepository) FindHotelIDByReviewID(ctx context.Context, reviewID string) (string, error) {
	probe, err := json.Marshal([]map[string]any{{"id": reviewID}})
	if err != nil {
		return "", err
	}

	var id string
	err = r.db.QueryRow(ctx, `SELECT id FROM hotels WHERE reviews @> $1::jsonb LIMIT 1`, string(probe)).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", sqlerr.NotFound("reviews")
	}
	return id, err
}

// HasReviewForBooking reports whether any hotel holds a review by userID for
// bookingID.
func (r *HotelRepository) HasReviewForBooking(ctx context.Context, userID, bookingID int64) (bool, error) {
	probe, err := json.Marshal([]map[string]any{{"user_id": userID, "booking_id": bookingID}})
	if err != nil {
		return false, err
	}

	var exists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM hotels WHERE reviews @> $1::jsonb)`, string(probe)).Scan(&exists)
	return exists, err
}

func collectHotels(rows pgx.Rows) ([]*hotel.Hotel, error) {
	defer rows.Close()

	hotels := []*hotel.Hotel{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return hotels, nil
}

func collectHotel(rows pgx.Rows) (*hotel.Hotel, error) {
	hotels, err := collectHotels(rows)
	if err != nil {
		return nil, err
	}
	if len(hotels) == 0 {
		return nil, sqlerr.NotFound(hotelsTable)
	}
	return hotels[0], nil
}

// scanHotel reads the current row by column name. The table may carry
// columns added by seeding, so a fixed struct scan is not possible.
func scanHotel(rows pgx.Rows) (*hotel.Hotel, error) {
	values, err := rows.Values()
	if err != nil {
		return nil, err
	}

	fields := rows.FieldDescriptions()
	cols := make([]string, len(fields))
	for i, fd := range fields {
		cols[i] = fd.Name
	}

	return normalizeHotelRow(cols, values)
}
