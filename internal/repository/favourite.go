package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/hotel-booking/internal/model/favourite"
)

const favouritesTable = "favourites"

type FavouriteRepository struct {
	db DBTX
}

func NewFavouriteRepository(db DBTX) *FavouriteRepository {
	return &FavouriteRepository{db: db}
}

// Add inserts the pair, or returns the existing row when it is already
// there. created reports which happened.
func (r *FavouriteRepository) Add(ctx context.Context, userID int64, hotelID string) (fav *favourite.Favourite, created bool, err error) {
	rows, err := r.db.Query(ctx, `
		INSERT INTO favourites (user_id, hotel_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, hotel_id) DO NOTHING
		RETURNING *`, userID, hotelID)
	if err != nil {
		return nil, false, err
	}

	fav, err = pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[favourite.Favourite])
	if err == nil {
		return fav, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	fav, err = r.Get(ctx, userID, hotelID)
	return fav, false, err
}

func (r *FavouriteRepository) Get(ctx context.Context, userID int64, hotelID string) (*favourite.Favourite, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM favourites WHERE user_id = $1 AND hotel_id = $2`, userID, hotelID)
	return collectOne[favourite.Favourite](rows, err, favouritesTable)
}

func (r *FavouriteRepository) ListByUser(ctx context.Context, userID int64) ([]*favourite.Favourite, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM favourites WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
	return collectAll[favourite.Favourite](rows, err)
}

// HotelIDs returns the set of hotels userID has favourited.
func (r *FavouriteRepository) HotelIDs(ctx context.Context, userID int64) (map[string]bool, error) {
	rows, err := r.db.Query(ctx, `SELECT hotel_id FROM favourites WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (r *FavouriteRepository) Delete(ctx context.Context, userID int64, hotelID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM favourites WHERE user_id = $1 AND hotel_id = $2`, userID, hotelID)
	return expectAffected(tag, err, favouritesTable)
}
