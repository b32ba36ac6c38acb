package service

import (
	"context"

	"github.com/deppfellow/hotel-booking/internal/model/favourite"
	"github.com/deppfellow/hotel-booking/internal/model/user"
)

type favouriteStore interface {
	Add(ctx context.Context, userID int64, hotelID string) (*favourite.Favourite, bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*favourite.Favourite, error)
	Delete(ctx context.Context, userID int64, hotelID string) error
}

type FavouriteService struct {
	favourites favouriteStore
	hotels     hotelGetter
}

func NewFavouriteService(favourites favouriteStore, hotels hotelGetter) *FavouriteService {
	return &FavouriteService{favourites: favourites, hotels: hotels}
}

// Add is idempotent: adding an existing favourite returns it unchanged.
func (s *FavouriteService) Add(ctx context.Context, callerID int64, hotelID string) (*favourite.Favourite, error) {
	h, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	fav, _, err := s.favourites.Add(ctx, callerID, hotelID)
	if err != nil {
		return nil, err
	}

	h.Pricing = computePriceStats(h)
	h.IsFavourite = true
	fav.Hotel = h
	return fav, nil
}

func (s *FavouriteService) List(ctx context.Context, callerID int64) ([]*favourite.Favourite, error) {
	favs, err := s.favourites.ListByUser(ctx, callerID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.HotelID)
	}

	hotels, err := s.hotels.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, f := range favs {
		if h, ok := hotels[f.HotelID]; ok {
			h.Pricing = computePriceStats(h)
			h.IsFavourite = true
			f.Hotel = h
		}
	}
	return favs, nil
}

func (s *FavouriteService) Remove(ctx context.Context, callerID int64, hotelID string) (*user.MessageResult, error) {
	if err := s.favourites.Delete(ctx, callerID, hotelID); err != nil {
		return nil, err
	}
	return &user.MessageResult{Message: "Favourite removed successfully"}, nil
}
