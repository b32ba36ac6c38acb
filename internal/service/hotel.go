package service

import (
	"context"
	"maps"

	"github.com/rs/zerolog"

	"github.com/deppfellow/hotel-booking/internal/errs"
	"github.com/deppfellow/hotel-booking/internal/model/hotel"
)

type hotelStore interface {
	List(ctx context.Context, f hotel.ListFilter) ([]*hotel.Hotel, error)
	GetByID(ctx context.Context, id string) (*hotel.Hotel, error)
}

type favouriteLookup interface {
	HotelIDs(ctx context.Context, userID int64) (map[string]bool, error)
}

// HotelService is the read side of the catalog.
type HotelService struct {
	hotels     hotelStore
	favourites favouriteLookup
}

func NewHotelService(hotels hotelStore, favourites favouriteLookup) *HotelService {
	return &HotelService{hotels: hotels, favourites: favourites}
}

// List runs the catalog pipeline. callerID is 0 for anonymous requests.
func (s *HotelService) List(ctx context.Context, callerID int64, q hotel.ListQuery) (*hotel.ListResult, error) {
	hotels, err := s.hotels.List(ctx, q.ListFilter)
	if err != nil {
		return nil, err
	}

	favs := s.favouriteSet(ctx, callerID)

	for _, h := range hotels {
		h.Pricing = computePriceStats(h)
		h.IsFavourite = favs[h.ID]
	}

	hotels = filterByPrice(hotels, q.MinPrice, q.MaxPrice)
	sortHotels(hotels, q.SortBy)
	page, meta := paginate(hotels, q.Page, q.Limit)

	return &hotel.ListResult{Hotels: page, Meta: meta}, nil
}

// favouriteSet is best effort: a failed lookup leaves every is_favourite
// false.
func (s *HotelService) favouriteSet(ctx context.Context, callerID int64) map[string]bool {
	if callerID == 0 || s.favourites == nil {
		return map[string]bool{}
	}

	favs, err := s.favourites.HotelIDs(ctx, callerID)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("user_id", callerID).Msg("failed to load favourites for catalog")
		return map[string]bool{}
	}
	return favs
}

func (s *HotelService) Get(ctx context.Context, callerID int64, id string) (*hotel.Hotel, error) {
	h, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	favs := s.favouriteSet(ctx, callerID)

	h.Pricing = computePriceStats(h)
	h.IsFavourite = favs[h.ID]
	return h, nil
}

func (s *HotelService) Rooms(ctx context.Context, id string) ([]hotel.Room, error) {
	h, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return h.Rooms, nil
}

// Room returns the room document with a "hotel" summary added.
func (s *HotelService) Room(ctx context.Context, hotelID, roomID string) (hotel.RoomResult, error) {
	h, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	room, ok := h.FindRoom(roomID)
	if !ok {
		return nil, errs.NewNotFoundError("Room not found", true, nil)
	}

	result := hotel.RoomResult(maps.Clone(room))
	result["hotel"] = h.Summary()
	return result, nil
}
