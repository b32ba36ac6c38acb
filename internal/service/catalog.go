package service

import (
	"cmp"
	"slices"

	"github.com/deppfellow/hotel-booking/internal/model/hotel"
)

// computePriceStats spans the priced rooms of h, or nil without any.
func computePriceStats(h *hotel.Hotel) *hotel.Pricing {
	var p *hotel.Pricing

	for _, room := range h.Rooms {
		price, ok := room.BasePrice()
		if !ok {
			continue
		}
		if p == nil {
			p = &hotel.Pricing{MinRoomPrice: price, MaxRoomPrice: price}
			continue
		}
		p.MinRoomPrice = min(p.MinRoomPrice, price)
		p.MaxRoomPrice = max(p.MaxRoomPrice, price)
	}

	return p
}

// filterByPrice keeps hotels whose cheapest room lies within the bounds.
// Hotels without priced rooms are dropped as soon as any bound is set.
func filterByPrice(hotels []*hotel.Hotel, minPrice, maxPrice *float64) []*hotel.Hotel {
	if minPrice == nil && maxPrice == nil {
		return hotels
	}

	out := make([]*hotel.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if h.Pricing == nil {
			continue
		}
		if minPrice != nil && h.Pricing.MinRoomPrice < *minPrice {
			continue
		}
		if maxPrice != nil && h.Pricing.MinRoomPrice > *maxPrice {
			continue
		}
		out = append(out, h)
	}
	return out
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// sortHotels orders hotels in place. The sort is stable so ties keep the
// repository order.
func sortHotels(hotels []*hotel.Hotel, sortBy string) {
	byRatingDesc := func(a, b *hotel.Hotel) int {
		return cmp.Compare(orZero(b.Rating), orZero(a.Rating))
	}

	switch sortBy {
	case hotel.SortPriceLowToHigh:
		slices.SortStableFunc(hotels, func(a, b *hotel.Hotel) int {
			switch {
			case a.Price == nil && b.Price == nil:
				return 0
			case a.Price == nil:
				return 1
			case b.Price == nil:
				return -1
			}
			return cmp.Compare(*a.Price, *b.Price)
		})

	case hotel.SortPriceHighToLow:
		slices.SortStableFunc(hotels, func(a, b *hotel.Hotel) int {
			return cmp.Compare(orZero(b.Price), orZero(a.Price))
		})

	case hotel.SortHighestRating:
		slices.SortStableFunc(hotels, byRatingDesc)

	default:
		slices.SortStableFunc(hotels, func(a, b *hotel.Hotel) int {
			if a.IsFeatured != b.IsFeatured {
				if a.IsFeatured {
					return -1
				}
				return 1
			}
			return byRatingDesc(a, b)
		})
	}
}

// paginate slices one page out of hotels. total_pages is at least 1.
func paginate(hotels []*hotel.Hotel, page, limit int) ([]*hotel.Hotel, hotel.ListMeta) {
	total := len(hotels)
	meta := hotel.ListMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: max(1, (total+limit-1)/limit),
	}

	if page < 1 || limit < 1 || total == 0 || page-1 > (total-1)/limit {
		return []*hotel.Hotel{}, meta
	}
	start := (page - 1) * limit
	end := min(start+limit, total)

	return hotels[start:end], meta
}
