package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/hotel-booking/internal/middleware"
	"github.com/deppfellow/hotel-booking/internal/model"
	"github.com/deppfellow/hotel-booking/internal/model/favourite"
	"github.com/deppfellow/hotel-booking/internal/server"
	"github.com/deppfellow/hotel-booking/internal/service"
)

type FavouriteHandler struct {
	Handler
	favouriteService *service.FavouriteService
}

func NewFavouriteHandler(s *server.Server, favouriteService *service.FavouriteService) *FavouriteHandler {
	return &FavouriteHandler{
		Handler:          NewHandler(s),
		favouriteService: favouriteService,
	}
}

func (h *FavouriteHandler) AddFavourite(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *favourite.AddFavouritePayload) (echo.Map, error) {
			fav, err := h.favouriteService.Add(c.Request().Context(), middleware.GetUserID(c), payload.HotelID)
			if err != nil {
				return nil, err
			}
			return echo.Map{"favourite": fav}, nil
		},
		http.StatusCreated,
		"Added to favourites",
	)(c)
}

func (h *FavouriteHandler) ListFavourites(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, _ *model.Empty) (echo.Map, error) {
			favs, err := h.favouriteService.List(c.Request().Context(), middleware.GetUserID(c))
			if err != nil {
				return nil, err
			}
			return echo.Map{"favourites": favs}, nil
		},
		http.StatusOK,
		"Favourites",
	)(c)
}

func (h *FavouriteHandler) RemoveFavourite(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *favourite.RemoveFavouritePayload) (echo.Map, error) {
			return messageOnly(h.favouriteService.Remove(c.Request().Context(), middleware.GetUserID(c), payload.HotelID))
		},
		http.StatusOK,
		"Removed from favourites",
	)(c)
}
