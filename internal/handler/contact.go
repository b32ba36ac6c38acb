package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/hotel-booking/internal/model/contact"
	"github.com/deppfellow/hotel-booking/internal/server"
	"github.com/deppfellow/hotel-booking/internal/service"
)

type ContactHandler struct {
	Handler
	contactService *service.ContactService
}

func NewContactHandler(s *server.Server, contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		Handler:        NewHandler(s),
		contactService: contactService,
	}
}

func (h *ContactHandler) CreateContact(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *contact.CreateContactPayload) (*contact.ContactResult, error) {
			return h.contactService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
		"Contact submitted",
	)(c)
}
