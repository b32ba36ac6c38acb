package service

import (
	"context"

	"github.com/deppfellow/hotel-booking/internal/model/contact"
)

type contactStore interface {
	Create(ctx context.Context, c *contact.CreateContactPayload) (*contact.Contact, error)
}

type ContactService struct {
	contacts contactStore
}

func NewContactService(contacts contactStore) *ContactService {
	return &ContactService{contacts: contacts}
}

func (s *ContactService) Create(ctx context.Context, p *contact.CreateContactPayload) (*contact.ContactResult, error) {
	c, err := s.contacts.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	return &contact.ContactResult{Contact: c}, nil
}
