package repository

import (
	"context"

	"github.com/deppfellow/hotel-booking/internal/model/contact"
)

type ContactRepository struct {
	db DBTX
}

func NewContactRepository(db DBTX) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *contact.CreateContactPayload) (*contact.Contact, error) {
	rows, err := r.db.Query(ctx, `
		INSERT INTO contacts (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING *`, c.Name, c.Email, c.Message)
	return collectOne[contact.Contact](rows, err, "contacts")
}
