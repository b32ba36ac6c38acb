package contact

import (
	"strings"
	"time"

	"github.com/deppfellow/hotel-booking/internal/validation"
)

type Contact struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateContactPayload struct {
	Name    string `json:"name" validate:"required,notblank,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,notblank,max=5000"`
}

func (p *CreateContactPayload) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Message = strings.TrimSpace(p.Message)
	return validation.Validate(p)
}

// ContactResult wraps the stored submission.
type ContactResult struct {
	Contact *Contact `json:"contact"`
}
