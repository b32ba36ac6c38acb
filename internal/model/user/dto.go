package user

import (
	"strings"

	"github.com/deppfellow/hotel-booking/internal/errs"
	"github.com/deppfellow/hotel-booking/internal/validation"
)

// ------------------------------------------------------------
// Auth

type SignUpPayload struct {
	FirstName       string `json:"first_name" validate:"required,notblank,max=100"`
	LastName        string `json:"last_name" validate:"required,notblank,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=120"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

func (p *SignUpPayload) Validate() error {
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	return validation.Validate(p)
}

type SignInPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=120"`
}

func (p *SignInPayload) Validate() error {
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	return validation.Validate(p)
}

type ForgotPasswordPayload struct {
	Email string `json:"email" validate:"required,email"`
}

func (p *ForgotPasswordPayload) Validate() error {
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	return validation.Validate(p)
}

type ResetPasswordPayload struct {
	Email       string `json:"email" validate:"required,email"`
	Token       string `json:"token" validate:"required,notblank"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=120"`
}

func (p *ResetPasswordPayload) Validate() error {
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	return validation.Validate(p)
}

type ChangePasswordPayload struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=120"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

func (p *ChangePasswordPayload) Validate() error {
	if err := validation.Validate(p); err != nil {
		return err
	}
	if p.NewPassword != p.ConfirmPassword {
		return errs.NewBadRequestError("New password and confirm password don't match", true, nil, nil, nil)
	}
	return nil
}

// SignInResult is returned by a successful sign in.
type SignInResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// MessageResult carries a human message as the response data.
type MessageResult struct {
	Message string `json:"message"`
}

// ------------------------------------------------------------
// Users and profiles

// IDPayload addresses a user by the :id path parameter.
type IDPayload struct {
	ID string `param:"id" json:"-" validate:"required"`
	id int64
}

func (p *IDPayload) Validate() error {
	id, err := validation.ParseID(p.ID)
	if err != nil {
		return err
	}
	p.id = id
	return nil
}

// UserID is the parsed path id, valid after Validate.
func (p *IDPayload) UserID() int64 {
	return p.id
}

// UpdateProfilePayload is shared by PUT /user/:id and PUT /update-profile/:id.
type UpdateProfilePayload struct {
	IDPayload
	FirstName    *string `json:"first_name" validate:"omitnil,notblank,max=100"`
	LastName     *string `json:"last_name" validate:"omitnil,notblank,max=100"`
	Email        *string `json:"email" validate:"omitnil,email"`
	Gender       *string `json:"gender" validate:"omitnil,max=32"`
	DateOfBirth  *string `json:"date_of_birth" validate:"omitnil,datetime=2006-01-02"`
	State        *string `json:"state" validate:"omitnil,max=100"`
	Nationality  *string `json:"nationality" validate:"omitnil,max=100"`
	ProfileImage *string `json:"profile_image" validate:"omitnil,notblank"`
}

func (p *UpdateProfilePayload) Validate() error {
	if err := p.IDPayload.Validate(); err != nil {
		return err
	}
	if err := validation.Validate(p); err != nil {
		return err
	}
	if p.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*p.Email))
		p.Email = &email
	}
	if p.Update().IsEmpty() {
		return errs.NewBadRequestError("No fields provided for update", true, nil, nil, nil)
	}
	return nil
}

// Update converts the payload into a ProfileUpdate.
func (p *UpdateProfilePayload) Update() ProfileUpdate {
	return ProfileUpdate{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		Gender:       p.Gender,
		DateOfBirth:  p.DateOfBirth,
		State:        p.State,
		Nationality:  p.Nationality,
		ProfileImage: p.ProfileImage,
	}
}
