package user

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/hotel-booking/internal/errs"
)

func strPtr(s string) *string { return &s }

func TestSignUpPayload_Validate(t *testing.T) {
	ok := &SignUpPayload{FirstName: "Ada", LastName: "Lovelace", Email: " ADA@Example.com ", Password: "password1", ConfirmPassword: "password1"}
	require.NoError(t, ok.Validate())
	assert.Equal(t, "ada@example.com", ok.Email)

	mismatch := &SignUpPayload{FirstName: "Ada", LastName: "L", Email: "ada@example.com", Password: "password1", ConfirmPassword: "password2"}
	var verrs validator.ValidationErrors
	require.True(t, errors.As(mismatch.Validate(), &verrs))
	assert.Equal(t, "confirm_password", verrs[0].Field())

	short := &SignUpPayload{FirstName: "Ada", LastName: "L", Email: "ada@example.com", Password: "short", ConfirmPassword: "short"}
	assert.Error(t, short.Validate())
}

func TestChangePasswordPayload_Mismatch(t *testing.T) {
	p := &ChangePasswordPayload{CurrentPassword: "oldpass", NewPassword: "newpass1", ConfirmPassword: "newpass2"}

	var httpErr *errs.HTTPError
	require.True(t, errors.As(p.Validate(), &httpErr))
	assert.Equal(t, 400, httpErr.Status)
}

func TestUpdateProfilePayload_Validate(t *testing.T) {
	p := &UpdateProfilePayload{IDPayload: IDPayload{ID: "7"}, Email: strPtr(" New@Mail.com ")}
	require.NoError(t, p.Validate())
	assert.Equal(t, int64(7), p.UserID())
	assert.Equal(t, "new@mail.com", *p.Email)

	cols, vals := p.Update().Columns()
	assert.Equal(t, []string{"email"}, cols)
	assert.Equal(t, []any{"new@mail.com"}, vals)
}

func TestUpdateProfilePayload_Rejects(t *testing.T) {
	empty := &UpdateProfilePayload{IDPayload: IDPayload{ID: "7"}}
	var httpErr *errs.HTTPError
	require.True(t, errors.As(empty.Validate(), &httpErr))
	assert.Equal(t, "No fields provided for update", httpErr.Message)

	badID := &UpdateProfilePayload{IDPayload: IDPayload{ID: "seven"}, FirstName: strPtr("A")}
	require.True(t, errors.As(badID.Validate(), &httpErr))
	assert.Equal(t, "Invalid ID format", httpErr.Message)

	blank := &UpdateProfilePayload{IDPayload: IDPayload{ID: "7"}, FirstName: strPtr("  ")}
	assert.Error(t, blank.Validate())

	badEmail := &UpdateProfilePayload{IDPayload: IDPayload{ID: "7"}, Email: strPtr("nope")}
	assert.Error(t, badEmail.Validate())
}
