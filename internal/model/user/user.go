package user

import "time"

// User is a registered account. PasswordHash never leaves the service layer.
type User struct {
	ID           int64     `json:"id" db:"id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Gender       *string   `json:"gender" db:"gender"`
	DateOfBirth  *string   `json:"date_of_birth" db:"date_of_birth"`
	State        *string   `json:"state" db:"state"`
	Nationality  *string   `json:"nationality" db:"nationality"`
	ProfileImage *string   `json:"profile_image" db:"profile_image"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ProfileUpdate is the set of columns a profile update may change. Nil
// fields are left untouched.
type ProfileUpdate struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Gender       *string
	DateOfBirth  *string
	State        *string
	Nationality  *string
	ProfileImage *string
}

// Columns returns the column/value pairs that are set, in a stable order.
func (u ProfileUpdate) Columns() ([]string, []any) {
	var (
		cols []string
		vals []any
	)

	add := func(col string, v *string) {
		if v != nil {
			cols = append(cols, col)
			vals = append(vals, *v)
		}
	}

	add("first_name", u.FirstName)
	add("last_name", u.LastName)
	add("email", u.Email)
	add("gender", u.Gender)
	add("date_of_birth", u.DateOfBirth)
	add("state", u.State)
	add("nationality", u.Nationality)
	add("profile_image", u.ProfileImage)

	return cols, vals
}

// IsEmpty reports whether no field is set.
func (u ProfileUpdate) IsEmpty() bool {
	cols, _ := u.Columns()
	return len(cols) == 0
}
