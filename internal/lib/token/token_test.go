package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "a-very-long-test-secret"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueAndParse(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m, err := NewManager(testSecret, time.Hour)
	require.NoError(t, err)
	m.WithClock(fixedClock(now))

	raw, issued, err := m.Issue(42)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)

	claims, err := m.Parse(raw)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, issued.ID, claims.ID)
	assert.Equal(t, 30*time.Minute, claims.ExpiresIn(now.Add(30*time.Minute)))
	assert.Equal(t, time.Duration(0), claims.ExpiresIn(now.Add(2*time.Hour)))
}

func TestParse_Expired(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m, _ := NewManager(testSecret, time.Minute)
	m.WithClock(fixedClock(now))

	raw, _, err := m.Issue(1)
	require.NoError(t, err)

	m.WithClock(fixedClock(now.Add(2 * time.Minute)))
	_, err = m.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_WrongSecret(t *testing.T) {
	issuer, _ := NewManager(testSecret, time.Hour)
	verifier, _ := NewManager("another-long-test-secret", time.Hour)

	raw, _, err := issuer.Issue(1)
	require.NoError(t, err)

	_, err = verifier.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RejectsOtherAlgorithms(t *testing.T) {
	m, _ := NewManager(testSecret, time.Hour)

	claims := jwt.RegisteredClaims{
		Subject:   "1",
		ID:        "abc",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = m.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_BadSubject(t *testing.T) {
	m, _ := NewManager(testSecret, time.Hour)

	claims := jwt.RegisteredClaims{
		Subject:   "not-a-number",
		ID:        "abc",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = m.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewManager_EmptySecret(t *testing.T) {
	_, err := NewManager("", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}
