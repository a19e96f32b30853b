package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
)

const testSecret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(sub, role string) Claims {
	return Claims{
		Username: "reader",
		Email:    "reader@example.com",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestNewVerifier_RequiresSecret(t *testing.T) {
	_, err := NewVerifier("")
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	v, err := NewVerifier(testSecret)
	require.NoError(t, err)

	id, err := v.Verify(sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("user-1", "admin")))
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.UserID)
	assert.Equal(t, "reader", id.Username)
	assert.True(t, id.IsAdmin())

	id, err = v.Verify(sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("user-2", "superuser")))
	require.NoError(t, err)
	assert.Equal(t, entity.UserRoleUser, id.Role)
}

func TestVerify_Rejects(t *testing.T) {
	v, err := NewVerifier(testSecret)
	require.NoError(t, err)

	expired := validClaims("user-1", "user")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExpiry := validClaims("user-1", "user")
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", sign(t, jwt.SigningMethodHS256, []byte("other"), validClaims("user-1", "user"))},
		{"wrong algorithm", sign(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims("user-1", "user"))},
		{"expired", sign(t, jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{"no expiry", sign(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry)},
		{"no subject", sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("", "user"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
