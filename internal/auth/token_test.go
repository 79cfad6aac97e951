package auth

import (
	"strings"
	"testing"
	"time"

	"hrm-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSigningKey = "0123456789abcdef0123456789abcdef"

func TestTokenRoundtrip(t *testing.T) {
	m := NewTokenManager(testSigningKey, time.Hour)
	user := &models.User{ID: 42, Email: "test@email.com", Role: models.RoleEmployee}

	token, err := m.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "test@email.com", claims.Email)
	assert.Equal(t, models.RoleEmployee, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenRejectsGarbage(t *testing.T) {
	m := NewTokenManager(testSigningKey, time.Hour)

	_, err := m.Verify("doidohiiod")
	assert.Error(t, err)

	_, err = m.Verify("")
	assert.Error(t, err)
}

func TestTokenRejectsForeignSignature(t *testing.T) {
	issuer := NewTokenManager(strings.Repeat("x", 32), time.Hour)
	verifier := NewTokenManager(testSigningKey, time.Hour)

	token, err := issuer.Issue(&models.User{ID: 1, Email: "a@b.co", Role: models.RoleEmployee})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestTokenRejectsTampering(t *testing.T) {
	m := NewTokenManager(testSigningKey, time.Hour)

	token, err := m.Issue(&models.User{ID: 1, Email: "a@b.co", Role: models.RoleEmployee})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	parts[1] = "eyJ1c2VyX2lkIjo5OTl9" + parts[1] // splice a different payload in front

	_, err = m.Verify(strings.Join(parts, "."))
	assert.Error(t, err)
}

// A token claiming a non-HMAC algorithm must be rejected even when its
// claims are well-formed; the key func pins the signing method.
func TestTokenRejectsWrongSigningMethod(t *testing.T) {
	m := NewTokenManager(testSigningKey, time.Hour)

	claims := &Claims{UserID: 1, Email: "a@b.co", Role: models.RoleEmployee}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestTokenExpires(t *testing.T) {
	m := NewTokenManager(testSigningKey, -time.Minute)

	token, err := m.Issue(&models.User{ID: 1, Email: "a@b.co", Role: models.RoleEmployee})
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}
