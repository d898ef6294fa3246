package auth

import (
	"testing"

	"ciftlik-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	secret := "test-secret-for-tokens"
	user := &models.User{
		ID:    42,
		Email: "sahip@ciftlik.test",
		Role:  models.RoleAdmin,
	}

	tokenStr, err := GenerateToken(secret, user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(*JWTCustomClaims)
	require.True(t, ok)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "sahip@ciftlik.test", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestGenerateTokenWrongSecretRejected(t *testing.T) {
	user := &models.User{ID: 1, Email: "isci@ciftlik.test", Role: models.RoleWorker}

	tokenStr, err := GenerateToken("dogru-anahtar", user)
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("yanlis-anahtar"), nil
	})
	assert.Error(t, err)
}
