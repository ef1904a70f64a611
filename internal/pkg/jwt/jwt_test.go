package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "soultria-test-secret"

func TestGenerateAndParse(t *testing.T) {
	for _, userID := range []int64{1, 42, 9223372036854775807} {
		token, err := GenerateToken(userID, testSecret, 24)
		require.NoError(t, err)

		claims, err := ParseToken(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "soultria", claims.Issuer)
		assert.True(t, claims.ExpiresAt.After(time.Now().Add(23*time.Hour)))
	}
}

func TestParseToken_Invalid(t *testing.T) {
	token, err := GenerateToken(7, testSecret, 24)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", token, "another-secret"},
		{"garbage", "not-a-jwt", testSecret},
		{"empty", "", testSecret},
		{"three segments", "a.b.c", testSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ParseToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestParseToken_Expired(t *testing.T) {
	claims := Claims{
		UserID: 3,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	result, err := ParseToken(token, testSecret)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, result)
}

func TestParseToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{
		UserID: 3,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	result, err := ParseToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, result)
}
