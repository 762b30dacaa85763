package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vaxscheduler/internal/model"
)

var secret = []byte("test-secret")

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := GenerateToken("carol", model.RoleCaregiver, secret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, "carol", claims.Username)
	require.Equal(t, model.RoleCaregiver, claims.Role)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := GenerateToken("carol", model.RoleCaregiver, secret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("other-secret"))
	require.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	token, err := GenerateToken("carol", model.RoleCaregiver, secret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, secret)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParse_RejectsNonHMAC(t *testing.T) {
	// unsigned token with the "none" method must not verify
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Username: "mallory",
		Role:     model.RoleCaregiver,
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(raw, secret)
	require.Error(t, err)
}

func TestParse_RejectsGarbageRole(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Username: "x",
		Role:     model.Role("admin"),
	})
	raw, err := token.SignedString(secret)
	require.NoError(t, err)

	_, err = ParseToken(raw, secret)
	require.ErrorIs(t, err, ErrInvalidToken)
}
