//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"sinistro-sync/internal/domain/user"
	"sinistro-sync/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Issuer(t *testing.T) {
	actor := user.Actor{ID: uuid.New(), Role: user.RoleAdmin, Name: "Rita Admin"}
	portal := jwt.NewService("k", time.Hour, jwt.WithIssuer("portal"))

	t.Run("round trip keeps actor claims", func(t *testing.T) {
		tok, err := portal.GenerateToken(actor)
		require.NoError(t, err)

		claims, err := portal.ValidateToken(tok)
		require.NoError(t, err)
		assert.Equal(t, actor.ID, claims.UserID)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, "Rita Admin", claims.Name)
		assert.Equal(t, actor.ID.String(), claims.Subject)
		assert.Equal(t, "portal", claims.Issuer)
	})

	t.Run("other issuer is rejected", func(t *testing.T) {
		tok, err := jwt.NewService("k", time.Hour, jwt.WithIssuer("elsewhere")).GenerateToken(actor)
		require.NoError(t, err)

		_, err = portal.ValidateToken(tok)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("no issuer configured accepts any", func(t *testing.T) {
		tok, err := portal.GenerateToken(actor)
		require.NoError(t, err)

		_, err = jwt.NewService("k", time.Hour).ValidateToken(tok)
		assert.NoError(t, err)
	})
}

func TestService_RejectsOtherAlgorithms(t *testing.T) {
	svc := jwt.NewService("k", time.Hour)
	claims := jwt.Claims{
		UserID:           uuid.New(),
		Role:             "operator",
		RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour))},
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(tok)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestService_Expired(t *testing.T) {
	svc := jwt.NewService("k", -time.Minute)
	tok, err := svc.GenerateToken(user.Actor{ID: uuid.New(), Role: user.RoleViewer})
	require.NoError(t, err)

	_, err = svc.ValidateToken(tok)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}
