//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"sinistro-sync/internal/domain/user"
	"sinistro-sync/internal/pkg/config"
	"sinistro-sync/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, role user.Role) string {
	t.Helper()
	return h.GenerateTokenFor(t, user.Actor{ID: uuid.New(), Role: role, Name: "Operador Teste"})
}

func (h *JWTHelper) GenerateTokenFor(t *testing.T, actor user.Actor) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration, jwt.WithIssuer(h.cfg.Issuer)).GenerateToken(actor)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, -time.Minute, jwt.WithIssuer(h.cfg.Issuer))
	token, err := service.GenerateToken(user.Actor{ID: uuid.New(), Role: role})
	require.NoError(t, err)
	return token
}
