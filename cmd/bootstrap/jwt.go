package bootstrap

import (
	"time"

	"sinistro-sync/internal/pkg/config"
	"sinistro-sync/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	// Validate() already rejected malformed durations at load time.
	d, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, err
	}
	return jwt.NewService(cfg.JWT.Secret, d, jwt.WithIssuer(cfg.JWT.Issuer)), nil
}
