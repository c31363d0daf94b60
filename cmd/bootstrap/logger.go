package bootstrap

import (
	"log/slog"

	"sinistro-sync/internal/handler/middleware"
	"sinistro-sync/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogConfig,
		middleware.NewLogger,
		NewSlogLogger,
	),
)

func NewLogConfig(cfg config.Config) config.LogConfig {
	return cfg.Log
}

func NewSlogLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}
