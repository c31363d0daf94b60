package components

import (
	"log/slog"

	"sinistro-sync/internal/infra/cache"
	"sinistro-sync/internal/infra/rdstation"
	"sinistro-sync/internal/pkg/config"
	"sinistro-sync/internal/usecase/shared"

	"go.uber.org/fx"
)

var RDStationModule = fx.Module("rdstation",
	fx.Provide(
		NewRDClient,
		NewCRMClient,
		NewPipelineCatalog,
	),
)

func NewRDClient(cfg config.Config, logger *slog.Logger) *rdstation.Client {
	return rdstation.NewClient(cfg.RDStation, logger)
}

func NewCRMClient(c *rdstation.Client) shared.CRMClient {
	return c
}

func NewPipelineCatalog(client *rdstation.Client, store cache.Store, cfg config.Config, logger *slog.Logger) shared.PipelineCatalog {
	return rdstation.NewCatalog(client, store, cfg.RDStation.PipelineTTL, logger)
}
