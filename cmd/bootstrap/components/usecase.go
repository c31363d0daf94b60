package components

import (
	"context"
	"log/slog"

	"sinistro-sync/internal/domain/pipeline"
	"sinistro-sync/internal/domain/webhook"
	"sinistro-sync/internal/pkg/clock"
	"sinistro-sync/internal/pkg/config"
	"sinistro-sync/internal/usecase"
	"sinistro-sync/internal/usecase/commands"
	"sinistro-sync/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	sweeperModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewStageMapper,
	NewWebhookSettings,
	NewSyncSettings,
	func(cfg config.Config) *webhook.Authenticator {
		return webhook.NewAuthenticator(cfg.Webhook.Secret)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTimelineWriter,
		commands.NewReconciler,
		commands.NewLedger,
		commands.NewWebhookUseCase,
		commands.NewSyncUseCase,
		commands.NewStatusUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSinistroQueries,
		queries.NewWebhookEventQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var sweeperModule = fx.Module("usecase/sweeper",
	fx.Provide(NewStaleClaimSweeper),
	fx.Invoke(runSweeper),
)

// NewStageMapper fails startup on a malformed mapping file.
func NewStageMapper(cfg config.Config) (*pipeline.Mapper, error) {
	rules, err := pipeline.LoadRules(cfg.Mapping.File)
	if err != nil {
		return nil, err
	}
	return pipeline.NewMapper(rules)
}

func NewWebhookSettings(cfg config.Config) commands.WebhookSettings {
	return commands.WebhookSettings{
		Provider:        cfg.Webhook.Provider,
		ClaimTTL:        cfg.Webhook.ClaimTTL,
		SinistroIDField: cfg.RDStation.CustomFields.SinistroID,
	}
}

func NewSyncSettings(cfg config.Config) commands.SyncSettings {
	cf := cfg.RDStation.CustomFields
	return commands.SyncSettings{
		PipelineID: cfg.RDStation.PipelineID,
		CustomFields: commands.CustomFieldIDs{
			SinistroID: cf.SinistroID,
			Numero:     cf.Numero,
			Status:     cf.Status,
			Cliente:    cf.Cliente,
		},
	}
}

func NewStaleClaimSweeper(ledger *commands.Ledger, cfg config.Config, logger *slog.Logger) *commands.StaleClaimSweeper {
	return commands.NewStaleClaimSweeper(ledger, cfg.Webhook.SweepInterval, logger)
}

func runSweeper(lc fx.Lifecycle, sweeper *commands.StaleClaimSweeper) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				sweeper.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
