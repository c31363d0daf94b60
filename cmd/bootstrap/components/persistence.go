package components

import (
	"sinistro-sync/internal/infra/readstore"
	sqlc "sinistro-sync/internal/infra/sqlc/generated"
	"sinistro-sync/internal/infra/uow"
	"sinistro-sync/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Sinistro
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SinistroReadQueries)),
		),
		fx.Annotate(
			readstore.NewSinistroReadStore,
			fx.As(new(queries.SinistroReadStore)),
		),
		// WebhookEvent
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.WebhookEventReadQueries)),
		),
		fx.Annotate(
			readstore.NewWebhookEventReadStore,
			fx.As(new(queries.WebhookEventReadStore)),
		),
	),
)

// Write repositories are built per transaction by the UnitOfWork.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
