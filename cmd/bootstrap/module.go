package bootstrap

import (
	"sinistro-sync/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	CacheModule,
	components.PersistenceModule,
	components.RDStationModule,
	components.UseCaseModule,
	components.HandlerModule,
)
