package bootstrap

import (
	"golden-key-funnel/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StorageModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)
