package bootstrap

import (
	"parkbuddy/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires the HTTP server process.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	CacheModule,
	TelemetryModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// NotifierProcessModule wires the read-only notifier process.
var NotifierProcessModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	NotifyModule,
	components.PersistenceModule,
	components.NotifierModule,
)
