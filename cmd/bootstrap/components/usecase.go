package components

import (
	"parkbuddy/internal/domain/reservation"
	"parkbuddy/internal/pkg/clock"
	"parkbuddy/internal/pkg/config"
	"parkbuddy/internal/usecase"
	"parkbuddy/internal/usecase/commands"
	"parkbuddy/internal/usecase/queries"
	"parkbuddy/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseReadModule,
	usecaseStatsModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewBillingPolicy,
		commands.NewAuthCommands,
		commands.NewParkingUseCase,
		commands.NewLotUseCase,
	),
)

// usecaseReadModule is shared with the notifier process.
var usecaseReadModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReservationQueries,
		queries.NewReportQueries,
	),
)

var usecaseStatsModule = fx.Module("usecase/stats",
	fx.Provide(
		queries.NewLotQueries,
		NewStatsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBillingPolicy(cfg config.Config) (reservation.BillingPolicy, error) {
	return reservation.PolicyByName(cfg.Billing.Policy)
}

// NewStatsQueries puts the read-through cache in front of aggregation when
// one is configured.
func NewStatsQueries(
	uow shared.UnitOfWork,
	stats queries.StatsReadStore,
	lots queries.LotReadStore,
	clk clock.Clock,
	cache queries.StatsCache,
) queries.StatsQueries {
	inner := queries.NewStatsQueries(uow, stats, lots, clk)
	if cache == nil {
		return inner
	}
	return queries.NewCachedStatsQueries(inner, cache)
}
