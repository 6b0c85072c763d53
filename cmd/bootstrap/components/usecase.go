package components

import (
	"log/slog"

	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/config"
	"car-rental/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseManagersModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
)

var usecaseManagersModule = fx.Module("usecase/managers",
	fx.Provide(
		fx.Annotate(
			usecase.NewCarManager,
			fx.As(new(usecase.CarUseCase)),
			fx.As(new(usecase.CarLookup)),
		),
		fx.Annotate(
			usecase.NewCustomerManager,
			fx.As(new(usecase.CustomerUseCase)),
			fx.As(new(usecase.CustomerLookup)),
		),
		fx.Annotate(
			usecase.NewRentManager,
			fx.As(new(usecase.RentUseCase)),
		),
	),
)

// NewClock reports dates in the configured log zone.
func NewClock(cfg config.Config, logger *slog.Logger) clock.Clock {
	loc, err := cfg.Log.Location()
	if err != nil {
		logger.Warn("unknown time zone, falling back to UTC", "zone", cfg.Log.TimeZone, "error", err)
	}
	return clock.NewRealClock(loc)
}
