package bootstrap

import (
	"log/slog"

	"car-rental/cmd/bootstrap/components"
	"car-rental/internal/infra/memstore"
	"car-rental/internal/infra/query"
	"car-rental/internal/pkg/config"
	"car-rental/internal/usecase/shared"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork opens the store selected by STORAGE_DRIVER. The memory store
// needs no database and loses its data on shutdown.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.UnitOfWork, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		logger.Info("using in-memory storage")
		return memstore.NewUoW(memstore.New()), nil
	}

	pool, err := NewDB(lc, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("using postgres storage", "host", cfg.DB.Host, "database", cfg.DB.DBName)
	return components.NewPostgresUoW(pool, query.New(), cfg), nil
}
