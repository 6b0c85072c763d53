package components

import (
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/uow"
	"car-rental/internal/pkg/config"
	"car-rental/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PersistenceModule wires the PostgreSQL unit of work onto a pool provided
// elsewhere in the graph.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		query.New,
		NewPostgresUoW,
	),
)

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, q, cfg.Tx)
}
