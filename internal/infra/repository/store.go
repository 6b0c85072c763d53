package repository

import (
	"context"

	"car-rental/internal/infra"
	"car-rental/internal/infra/query"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

// TableQueries is the statement set every entity table offers.
// query.Table satisfies it.
type TableQueries[R any] interface {
	Insert(ctx context.Context, db query.DBTX, rec goqu.Record) (uuid.UUID, error)
	GetByID(ctx context.Context, db query.DBTX, id uuid.UUID) (R, error)
	LockByID(ctx context.Context, db query.DBTX, id uuid.UUID) (R, error)
	Update(ctx context.Context, db query.DBTX, id uuid.UUID, rec goqu.Record) (int64, error)
	Delete(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
	Find(ctx context.Context, db query.DBTX, where goqu.Ex) ([]R, error)
}

type row interface {
	Record() goqu.Record
}

// entityStore maps the rows of one table to E and wraps every failure in an
// infra.RepositoryError.
type entityStore[E any, R row] struct {
	queries  TableQueries[R]
	db       query.DBTX
	entity   string
	toDomain func(R) E
}

func newEntityStore[E any, R row](queries TableQueries[R], db query.DBTX, entity string, toDomain func(R) E) entityStore[E, R] {
	return entityStore[E, R]{
		queries:  queries,
		db:       db,
		entity:   entity,
		toDomain: toDomain,
	}
}

func (s entityStore[E, R]) create(ctx context.Context, r R) (uuid.UUID, error) {
	id, err := s.queries.Insert(ctx, s.db, r.Record())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create "+s.entity, err)
	}
	return id, nil
}

func (s entityStore[E, R]) get(ctx context.Context, id uuid.UUID) (E, error) {
	r, err := s.queries.GetByID(ctx, s.db, id)
	if err != nil {
		var zero E
		return zero, infra.WrapRepoErr(s.entity+" not found", err)
	}
	return s.toDomain(r), nil
}

func (s entityStore[E, R]) lock(ctx context.Context, id uuid.UUID) (E, error) {
	r, err := s.queries.LockByID(ctx, s.db, id)
	if err != nil {
		var zero E
		return zero, infra.WrapRepoErr("failed to lock "+s.entity, err)
	}
	return s.toDomain(r), nil
}

func (s entityStore[E, R]) update(ctx context.Context, id uuid.UUID, r R) (int64, error) {
	n, err := s.queries.Update(ctx, s.db, id, r.Record())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update "+s.entity, err)
	}
	return n, nil
}

func (s entityStore[E, R]) delete(ctx context.Context, id uuid.UUID) (int64, error) {
	n, err := s.queries.Delete(ctx, s.db, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete "+s.entity, err)
	}
	return n, nil
}

func (s entityStore[E, R]) find(ctx context.Context, where goqu.Ex) ([]E, error) {
	rows, err := s.queries.Find(ctx, s.db, where)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list "+s.entity, err)
	}

	result := make([]E, 0, len(rows))
	for _, r := range rows {
		result = append(result, s.toDomain(r))
	}
	return result, nil
}
