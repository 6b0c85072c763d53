package repository

import (
	"context"

	"car-rental/internal/domain/car"
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/repository/converter"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type CarRepository struct {
	store entityStore[*car.Car, query.CarRow]
}

func NewCarRepository(queries TableQueries[query.CarRow], db query.DBTX) *CarRepository {
	return &CarRepository{
		store: newEntityStore(queries, db, "car", converter.CarFromRow),
	}
}

func (r *CarRepository) Create(ctx context.Context, c *car.Car) (uuid.UUID, error) {
	return r.store.create(ctx, converter.CarToRow(c))
}

func (r *CarRepository) GetByID(ctx context.Context, id uuid.UUID) (*car.Car, error) {
	return r.store.get(ctx, id)
}

func (r *CarRepository) LockByID(ctx context.Context, id uuid.UUID) (*car.Car, error) {
	return r.store.lock(ctx, id)
}

func (r *CarRepository) Update(ctx context.Context, c *car.Car) (int64, error) {
	return r.store.update(ctx, c.ID, converter.CarToRow(c))
}

func (r *CarRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.store.delete(ctx, id)
}

func (r *CarRepository) FindAll(ctx context.Context) ([]*car.Car, error) {
	return r.store.find(ctx, nil)
}

func (r *CarRepository) FindBy(ctx context.Context, field car.Field, value string) ([]*car.Car, error) {
	return r.store.find(ctx, goqu.Ex{string(field): value})
}
