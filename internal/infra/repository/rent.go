package repository

import (
	"context"

	"car-rental/internal/domain/rent"
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/repository/converter"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type RentRepository struct {
	store entityStore[rent.Record, query.RentRow]
}

func NewRentRepository(queries TableQueries[query.RentRow], db query.DBTX) *RentRepository {
	return &RentRepository{
		store: newEntityStore(queries, db, "rent", converter.RentFromRow),
	}
}

func (r *RentRepository) Create(ctx context.Context, rec rent.Record) (uuid.UUID, error) {
	return r.store.create(ctx, converter.RentToRow(rec))
}

func (r *RentRepository) GetByID(ctx context.Context, id uuid.UUID) (rent.Record, error) {
	return r.store.get(ctx, id)
}

func (r *RentRepository) Update(ctx context.Context, rec rent.Record) (int64, error) {
	return r.store.update(ctx, rec.ID, converter.RentToRow(rec))
}

func (r *RentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.store.delete(ctx, id)
}

func (r *RentRepository) FindAll(ctx context.Context) ([]rent.Record, error) {
	return r.store.find(ctx, nil)
}

// FindByCar returns every rent of the car ordered by beginning date; the
// availability check reads its bookings from here.
func (r *RentRepository) FindByCar(ctx context.Context, carID uuid.UUID) ([]rent.Record, error) {
	return r.store.find(ctx, goqu.Ex{query.ColCarID: carID})
}

func (r *RentRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]rent.Record, error) {
	return r.store.find(ctx, goqu.Ex{query.ColCustomerID: customerID})
}
