package repository

import (
	"context"

	"car-rental/internal/domain/customer"
	"car-rental/internal/infra/query"
	"car-rental/internal/infra/repository/converter"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type CustomerRepository struct {
	store entityStore[*customer.Customer, query.CustomerRow]
}

func NewCustomerRepository(queries TableQueries[query.CustomerRow], db query.DBTX) *CustomerRepository {
	return &CustomerRepository{
		store: newEntityStore(queries, db, "customer", converter.CustomerFromRow),
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) (uuid.UUID, error) {
	return r.store.create(ctx, converter.CustomerToRow(c))
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	return r.store.get(ctx, id)
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) (int64, error) {
	return r.store.update(ctx, c.ID, converter.CustomerToRow(c))
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.store.delete(ctx, id)
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	return r.store.find(ctx, nil)
}

func (r *CustomerRepository) FindBy(ctx context.Context, field customer.Field, value string) ([]*customer.Customer, error) {
	return r.store.find(ctx, goqu.Ex{string(field): value})
}
