package shared

import (
	"context"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/customer"
	"car-rental/internal/domain/rent"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: write transaction, retried on serialization failures and deadlocks
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent multi-table reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to one unit of work. Locks taken through
// them are held until the unit of work ends.
type Tx interface {
	Cars() CarRepository
	Customers() CustomerRepository
	Rents() RentRepository
}

// Update and Delete report the number of rows they touched.
type CarRepository interface {
	Create(ctx context.Context, c *car.Car) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*car.Car, error)
	// LockByID loads the car and blocks other writers of the same car until
	// the unit of work ends.
	LockByID(ctx context.Context, id uuid.UUID) (*car.Car, error)
	Update(ctx context.Context, c *car.Car) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	FindAll(ctx context.Context) ([]*car.Car, error)
	FindBy(ctx context.Context, field car.Field, value string) ([]*car.Car, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *customer.Customer) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	Update(ctx context.Context, c *customer.Customer) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	FindAll(ctx context.Context) ([]*customer.Customer, error)
	FindBy(ctx context.Context, field customer.Field, value string) ([]*customer.Customer, error)
}

type RentRepository interface {
	Create(ctx context.Context, rec rent.Record) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (rent.Record, error)
	Update(ctx context.Context, rec rent.Record) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	FindAll(ctx context.Context) ([]rent.Record, error)
	FindByCar(ctx context.Context, carID uuid.UUID) ([]rent.Record, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]rent.Record, error)
}
