package usecase

import (
	"context"
	"log/slog"

	"car-rental/internal/domain/car"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

// CarLookup resolves the car a rent references.
type CarLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*car.Car, error)
}

type CarUseCase interface {
	CarLookup
	Create(ctx context.Context, c *car.Car) error
	Update(ctx context.Context, c *car.Car) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context) ([]*car.Car, error)
	FindByBrand(ctx context.Context, brand string) ([]*car.Car, error)
}

type CarManager struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewCarManager(uow shared.UnitOfWork, logger *slog.Logger) (*CarManager, error) {
	if uow == nil {
		return nil, errs.Configuration("car manager: unit of work is not set")
	}
	if logger == nil {
		return nil, errs.Configuration("car manager: logger is not set")
	}
	return &CarManager{uow: uow, logger: logger}, nil
}

// Create stores c and assigns the generated id to it.
func (m *CarManager) Create(ctx context.Context, c *car.Car) error {
	if c == nil {
		return errs.InvalidArgument("car is nil")
	}
	if c.IsPersisted() {
		return errs.InvalidArgument("car id is already set")
	}
	if err := c.Validate(); err != nil {
		return errs.InvalidEntityWrap(err, "invalid car")
	}

	var id uuid.UUID
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := m.checkRegistrationFree(ctx, tx, c); err != nil {
			return err
		}
		var err error
		id, err = tx.Cars().Create(ctx, c)
		return err
	})
	if err != nil {
		return storeError(m.logger, err, "create car")
	}

	c.ID = id
	m.logger.Info("car created", "car_id", id)
	return nil
}

func (m *CarManager) GetByID(ctx context.Context, id uuid.UUID) (*car.Car, error) {
	if id == uuid.Nil {
		return nil, errs.InvalidArgument("car id is not set")
	}

	var c *car.Car
	err := m.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		c, err = tx.Cars().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, storeError(m.logger, err, "get car "+id.String())
	}
	return c, nil
}

func (m *CarManager) Update(ctx context.Context, c *car.Car) error {
	if c == nil {
		return errs.InvalidArgument("car is nil")
	}
	if !c.IsPersisted() {
		return errs.InvalidArgument("car id is not set")
	}
	if err := c.Validate(); err != nil {
		return errs.InvalidEntityWrap(err, "invalid car")
	}

	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := m.checkRegistrationFree(ctx, tx, c); err != nil {
			return err
		}
		n, err := tx.Cars().Update(ctx, c)
		if err != nil {
			return err
		}
		return expectOneRow(n, "car", c.ID)
	})
	return storeError(m.logger, err, "update car")
}

func (m *CarManager) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.InvalidArgument("car id is not set")
	}

	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Cars().Delete(ctx, id)
		if err != nil {
			return err
		}
		return expectOneRow(n, "car", id)
	})
	return storeError(m.logger, err, "delete car")
}

func (m *CarManager) FindAll(ctx context.Context) ([]*car.Car, error) {
	var cars []*car.Car
	err := m.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		cars, err = tx.Cars().FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, storeError(m.logger, err, "list cars")
	}
	return cars, nil
}

func (m *CarManager) FindByBrand(ctx context.Context, brand string) ([]*car.Car, error) {
	var cars []*car.Car
	err := m.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		cars, err = tx.Cars().FindBy(ctx, car.FieldBrand, brand)
		return err
	})
	if err != nil {
		return nil, storeError(m.logger, err, "find cars by brand")
	}
	return cars, nil
}

// checkRegistrationFree rejects c when another car already carries its
// registration number. The unique index catches the race this check misses.
func (m *CarManager) checkRegistrationFree(ctx context.Context, tx shared.Tx, c *car.Car) error {
	same, err := tx.Cars().FindBy(ctx, car.FieldRegistrationNumber, c.RegistrationNumber)
	if err != nil {
		return err
	}
	for _, other := range same {
		if other.ID != c.ID {
			return errs.InvalidEntity("registration number %q is already used by car %s", c.RegistrationNumber, other.ID)
		}
	}
	return nil
}

// expectOneRow turns a row count of a keyed write into an error: zero rows
// means the id is stale, more than one means the key is not unique.
func expectOneRow(n int64, entity string, id uuid.UUID) error {
	switch {
	case n == 0:
		return errs.NotFound("%s %s does not exist", entity, id)
	case n > 1:
		return errs.Internal(nil, "%d %s rows matched id %s", n, entity, id)
	}
	return nil
}
