package usecase

import (
	"context"
	"log/slog"

	"car-rental/internal/domain/customer"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

// CustomerLookup resolves the customer a rent references.
type CustomerLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
}

type CustomerUseCase interface {
	CustomerLookup
	Create(ctx context.Context, c *customer.Customer) error
	Update(ctx context.Context, c *customer.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context) ([]*customer.Customer, error)
	FindByName(ctx context.Context, name string) ([]*customer.Customer, error)
	FindBySurname(ctx context.Context, surname string) ([]*customer.Customer, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) ([]*customer.Customer, error)
}

type CustomerManager struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewCustomerManager(uow shared.UnitOfWork, logger *slog.Logger) (*CustomerManager, error) {
	if uow == nil {
		return nil, errs.Configuration("customer manager: unit of work is not set")
	}
	if logger == nil {
		return nil, errs.Configuration("customer manager: logger is not set")
	}
	return &CustomerManager{uow: uow, logger: logger}, nil
}

func (m *CustomerManager) Create(ctx context.Context, c *customer.Customer) error {
	if c == nil {
		return errs.InvalidArgument("customer is nil")
	}
	if c.IsPersisted() {
		return errs.InvalidArgument("customer id is already set")
	}
	if err := c.Validate(); err != nil {
		return errs.InvalidEntityWrap(err, "invalid customer")
	}

	var id uuid.UUID
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Customers().Create(ctx, c)
		return err
	})
	if err != nil {
		return storeError(m.logger, err, "create customer")
	}

	c.ID = id
	m.logger.Info("customer created", "customer_id", id)
	return nil
}

func (m *CustomerManager) GetByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	if id == uuid.Nil {
		return nil, errs.InvalidArgument("customer id is not set")
	}

	var c *customer.Customer
	err := m.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		c, err = tx.Customers().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, storeError(m.logger, err, "get customer "+id.String())
	}
	return c, nil
}

func (m *CustomerManager) Update(ctx context.Context, c *customer.Customer) error {
	if c == nil {
		return errs.InvalidArgument("customer is nil")
	}
	if !c.IsPersisted() {
		return errs.InvalidArgument("customer id is not set")
	}
	if err := c.Validate(); err != nil {
		return errs.InvalidEntityWrap(err, "invalid customer")
	}

	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Customers().Update(ctx, c)
		if err != nil {
			return err
		}
		return expectOneRow(n, "customer", c.ID)
	})
	return storeError(m.logger, err, "update customer")
}

func (m *CustomerManager) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return errs.InvalidArgument("customer id is not set")
	}

	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Customers().Delete(ctx, id)
		if err != nil {
			return err
		}
		return expectOneRow(n, "customer", id)
	})
	return storeError(m.logger, err, "delete customer")
}

func (m *CustomerManager) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	var customers []*customer.Customer
	err := m.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		customers, err = tx.Customers().FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, storeError(m.logger, err, "list customers")
	}
	return customers, nil
}

func (m *CustomerManager) FindByName(ctx context.Context, name string) ([]*customer.Customer, error) {
	return m.findBy(ctx, customer.FieldName, name)
}

func (m *CustomerManager) FindBySurname(ctx context.Context, surname string) ([]*customer.Customer, error) {
	return m.findBy(ctx, customer.FieldSurname, surname)
}

func (m *CustomerManager) FindByPhoneNumber(ctx context.Context, phoneNumber string) ([]*customer.Customer, error) {
	return m.findBy(ctx, customer.FieldPhoneNumber, phoneNumber)
}

// findBy matches value exactly against field.
func (m *CustomerManager) findBy(ctx context.Context, field customer.Field, value string) ([]*customer.Customer, error) {
	var customers []*customer.Customer
	err := m.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		customers, err = tx.Customers().FindBy(ctx, field, value)
		return err
	})
	if err != nil {
		return nil, storeError(m.logger, err, "find customers by "+string(field))
	}
	return customers, nil
}
