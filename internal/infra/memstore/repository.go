package memstore

import (
	"context"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/customer"
	"car-rental/internal/domain/rent"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	errDuplicateRegistration = errs.New("registration number already stored")
	errReferenced            = errs.New("row is referenced by a rent")
	errMissingReference      = errs.New("referenced row does not exist")
)

type carRepo struct {
	tx *memTx
}

func (r *carRepo) Create(_ context.Context, c *car.Car) (uuid.UUID, error) {
	id := uuid.New()
	err := r.tx.write(func() (func(), error) {
		if r.registrationTaken(c.RegistrationNumber, uuid.Nil) {
			return nil, infra.WrapRepoErr("failed to create car", errDuplicateRegistration, infra.KindDuplicateKey)
		}
		stored := *c
		stored.ID = id
		return r.tx.store.cars.put(id, stored), nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *carRepo) GetByID(_ context.Context, id uuid.UUID) (*car.Car, error) {
	var (
		c  car.Car
		ok bool
	)
	r.tx.read(func() { c, ok = r.tx.store.cars.get(id) })
	if !ok {
		return nil, notFound("car")
	}
	return &c, nil
}

func (r *carRepo) LockByID(ctx context.Context, id uuid.UUID) (*car.Car, error) {
	if err := r.tx.lockCar(ctx, id); err != nil {
		return nil, infra.WrapRepoErr("failed to lock car", err, infra.KindDBFailure)
	}
	return r.GetByID(ctx, id)
}

func (r *carRepo) Update(_ context.Context, c *car.Car) (int64, error) {
	var n int64
	err := r.tx.write(func() (func(), error) {
		if _, ok := r.tx.store.cars.get(c.ID); !ok {
			return nil, nil
		}
		if r.registrationTaken(c.RegistrationNumber, c.ID) {
			return nil, infra.WrapRepoErr("failed to update car", errDuplicateRegistration, infra.KindDuplicateKey)
		}
		n = 1
		return r.tx.store.cars.put(c.ID, *c), nil
	})
	return n, err
}

func (r *carRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := r.tx.write(func() (func(), error) {
		if r.tx.store.rents.exists(func(rec rent.Record) bool { return rec.CarID == id }) {
			return nil, infra.WrapRepoErr("failed to delete car", errReferenced, infra.KindForeignKeyViolated)
		}
		undo, ok := r.tx.store.cars.remove(id)
		if ok {
			n = 1
		}
		return undo, nil
	})
	return n, err
}

func (r *carRepo) FindAll(_ context.Context) ([]*car.Car, error) {
	return r.find(nil), nil
}

func (r *carRepo) FindBy(_ context.Context, field car.Field, value string) ([]*car.Car, error) {
	switch field {
	case car.FieldBrand:
		return r.find(func(c car.Car) bool { return c.Brand == value }), nil
	case car.FieldRegistrationNumber:
		return r.find(func(c car.Car) bool { return c.RegistrationNumber == value }), nil
	default:
		return nil, infra.WrapRepoErr("failed to list car", errs.New("unknown car field "+string(field)), infra.KindDBFailure)
	}
}

func (r *carRepo) find(match func(car.Car) bool) []*car.Car {
	var rows []car.Car
	r.tx.read(func() { rows = r.tx.store.cars.list(match) })

	result := make([]*car.Car, 0, len(rows))
	for i := range rows {
		result = append(result, &rows[i])
	}
	return result
}

// registrationTaken must run under the store's lock.
func (r *carRepo) registrationTaken(registration string, self uuid.UUID) bool {
	return r.tx.store.cars.exists(func(c car.Car) bool {
		return c.RegistrationNumber == registration && c.ID != self
	})
}

type customerRepo struct {
	tx *memTx
}

func (r *customerRepo) Create(_ context.Context, c *customer.Customer) (uuid.UUID, error) {
	id := uuid.New()
	err := r.tx.write(func() (func(), error) {
		stored := *c
		stored.ID = id
		return r.tx.store.customers.put(id, stored), nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *customerRepo) GetByID(_ context.Context, id uuid.UUID) (*customer.Customer, error) {
	var (
		c  customer.Customer
		ok bool
	)
	r.tx.read(func() { c, ok = r.tx.store.customers.get(id) })
	if !ok {
		return nil, notFound("customer")
	}
	return &c, nil
}

func (r *customerRepo) Update(_ context.Context, c *customer.Customer) (int64, error) {
	var n int64
	err := r.tx.write(func() (func(), error) {
		if _, ok := r.tx.store.customers.get(c.ID); !ok {
			return nil, nil
		}
		n = 1
		return r.tx.store.customers.put(c.ID, *c), nil
	})
	return n, err
}

func (r *customerRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := r.tx.write(func() (func(), error) {
		if r.tx.store.rents.exists(func(rec rent.Record) bool { return rec.CustomerID == id }) {
			return nil, infra.WrapRepoErr("failed to delete customer", errReferenced, infra.KindForeignKeyViolated)
		}
		undo, ok := r.tx.store.customers.remove(id)
		if ok {
			n = 1
		}
		return undo, nil
	})
	return n, err
}

func (r *customerRepo) FindAll(_ context.Context) ([]*customer.Customer, error) {
	return r.find(nil), nil
}

func (r *customerRepo) FindBy(_ context.Context, field customer.Field, value string) ([]*customer.Customer, error) {
	var match func(customer.Customer) bool
	switch field {
	case customer.FieldName:
		match = func(c customer.Customer) bool { return c.Name == value }
	case customer.FieldSurname:
		match = func(c customer.Customer) bool { return c.Surname == value }
	case customer.FieldPhoneNumber:
		match = func(c customer.Customer) bool { return c.PhoneNumber == value }
	default:
		return nil, infra.WrapRepoErr("failed to list customer", errs.New("unknown customer field "+string(field)), infra.KindDBFailure)
	}
	return r.find(match), nil
}

func (r *customerRepo) find(match func(customer.Customer) bool) []*customer.Customer {
	var rows []customer.Customer
	r.tx.read(func() { rows = r.tx.store.customers.list(match) })

	result := make([]*customer.Customer, 0, len(rows))
	for i := range rows {
		result = append(result, &rows[i])
	}
	return result
}

type rentRepo struct {
	tx *memTx
}

func (r *rentRepo) Create(_ context.Context, rec rent.Record) (uuid.UUID, error) {
	id := uuid.New()
	err := r.tx.write(func() (func(), error) {
		if err := r.checkReferences(rec); err != nil {
			return nil, err
		}
		rec.ID = id
		return r.tx.store.rents.put(id, rec), nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *rentRepo) GetByID(_ context.Context, id uuid.UUID) (rent.Record, error) {
	var (
		rec rent.Record
		ok  bool
	)
	r.tx.read(func() { rec, ok = r.tx.store.rents.get(id) })
	if !ok {
		return rent.Record{}, notFound("rent")
	}
	return rec, nil
}

func (r *rentRepo) Update(_ context.Context, rec rent.Record) (int64, error) {
	var n int64
	err := r.tx.write(func() (func(), error) {
		if _, ok := r.tx.store.rents.get(rec.ID); !ok {
			return nil, nil
		}
		if err := r.checkReferences(rec); err != nil {
			return nil, err
		}
		n = 1
		return r.tx.store.rents.put(rec.ID, rec), nil
	})
	return n, err
}

func (r *rentRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := r.tx.write(func() (func(), error) {
		undo, ok := r.tx.store.rents.remove(id)
		if ok {
			n = 1
		}
		return undo, nil
	})
	return n, err
}

func (r *rentRepo) FindAll(_ context.Context) ([]rent.Record, error) {
	return r.find(nil), nil
}

func (r *rentRepo) FindByCar(_ context.Context, carID uuid.UUID) ([]rent.Record, error) {
	return r.find(func(rec rent.Record) bool { return rec.CarID == carID }), nil
}

func (r *rentRepo) FindByCustomer(_ context.Context, customerID uuid.UUID) ([]rent.Record, error) {
	return r.find(func(rec rent.Record) bool { return rec.CustomerID == customerID }), nil
}

func (r *rentRepo) find(match func(rent.Record) bool) []rent.Record {
	var rows []rent.Record
	r.tx.read(func() { rows = r.tx.store.rents.list(match) })
	return rows
}

// checkReferences must run under the store's lock.
func (r *rentRepo) checkReferences(rec rent.Record) error {
	if _, ok := r.tx.store.cars.get(rec.CarID); !ok {
		return infra.WrapRepoErr("failed to store rent", errMissingReference, infra.KindForeignKeyViolated)
	}
	if _, ok := r.tx.store.customers.get(rec.CustomerID); !ok {
		return infra.WrapRepoErr("failed to store rent", errMissingReference, infra.KindForeignKeyViolated)
	}
	return nil
}
