package usecase

import (
	"bytes"
	"context"
	"log/slog"
	"slices"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/customer"
	"car-rental/internal/domain/rent"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/pkg/patch"
	"car-rental/internal/usecase/shared"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

const maxLockAttempts = 3

type RentUseCase interface {
	Create(ctx context.Context, r *rent.Rent) error
	Update(ctx context.Context, r *rent.Rent) error
	Delete(ctx context.Context, r *rent.Rent) error
	GetByID(ctx context.Context, id uuid.UUID) (*rent.Rent, error)
	FindAll(ctx context.Context) ([]*rent.Rent, error)
	FindForCustomer(ctx context.Context, c *customer.Customer) ([]*rent.Rent, error)
	FindForCar(ctx context.Context, c *car.Car) ([]*rent.Rent, error)
	// ReturnCar closes an open rent. A nil date means today.
	ReturnCar(ctx context.Context, id uuid.UUID, date *civil.Date) (*rent.Rent, error)
}

// RentManager owns the rent ledger. Every write that touches a car runs in
// one unit of work holding that car's lock, so two rents of the same car can
// never be committed with overlapping intervals.
type RentManager struct {
	uow       shared.UnitOfWork
	cars      CarLookup
	customers CustomerLookup
	checker   *AvailabilityChecker
	clock     clock.Clock
	logger    *slog.Logger
}

func NewRentManager(
	uow shared.UnitOfWork,
	cars CarLookup,
	customers CustomerLookup,
	clk clock.Clock,
	logger *slog.Logger,
) (*RentManager, error) {
	switch {
	case uow == nil:
		return nil, errs.Configuration("rent manager: unit of work is not set")
	case cars == nil:
		return nil, errs.Configuration("rent manager: car lookup is not set")
	case customers == nil:
		return nil, errs.Configuration("rent manager: customer lookup is not set")
	case clk == nil:
		return nil, errs.Configuration("rent manager: clock is not set")
	case logger == nil:
		return nil, errs.Configuration("rent manager: logger is not set")
	}

	return &RentManager{
		uow:       uow,
		cars:      cars,
		customers: customers,
		checker:   NewAvailabilityChecker(),
		clock:     clk,
		logger:    logger,
	}, nil
}

// Create stores r after checking that its car is free for r's interval and
// assigns the generated id to r.
func (m *RentManager) Create(ctx context.Context, r *rent.Rent) error {
	if r == nil {
		return errs.InvalidArgument("rent is nil")
	}
	if r.IsPersisted() {
		return errs.InvalidArgument("rent id is already set")
	}
	if err := r.Validate(); err != nil {
		return errs.InvalidEntityWrap(err, "invalid rent")
	}

	rec := r.Record()
	var id uuid.UUID
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := m.lockCars(ctx, tx, rec.CarID); err != nil {
			return err
		}
		if err := m.checkCustomer(ctx, tx, rec.CustomerID); err != nil {
			return err
		}
		if err := m.checkAvailability(ctx, tx, rec); err != nil {
			return err
		}

		var err error
		id, err = tx.Rents().Create(ctx, rec)
		return err
	})
	if err != nil {
		return storeError(m.logger, err, "create rent")
	}

	r.ID = id
	m.logger.Info("rent created",
		"rent_id", id,
		"car_id", rec.CarID,
		"customer_id", rec.CustomerID,
		"interval", r.Interval().String())
	return nil
}

// Update overwrites every field of the stored rent with r. The availability
// check ignores r itself, and both the previous and the new car are locked
// when the rent moves between cars.
func (m *RentManager) Update(ctx context.Context, r *rent.Rent) error {
	if r == nil {
		return errs.InvalidArgument("rent is nil")
	}
	if !r.IsPersisted() {
		return errs.InvalidArgument("rent id is not set")
	}
	if err := r.Validate(); err != nil {
		return errs.InvalidEntityWrap(err, "invalid rent")
	}

	rec := r.Record()
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stored, err := tx.Rents().GetByID(ctx, rec.ID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.NotFound("rent %s does not exist", rec.ID)
			}
			return err
		}

		if err := m.lockCars(ctx, tx, stored.CarID, rec.CarID); err != nil {
			return err
		}
		if err := m.checkCustomer(ctx, tx, rec.CustomerID); err != nil {
			return err
		}
		if err := m.checkAvailability(ctx, tx, rec); err != nil {
			return err
		}

		n, err := tx.Rents().Update(ctx, rec)
		if err != nil {
			return err
		}
		return expectOneRow(n, "rent", rec.ID)
	})
	if err != nil {
		return storeError(m.logger, err, "update rent")
	}

	m.logger.Info("rent updated", "rent_id", rec.ID, "interval", r.Interval().String())
	return nil
}

func (m *RentManager) Delete(ctx context.Context, r *rent.Rent) error {
	if r == nil {
		return errs.InvalidArgument("rent is nil")
	}
	if !r.IsPersisted() {
		return errs.InvalidArgument("rent id is not set")
	}

	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Rents().Delete(ctx, r.ID)
		if err != nil {
			return err
		}
		return expectOneRow(n, "rent", r.ID)
	})
	if err != nil {
		return storeError(m.logger, err, "delete rent")
	}

	m.logger.Info("rent deleted", "rent_id", r.ID)
	return nil
}

func (m *RentManager) GetByID(ctx context.Context, id uuid.UUID) (*rent.Rent, error) {
	if id == uuid.Nil {
		return nil, errs.InvalidArgument("rent id is not set")
	}

	var rec rent.Record
	err := m.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		rec, err = tx.Rents().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, storeError(m.logger, err, "get rent "+id.String())
	}

	rents, err := m.resolve(ctx, []rent.Record{rec})
	if err != nil {
		return nil, storeError(m.logger, err, "get rent "+id.String())
	}
	return rents[0], nil
}

func (m *RentManager) FindAll(ctx context.Context) ([]*rent.Rent, error) {
	return m.find(ctx, "list rents", func(ctx context.Context, rents shared.RentRepository) ([]rent.Record, error) {
		return rents.FindAll(ctx)
	})
}

func (m *RentManager) FindForCustomer(ctx context.Context, c *customer.Customer) ([]*rent.Rent, error) {
	if c == nil || !c.IsPersisted() {
		return nil, errs.InvalidArgument("customer id is not set")
	}
	return m.find(ctx, "list rents of customer "+c.ID.String(), func(ctx context.Context, rents shared.RentRepository) ([]rent.Record, error) {
		return rents.FindByCustomer(ctx, c.ID)
	})
}

func (m *RentManager) FindForCar(ctx context.Context, c *car.Car) ([]*rent.Rent, error) {
	if c == nil || !c.IsPersisted() {
		return nil, errs.InvalidArgument("car id is not set")
	}
	return m.find(ctx, "list rents of car "+c.ID.String(), func(ctx context.Context, rents shared.RentRepository) ([]rent.Record, error) {
		return rents.FindByCar(ctx, c.ID)
	})
}

// ReturnCar reads, checks and closes the rent in one unit of work holding
// the car's lock, so a concurrent update or return of the same rent is never
// overwritten. Only the real return date is written.
func (m *RentManager) ReturnCar(ctx context.Context, id uuid.UUID, date *civil.Date) (*rent.Rent, error) {
	if id == uuid.Nil {
		return nil, errs.InvalidArgument("rent id is not set")
	}

	returned := patch.Coalesce(date, clock.Today(m.clock))
	var closed rent.Record
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, err := m.lockRent(ctx, tx, id)
		if err != nil {
			return err
		}
		if rec.RealReturnDate != nil {
			return errs.InvalidEntity("rent %s was already returned on %s", id, rec.RealReturnDate)
		}

		closed, err = rec.Close(returned)
		if err != nil {
			return errs.InvalidEntityWrap(err, "invalid rent")
		}
		if err := m.checkAvailability(ctx, tx, closed); err != nil {
			return err
		}

		n, err := tx.Rents().Update(ctx, closed)
		if err != nil {
			return err
		}
		return expectOneRow(n, "rent", id)
	})
	if err != nil {
		return nil, storeError(m.logger, err, "return car of rent "+id.String())
	}

	m.logger.Info("car returned", "rent_id", id, "car_id", closed.CarID, "date", returned.String())

	rents, err := m.resolve(ctx, []rent.Record{closed})
	if err != nil {
		return nil, storeError(m.logger, err, "return car of rent "+id.String())
	}
	return rents[0], nil
}

// lockRent locks the car of rent id and reads the rent again under that lock.
// A rent moved to another car in between is followed to its new car.
func (m *RentManager) lockRent(ctx context.Context, tx shared.Tx, id uuid.UUID) (rent.Record, error) {
	rec, err := tx.Rents().GetByID(ctx, id)
	for attempt := 0; err == nil && attempt < maxLockAttempts; attempt++ {
		if err := m.lockCars(ctx, tx, rec.CarID); err != nil {
			return rent.Record{}, err
		}

		var locked rent.Record
		locked, err = tx.Rents().GetByID(ctx, id)
		if err == nil && locked.CarID == rec.CarID {
			return locked, nil
		}
		rec = locked
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return rent.Record{}, errs.NotFound("rent %s does not exist", id)
		}
		return rent.Record{}, err
	}
	return rent.Record{}, errs.Internal(nil, "rent %s kept moving between cars while being locked", id)
}

func (m *RentManager) find(
	ctx context.Context,
	op string,
	load func(ctx context.Context, rents shared.RentRepository) ([]rent.Record, error),
) ([]*rent.Rent, error) {
	var records []rent.Record
	err := m.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		records, err = load(ctx, tx.Rents())
		return err
	})
	if err != nil {
		return nil, storeError(m.logger, err, op)
	}

	rents, err := m.resolve(ctx, records)
	if err != nil {
		return nil, storeError(m.logger, err, op)
	}
	return rents, nil
}

// resolve loads the car and customer of every record. A reference that
// cannot be found means the ledger is corrupted.
func (m *RentManager) resolve(ctx context.Context, records []rent.Record) ([]*rent.Rent, error) {
	cars := make(map[uuid.UUID]*car.Car)
	customers := make(map[uuid.UUID]*customer.Customer)

	result := make([]*rent.Rent, 0, len(records))
	for _, rec := range records {
		c, ok := cars[rec.CarID]
		if !ok {
			var err error
			if c, err = m.cars.GetByID(ctx, rec.CarID); err != nil {
				return nil, danglingReference(err, rec.ID, "car", rec.CarID)
			}
			cars[rec.CarID] = c
		}

		cust, ok := customers[rec.CustomerID]
		if !ok {
			var err error
			if cust, err = m.customers.GetByID(ctx, rec.CustomerID); err != nil {
				return nil, danglingReference(err, rec.ID, "customer", rec.CustomerID)
			}
			customers[rec.CustomerID] = cust
		}

		carCopy, custCopy := *c, *cust
		result = append(result, rec.Resolve(&custCopy, &carCopy))
	}
	return result, nil
}

func danglingReference(err error, rentID uuid.UUID, entity string, id uuid.UUID) error {
	if errs.IsKind(err, errs.KindNotFound) {
		return errs.Internal(err, "rent %s references missing %s %s", rentID, entity, id)
	}
	return err
}

// lockCars locks each distinct car in id order so that two updates moving
// rents between the same cars cannot deadlock.
func (m *RentManager) lockCars(ctx context.Context, tx shared.Tx, ids ...uuid.UUID) error {
	ids = slices.Clone(ids)
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	ids = slices.Compact(ids)

	for _, id := range ids {
		if _, err := tx.Cars().LockByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.InvalidEntity("car %s does not exist", id)
			}
			return err
		}
	}
	return nil
}

func (m *RentManager) checkCustomer(ctx context.Context, tx shared.Tx, id uuid.UUID) error {
	if _, err := tx.Customers().GetByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.InvalidEntity("customer %s does not exist", id)
		}
		return err
	}
	return nil
}

func (m *RentManager) checkAvailability(ctx context.Context, tx shared.Tx, rec rent.Record) error {
	candidate := rec.Booking()
	conflict, found, err := m.checker.ConflictingRent(ctx, tx, rec.CarID, candidate.Interval, rec.ID)
	if err != nil {
		return err
	}
	if found {
		return errs.InvalidEntity("car %s is already rented in %s by rent %s", rec.CarID, candidate.Interval, conflict)
	}
	return nil
}
