//go:build unit

package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/customer"
	"car-rental/internal/domain/rent"
	"car-rental/internal/infra/memstore"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/errs"
	"car-rental/tests/common/builder"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type RentManagerTestSuite struct {
	suite.Suite
	ctx       context.Context
	clock     *clock.MockClock
	cars      *CarManager
	customers *CustomerManager
	manager   *RentManager
}

func (s *RentManagerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2016, 4, 2, 10, 0, 0, 0, time.UTC))
	uow := memstore.NewUoW(memstore.New())
	logger := discardLogger()

	var err error
	s.cars, err = NewCarManager(uow, logger)
	s.Require().NoError(err)
	s.customers, err = NewCustomerManager(uow, logger)
	s.Require().NoError(err)
	s.manager, err = NewRentManager(uow, s.cars, s.customers, s.clock, logger)
	s.Require().NoError(err)
}

func (s *RentManagerTestSuite) storedCar(registration string) *car.Car {
	c := builder.NewCarBuilder().With(func(b *builder.CarBuilder) {
		b.RegistrationNumber = registration
	}).BuildDomain()
	s.Require().NoError(s.cars.Create(s.ctx, c))
	return c
}

func (s *RentManagerTestSuite) storedCustomer() *customer.Customer {
	c := builder.NewCustomerBuilder().BuildDomain()
	s.Require().NoError(s.customers.Create(s.ctx, c))
	return c
}

func (s *RentManagerTestSuite) storedRent(c *car.Car, cust *customer.Customer, begin civil.Date, end *civil.Date) *rent.Rent {
	r := builder.NewRentBuilder().ForCar(c).ForCustomer(cust).Between(begin, end).BuildDomain()
	s.Require().NoError(s.manager.Create(s.ctx, r))
	return r
}

func (s *RentManagerTestSuite) assertKind(err error, kind errs.Kind) {
	s.Require().Error(err)
	s.Equal(kind, errs.KindOf(err), err.Error())
}

func (s *RentManagerTestSuite) TestCreate_RoundTrip() {
	r := builder.NewRentBuilder().
		ForCar(s.storedCar("1B2 3456")).
		ForCustomer(s.storedCustomer()).
		With(func(b *builder.RentBuilder) {
			b.PricePerDay = 1200
			b.ExpectedReturnDate = builder.DatePtr(2016, 3, 29)
		}).
		BuildDomain()

	s.Require().NoError(s.manager.Create(s.ctx, r))
	s.NotEqual(uuid.Nil, r.ID)

	got, err := s.manager.GetByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(r, got)
}

func (s *RentManagerTestSuite) TestFindAll_EmptyThenN() {
	rents, err := s.manager.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(rents)

	cust := s.storedCustomer()
	for i, reg := range []string{"1A1 0001", "1A1 0002", "1A1 0003"} {
		s.storedRent(s.storedCar(reg), cust, builder.Date(2016, 1, 1+i), nil)
	}

	rents, err = s.manager.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Len(rents, 3)
}

func (s *RentManagerTestSuite) TestCreate_CallerErrors() {
	s.assertKind(s.manager.Create(s.ctx, nil), errs.KindInvalidArgument)

	r := builder.NewRentBuilder().With(func(b *builder.RentBuilder) { b.ID = uuid.New() }).BuildDomain()
	s.assertKind(s.manager.Create(s.ctx, r), errs.KindInvalidArgument)
}

func (s *RentManagerTestSuite) TestCreate_InvalidEntity() {
	stored := s.storedCar("1B2 3456")
	cust := s.storedCustomer()

	tests := []struct {
		name   string
		mutate func(b *builder.RentBuilder)
	}{
		{"missing car", func(b *builder.RentBuilder) { b.Car = nil }},
		{"car without id", func(b *builder.RentBuilder) { b.Car = builder.NewCarBuilder().BuildDomain() }},
		{"missing customer", func(b *builder.RentBuilder) { b.Customer = nil }},
		{"customer without id", func(b *builder.RentBuilder) { b.Customer = builder.NewCustomerBuilder().BuildDomain() }},
		{"zero price", func(b *builder.RentBuilder) { b.PricePerDay = 0 }},
		{"negative price", func(b *builder.RentBuilder) { b.PricePerDay = -1 }},
		{"missing beginning date", func(b *builder.RentBuilder) { b.BeginningDate = civil.Date{} }},
		{"expected return before beginning", func(b *builder.RentBuilder) { b.ExpectedReturnDate = builder.DatePtr(2016, 3, 23) }},
		{"real return before beginning", func(b *builder.RentBuilder) { b.RealReturnDate = builder.DatePtr(2016, 3, 23) }},
		{"car not stored", func(b *builder.RentBuilder) { b.Car = builder.NewCarBuilder().Persisted().BuildDomain() }},
		{"customer not stored", func(b *builder.RentBuilder) { b.Customer = builder.NewCustomerBuilder().Persisted().BuildDomain() }},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			r := builder.NewRentBuilder().ForCar(stored).ForCustomer(cust).With(tt.mutate).BuildDomain()

			s.assertKind(s.manager.Create(s.ctx, r), errs.KindInvalidEntity)
			s.Equal(uuid.Nil, r.ID)
		})
	}

	rents, err := s.manager.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(rents)
}

func (s *RentManagerTestSuite) TestCreate_SameDayBoundaryConflicts() {
	c := s.storedCar("1B2 3456")
	cust := s.storedCustomer()
	s.storedRent(c, cust, builder.Date(2016, 3, 24), builder.DatePtr(2016, 3, 29))

	touching := builder.NewRentBuilder().ForCar(c).ForCustomer(cust).
		Between(builder.Date(2016, 3, 29), builder.DatePtr(2016, 3, 30)).BuildDomain()
	s.assertKind(s.manager.Create(s.ctx, touching), errs.KindInvalidEntity)

	before := builder.NewRentBuilder().ForCar(c).ForCustomer(cust).
		Between(builder.Date(2016, 3, 20), builder.DatePtr(2016, 3, 24)).BuildDomain()
	s.assertKind(s.manager.Create(s.ctx, before), errs.KindInvalidEntity)

	after := builder.NewRentBuilder().ForCar(c).ForCustomer(cust).
		Between(builder.Date(2016, 3, 30), builder.DatePtr(2016, 4, 1)).BuildDomain()
	s.NoError(s.manager.Create(s.ctx, after))
}

func (s *RentManagerTestSuite) TestCreate_OpenRentBlocksTheFuture() {
	c := s.storedCar("1B2 3456")
	cust := s.storedCustomer()
	s.storedRent(c, cust, builder.Date(2015, 2, 11), nil)

	later := builder.NewRentBuilder().ForCar(c).ForCustomer(cust).
		Between(builder.Date(2020, 1, 1), builder.DatePtr(2020, 1, 2)).BuildDomain()
	s.assertKind(s.manager.Create(s.ctx, later), errs.KindInvalidEntity)

	earlier := builder.NewRentBuilder().ForCar(c).ForCustomer(cust).
		Between(builder.Date(2015, 2, 1), builder.DatePtr(2015, 2, 10)).BuildDomain()
	s.NoError(s.manager.Create(s.ctx, earlier))

	openEarlier := builder.NewRentBuilder().ForCar(c).ForCustomer(cust).
		Between(builder.Date(2014, 1, 1), nil).BuildDomain()
	s.assertKind(s.manager.Create(s.ctx, openEarlier), errs.KindInvalidEntity)
}

func (s *RentManagerTestSuite) TestCreate_OtherCarIsIndependent() {
	cust := s.storedCustomer()
	s.storedRent(s.storedCar("1B2 3456"), cust, builder.Date(2016, 3, 24), builder.DatePtr(2016, 3, 29))

	other := builder.NewRentBuilder().ForCar(s.storedCar("9Z9 9999")).ForCustomer(cust).
		Between(builder.Date(2016, 3, 24), builder.DatePtr(2016, 3, 29)).BuildDomain()
	s.NoError(s.manager.Create(s.ctx, other))
}

func (s *RentManagerTestSuite) TestCreate_ConcurrentWritersOfOneCar() {
	c := s.storedCar("1B2 3456")
	cust := s.storedCustomer()

	const writers = 8
	var created, conflicted int32
	var g errgroup.Group
	for i := 0; i < writers; i++ {
		begin := builder.Date(2016, 3, 20+i)
		g.Go(func() error {
			r := builder.NewRentBuilder().ForCar(c).ForCustomer(cust).
				Between(begin, builder.DatePtr(2016, 4, 10)).BuildDomain()
			err := s.manager.Create(s.ctx, r)
			switch {
			case err == nil:
				atomic.AddInt32(&created, 1)
			case errs.IsKind(err, errs.KindInvalidEntity):
				atomic.AddInt32(&conflicted, 1)
			default:
				return err
			}
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	s.Equal(int32(1), created)
	s.Equal(int32(writers-1), conflicted)

	rents, err := s.manager.FindForCar(s.ctx, c)
	s.Require().NoError(err)
	s.Len(rents, 1)
}

func (s *RentManagerTestSuite) TestUpdate() {
	c := s.storedCar("1B2 3456")
	cust := s.storedCustomer()
	first := s.storedRent(c, cust, builder.Date(2016, 3, 24), builder.DatePtr(2016, 3, 29))
	second := s.storedRent(c, cust, builder.Date(2016, 4, 5), builder.DatePtr(2016, 4, 8))

	s.Run("keeping its own interval does not conflict", func() {
		first.PricePerDay = 900
		s.Require().NoError(s.manager.Update(s.ctx, first))

		got, err := s.manager.GetByID(s.ctx, first.ID)
		s.Require().NoError(err)
		s.Equal(int32(900), got.PricePerDay)
	})

	s.Run("overlapping another rent", func() {
		moved := *second
		moved.BeginningDate = builder.Date(2016, 3, 29)
		s.assertKind(s.manager.Update(s.ctx, &moved), errs.KindInvalidEntity)

		got, err := s.manager.GetByID(s.ctx, second.ID)
		s.Require().NoError(err)
		s.Equal(builder.Date(2016, 4, 5), got.BeginningDate)
	})

	s.Run("moving to another car", func() {
		other := s.storedCar("9Z9 9999")
		moved := *second
		moved.Car = other
		s.Require().NoError(s.manager.Update(s.ctx, &moved))

		rents, err := s.manager.FindForCar(s.ctx, other)
		s.Require().NoError(err)
		s.Len(rents, 1)
	})

	s.Run("unknown id", func() {
		ghost := builder.NewRentBuilder().ForCar(c).ForCustomer(cust).
			With(func(b *builder.RentBuilder) { b.ID = uuid.New() }).
			Between(builder.Date(2017, 1, 1), nil).BuildDomain()
		s.assertKind(s.manager.Update(s.ctx, ghost), errs.KindNotFound)
	})

	s.Run("no id", func() {
		r := builder.NewRentBuilder().ForCar(c).ForCustomer(cust).BuildDomain()
		s.assertKind(s.manager.Update(s.ctx, r), errs.KindInvalidArgument)
		s.assertKind(s.manager.Update(s.ctx, nil), errs.KindInvalidArgument)
	})

	s.Run("invalid fields", func() {
		broken := *first
		broken.PricePerDay = 0
		s.assertKind(s.manager.Update(s.ctx, &broken), errs.KindInvalidEntity)
	})
}

func (s *RentManagerTestSuite) TestDelete() {
	r := s.storedRent(s.storedCar("1B2 3456"), s.storedCustomer(), builder.Date(2016, 3, 24), nil)

	s.Require().NoError(s.manager.Delete(s.ctx, r))

	_, err := s.manager.GetByID(s.ctx, r.ID)
	s.assertKind(err, errs.KindNotFound)
	s.assertKind(s.manager.Delete(s.ctx, r), errs.KindNotFound)
	s.assertKind(s.manager.Delete(s.ctx, nil), errs.KindInvalidArgument)
	s.assertKind(s.manager.Delete(s.ctx, builder.NewRentBuilder().BuildDomain()), errs.KindInvalidArgument)
}

func (s *RentManagerTestSuite) TestFindForCustomerAndCar() {
	carA, carB := s.storedCar("1A1 0001"), s.storedCar("1A1 0002")
	alice, bob := s.storedCustomer(), s.storedCustomer()

	s.storedRent(carA, alice, builder.Date(2016, 1, 1), builder.DatePtr(2016, 1, 5))
	s.storedRent(carB, alice, builder.Date(2016, 1, 1), builder.DatePtr(2016, 1, 5))
	s.storedRent(carA, bob, builder.Date(2016, 2, 1), nil)

	ofAlice, err := s.manager.FindForCustomer(s.ctx, alice)
	s.Require().NoError(err)
	s.Len(ofAlice, 2)
	for _, r := range ofAlice {
		s.Equal(alice.ID, r.Customer.ID)
	}

	ofCarA, err := s.manager.FindForCar(s.ctx, carA)
	s.Require().NoError(err)
	s.Require().Len(ofCarA, 2)
	s.Equal(builder.Date(2016, 1, 1), ofCarA[0].BeginningDate)
	s.True(ofCarA[1].IsOpen())

	_, err = s.manager.FindForCustomer(s.ctx, builder.NewCustomerBuilder().BuildDomain())
	s.assertKind(err, errs.KindInvalidArgument)
	_, err = s.manager.FindForCar(s.ctx, nil)
	s.assertKind(err, errs.KindInvalidArgument)
}

func (s *RentManagerTestSuite) TestReturnCar() {
	c := s.storedCar("1B2 3456")
	cust := s.storedCustomer()

	s.Run("defaults to today", func() {
		r := s.storedRent(c, cust, builder.Date(2016, 3, 24), nil)

		got, err := s.manager.ReturnCar(s.ctx, r.ID, nil)
		s.Require().NoError(err)
		s.Equal(builder.DatePtr(2016, 4, 2), got.RealReturnDate)
		s.False(got.IsOpen())

		_, err = s.manager.ReturnCar(s.ctx, r.ID, nil)
		s.assertKind(err, errs.KindInvalidEntity)
	})

	s.Run("explicit date before beginning", func() {
		r := s.storedRent(c, cust, builder.Date(2016, 5, 1), nil)

		_, err := s.manager.ReturnCar(s.ctx, r.ID, builder.DatePtr(2016, 4, 30))
		s.assertKind(err, errs.KindInvalidEntity)

		got, err := s.manager.ReturnCar(s.ctx, r.ID, builder.DatePtr(2016, 5, 3))
		s.Require().NoError(err)
		s.Equal(builder.DatePtr(2016, 5, 3), got.RealReturnDate)
	})

	s.Run("unknown rent", func() {
		_, err := s.manager.ReturnCar(s.ctx, uuid.New(), nil)
		s.assertKind(err, errs.KindNotFound)
	})
}

// interleavedCars runs before once, on the first lookup, and then defers to
// the wrapped lookup.
type interleavedCars struct {
	CarLookup
	fired  atomic.Bool
	before func()
}

func (l *interleavedCars) GetByID(ctx context.Context, id uuid.UUID) (*car.Car, error) {
	if l.fired.CompareAndSwap(false, true) {
		l.before()
	}
	return l.CarLookup.GetByID(ctx, id)
}

func (s *RentManagerTestSuite) TestReturnCar_KeepsConcurrentUpdate() {
	r := s.storedRent(s.storedCar("1B2 3456"), s.storedCustomer(), builder.Date(2016, 3, 24), nil)

	lookup := &interleavedCars{CarLookup: s.cars}
	returning, err := NewRentManager(s.manager.uow, lookup, s.customers, s.clock, discardLogger())
	s.Require().NoError(err)
	lookup.before = func() {
		current, err := s.manager.GetByID(s.ctx, r.ID)
		s.Require().NoError(err)
		current.PricePerDay = 999
		s.Require().NoError(s.manager.Update(s.ctx, current))
	}

	got, err := returning.ReturnCar(s.ctx, r.ID, builder.DatePtr(2016, 3, 30))
	s.Require().NoError(err)
	s.Equal(builder.DatePtr(2016, 3, 30), got.RealReturnDate)

	stored, err := s.manager.GetByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(int32(999), stored.PricePerDay)
	s.Equal(builder.DatePtr(2016, 3, 30), stored.RealReturnDate)
}

func (s *RentManagerTestSuite) TestReturnCar_ConcurrentReturnsCloseOnce() {
	r := s.storedRent(s.storedCar("1B2 3456"), s.storedCustomer(), builder.Date(2016, 3, 24), nil)

	var succeeded, rejected atomic.Int32
	var g errgroup.Group
	for i := 0; i < 5; i++ {
		date := builder.DatePtr(2016, 3, 25+i)
		g.Go(func() error {
			_, err := s.manager.ReturnCar(s.ctx, r.ID, date)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errs.KindOf(err) == errs.KindInvalidEntity:
				rejected.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	s.Equal(int32(1), succeeded.Load())
	s.Equal(int32(4), rejected.Load())
}

type missingCars struct{}

func (missingCars) GetByID(_ context.Context, id uuid.UUID) (*car.Car, error) {
	return nil, errs.NotFound("car %s does not exist", id)
}

func (s *RentManagerTestSuite) TestDanglingReferenceIsInternal() {
	r := s.storedRent(s.storedCar("1B2 3456"), s.storedCustomer(), builder.Date(2016, 3, 24), nil)

	broken, err := NewRentManager(s.manager.uow, missingCars{}, s.customers, s.clock, discardLogger())
	s.Require().NoError(err)

	_, err = broken.GetByID(s.ctx, r.ID)
	s.assertKind(err, errs.KindInternal)

	_, err = broken.FindAll(s.ctx)
	s.assertKind(err, errs.KindInternal)
}

func TestRentManagerTestSuite(t *testing.T) {
	suite.Run(t, new(RentManagerTestSuite))
}

func TestNewRentManager_MissingCollaborator(t *testing.T) {
	uow := memstore.NewUoW(memstore.New())
	logger := discardLogger()
	cars, _ := NewCarManager(uow, logger)
	customers, _ := NewCustomerManager(uow, logger)
	clk := clock.NewMockClock(time.Now())

	tests := []struct {
		name  string
		build func() (*RentManager, error)
	}{
		{"unit of work", func() (*RentManager, error) { return NewRentManager(nil, cars, customers, clk, logger) }},
		{"car lookup", func() (*RentManager, error) { return NewRentManager(uow, nil, customers, clk, logger) }},
		{"customer lookup", func() (*RentManager, error) { return NewRentManager(uow, cars, nil, clk, logger) }},
		{"clock", func() (*RentManager, error) { return NewRentManager(uow, cars, customers, nil, logger) }},
		{"logger", func() (*RentManager, error) { return NewRentManager(uow, cars, customers, clk, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.build()
			if m != nil {
				t.Fatalf("expected no manager, got %v", m)
			}
			if !errs.IsKind(err, errs.KindConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
		})
	}
}
