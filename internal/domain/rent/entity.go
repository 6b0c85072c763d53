package rent

import (
	"errors"
	"fmt"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/customer"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

var (
	ErrMissingCustomer           = errors.New("rent customer is not set")
	ErrCustomerNotPersisted      = errors.New("rent customer has no id")
	ErrMissingCar                = errors.New("rent car is not set")
	ErrCarNotPersisted           = errors.New("rent car has no id")
	ErrNonPositivePrice          = errors.New("rent price per day must be greater than zero")
	ErrMissingBeginningDate      = errors.New("rent beginning date is not set")
	ErrInvalidDate               = errors.New("rent date is not a valid calendar date")
	ErrExpectedReturnBeforeBegin = errors.New("rent expected return date is before beginning date")
	ErrRealReturnBeforeBegin     = errors.New("rent real return date is before beginning date")
)

// Rent links one car to one customer for a date interval. Customer and Car
// are resolved copies; only their ids are persisted.
type Rent struct {
	ID                 uuid.UUID
	Customer           *customer.Customer
	Car                *car.Car
	PricePerDay        int32
	BeginningDate      civil.Date
	ExpectedReturnDate *civil.Date
	RealReturnDate     *civil.Date
}

func (r *Rent) IsPersisted() bool {
	return r.ID != uuid.Nil
}

// IsOpen reports whether the car has not been returned yet.
func (r *Rent) IsOpen() bool {
	return r.RealReturnDate == nil
}

// Interval is the span the car is unavailable for: from the beginning date to
// the real return date, or open-ended while the car is out.
func (r *Rent) Interval() Interval {
	return NewInterval(r.BeginningDate, r.RealReturnDate)
}

// Validate checks field values and that both references carry an id. It does
// not check that the referenced records exist.
func (r *Rent) Validate() error {
	if r.Customer == nil {
		return ErrMissingCustomer
	}
	if !r.Customer.IsPersisted() {
		return ErrCustomerNotPersisted
	}
	if r.Car == nil {
		return ErrMissingCar
	}
	if !r.Car.IsPersisted() {
		return ErrCarNotPersisted
	}
	if r.PricePerDay <= 0 {
		return ErrNonPositivePrice
	}
	if r.BeginningDate.IsZero() {
		return ErrMissingBeginningDate
	}
	if !r.BeginningDate.IsValid() {
		return ErrInvalidDate
	}
	if d := r.ExpectedReturnDate; d != nil {
		if !d.IsValid() {
			return ErrInvalidDate
		}
		if d.Before(r.BeginningDate) {
			return ErrExpectedReturnBeforeBegin
		}
	}
	if d := r.RealReturnDate; d != nil {
		if !d.IsValid() {
			return ErrInvalidDate
		}
		if d.Before(r.BeginningDate) {
			return ErrRealReturnBeforeBegin
		}
	}
	return nil
}

// Record returns the persisted shape of r. Validate must have passed.
func (r *Rent) Record() Record {
	return Record{
		ID:                 r.ID,
		CustomerID:         r.Customer.ID,
		CarID:              r.Car.ID,
		PricePerDay:        r.PricePerDay,
		BeginningDate:      r.BeginningDate,
		ExpectedReturnDate: r.ExpectedReturnDate,
		RealReturnDate:     r.RealReturnDate,
	}
}

func (r *Rent) String() string {
	return fmt.Sprintf("Rent{id=%s, customer=%v, car=%v, pricePerDay=%d, interval=%s}",
		r.ID, r.Customer, r.Car, r.PricePerDay, r.Interval())
}

// Record is a rent row: the two references are stored as ids.
type Record struct {
	ID                 uuid.UUID
	CustomerID         uuid.UUID
	CarID              uuid.UUID
	PricePerDay        int32
	BeginningDate      civil.Date
	ExpectedReturnDate *civil.Date
	RealReturnDate     *civil.Date
}

func (rec Record) Booking() Booking {
	return Booking{RentID: rec.ID, Interval: NewInterval(rec.BeginningDate, rec.RealReturnDate)}
}

// Close returns rec with its real return date set to date.
func (rec Record) Close(date civil.Date) (Record, error) {
	if !date.IsValid() {
		return rec, ErrInvalidDate
	}
	if date.Before(rec.BeginningDate) {
		return rec, ErrRealReturnBeforeBegin
	}
	rec.RealReturnDate = &date
	return rec, nil
}

// Resolve builds a Rent from rec and the already loaded references.
func (rec Record) Resolve(cust *customer.Customer, c *car.Car) *Rent {
	return &Rent{
		ID:                 rec.ID,
		Customer:           cust,
		Car:                c,
		PricePerDay:        rec.PricePerDay,
		BeginningDate:      rec.BeginningDate,
		ExpectedReturnDate: rec.ExpectedReturnDate,
		RealReturnDate:     rec.RealReturnDate,
	}
}
