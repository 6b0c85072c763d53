//go:build unit || e2e

package builder

import (
	"time"

	domcar "car-rental/internal/domain/car"
	domcustomer "car-rental/internal/domain/customer"
	domrent "car-rental/internal/domain/rent"
	reqdto "car-rental/internal/handler/dto/request"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type RentBuilder struct {
	ID                 uuid.UUID
	Customer           *domcustomer.Customer
	Car                *domcar.Car
	PricePerDay        int32
	BeginningDate      civil.Date
	ExpectedReturnDate *civil.Date
	RealReturnDate     *civil.Date
}

// NewRentBuilder starts from a valid open rent of a persisted car by a
// persisted customer.
func NewRentBuilder() *RentBuilder {
	return &RentBuilder{
		Customer:      NewCustomerBuilder().Persisted().BuildDomain(),
		Car:           NewCarBuilder().Persisted().BuildDomain(),
		PricePerDay:   500,
		BeginningDate: civil.Date{Year: 2016, Month: 3, Day: 24},
	}
}

func (b *RentBuilder) With(mutate func(*RentBuilder)) *RentBuilder {
	mutate(b)
	return b
}

func (b *RentBuilder) ForCar(c *domcar.Car) *RentBuilder {
	b.Car = c
	return b
}

func (b *RentBuilder) ForCustomer(c *domcustomer.Customer) *RentBuilder {
	b.Customer = c
	return b
}

// Between sets the beginning date and, for a non-nil end, both return
// dates. A nil end leaves the rent open.
func (b *RentBuilder) Between(begin civil.Date, end *civil.Date) *RentBuilder {
	b.BeginningDate = begin
	b.ExpectedReturnDate = end
	b.RealReturnDate = end
	return b
}

func (b *RentBuilder) BuildDomain() *domrent.Rent {
	return &domrent.Rent{
		ID:                 b.ID,
		Customer:           b.Customer,
		Car:                b.Car,
		PricePerDay:        b.PricePerDay,
		BeginningDate:      b.BeginningDate,
		ExpectedReturnDate: b.ExpectedReturnDate,
		RealReturnDate:     b.RealReturnDate,
	}
}

func (b *RentBuilder) BuildRequest() reqdto.RentRequest {
	return reqdto.RentRequest{
		CustomerID:         b.Customer.ID,
		CarID:              b.Car.ID,
		PricePerDay:        b.PricePerDay,
		BeginningDate:      b.BeginningDate,
		ExpectedReturnDate: b.ExpectedReturnDate,
		RealReturnDate:     b.RealReturnDate,
	}
}

// Date is shorthand for a civil date in tests.
func Date(year, month, day int) civil.Date {
	return civil.Date{Year: year, Month: time.Month(month), Day: day}
}

// DatePtr is Date returned by pointer.
func DatePtr(year, month, day int) *civil.Date {
	d := Date(year, month, day)
	return &d
}
