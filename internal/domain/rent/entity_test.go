//go:build unit

package rent_test

import (
	"testing"
	"time"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/customer"
	"car-rental/internal/domain/rent"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validRent() *rent.Rent {
	return &rent.Rent{
		Customer:           &customer.Customer{ID: uuid.New(), Name: "Jan", Surname: "Novak", PhoneNumber: "0900"},
		Car:                &car.Car{ID: uuid.New(), Brand: "Skoda", RegistrationNumber: "BA-123AB"},
		PricePerDay:        250,
		BeginningDate:      date(2016, 3, 24),
		ExpectedReturnDate: datePtr(2016, 3, 28),
	}
}

func TestRent_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*rent.Rent)
		errIs  error
	}{
		{name: "valid", mutate: func(*rent.Rent) {}},
		{name: "missing customer", mutate: func(r *rent.Rent) { r.Customer = nil }, errIs: rent.ErrMissingCustomer},
		{name: "customer without id", mutate: func(r *rent.Rent) { r.Customer.ID = uuid.Nil }, errIs: rent.ErrCustomerNotPersisted},
		{name: "missing car", mutate: func(r *rent.Rent) { r.Car = nil }, errIs: rent.ErrMissingCar},
		{name: "car without id", mutate: func(r *rent.Rent) { r.Car.ID = uuid.Nil }, errIs: rent.ErrCarNotPersisted},
		{name: "zero price", mutate: func(r *rent.Rent) { r.PricePerDay = 0 }, errIs: rent.ErrNonPositivePrice},
		{name: "negative price", mutate: func(r *rent.Rent) { r.PricePerDay = -1 }, errIs: rent.ErrNonPositivePrice},
		{name: "minimum price", mutate: func(r *rent.Rent) { r.PricePerDay = 1 }},
		{name: "missing beginning date", mutate: func(r *rent.Rent) { r.BeginningDate = civil.Date{} }, errIs: rent.ErrMissingBeginningDate},
		{name: "impossible beginning date", mutate: func(r *rent.Rent) { r.BeginningDate = date(2016, 2, 30) }, errIs: rent.ErrInvalidDate},
		{name: "expected return equals beginning", mutate: func(r *rent.Rent) { r.ExpectedReturnDate = datePtr(2016, 3, 24) }},
		{name: "expected return before beginning", mutate: func(r *rent.Rent) { r.ExpectedReturnDate = datePtr(2016, 3, 23) }, errIs: rent.ErrExpectedReturnBeforeBegin},
		{name: "no expected return", mutate: func(r *rent.Rent) { r.ExpectedReturnDate = nil }},
		{name: "real return equals beginning", mutate: func(r *rent.Rent) { r.RealReturnDate = datePtr(2016, 3, 24) }},
		{name: "real return before beginning", mutate: func(r *rent.Rent) { r.RealReturnDate = datePtr(2016, 3, 1) }, errIs: rent.ErrRealReturnBeforeBegin},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRent()
			tc.mutate(r)

			err := r.Validate()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRent_State(t *testing.T) {
	r := validRent()
	assert.False(t, r.IsPersisted())
	assert.True(t, r.IsOpen())
	assert.True(t, r.Interval().IsOpen())

	r.RealReturnDate = datePtr(2016, 3, 29)
	assert.False(t, r.IsOpen())
	assert.Equal(t, date(2016, time.March, 29), *r.Interval().End)
}

func TestRecord_RoundTrip(t *testing.T) {
	r := validRent()
	r.ID = uuid.New()

	rec := r.Record()
	assert.Equal(t, r.Customer.ID, rec.CustomerID)
	assert.Equal(t, r.Car.ID, rec.CarID)

	back := rec.Resolve(r.Customer, r.Car)
	assert.Equal(t, r, back)

	b := rec.Booking()
	assert.Equal(t, r.ID, b.RentID)
	assert.Equal(t, r.Interval(), b.Interval)
}

func TestRecord_Close(t *testing.T) {
	rec := validRent().Record()

	_, err := rec.Close(date(2016, 3, 23))
	assert.ErrorIs(t, err, rent.ErrRealReturnBeforeBegin)

	_, err = rec.Close(date(2016, 2, 30))
	assert.ErrorIs(t, err, rent.ErrInvalidDate)

	closed, err := rec.Close(date(2016, 3, 24))
	assert.NoError(t, err)
	assert.Equal(t, datePtr(2016, 3, 24), closed.RealReturnDate)
	assert.Nil(t, rec.RealReturnDate)
	assert.Equal(t, rec.PricePerDay, closed.PricePerDay)
}
