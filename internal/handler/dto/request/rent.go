package request

import (
	domcar "car-rental/internal/domain/car"
	domcustomer "car-rental/internal/domain/customer"
	domrent "car-rental/internal/domain/rent"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// RentRequest carries dates as YYYY-MM-DD. A missing real_return_date keeps
// the rent open.
type RentRequest struct {
	CustomerID         uuid.UUID   `json:"customer_id" binding:"required"`
	CarID              uuid.UUID   `json:"car_id" binding:"required"`
	PricePerDay        int32       `json:"price_per_day"`
	BeginningDate      civil.Date  `json:"beginning_date"`
	ExpectedReturnDate *civil.Date `json:"expected_return_date"`
	RealReturnDate     *civil.Date `json:"real_return_date"`
}

func (r *RentRequest) ToDomain(id uuid.UUID, cust *domcustomer.Customer, c *domcar.Car) *domrent.Rent {
	return &domrent.Rent{
		ID:                 id,
		Customer:           cust,
		Car:                c,
		PricePerDay:        r.PricePerDay,
		BeginningDate:      r.BeginningDate,
		ExpectedReturnDate: r.ExpectedReturnDate,
		RealReturnDate:     r.RealReturnDate,
	}
}

type ReturnCarRequest struct {
	Date *civil.Date `json:"date"`
}
