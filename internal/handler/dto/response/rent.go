package response

import (
	domrent "car-rental/internal/domain/rent"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type RentResponse struct {
	ID                 uuid.UUID        `json:"id"`
	Customer           CustomerResponse `json:"customer"`
	Car                CarResponse      `json:"car"`
	PricePerDay        int32            `json:"price_per_day"`
	BeginningDate      civil.Date       `json:"beginning_date"`
	ExpectedReturnDate *civil.Date      `json:"expected_return_date,omitempty"`
	RealReturnDate     *civil.Date      `json:"real_return_date,omitempty"`
	Open               bool             `json:"open"`
}

func FromRent(r *domrent.Rent) RentResponse {
	return RentResponse{
		ID:                 r.ID,
		Customer:           FromCustomer(r.Customer),
		Car:                FromCar(r.Car),
		PricePerDay:        r.PricePerDay,
		BeginningDate:      r.BeginningDate,
		ExpectedReturnDate: r.ExpectedReturnDate,
		RealReturnDate:     r.RealReturnDate,
		Open:               r.IsOpen(),
	}
}

func FromRents(rents []*domrent.Rent) []RentResponse {
	res := make([]RentResponse, len(rents))
	for i, r := range rents {
		res[i] = FromRent(r)
	}
	return res
}
