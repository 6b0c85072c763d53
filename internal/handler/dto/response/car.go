package response

import (
	domcar "car-rental/internal/domain/car"
	domcustomer "car-rental/internal/domain/customer"

	"github.com/google/uuid"
)

type CarResponse struct {
	ID                 uuid.UUID `json:"id"`
	Brand              string    `json:"brand"`
	RegistrationNumber string    `json:"registration_number"`
}

func FromCar(c *domcar.Car) CarResponse {
	return CarResponse{
		ID:                 c.ID,
		Brand:              c.Brand,
		RegistrationNumber: c.RegistrationNumber,
	}
}

func FromCars(cars []*domcar.Car) []CarResponse {
	res := make([]CarResponse, len(cars))
	for i, c := range cars {
		res[i] = FromCar(c)
	}
	return res
}

type CustomerResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	PhoneNumber string    `json:"phone_number"`
}

func FromCustomer(c *domcustomer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Surname:     c.Surname,
		PhoneNumber: c.PhoneNumber,
	}
}

func FromCustomers(customers []*domcustomer.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = FromCustomer(c)
	}
	return res
}
