package request

import (
	domcustomer "car-rental/internal/domain/customer"

	"github.com/google/uuid"
)

type CustomerRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Surname     string `json:"surname" binding:"required,max=100"`
	PhoneNumber string `json:"phone_number" binding:"required,max=30"`
}

func (r *CustomerRequest) ToDomain(id uuid.UUID) *domcustomer.Customer {
	c := domcustomer.New(r.Name, r.Surname, r.PhoneNumber)
	c.ID = id
	return c
}
