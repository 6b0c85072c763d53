//go:build unit || e2e

package builder

import (
	domcustomer "car-rental/internal/domain/customer"
	reqdto "car-rental/internal/handler/dto/request"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	ID          uuid.UUID
	Name        string
	Surname     string
	PhoneNumber string
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		Name:        "Jan",
		Surname:     "Novak",
		PhoneNumber: "+420 777 123 456",
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

func (b *CustomerBuilder) Persisted() *CustomerBuilder {
	b.ID = uuid.New()
	return b
}

func (b *CustomerBuilder) BuildDomain() *domcustomer.Customer {
	return &domcustomer.Customer{
		ID:          b.ID,
		Name:        b.Name,
		Surname:     b.Surname,
		PhoneNumber: b.PhoneNumber,
	}
}

func (b *CustomerBuilder) BuildRequest() reqdto.CustomerRequest {
	return reqdto.CustomerRequest{
		Name:        b.Name,
		Surname:     b.Surname,
		PhoneNumber: b.PhoneNumber,
	}
}
