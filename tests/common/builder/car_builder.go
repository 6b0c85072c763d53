//go:build unit || e2e

package builder

import (
	domcar "car-rental/internal/domain/car"
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/infra/query"

	"github.com/google/uuid"
)

type CarBuilder struct {
	ID                 uuid.UUID
	Brand              string
	RegistrationNumber string
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		Brand:              "Skoda Octavia",
		RegistrationNumber: "1B2 3456",
	}
}

func (b *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(b)
	return b
}

// Persisted assigns a random id, as if the car had been stored.
func (b *CarBuilder) Persisted() *CarBuilder {
	b.ID = uuid.New()
	return b
}

func (b *CarBuilder) BuildDomain() *domcar.Car {
	return &domcar.Car{
		ID:                 b.ID,
		Brand:              b.Brand,
		RegistrationNumber: b.RegistrationNumber,
	}
}

func (b *CarBuilder) BuildRow() query.CarRow {
	return query.CarRow{
		ID:                 b.ID,
		Brand:              b.Brand,
		RegistrationNumber: b.RegistrationNumber,
	}
}

func (b *CarBuilder) BuildRequest() reqdto.CarRequest {
	return reqdto.CarRequest{
		Brand:              b.Brand,
		RegistrationNumber: b.RegistrationNumber,
	}
}
