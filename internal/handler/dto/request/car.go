package request

import (
	domcar "car-rental/internal/domain/car"

	"github.com/google/uuid"
)

type CarRequest struct {
	Brand              string `json:"brand" binding:"required,max=100"`
	RegistrationNumber string `json:"registration_number" binding:"required,max=20"`
}

// ToDomain builds the car stored under id; uuid.Nil means a new car.
func (r *CarRequest) ToDomain(id uuid.UUID) *domcar.Car {
	c := domcar.New(r.Brand, r.RegistrationNumber)
	c.ID = id
	return c
}
