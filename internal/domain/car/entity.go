package car

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyBrand              = errors.New("car brand is empty")
	ErrEmptyRegistrationNumber = errors.New("car registration number is empty")
)

// Field names a column cars can be filtered by.
type Field string

const (
	FieldBrand              Field = "brand"
	FieldRegistrationNumber Field = "registration_number"
)

// Car is a rentable vehicle. ID is uuid.Nil until the car is persisted.
type Car struct {
	ID                 uuid.UUID
	Brand              string
	RegistrationNumber string
}

func New(brand, registrationNumber string) *Car {
	return &Car{
		Brand:              strings.TrimSpace(brand),
		RegistrationNumber: strings.TrimSpace(registrationNumber),
	}
}

func (c *Car) IsPersisted() bool {
	return c.ID != uuid.Nil
}

func (c *Car) Validate() error {
	if strings.TrimSpace(c.Brand) == "" {
		return ErrEmptyBrand
	}
	if strings.TrimSpace(c.RegistrationNumber) == "" {
		return ErrEmptyRegistrationNumber
	}
	return nil
}

func (c *Car) String() string {
	return fmt.Sprintf("Car{id=%s, brand=%s, registrationNumber=%s}", c.ID, c.Brand, c.RegistrationNumber)
}
