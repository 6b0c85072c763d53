package customer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("customer name is empty")
	ErrEmptySurname     = errors.New("customer surname is empty")
	ErrEmptyPhoneNumber = errors.New("customer phone number is empty")
)

type Field string

const (
	FieldName        Field = "name"
	FieldSurname     Field = "surname"
	FieldPhoneNumber Field = "phone_number"
)

// Customer has no cross-record uniqueness constraint; two customers may share
// every field.
type Customer struct {
	ID          uuid.UUID
	Name        string
	Surname     string
	PhoneNumber string
}

func New(name, surname, phoneNumber string) *Customer {
	return &Customer{
		Name:        strings.TrimSpace(name),
		Surname:     strings.TrimSpace(surname),
		PhoneNumber: strings.TrimSpace(phoneNumber),
	}
}

func (c *Customer) IsPersisted() bool {
	return c.ID != uuid.Nil
}

func (c *Customer) Validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return ErrEmptyName
	case strings.TrimSpace(c.Surname) == "":
		return ErrEmptySurname
	case strings.TrimSpace(c.PhoneNumber) == "":
		return ErrEmptyPhoneNumber
	}
	return nil
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer{id=%s, name=%s, surname=%s, phoneNumber=%s}", c.ID, c.Name, c.Surname, c.PhoneNumber)
}
