package converter

import (
	"car-rental/internal/domain/customer"
	"car-rental/internal/infra/query"
)

func CustomerToRow(c *customer.Customer) query.CustomerRow {
	return query.CustomerRow{
		ID:          c.ID,
		Name:        c.Name,
		Surname:     c.Surname,
		PhoneNumber: c.PhoneNumber,
	}
}

func CustomerFromRow(row query.CustomerRow) *customer.Customer {
	return &customer.Customer{
		ID:          row.ID,
		Name:        row.Name,
		Surname:     row.Surname,
		PhoneNumber: row.PhoneNumber,
	}
}
