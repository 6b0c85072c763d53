package converter

import (
	"car-rental/internal/domain/car"
	"car-rental/internal/infra/query"
)

func CarToRow(c *car.Car) query.CarRow {
	return query.CarRow{
		ID:                 c.ID,
		Brand:              c.Brand,
		RegistrationNumber: c.RegistrationNumber,
	}
}

func CarFromRow(row query.CarRow) *car.Car {
	return &car.Car{
		ID:                 row.ID,
		Brand:              row.Brand,
		RegistrationNumber: row.RegistrationNumber,
	}
}
