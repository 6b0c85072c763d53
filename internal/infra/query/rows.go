package query

import (
	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	TableCar      = "car"
	TableCustomer = "customer"
	TableRent     = "rent"

	ColBrand              = "brand"
	ColRegistrationNumber = "registration_number"

	ColName        = "name"
	ColSurname     = "surname"
	ColPhoneNumber = "phone_number"

	ColCustomerID         = "customer_id"
	ColCarID              = "car_id"
	ColPricePerDay        = "price_per_day"
	ColBeginningDate      = "beginning_date"
	ColExpectedReturnDate = "expected_return_date"
	ColRealReturnDate     = "real_return_date"
)

var (
	carColumns      = []string{ColBrand, ColRegistrationNumber}
	customerColumns = []string{ColName, ColSurname, ColPhoneNumber}
	rentColumns     = []string{
		ColCustomerID, ColCarID, ColPricePerDay,
		ColBeginningDate, ColExpectedReturnDate, ColRealReturnDate,
	}
	rentOrder = []exp.OrderedExpression{goqu.I(ColBeginningDate).Asc(), goqu.I(colID).Asc()}
)

type CarRow struct {
	ID                 uuid.UUID `db:"id"`
	Brand              string    `db:"brand"`
	RegistrationNumber string    `db:"registration_number"`
}

func (r CarRow) Record() goqu.Record {
	return goqu.Record{
		ColBrand:              r.Brand,
		ColRegistrationNumber: r.RegistrationNumber,
	}
}

type CustomerRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Surname     string    `db:"surname"`
	PhoneNumber string    `db:"phone_number"`
}

func (r CustomerRow) Record() goqu.Record {
	return goqu.Record{
		ColName:        r.Name,
		ColSurname:     r.Surname,
		ColPhoneNumber: r.PhoneNumber,
	}
}

type RentRow struct {
	ID                 uuid.UUID   `db:"id"`
	CustomerID         uuid.UUID   `db:"customer_id"`
	CarID              uuid.UUID   `db:"car_id"`
	PricePerDay        int32       `db:"price_per_day"`
	BeginningDate      pgtype.Date `db:"beginning_date"`
	ExpectedReturnDate pgtype.Date `db:"expected_return_date"`
	RealReturnDate     pgtype.Date `db:"real_return_date"`
}

func (r RentRow) Record() goqu.Record {
	return goqu.Record{
		ColCustomerID:         r.CustomerID,
		ColCarID:              r.CarID,
		ColPricePerDay:        r.PricePerDay,
		ColBeginningDate:      dateArg(r.BeginningDate),
		ColExpectedReturnDate: dateArg(r.ExpectedReturnDate),
		ColRealReturnDate:     dateArg(r.RealReturnDate),
	}
}

// dateArg hands pgx a plain time for a valid date and SQL NULL otherwise.
func dateArg(d pgtype.Date) interface{} {
	if !d.Valid {
		return nil
	}
	return d.Time
}
