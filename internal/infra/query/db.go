// Package query builds and runs the SQL for the car, customer and rent
// tables. Statements are built with goqu in prepared mode so values travel
// as pgx arguments, never as literals.
package query

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const dialectPostgres = "postgres"

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type Queries struct {
	Cars      Table[CarRow]
	Customers Table[CustomerRow]
	Rents     Table[RentRow]
}

func New() *Queries {
	d := goqu.Dialect(dialectPostgres)
	return &Queries{
		Cars:      newTable[CarRow](d, TableCar, carColumns),
		Customers: newTable[CustomerRow](d, TableCustomer, customerColumns),
		Rents:     newTable[RentRow](d, TableRent, rentColumns, rentOrder...),
	}
}

type sqlBuilder interface {
	ToSQL() (string, []interface{}, error)
}

func build(b sqlBuilder) (string, []interface{}, error) {
	return b.ToSQL()
}
