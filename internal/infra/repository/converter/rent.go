package converter

import (
	"car-rental/internal/domain/rent"
	"car-rental/internal/infra/query"
	"car-rental/internal/pkg/pgconv"
)

func RentToRow(rec rent.Record) query.RentRow {
	return query.RentRow{
		ID:                 rec.ID,
		CustomerID:         rec.CustomerID,
		CarID:              rec.CarID,
		PricePerDay:        rec.PricePerDay,
		BeginningDate:      pgconv.DateToPgtype(rec.BeginningDate),
		ExpectedReturnDate: pgconv.DatePtrToPgtype(rec.ExpectedReturnDate),
		RealReturnDate:     pgconv.DatePtrToPgtype(rec.RealReturnDate),
	}
}

func RentFromRow(row query.RentRow) rent.Record {
	return rent.Record{
		ID:                 row.ID,
		CustomerID:         row.CustomerID,
		CarID:              row.CarID,
		PricePerDay:        row.PricePerDay,
		BeginningDate:      pgconv.DateFromPgtype(row.BeginningDate),
		ExpectedReturnDate: pgconv.DatePtrFromPgtype(row.ExpectedReturnDate),
		RealReturnDate:     pgconv.DatePtrFromPgtype(row.RealReturnDate),
	}
}
