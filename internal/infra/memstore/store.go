// Package memstore keeps cars, customers and rents in process memory. It
// serves the same unit-of-work contract as the PostgreSQL store: writers of
// one car serialize on a per-car mutex and failed units of work are rolled
// back from an undo log.
package memstore

import (
	"sync"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/customer"
	"car-rental/internal/domain/rent"
	"car-rental/internal/pkg/patch"
)

type Store struct {
	mu        sync.RWMutex
	cars      *table[car.Car]
	customers *table[customer.Customer]
	rents     *table[rent.Record]
	carLocks  *keyedMutex
}

func New() *Store {
	return &Store{
		cars: newTable(
			func(c car.Car) car.Car { return c },
			func(a, b car.Car) int { return compareIDs(a.ID, b.ID) },
		),
		customers: newTable(
			func(c customer.Customer) customer.Customer { return c },
			func(a, b customer.Customer) int { return compareIDs(a.ID, b.ID) },
		),
		rents:    newTable(cloneRecord, compareRecords),
		carLocks: newKeyedMutex(),
	}
}

func cloneRecord(rec rent.Record) rent.Record {
	if rec.ExpectedReturnDate != nil {
		rec.ExpectedReturnDate = patch.Ptr(*rec.ExpectedReturnDate)
	}
	if rec.RealReturnDate != nil {
		rec.RealReturnDate = patch.Ptr(*rec.RealReturnDate)
	}
	return rec
}

func compareRecords(a, b rent.Record) int {
	switch {
	case a.BeginningDate.Before(b.BeginningDate):
		return -1
	case a.BeginningDate.After(b.BeginningDate):
		return 1
	}
	return compareIDs(a.ID, b.ID)
}
