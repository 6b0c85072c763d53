package usecase

import (
	"context"

	"car-rental/internal/domain/rent"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

// AvailabilityChecker answers whether a car is free for an interval. It only
// reads; callers that write afterwards must hold the car's lock in the same
// unit of work for the answer to stay true.
type AvailabilityChecker struct{}

func NewAvailabilityChecker() *AvailabilityChecker {
	return &AvailabilityChecker{}
}

// ConflictingRent returns the id of a stored rent of carID whose interval
// overlaps candidate. The rent with id exclude is ignored so an update does
// not conflict with itself; pass uuid.Nil on create.
func (a *AvailabilityChecker) ConflictingRent(
	ctx context.Context,
	tx shared.Tx,
	carID uuid.UUID,
	candidate rent.Interval,
	exclude uuid.UUID,
) (uuid.UUID, bool, error) {
	records, err := tx.Rents().FindByCar(ctx, carID)
	if err != nil {
		return uuid.Nil, false, err
	}

	bookings := make([]rent.Booking, 0, len(records))
	for _, rec := range records {
		bookings = append(bookings, rec.Booking())
	}

	id, found := rent.FindConflict(bookings, candidate, exclude)
	return id, found, nil
}

// IsAvailable is ConflictingRent without the conflicting id.
func (a *AvailabilityChecker) IsAvailable(ctx context.Context, tx shared.Tx, carID uuid.UUID, candidate rent.Interval, exclude uuid.UUID) (bool, error) {
	_, found, err := a.ConflictingRent(ctx, tx, carID, candidate, exclude)
	if err != nil {
		return false, err
	}
	return !found, nil
}
