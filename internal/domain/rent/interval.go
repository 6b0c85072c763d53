package rent

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// Interval is a closed range of calendar days. A nil End means the interval
// is open and extends past every date.
type Interval struct {
	Begin civil.Date
	End   *civil.Date
}

func NewInterval(begin civil.Date, end *civil.Date) Interval {
	return Interval{Begin: begin, End: end}
}

func (i Interval) IsOpen() bool {
	return i.End == nil
}

// Overlaps reports whether the two intervals share at least one calendar day.
// Both ends are inclusive, so an interval ending on the day another begins
// overlaps it.
func (i Interval) Overlaps(o Interval) bool {
	return !endsBefore(o.End, i.Begin) && !endsBefore(i.End, o.Begin)
}

func (i Interval) String() string {
	if i.End == nil {
		return fmt.Sprintf("[%s, open)", i.Begin)
	}
	return fmt.Sprintf("[%s, %s]", i.Begin, *i.End)
}

// endsBefore reports end < d, treating a nil end as unbounded.
func endsBefore(end *civil.Date, d civil.Date) bool {
	return end != nil && end.Before(d)
}

// Booking is the part of a stored rent that availability depends on.
type Booking struct {
	RentID   uuid.UUID
	Interval Interval
}

// FindConflict returns the id of a booking overlapping candidate, skipping the
// booking identified by exclude. Pass uuid.Nil to exclude nothing.
func FindConflict(existing []Booking, candidate Interval, exclude uuid.UUID) (uuid.UUID, bool) {
	for _, b := range existing {
		if exclude != uuid.Nil && b.RentID == exclude {
			continue
		}
		if b.Interval.Overlaps(candidate) {
			return b.RentID, true
		}
	}
	return uuid.Nil, false
}
