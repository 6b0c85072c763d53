//go:build unit

package converter

import (
	"testing"

	"car-rental/internal/domain/rent"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRentRowRoundTrip(t *testing.T) {
	expected := civil.Date{Year: 2016, Month: 3, Day: 29}

	tests := []struct {
		name string
		rec  rent.Record
	}{
		{
			name: "open rent",
			rec: rent.Record{
				ID:            uuid.New(),
				CustomerID:    uuid.New(),
				CarID:         uuid.New(),
				PricePerDay:   500,
				BeginningDate: civil.Date{Year: 2015, Month: 2, Day: 11},
			},
		},
		{
			name: "returned rent",
			rec: rent.Record{
				ID:                 uuid.New(),
				CustomerID:         uuid.New(),
				CarID:              uuid.New(),
				PricePerDay:        1200,
				BeginningDate:      civil.Date{Year: 2016, Month: 3, Day: 24},
				ExpectedReturnDate: &expected,
				RealReturnDate:     &expected,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := RentToRow(tt.rec)
			assert.Equal(t, tt.rec.RealReturnDate != nil, row.RealReturnDate.Valid)

			got := RentFromRow(row)
			if diff := cmp.Diff(tt.rec, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
