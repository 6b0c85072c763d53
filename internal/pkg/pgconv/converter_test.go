//go:build unit

package pgconv_test

import (
	"fmt"
	"testing"
	"time"

	"car-rental/internal/pkg/pgconv"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateConversion(t *testing.T) {
	d := civil.Date{Year: 2016, Month: time.March, Day: 24}

	t.Run("round trip keeps the calendar date", func(t *testing.T) {
		pd := pgconv.DateToPgtype(d)
		require.True(t, pd.Valid)
		assert.Equal(t, d, pgconv.DateFromPgtype(pd))
	})

	t.Run("nil pointer becomes SQL NULL", func(t *testing.T) {
		pd := pgconv.DatePtrToPgtype(nil)
		assert.False(t, pd.Valid)
		assert.Nil(t, pgconv.DatePtrFromPgtype(pd))
	})

	t.Run("pointer round trip", func(t *testing.T) {
		got := pgconv.DatePtrFromPgtype(pgconv.DatePtrToPgtype(&d))
		require.NotNil(t, got)
		assert.Equal(t, d, *got)
	})

	t.Run("date read in a non-UTC zone keeps its wall date", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		pd := pgtype.Date{Time: time.Date(2015, time.February, 11, 0, 0, 0, 0, tokyo), Valid: true}
		assert.Equal(t, civil.Date{Year: 2015, Month: time.February, Day: 11}, pgconv.DateFromPgtype(pd))
	})
}

func TestUUIDConversion(t *testing.T) {
	id := uuid.New()
	got := pgconv.UUIDPtrFromPgtype(pgconv.UUIDToPgtype(id))
	require.NotNil(t, got)
	assert.Equal(t, id, *got)
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgtype.UUID{}))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("get rent: %w", pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}
