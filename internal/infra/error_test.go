//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"car-rental/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		kind     []infra.RepositoryErrorKind
		wantKind infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "too many rows", err: pgx.ErrTooManyRows, wantKind: infra.KindDuplicateRow},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
		{name: "exclusion violation", err: &pgconn.PgError{Code: "23P01"}, wantKind: infra.KindConflict},
		{name: "statement timeout", err: &pgconn.PgError{Code: "57014"}, wantKind: infra.KindDBFailure},
		{name: "plain error", err: errors.New("connection refused"), wantKind: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("boom"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, wantKind: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed to do something", tc.err, tc.kind...)

			assert.True(t, infra.IsKind(err, tc.wantKind), "got %v", err)
			assert.ErrorIs(t, err, tc.err)
			assert.Contains(t, err.Error(), "failed to do something")
		})
	}

	t.Run("kind without cause", func(t *testing.T) {
		err := infra.WrapRepoErr("rent not found", nil, infra.KindNotFound)
		assert.Equal(t, "NOT_FOUND: rent not found", err.Error())
	})
}
