//go:build unit

package usecase

import (
	"context"
	"testing"

	"car-rental/internal/domain/customer"
	"car-rental/internal/infra/memstore"
	"car-rental/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerManager(t *testing.T) {
	m, err := NewCustomerManager(memstore.NewUoW(memstore.New()), discardLogger())
	require.NoError(t, err)
	ctx := context.Background()

	jan := customer.New("Jan", "Novak", "+420 777 123 456")
	eva := customer.New("Eva", "Novak", "+420 777 654 321")
	petr := customer.New("Petr", "Svoboda", "+420 602 000 111")
	for _, c := range []*customer.Customer{jan, eva, petr} {
		require.NoError(t, m.Create(ctx, c))
	}

	t.Run("get", func(t *testing.T) {
		got, err := m.GetByID(ctx, eva.ID)
		require.NoError(t, err)
		assert.Equal(t, eva, got)
	})

	t.Run("find by surname", func(t *testing.T) {
		novaks, err := m.FindBySurname(ctx, "Novak")
		require.NoError(t, err)
		assert.Len(t, novaks, 2)
	})

	t.Run("find by name", func(t *testing.T) {
		found, err := m.FindByName(ctx, "Petr")
		require.NoError(t, err)
		assert.Equal(t, []*customer.Customer{petr}, found)

		found, err = m.FindByName(ctx, "Novak")
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("find by phone number", func(t *testing.T) {
		found, err := m.FindByPhoneNumber(ctx, "+420 777 654 321")
		require.NoError(t, err)
		assert.Equal(t, []*customer.Customer{eva}, found)
	})

	t.Run("update", func(t *testing.T) {
		petr.PhoneNumber = "+420 602 999 999"
		require.NoError(t, m.Update(ctx, petr))

		got, err := m.GetByID(ctx, petr.ID)
		require.NoError(t, err)
		assert.Equal(t, "+420 602 999 999", got.PhoneNumber)
	})

	t.Run("invalid", func(t *testing.T) {
		assert.Equal(t, errs.KindInvalidArgument, errs.KindOf(m.Create(ctx, nil)))
		assert.Equal(t, errs.KindInvalidEntity, errs.KindOf(m.Create(ctx, customer.New("Jan", "", "1"))))
		assert.Equal(t, errs.KindInvalidArgument, errs.KindOf(m.Update(ctx, customer.New("Jan", "Novak", "1"))))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, m.Delete(ctx, jan.ID))
		assert.Equal(t, errs.KindNotFound, errs.KindOf(m.Delete(ctx, jan.ID)))
		assert.Equal(t, errs.KindInvalidArgument, errs.KindOf(m.Delete(ctx, uuid.Nil)))

		all, err := m.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}
