//go:build unit

package memstore

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/customer"
	"car-rental/internal/domain/rent"
	"car-rental/internal/infra"
	"car-rental/internal/usecase/shared"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, uow shared.UnitOfWork) (carID, customerID uuid.UUID) {
	t.Helper()
	err := uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		if carID, err = tx.Cars().Create(ctx, car.New("Skoda", "1B2 3456")); err != nil {
			return err
		}
		customerID, err = tx.Customers().Create(ctx, customer.New("Jan", "Novak", "+420 777 123 456"))
		return err
	})
	require.NoError(t, err)
	return carID, customerID
}

func TestUoW_RollbackUndoesWrites(t *testing.T) {
	uow := NewUoW(New())
	carID, customerID := seed(t, uow)
	ctx := context.Background()

	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Rents().Create(ctx, rent.Record{
			CustomerID:    customerID,
			CarID:         carID,
			PricePerDay:   500,
			BeginningDate: civil.Date{Year: 2016, Month: 3, Day: 24},
		})
		require.NoError(t, err)

		n, err := tx.Cars().Update(ctx, &car.Car{ID: carID, Brand: "Audi", RegistrationNumber: "1B2 3456"})
		require.NoError(t, err)
		require.Equal(t, int64(1), n)

		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	err = uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rents, err := tx.Rents().FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, rents)

		c, err := tx.Cars().GetByID(ctx, carID)
		require.NoError(t, err)
		assert.Equal(t, "Skoda", c.Brand)
		return nil
	})
	require.NoError(t, err)
}

func TestUoW_ReadOnlyRejectsWrites(t *testing.T) {
	uow := NewUoW(New())

	err := uow.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Cars().Create(ctx, car.New("Skoda", "1B2 3456"))
		return err
	})

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestCarRepo_Constraints(t *testing.T) {
	uow := NewUoW(New())
	carID, customerID := seed(t, uow)
	ctx := context.Background()

	t.Run("duplicate registration number", func(t *testing.T) {
		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Cars().Create(ctx, car.New("Audi", "1B2 3456"))
			return err
		})
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("referenced car cannot be deleted", func(t *testing.T) {
		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if _, err := tx.Rents().Create(ctx, rent.Record{
				CustomerID:    customerID,
				CarID:         carID,
				PricePerDay:   500,
				BeginningDate: civil.Date{Year: 2015, Month: 2, Day: 11},
			}); err != nil {
				return err
			}
			_, err := tx.Cars().Delete(ctx, carID)
			return err
		})
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("rent of unknown car", func(t *testing.T) {
		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Rents().Create(ctx, rent.Record{
				CustomerID:    customerID,
				CarID:         uuid.New(),
				PricePerDay:   500,
				BeginningDate: civil.Date{Year: 2015, Month: 2, Day: 11},
			})
			return err
		})
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("missing car", func(t *testing.T) {
		err := uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Cars().GetByID(ctx, uuid.New())
			return err
		})
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestRentRepo_ReturnsCopies(t *testing.T) {
	uow := NewUoW(New())
	carID, customerID := seed(t, uow)
	ctx := context.Background()
	end := civil.Date{Year: 2016, Month: 3, Day: 29}

	var id uuid.UUID
	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Rents().Create(ctx, rent.Record{
			CustomerID:     customerID,
			CarID:          carID,
			PricePerDay:    500,
			BeginningDate:  civil.Date{Year: 2016, Month: 3, Day: 24},
			RealReturnDate: &end,
		})
		return err
	}))
	end.Day = 30

	require.NoError(t, uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, err := tx.Rents().GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 29, rec.RealReturnDate.Day)

		rec.RealReturnDate.Day = 1
		again, err := tx.Rents().GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 29, again.RealReturnDate.Day)
		return nil
	}))
}

func TestKeyedMutex(t *testing.T) {
	t.Run("same key serializes", func(t *testing.T) {
		k := newKeyedMutex()
		key := uuid.New()
		var inside int32

		require.NoError(t, k.Lock(context.Background(), key))

		done := make(chan struct{})
		go func() {
			defer close(done)
			if err := k.Lock(context.Background(), key); err != nil {
				return
			}
			atomic.StoreInt32(&inside, 1)
			k.Unlock(key)
		}()

		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, int32(0), atomic.LoadInt32(&inside))

		k.Unlock(key)
		<-done
		assert.Equal(t, int32(1), atomic.LoadInt32(&inside))
		assert.Empty(t, k.locks)
	})

	t.Run("other keys do not wait", func(t *testing.T) {
		k := newKeyedMutex()
		require.NoError(t, k.Lock(context.Background(), uuid.New()))

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, k.Lock(ctx, uuid.New()))
	})

	t.Run("waiting honours context", func(t *testing.T) {
		k := newKeyedMutex()
		key := uuid.New()
		require.NoError(t, k.Lock(context.Background(), key))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := k.Lock(ctx, key)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		k.Unlock(key)
		assert.Empty(t, k.locks)
	})
}
