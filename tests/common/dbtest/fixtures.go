//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"car-rental/internal/infra/query"
	"car-rental/tests/common/builder"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestCar(t *testing.T, db DBLike, brand, registrationNumber string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO car (brand, registration_number) VALUES ($1, $2) RETURNING id",
		brand, registrationNumber).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestCustomer(t *testing.T, db DBLike, name, surname string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO customer (name, surname, phone_number) VALUES ($1, $2, $3) RETURNING id",
		name, surname, "+420 777 000 000").Scan(&id)
	require.NoError(t, err)

	return id
}

// CreateTestRent stores a rent directly; a nil end leaves it open.
func CreateTestRent(t *testing.T, db DBLike, carID, customerID uuid.UUID, begin civil.Date, end *civil.Date) uuid.UUID {
	t.Helper()

	var endArg any
	if end != nil {
		endArg = end.In(time.UTC)
	}

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO rent (customer_id, car_id, price_per_day, beginning_date, expected_return_date, real_return_date) VALUES ($1, $2, $3, $4, $5, $5) RETURNING id",
		customerID, carID, builder.NewRentBuilder().PricePerDay, begin.In(time.UTC), endArg).Scan(&id)
	require.NoError(t, err)

	return id
}

func CountRents(t *testing.T, db DBLike, carID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM "+query.TableRent+" WHERE car_id = $1", carID).Scan(&n)
	require.NoError(t, err)

	return n
}

// truncates every ledger table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE "+query.TableRent+", "+query.TableCar+", "+query.TableCustomer+" CASCADE")
	return err
}
