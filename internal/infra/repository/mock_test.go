//go:build unit

package repository

import (
	"context"

	"car-rental/internal/infra/query"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockTableQueries[R any] struct {
	mock.Mock
}

func (m *MockTableQueries[R]) Insert(ctx context.Context, db query.DBTX, rec goqu.Record) (uuid.UUID, error) {
	args := m.Called(ctx, db, rec)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockTableQueries[R]) GetByID(ctx context.Context, db query.DBTX, id uuid.UUID) (R, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(R), args.Error(1)
}

func (m *MockTableQueries[R]) LockByID(ctx context.Context, db query.DBTX, id uuid.UUID) (R, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(R), args.Error(1)
}

func (m *MockTableQueries[R]) Update(ctx context.Context, db query.DBTX, id uuid.UUID, rec goqu.Record) (int64, error) {
	args := m.Called(ctx, db, id, rec)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTableQueries[R]) Delete(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTableQueries[R]) Find(ctx context.Context, db query.DBTX, where goqu.Ex) ([]R, error) {
	args := m.Called(ctx, db, where)
	return args.Get(0).([]R), args.Error(1)
}
