package memstore

import (
	"context"

	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	errNoRow    = errs.New("no such row")
	errReadOnly = errs.New("write in read-only unit of work")
)

type UoW struct {
	store *Store
}

func NewUoW(store *Store) shared.UnitOfWork {
	return &UoW{store: store}
}

// Within runs fn and undoes its writes when it fails. Car locks taken
// through Cars().LockByID are released when fn returns.
func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{store: u.store}
	defer tx.releaseLocks()

	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

func (u *UoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{store: u.store, readOnly: true}
	defer tx.releaseLocks()

	return fn(ctx, tx)
}

type memTx struct {
	store    *Store
	readOnly bool
	undo     []func()
	locked   []uuid.UUID
}

func (t *memTx) Cars() shared.CarRepository {
	return &carRepo{tx: t}
}

func (t *memTx) Customers() shared.CustomerRepository {
	return &customerRepo{tx: t}
}

func (t *memTx) Rents() shared.RentRepository {
	return &rentRepo{tx: t}
}

func (t *memTx) lockCar(ctx context.Context, id uuid.UUID) error {
	for _, held := range t.locked {
		if held == id {
			return nil
		}
	}
	if err := t.store.carLocks.Lock(ctx, id); err != nil {
		return err
	}
	t.locked = append(t.locked, id)
	return nil
}

func (t *memTx) releaseLocks() {
	for i := len(t.locked) - 1; i >= 0; i-- {
		t.store.carLocks.Unlock(t.locked[i])
	}
	t.locked = nil
}

func (t *memTx) rollback() {
	if len(t.undo) == 0 {
		return
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

// write runs fn under the store's write lock and keeps the undo step it
// returns.
func (t *memTx) write(fn func() (func(), error)) error {
	if t.readOnly {
		return infra.WrapRepoErr("write rejected", errReadOnly, infra.KindDBFailure)
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	undo, err := fn()
	if err != nil {
		return err
	}
	if undo != nil {
		t.undo = append(t.undo, undo)
	}
	return nil
}

func (t *memTx) read(fn func()) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	fn()
}

func notFound(entity string) error {
	return infra.WrapRepoErr(entity+" not found", errNoRow, infra.KindNotFound)
}
