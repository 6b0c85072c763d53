package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// keyedMutex hands out one mutex per key. Waiting for a key honours ctx.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*keyLock
}

type keyLock struct {
	held chan struct{}
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[uuid.UUID]*keyLock)}
}

func (k *keyedMutex) Lock(ctx context.Context, key uuid.UUID) error {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{held: make(chan struct{}, 1)}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	select {
	case l.held <- struct{}{}:
		return nil
	case <-ctx.Done():
		k.mu.Lock()
		k.release(key, l)
		k.mu.Unlock()
		return ctx.Err()
	}
}

func (k *keyedMutex) Unlock(key uuid.UUID) {
	k.mu.Lock()
	defer k.mu.Unlock()

	l, ok := k.locks[key]
	if !ok {
		return
	}
	<-l.held
	k.release(key, l)
}

// release drops one reference; k.mu must be held.
func (k *keyedMutex) release(key uuid.UUID, l *keyLock) {
	l.refs--
	if l.refs == 0 {
		delete(k.locks, key)
	}
}
