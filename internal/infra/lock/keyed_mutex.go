// Package lock provides the pair lock implementations behind service.PairLocker.
package lock

import (
	"context"
	"sync"
	"time"

	"unify/internal/domain/service"

	"github.com/google/uuid"
)

// keyedMutex is an in-process PairLocker. Each pair key owns one channel
// semaphore; entries are reference counted and removed once the last waiter
// releases, so the map does not grow with the number of pairs ever merged.
//
// Suitable for single-instance deployments only. Multi-instance deployments
// must use the redis provider.
type keyedMutex struct {
	mu             sync.Mutex
	locks          map[string]*keyedLockEntry
	acquireTimeout time.Duration
}

type keyedLockEntry struct {
	sem  chan struct{}
	refs int
}

// NewKeyedMutex creates an in-process pair locker. A waiter that cannot take
// the lock within acquireTimeout receives service.ErrPairLocked.
func NewKeyedMutex(acquireTimeout time.Duration) service.PairLocker {
	return &keyedMutex{
		locks:          make(map[string]*keyedLockEntry),
		acquireTimeout: acquireTimeout,
	}
}

// Acquire blocks until the lock for the (a, b) pair is held, the acquire
// timeout elapses, or ctx ends.
func (m *keyedMutex) Acquire(ctx context.Context, a, b uuid.UUID) (func(), error) {
	key := service.PairKey(a, b)

	m.mu.Lock()
	entry, ok := m.locks[key]
	if !ok {
		entry = &keyedLockEntry{sem: make(chan struct{}, 1)}
		m.locks[key] = entry
	}
	entry.refs++
	m.mu.Unlock()

	timer := time.NewTimer(m.acquireTimeout)
	defer timer.Stop()

	select {
	case entry.sem <- struct{}{}:
		return func() { m.release(key, entry) }, nil
	case <-timer.C:
		m.unref(key, entry)

		return nil, service.ErrPairLocked
	case <-ctx.Done():
		m.unref(key, entry)

		return nil, ctx.Err()
	}
}

func (m *keyedMutex) release(key string, entry *keyedLockEntry) {
	<-entry.sem
	m.unref(key, entry)
}

func (m *keyedMutex) unref(key string, entry *keyedLockEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(m.locks, key)
	}
}
