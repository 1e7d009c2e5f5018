package service

import (
	"context"

	"unify/internal/errors"

	"github.com/google/uuid"
)

// ErrPairLocked is returned when the pair lock cannot be acquired before the
// configured timeout, meaning another merge or rollback for the same pair is
// in flight.
var ErrPairLocked = errors.New("another operation for this identity pair is in progress")

// PairLocker serializes merge and rollback operations per identity pair.
// Both operations read membership, classify, then mutate; two of them
// interleaving on the same pair can double-transfer a row or delete one
// mid-transfer, so exclusion is a correctness requirement, not an option.
type PairLocker interface {
	// Acquire blocks until the lock for the (a, b) pair is held or ctx ends.
	// The returned release function must be called exactly once.
	Acquire(ctx context.Context, a, b uuid.UUID) (release func(), err error)
}

// PairKey derives the canonical lock key for two identities. The key is
// order-independent so (source, target) and (target, source) serialize
// against each other.
func PairKey(a, b uuid.UUID) string {
	if a.String() < b.String() {
		return a.String() + ":" + b.String()
	}

	return b.String() + ":" + a.String()
}
