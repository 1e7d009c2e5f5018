// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"unify/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrDuplicateSubscription is returned when a write would create a second
	// row for the same (user, creator) pair.
	ErrDuplicateSubscription = errors.New("subscription already exists")
)

// SubscriptionRepository is the narrow store contract the subscription merger
// consumes. Reads classify membership; the two writes are the bulk mutation
// step and are expected to run inside one transaction via TransactionManager.
type SubscriptionRepository interface {
	// ListCreatorIDsByUser returns every creator the user is subscribed to.
	ListCreatorIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// ListCreatorIDsByUserIn returns the subset of creatorIDs the user is
	// subscribed to. Used for duplicate detection against the target identity.
	ListCreatorIDsByUserIn(ctx context.Context, userID uuid.UUID, creatorIDs []uuid.UUID) ([]uuid.UUID, error)

	// ReassignOwner moves ownership of the rows matching (fromUserID, creatorIDs)
	// to toUserID, leaving all other fields untouched.
	ReassignOwner(ctx context.Context, fromUserID, toUserID uuid.UUID, creatorIDs []uuid.UUID) error

	// DeleteByUserAndCreators removes the rows matching (userID, creatorIDs).
	DeleteByUserAndCreators(ctx context.Context, userID uuid.UUID, creatorIDs []uuid.UUID) error
}
