package repository

import (
	"context"

	"unify/internal/errors"

	"github.com/google/uuid"
)

// ErrDuplicateInteraction is returned when a write would create a second row
// for the same (user, content) pair.
var ErrDuplicateInteraction = errors.New("interaction already exists")

// InteractionRepository is the narrow store contract the interaction merger
// consumes. Structurally parallel to SubscriptionRepository, keyed by
// (userID, contentID).
type InteractionRepository interface {
	// ListContentIDsByUser returns every content item the user has an
	// engagement record with.
	ListContentIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// ListContentIDsByUserIn returns the subset of contentIDs the user has an
	// engagement record with. Used for duplicate detection against the target.
	ListContentIDsByUserIn(ctx context.Context, userID uuid.UUID, contentIDs []uuid.UUID) ([]uuid.UUID, error)

	// ReassignOwner moves ownership of the rows matching (fromUserID, contentIDs)
	// to toUserID, leaving all engagement fields untouched.
	ReassignOwner(ctx context.Context, fromUserID, toUserID uuid.UUID, contentIDs []uuid.UUID) error

	// DeleteByUserAndContents removes the rows matching (userID, contentIDs).
	DeleteByUserAndContents(ctx context.Context, userID uuid.UUID, contentIDs []uuid.UUID) error
}
