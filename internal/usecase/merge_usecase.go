package usecase

import (
	"context"

	"unify/internal/domain/entity"
	"unify/internal/errors"

	"github.com/google/uuid"
)

// ErrSameIdentity is returned when a merge or rollback names the same user as
// both source and target. Letting it through would classify every row as a
// duplicate and delete the user's entire engagement data.
var ErrSameIdentity = errors.New("source and target identity must be different")

// SubscriptionMerger migrates creator-subscription rows between two user
// identities. Merge returns the source's full pre-merge creator membership
// as the snapshot fragment a later Rollback consumes.
type SubscriptionMerger interface {
	// Merge moves the source's subscriptions to the target. Rows whose
	// creator already exists under the target are deleted instead of moved;
	// the target's own row and its notification preference stay untouched.
	Merge(ctx context.Context, sourceUserID, targetUserID uuid.UUID) ([]uuid.UUID, error)

	// Rollback restores source ownership for the subset of creatorIDs that
	// currently live under the target. Duplicates deleted during merge are
	// never recreated.
	Rollback(ctx context.Context, sourceUserID, targetUserID uuid.UUID, creatorIDs []uuid.UUID) error
}

// InteractionMerger migrates content-interaction rows between two user
// identities. Structurally parallel to SubscriptionMerger, keyed by content.
type InteractionMerger interface {
	Merge(ctx context.Context, sourceUserID, targetUserID uuid.UUID) ([]uuid.UUID, error)
	Rollback(ctx context.Context, sourceUserID, targetUserID uuid.UUID, contentIDs []uuid.UUID) error
}

// MergeOrchestrator sequences the two domain mergers into the account-merge
// saga and the compensating rollback. Each merger commits independently;
// there is no transaction spanning both domains.
type MergeOrchestrator interface {
	// MergeUserData runs the subscription merge, then the interaction merge,
	// and returns the combined snapshot of the source's pre-merge membership.
	// If the interaction step fails after the subscription step committed, the
	// partial snapshot captured so far is returned together with the error so
	// the caller can still drive a compensation.
	MergeUserData(ctx context.Context, sourceUserID, targetUserID uuid.UUID) (*entity.MergeSnapshot, error)

	// RollbackMerge undoes a previous merge using the caller-persisted
	// snapshot. Both domains are attempted regardless of individual failure;
	// all errors are joined and reported. An empty or missing snapshot
	// fragment means nothing to roll back for that domain.
	RollbackMerge(ctx context.Context, sourceUserID, targetUserID uuid.UUID, snapshot *entity.MergeSnapshot) error
}
