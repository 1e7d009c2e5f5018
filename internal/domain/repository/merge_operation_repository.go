package repository

import (
	"context"

	"unify/internal/domain/entity"

	"github.com/google/uuid"
)

// MergeOperationRepository persists the audit trail of merge and rollback
// runs. Writes are best-effort and happen outside the domain transactions;
// a failure here must never fail the merge itself.
type MergeOperationRepository interface {
	// Create persists a new operation row in its initial stage.
	Create(ctx context.Context, op *entity.MergeOperation) error

	// UpdateStage advances the stage marker of an operation.
	UpdateStage(ctx context.Context, id uuid.UUID, stage entity.MergeStage) error

	// UpdateSnapshot records the captured snapshot fragments on an operation.
	UpdateSnapshot(ctx context.Context, id uuid.UUID, creatorIDs, contentIDs []uuid.UUID) error

	// MarkFailed sets the failed stage together with the failure message.
	MarkFailed(ctx context.Context, id uuid.UUID, failure string) error
}
