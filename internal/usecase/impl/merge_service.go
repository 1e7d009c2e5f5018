package impl

import (
	"context"
	"log/slog"
	"time"

	"unify/internal/domain/entity"
	"unify/internal/domain/repository"
	"unify/internal/domain/service"
	"unify/internal/errors"
	"unify/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type mergeService struct {
	subscriptionMerger usecase.SubscriptionMerger
	interactionMerger  usecase.InteractionMerger
	mergeOpRepo        repository.MergeOperationRepository
	pairLocker         service.PairLocker
	logger             *slog.Logger
}

// MergeServiceParams holds dependencies for the merge orchestrator, injected by Fx.
type MergeServiceParams struct {
	fx.In

	SubscriptionMerger usecase.SubscriptionMerger
	InteractionMerger  usecase.InteractionMerger
	MergeOpRepo        repository.MergeOperationRepository
	PairLocker         service.PairLocker
	Logger             *slog.Logger
}

// NewMergeService creates the merge orchestrator
func NewMergeService(params MergeServiceParams) usecase.MergeOrchestrator {
	return &mergeService{
		subscriptionMerger: params.SubscriptionMerger,
		interactionMerger:  params.InteractionMerger,
		mergeOpRepo:        params.MergeOpRepo,
		pairLocker:         params.PairLocker,
		logger:             params.Logger,
	}
}

// MergeUserData consolidates the source identity's engagement data into the
// target: subscriptions first, then interactions, each committing on its own.
// The returned snapshot is the source's complete pre-merge membership; the
// caller must persist it to be able to roll back.
//
// A subscription-step failure leaves both stores untouched. An
// interaction-step failure leaves subscriptions already migrated: the error
// propagates together with the partial snapshot captured so far, so the
// caller can drive a compensation for the half that committed.
func (s *mergeService) MergeUserData(ctx context.Context, sourceUserID, targetUserID uuid.UUID) (*entity.MergeSnapshot, error) {
	if sourceUserID == targetUserID {
		return nil, usecase.ErrSameIdentity
	}

	release, err := s.pairLocker.Acquire(ctx, sourceUserID, targetUserID)
	if err != nil {
		return nil, err
	}
	defer release()

	op := s.beginOperation(ctx, sourceUserID, targetUserID)

	creatorIDs, err := s.subscriptionMerger.Merge(ctx, sourceUserID, targetUserID)
	if err != nil {
		s.failOperation(ctx, op, err)

		return nil, err
	}

	s.recordSnapshot(ctx, op, creatorIDs, nil)
	s.advanceStage(ctx, op, entity.StageSubscriptionsDone)

	contentIDs, err := s.interactionMerger.Merge(ctx, sourceUserID, targetUserID)
	if err != nil {
		s.failOperation(ctx, op, err)

		// Subscriptions are already committed. Hand back the fragment that
		// was captured so the caller is not left blind about the half-merged
		// state.
		return &entity.MergeSnapshot{SourceCreatorIDs: creatorIDs}, err
	}

	s.recordSnapshot(ctx, op, creatorIDs, contentIDs)
	s.advanceStage(ctx, op, entity.StageInteractionsDone)

	s.logger.Info("account merge completed",
		slog.String("source_user_id", sourceUserID.String()),
		slog.String("target_user_id", targetUserID.String()),
		slog.Int("creator_count", len(creatorIDs)),
		slog.Int("content_count", len(contentIDs)),
	)

	return &entity.MergeSnapshot{
		SourceCreatorIDs: creatorIDs,
		SourceContentIDs: contentIDs,
	}, nil
}

// RollbackMerge undoes a previous merge using the caller-persisted snapshot.
// Rollback is a best-effort compensating action: both domains are attempted
// regardless of individual failure and all errors are joined. A missing or
// empty snapshot fragment is "nothing to roll back" for that domain, not an
// error.
//
// The restored state is an approximation of the pre-merge state, not an
// exact replay. Duplicates deleted at merge time are never recreated, and a
// snapshot id the target already owned independently before the merge is
// indistinguishable from a transferred row, so the target's own copy moves
// to the source as well.
func (s *mergeService) RollbackMerge(ctx context.Context, sourceUserID, targetUserID uuid.UUID, snapshot *entity.MergeSnapshot) error {
	if sourceUserID == targetUserID {
		return usecase.ErrSameIdentity
	}

	if snapshot.IsEmpty() {
		return nil
	}

	release, err := s.pairLocker.Acquire(ctx, sourceUserID, targetUserID)
	if err != nil {
		return err
	}
	defer release()

	subErr := s.subscriptionMerger.Rollback(ctx, sourceUserID, targetUserID, snapshot.SourceCreatorIDs)
	intErr := s.interactionMerger.Rollback(ctx, sourceUserID, targetUserID, snapshot.SourceContentIDs)

	op := &entity.MergeOperation{
		ID:           uuid.New(),
		SourceUserID: sourceUserID,
		TargetUserID: targetUserID,
		Stage:        entity.StageRolledBack,
		CreatorIDs:   snapshot.SourceCreatorIDs,
		ContentIDs:   snapshot.SourceContentIDs,
	}

	if joined := errors.Join(subErr, intErr); joined != nil {
		op.Stage = entity.StageFailed
		op.Failure = joined.Error()
		s.createOperation(ctx, op)

		return joined
	}

	s.createOperation(ctx, op)

	s.logger.Info("account merge rolled back",
		slog.String("source_user_id", sourceUserID.String()),
		slog.String("target_user_id", targetUserID.String()),
	)

	return nil
}

// beginOperation opens the audit trail row for a merge. The trail is written
// outside the domain transactions and is best-effort: a failure to record it
// is logged and never fails the merge.
func (s *mergeService) beginOperation(ctx context.Context, sourceUserID, targetUserID uuid.UUID) *entity.MergeOperation {
	op := &entity.MergeOperation{
		ID:           uuid.New(),
		SourceUserID: sourceUserID,
		TargetUserID: targetUserID,
		Stage:        entity.StagePending,
		CreatedAt:    time.Now(),
	}
	s.createOperation(ctx, op)

	return op
}

func (s *mergeService) createOperation(ctx context.Context, op *entity.MergeOperation) {
	if err := s.mergeOpRepo.Create(ctx, op); err != nil {
		s.logger.Warn("failed to record merge operation",
			slog.String("operation_id", op.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *mergeService) advanceStage(ctx context.Context, op *entity.MergeOperation, stage entity.MergeStage) {
	op.Stage = stage
	if err := s.mergeOpRepo.UpdateStage(ctx, op.ID, stage); err != nil {
		s.logger.Warn("failed to advance merge operation stage",
			slog.String("operation_id", op.ID.String()),
			slog.String("stage", string(stage)),
			slog.Any("error", err),
		)
	}
}

func (s *mergeService) recordSnapshot(ctx context.Context, op *entity.MergeOperation, creatorIDs, contentIDs []uuid.UUID) {
	op.CreatorIDs = creatorIDs
	op.ContentIDs = contentIDs
	if err := s.mergeOpRepo.UpdateSnapshot(ctx, op.ID, creatorIDs, contentIDs); err != nil {
		s.logger.Warn("failed to record merge snapshot",
			slog.String("operation_id", op.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *mergeService) failOperation(ctx context.Context, op *entity.MergeOperation, cause error) {
	op.Stage = entity.StageFailed
	op.Failure = cause.Error()
	if err := s.mergeOpRepo.MarkFailed(ctx, op.ID, cause.Error()); err != nil {
		s.logger.Warn("failed to mark merge operation failed",
			slog.String("operation_id", op.ID.String()),
			slog.Any("error", err),
		)
	}
}
