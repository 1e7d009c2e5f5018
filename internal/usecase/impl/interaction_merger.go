package impl

import (
	"context"

	"unify/internal/domain/repository"
	"unify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type interactionMerger struct {
	interactionRepo repository.InteractionRepository
	txManager       repository.TransactionManager
}

// InteractionMergerParams holds dependencies for InteractionMerger, injected by Fx.
type InteractionMergerParams struct {
	fx.In

	InteractionRepo repository.InteractionRepository
	TxManager       repository.TransactionManager
}

// NewInteractionMerger creates a new interaction merger instance
func NewInteractionMerger(params InteractionMergerParams) usecase.InteractionMerger {
	return &interactionMerger{
		interactionRepo: params.InteractionRepo,
		txManager:       params.TxManager,
	}
}

// Merge migrates the source's content interactions to the target, mirroring
// the subscription merge: unique rows are transferred, rows whose content the
// target already has an engagement record for are deleted. The target's
// bookmark/like/watch/rating fields are never overwritten by the source's.
func (m *interactionMerger) Merge(ctx context.Context, sourceUserID, targetUserID uuid.UUID) ([]uuid.UUID, error) {
	sourceContentIDs, err := m.interactionRepo.ListContentIDsByUser(ctx, sourceUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list source content interactions")
	}

	if len(sourceContentIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	targetOwned, err := m.interactionRepo.ListContentIDsByUserIn(ctx, targetUserID, sourceContentIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list target content interactions")
	}

	transfer, duplicate := classifyTransfer(sourceContentIDs, targetOwned)

	err = m.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txRepo := factory.NewInteractionRepository()

		if len(transfer) > 0 {
			if err := txRepo.ReassignOwner(ctx, sourceUserID, targetUserID, transfer); err != nil {
				return errors.Wrap(err, "failed to transfer interactions")
			}
		}

		if len(duplicate) > 0 {
			if err := txRepo.DeleteByUserAndContents(ctx, sourceUserID, duplicate); err != nil {
				return errors.Wrap(err, "failed to delete duplicate interactions")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sourceContentIDs, nil
}

// Rollback restores source ownership for the content ids currently owned by
// the target. Same approximation and same lossy-duplicate semantics as the
// subscription rollback.
func (m *interactionMerger) Rollback(ctx context.Context, sourceUserID, targetUserID uuid.UUID, contentIDs []uuid.UUID) error {
	if len(contentIDs) == 0 {
		return nil
	}

	transferred, err := m.interactionRepo.ListContentIDsByUserIn(ctx, targetUserID, contentIDs)
	if err != nil {
		return errors.Wrap(err, "failed to list transferred interactions")
	}

	if len(transferred) == 0 {
		return nil
	}

	return m.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txRepo := factory.NewInteractionRepository()

		if err := txRepo.ReassignOwner(ctx, targetUserID, sourceUserID, transferred); err != nil {
			return errors.Wrap(err, "failed to restore interactions to source")
		}

		return nil
	})
}
