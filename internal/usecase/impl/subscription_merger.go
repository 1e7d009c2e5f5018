package impl

import (
	"context"

	"unify/internal/domain/repository"
	"unify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type subscriptionMerger struct {
	subscriptionRepo repository.SubscriptionRepository
	txManager        repository.TransactionManager
}

// SubscriptionMergerParams holds dependencies for SubscriptionMerger, injected by Fx.
type SubscriptionMergerParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	TxManager        repository.TransactionManager
}

// NewSubscriptionMerger creates a new subscription merger instance
func NewSubscriptionMerger(params SubscriptionMergerParams) usecase.SubscriptionMerger {
	return &subscriptionMerger{
		subscriptionRepo: params.SubscriptionRepo,
		txManager:        params.TxManager,
	}
}

// Merge migrates the source's creator subscriptions to the target.
//
// The returned slice is the source's complete pre-merge membership, captured
// before any mutation. It includes the duplicates that get deleted below:
// rollback needs the full set to tell transferred rows (which exist under the
// target) apart from duplicate rows (which are gone and not restorable).
func (m *subscriptionMerger) Merge(ctx context.Context, sourceUserID, targetUserID uuid.UUID) ([]uuid.UUID, error) {
	sourceCreatorIDs, err := m.subscriptionRepo.ListCreatorIDsByUser(ctx, sourceUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list source creator subscriptions")
	}

	if len(sourceCreatorIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	targetOwned, err := m.subscriptionRepo.ListCreatorIDsByUserIn(ctx, targetUserID, sourceCreatorIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list target creator subscriptions")
	}

	transfer, duplicate := classifyTransfer(sourceCreatorIDs, targetOwned)

	// Transfer and duplicate-deletion commit atomically for this domain.
	// The target's existing rows keep their own notification preference; the
	// source's duplicate preference is discarded here, permanently.
	err = m.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txRepo := factory.NewSubscriptionRepository()

		if len(transfer) > 0 {
			if err := txRepo.ReassignOwner(ctx, sourceUserID, targetUserID, transfer); err != nil {
				return errors.Wrap(err, "failed to transfer subscriptions")
			}
		}

		if len(duplicate) > 0 {
			if err := txRepo.DeleteByUserAndCreators(ctx, sourceUserID, duplicate); err != nil {
				return errors.Wrap(err, "failed to delete duplicate subscriptions")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sourceCreatorIDs, nil
}

// Rollback restores source ownership for the creators that were transferred.
//
// Which rows were transferred is recovered by reading which of creatorIDs the
// target currently owns. If the target legitimately owned one of them before
// the merge it is indistinguishable from a transferred row and moves to the
// source too; that approximation is inherent to the snapshot contract.
// Duplicates deleted during merge are never recreated.
func (m *subscriptionMerger) Rollback(ctx context.Context, sourceUserID, targetUserID uuid.UUID, creatorIDs []uuid.UUID) error {
	if len(creatorIDs) == 0 {
		return nil
	}

	transferred, err := m.subscriptionRepo.ListCreatorIDsByUserIn(ctx, targetUserID, creatorIDs)
	if err != nil {
		return errors.Wrap(err, "failed to list transferred subscriptions")
	}

	if len(transferred) == 0 {
		return nil
	}

	return m.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txRepo := factory.NewSubscriptionRepository()

		if err := txRepo.ReassignOwner(ctx, targetUserID, sourceUserID, transferred); err != nil {
			return errors.Wrap(err, "failed to restore subscriptions to source")
		}

		return nil
	})
}
