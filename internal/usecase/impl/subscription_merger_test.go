package impl

import (
	"context"
	"testing"

	"unify/internal/domain/repository"
	mockRepo "unify/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newPassthroughTxManager returns a transaction manager mock that runs the
// callback directly against the given factory, committing nothing.
func newPassthroughTxManager(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager
}

func TestSubscriptionMerger_Merge_TransfersAndDeletesDuplicates(t *testing.T) {
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewSubscriptionRepository().Return(subRepo).Maybe()
	merger := NewSubscriptionMerger(SubscriptionMergerParams{
		SubscriptionRepo: subRepo,
		TxManager:        newPassthroughTxManager(t, factory),
	})

	ctx := context.Background()
	sourceID := uuid.New()
	targetID := uuid.New()
	onlySource := uuid.New()
	shared := uuid.New()

	subRepo.EXPECT().
		ListCreatorIDsByUser(ctx, sourceID).
		Return([]uuid.UUID{onlySource, shared}, nil)

	subRepo.EXPECT().
		ListCreatorIDsByUserIn(ctx, targetID, []uuid.UUID{onlySource, shared}).
		Return([]uuid.UUID{shared}, nil)

	subRepo.EXPECT().
		ReassignOwner(ctx, sourceID, targetID, []uuid.UUID{onlySource}).
		Return(nil)

	subRepo.EXPECT().
		DeleteByUserAndCreators(ctx, sourceID, []uuid.UUID{shared}).
		Return(nil)

	snapshot, err := merger.Merge(ctx, sourceID, targetID)
	require.NoError(t, err)

	// The snapshot is the full pre-merge membership, duplicates included.
	assert.Equal(t, []uuid.UUID{onlySource, shared}, snapshot)
}

func TestSubscriptionMerger_Merge_EmptySource(t *testing.T) {
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	merger := NewSubscriptionMerger(SubscriptionMergerParams{
		SubscriptionRepo: subRepo,
		TxManager:        newPassthroughTxManager(t, factory),
	})

	ctx := context.Background()
	sourceID := uuid.New()
	targetID := uuid.New()

	subRepo.EXPECT().
		ListCreatorIDsByUser(ctx, sourceID).
		Return([]uuid.UUID{}, nil)

	snapshot, err := merger.Merge(ctx, sourceID, targetID)
	require.NoError(t, err)
	assert.Empty(t, snapshot)
}

func TestSubscriptionMerger_Merge_ListError(t *testing.T) {
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	merger := NewSubscriptionMerger(SubscriptionMergerParams{
		SubscriptionRepo: subRepo,
		TxManager:        newPassthroughTxManager(t, factory),
	})

	ctx := context.Background()
	sourceID := uuid.New()
	targetID := uuid.New()

	subRepo.EXPECT().
		ListCreatorIDsByUser(ctx, sourceID).
		Return(nil, errors.New("connection reset"))

	snapshot, err := merger.Merge(ctx, sourceID, targetID)
	require.Error(t, err)
	assert.Nil(t, snapshot)
}

func TestSubscriptionMerger_Merge_TransferFailureAborts(t *testing.T) {
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewSubscriptionRepository().Return(subRepo)
	merger := NewSubscriptionMerger(SubscriptionMergerParams{
		SubscriptionRepo: subRepo,
		TxManager:        newPassthroughTxManager(t, factory),
	})

	ctx := context.Background()
	sourceID := uuid.New()
	targetID := uuid.New()
	creatorID := uuid.New()

	subRepo.EXPECT().
		ListCreatorIDsByUser(ctx, sourceID).
		Return([]uuid.UUID{creatorID}, nil)

	subRepo.EXPECT().
		ListCreatorIDsByUserIn(ctx, targetID, []uuid.UUID{creatorID}).
		Return([]uuid.UUID{}, nil)

	subRepo.EXPECT().
		ReassignOwner(ctx, sourceID, targetID, []uuid.UUID{creatorID}).
		Return(repository.ErrDuplicateSubscription)

	snapshot, err := merger.Merge(ctx, sourceID, targetID)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrDuplicateSubscription)
	assert.Nil(t, snapshot)
}

func TestSubscriptionMerger_Rollback_RestoresTransferredOnly(t *testing.T) {
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewSubscriptionRepository().Return(subRepo)
	merger := NewSubscriptionMerger(SubscriptionMergerParams{
		SubscriptionRepo: subRepo,
		TxManager:        newPassthroughTxManager(t, factory),
	})

	ctx := context.Background()
	sourceID := uuid.New()
	targetID := uuid.New()
	transferred := uuid.New()
	deletedDuplicate := uuid.New()
	snapshotIDs := []uuid.UUID{transferred, deletedDuplicate}

	// Only the transferred creator still lives under the target; the deleted
	// duplicate does not resurface.
	subRepo.EXPECT().
		ListCreatorIDsByUserIn(ctx, targetID, snapshotIDs).
		Return([]uuid.UUID{transferred}, nil)

	subRepo.EXPECT().
		ReassignOwner(ctx, targetID, sourceID, []uuid.UUID{transferred}).
		Return(nil)

	err := merger.Rollback(ctx, sourceID, targetID, snapshotIDs)
	require.NoError(t, err)
}

func TestSubscriptionMerger_Rollback_EmptySnapshotNoOp(t *testing.T) {
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	merger := NewSubscriptionMerger(SubscriptionMergerParams{
		SubscriptionRepo: subRepo,
		TxManager:        newPassthroughTxManager(t, factory),
	})

	err := merger.Rollback(context.Background(), uuid.New(), uuid.New(), nil)
	require.NoError(t, err)
}

func TestSubscriptionMerger_Rollback_NothingUnderTarget(t *testing.T) {
	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	merger := NewSubscriptionMerger(SubscriptionMergerParams{
		SubscriptionRepo: subRepo,
		TxManager:        newPassthroughTxManager(t, factory),
	})

	ctx := context.Background()
	sourceID := uuid.New()
	targetID := uuid.New()
	creatorID := uuid.New()

	subRepo.EXPECT().
		ListCreatorIDsByUserIn(ctx, targetID, []uuid.UUID{creatorID}).
		Return([]uuid.UUID{}, nil)

	err := merger.Rollback(ctx, sourceID, targetID, []uuid.UUID{creatorID})
	require.NoError(t, err)
}
