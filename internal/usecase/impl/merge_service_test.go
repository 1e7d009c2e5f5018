package impl

import (
	"context"
	"log/slog"
	"testing"

	"unify/internal/domain/entity"
	"unify/internal/domain/service"
	mockRepo "unify/internal/mocks/repository"
	mockService "unify/internal/mocks/service"
	mockUsecase "unify/internal/mocks/usecase"
	"unify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mergeServiceMocks struct {
	subscriptionMerger *mockUsecase.MockSubscriptionMerger
	interactionMerger  *mockUsecase.MockInteractionMerger
	mergeOpRepo        *mockRepo.MockMergeOperationRepository
	pairLocker         *mockService.MockPairLocker
}

func newMergeService(t *testing.T) (usecase.MergeOrchestrator, *mergeServiceMocks) {
	mocks := &mergeServiceMocks{
		subscriptionMerger: mockUsecase.NewMockSubscriptionMerger(t),
		interactionMerger:  mockUsecase.NewMockInteractionMerger(t),
		mergeOpRepo:        mockRepo.NewMockMergeOperationRepository(t),
		pairLocker:         mockService.NewMockPairLocker(t),
	}

	svc := NewMergeService(MergeServiceParams{
		SubscriptionMerger: mocks.subscriptionMerger,
		InteractionMerger:  mocks.interactionMerger,
		MergeOpRepo:        mocks.mergeOpRepo,
		PairLocker:         mocks.pairLocker,
		Logger:             slog.Default(),
	})

	return svc, mocks
}

// allowAuditWrites lets the best-effort audit trail succeed without pinning
// down the exact call sequence.
func (m *mergeServiceMocks) allowAuditWrites() {
	m.mergeOpRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Maybe()
	m.mergeOpRepo.EXPECT().UpdateStage(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.mergeOpRepo.EXPECT().UpdateSnapshot(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.mergeOpRepo.EXPECT().MarkFailed(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (m *mergeServiceMocks) expectLock(sourceID, targetID uuid.UUID, released *bool) {
	m.pairLocker.EXPECT().
		Acquire(mock.Anything, sourceID, targetID).
		Return(func() { *released = true }, nil)
}

func TestMergeService_MergeUserData_Success(t *testing.T) {
	svc, mocks := newMergeService(t)
	ctx := context.Background()
	sourceID := uuid.New()
	targetID := uuid.New()
	creatorIDs := []uuid.UUID{uuid.New(), uuid.New()}
	contentIDs := []uuid.UUID{uuid.New()}

	var released bool
	mocks.expectLock(sourceID, targetID, &released)
	mocks.allowAuditWrites()

	mocks.subscriptionMerger.EXPECT().
		Merge(ctx, sourceID, targetID).
		Return(creatorIDs, nil)

	mocks.interactionMerger.EXPECT().
		Merge(ctx, sourceID, targetID).
		Return(contentIDs, nil)

	snapshot, err := svc.MergeUserData(ctx, sourceID, targetID)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, creatorIDs, snapshot.SourceCreatorIDs)
	assert.Equal(t, contentIDs, snapshot.SourceContentIDs)
	assert.True(t, released)
}

func TestMergeService_MergeUserData_SameIdentity(t *testing.T) {
	svc, _ := newMergeService(t)
	id := uuid.New()

	snapshot, err := svc.MergeUserData(context.Background(), id, id)
	assert.ErrorIs(t, err, usecase.ErrSameIdentity)
	assert.Nil(t, snapshot)
}

func TestMergeService_MergeUserData_PairLocked(t *testing.T) {
	svc, mocks := newMergeService(t)
	sourceID := uuid.New()
	targetID := uuid.New()

	mocks.pairLocker.EXPECT().
		Acquire(mock.Anything, sourceID, targetID).
		Return(nil, service.ErrPairLocked)

	snapshot, err := svc.MergeUserData(context.Background(), sourceID, targetID)
	assert.ErrorIs(t, err, service.ErrPairLocked)
	assert.Nil(t, snapshot)
}

func TestMergeService_MergeUserData_SubscriptionFailure(t *testing.T) {
	svc, mocks := newMergeService(t)
	ctx := context.Background()
	sourceID := uuid.New()
	targetID := uuid.New()
	stepErr := errors.New("subscription transfer failed")

	var released bool
	mocks.expectLock(sourceID, targetID, &released)
	mocks.allowAuditWrites()

	mocks.subscriptionMerger.EXPECT().
		Merge(ctx, sourceID, targetID).
		Return(nil, stepErr)

	// The interaction step must never run; nothing committed, no snapshot.
	snapshot, err := svc.MergeUserData(ctx, sourceID, targetID)
	assert.ErrorIs(t, err, stepErr)
	assert.Nil(t, snapshot)
	assert.True(t, released)
}

func TestMergeService_MergeUserData_InteractionFailureReturnsPartialSnapshot(t *testing.T) {
	svc, mocks := newMergeService(t)
	ctx := context.Background()
	sourceID := uuid.New()
	targetID := uuid.New()
	creatorIDs := []uuid.UUID{uuid.New()}
	stepErr := errors.New("interaction transfer failed")

	var released bool
	mocks.expectLock(sourceID, targetID, &released)
	mocks.allowAuditWrites()

	mocks.subscriptionMerger.EXPECT().
		Merge(ctx, sourceID, targetID).
		Return(creatorIDs, nil)

	mocks.interactionMerger.EXPECT().
		Merge(ctx, sourceID, targetID).
		Return(nil, stepErr)

	// Subscriptions already committed: the partial snapshot comes back with
	// the error so the caller can compensate.
	snapshot, err := svc.MergeUserData(ctx, sourceID, targetID)
	assert.ErrorIs(t, err, stepErr)
	require.NotNil(t, snapshot)
	assert.Equal(t, creatorIDs, snapshot.SourceCreatorIDs)
	assert.Empty(t, snapshot.SourceContentIDs)
	assert.True(t, released)
}

func TestMergeService_MergeUserData_AuditFailureDoesNotFailMerge(t *testing.T) {
	svc, mocks := newMergeService(t)
	ctx := context.Background()
	sourceID := uuid.New()
	targetID := uuid.New()

	var released bool
	mocks.expectLock(sourceID, targetID, &released)

	auditErr := errors.New("audit store unavailable")
	mocks.mergeOpRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(auditErr)
	mocks.mergeOpRepo.EXPECT().UpdateStage(mock.Anything, mock.Anything, mock.Anything).Return(auditErr).Maybe()
	mocks.mergeOpRepo.EXPECT().UpdateSnapshot(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(auditErr).Maybe()

	mocks.subscriptionMerger.EXPECT().
		Merge(ctx, sourceID, targetID).
		Return([]uuid.UUID{}, nil)

	mocks.interactionMerger.EXPECT().
		Merge(ctx, sourceID, targetID).
		Return([]uuid.UUID{}, nil)

	snapshot, err := svc.MergeUserData(ctx, sourceID, targetID)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
}

func TestMergeService_RollbackMerge_Success(t *testing.T) {
	svc, mocks := newMergeService(t)
	ctx := context.Background()
	sourceID := uuid.New()
	targetID := uuid.New()
	snapshot := &entity.MergeSnapshot{
		SourceCreatorIDs: []uuid.UUID{uuid.New()},
		SourceContentIDs: []uuid.UUID{uuid.New()},
	}

	var released bool
	mocks.expectLock(sourceID, targetID, &released)
	mocks.allowAuditWrites()

	mocks.subscriptionMerger.EXPECT().
		Rollback(ctx, sourceID, targetID, snapshot.SourceCreatorIDs).
		Return(nil)

	mocks.interactionMerger.EXPECT().
		Rollback(ctx, sourceID, targetID, snapshot.SourceContentIDs).
		Return(nil)

	err := svc.RollbackMerge(ctx, sourceID, targetID, snapshot)
	require.NoError(t, err)
	assert.True(t, released)
}

func TestMergeService_RollbackMerge_SameIdentity(t *testing.T) {
	svc, _ := newMergeService(t)
	id := uuid.New()

	err := svc.RollbackMerge(context.Background(), id, id, &entity.MergeSnapshot{})
	assert.ErrorIs(t, err, usecase.ErrSameIdentity)
}

func TestMergeService_RollbackMerge_EmptySnapshotNoOp(t *testing.T) {
	svc, _ := newMergeService(t)

	// No lock, no repo calls: an empty snapshot means nothing was merged.
	err := svc.RollbackMerge(context.Background(), uuid.New(), uuid.New(), &entity.MergeSnapshot{})
	require.NoError(t, err)
}

func TestMergeService_RollbackMerge_BothDomainsAttemptedOnFailure(t *testing.T) {
	svc, mocks := newMergeService(t)
	ctx := context.Background()
	sourceID := uuid.New()
	targetID := uuid.New()
	snapshot := &entity.MergeSnapshot{
		SourceCreatorIDs: []uuid.UUID{uuid.New()},
		SourceContentIDs: []uuid.UUID{uuid.New()},
	}
	subErr := errors.New("subscription restore failed")

	var released bool
	mocks.expectLock(sourceID, targetID, &released)
	mocks.allowAuditWrites()

	mocks.subscriptionMerger.EXPECT().
		Rollback(ctx, sourceID, targetID, snapshot.SourceCreatorIDs).
		Return(subErr)

	// The interaction rollback still runs even though the subscription one
	// failed.
	mocks.interactionMerger.EXPECT().
		Rollback(ctx, sourceID, targetID, snapshot.SourceContentIDs).
		Return(nil)

	err := svc.RollbackMerge(ctx, sourceID, targetID, snapshot)
	assert.ErrorIs(t, err, subErr)
	assert.True(t, released)
}

func TestMergeService_RollbackMerge_PairLocked(t *testing.T) {
	svc, mocks := newMergeService(t)
	sourceID := uuid.New()
	targetID := uuid.New()
	snapshot := &entity.MergeSnapshot{SourceCreatorIDs: []uuid.UUID{uuid.New()}}

	mocks.pairLocker.EXPECT().
		Acquire(mock.Anything, sourceID, targetID).
		Return(nil, service.ErrPairLocked)

	err := svc.RollbackMerge(context.Background(), sourceID, targetID, snapshot)
	assert.ErrorIs(t, err, service.ErrPairLocked)
}
