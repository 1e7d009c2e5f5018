package impl

import (
	"context"
	"log/slog"
	"sort"
	"testing"
	"time"

	"unify/internal/domain/entity"
	"unify/internal/domain/repository"
	"unify/internal/infra/lock"
	"unify/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fakes below back the mergers with an in-memory ownership table so the
// full merge/rollback flow can be exercised end to end, without a database.

type fakeOwnershipStore struct {
	// rows maps userID -> owned ids, insertion-ordered.
	rows map[uuid.UUID][]uuid.UUID
}

func newFakeOwnershipStore() *fakeOwnershipStore {
	return &fakeOwnershipStore{rows: make(map[uuid.UUID][]uuid.UUID)}
}

func (s *fakeOwnershipStore) seed(userID uuid.UUID, ids ...uuid.UUID) {
	s.rows[userID] = append(s.rows[userID], ids...)
}

func (s *fakeOwnershipStore) listByUser(userID uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, len(s.rows[userID]))
	copy(out, s.rows[userID])

	return out
}

func (s *fakeOwnershipStore) listByUserIn(userID uuid.UUID, ids []uuid.UUID) []uuid.UUID {
	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	var out []uuid.UUID
	for _, id := range s.rows[userID] {
		if _, ok := wanted[id]; ok {
			out = append(out, id)
		}
	}

	return out
}

func (s *fakeOwnershipStore) reassign(fromUserID, toUserID uuid.UUID, ids []uuid.UUID) {
	moving := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		moving[id] = struct{}{}
	}

	var kept []uuid.UUID
	for _, id := range s.rows[fromUserID] {
		if _, ok := moving[id]; ok {
			s.rows[toUserID] = append(s.rows[toUserID], id)
		} else {
			kept = append(kept, id)
		}
	}
	s.rows[fromUserID] = kept
}

func (s *fakeOwnershipStore) delete(userID uuid.UUID, ids []uuid.UUID) {
	doomed := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
	}

	var kept []uuid.UUID
	for _, id := range s.rows[userID] {
		if _, ok := doomed[id]; !ok {
			kept = append(kept, id)
		}
	}
	s.rows[userID] = kept
}

type fakeSubscriptionRepo struct {
	store *fakeOwnershipStore
}

func (r *fakeSubscriptionRepo) ListCreatorIDsByUser(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.store.listByUser(userID), nil
}

func (r *fakeSubscriptionRepo) ListCreatorIDsByUserIn(_ context.Context, userID uuid.UUID, creatorIDs []uuid.UUID) ([]uuid.UUID, error) {
	return r.store.listByUserIn(userID, creatorIDs), nil
}

func (r *fakeSubscriptionRepo) ReassignOwner(_ context.Context, fromUserID, toUserID uuid.UUID, creatorIDs []uuid.UUID) error {
	r.store.reassign(fromUserID, toUserID, creatorIDs)

	return nil
}

func (r *fakeSubscriptionRepo) DeleteByUserAndCreators(_ context.Context, userID uuid.UUID, creatorIDs []uuid.UUID) error {
	r.store.delete(userID, creatorIDs)

	return nil
}

type fakeInteractionRepo struct {
	store *fakeOwnershipStore
}

func (r *fakeInteractionRepo) ListContentIDsByUser(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.store.listByUser(userID), nil
}

func (r *fakeInteractionRepo) ListContentIDsByUserIn(_ context.Context, userID uuid.UUID, contentIDs []uuid.UUID) ([]uuid.UUID, error) {
	return r.store.listByUserIn(userID, contentIDs), nil
}

func (r *fakeInteractionRepo) ReassignOwner(_ context.Context, fromUserID, toUserID uuid.UUID, contentIDs []uuid.UUID) error {
	r.store.reassign(fromUserID, toUserID, contentIDs)

	return nil
}

func (r *fakeInteractionRepo) DeleteByUserAndContents(_ context.Context, userID uuid.UUID, contentIDs []uuid.UUID) error {
	r.store.delete(userID, contentIDs)

	return nil
}

type fakeMergeOpRepo struct {
	created []*entity.MergeOperation
}

func (r *fakeMergeOpRepo) Create(_ context.Context, op *entity.MergeOperation) error {
	r.created = append(r.created, op)

	return nil
}

func (r *fakeMergeOpRepo) UpdateStage(_ context.Context, _ uuid.UUID, _ entity.MergeStage) error {
	return nil
}

func (r *fakeMergeOpRepo) UpdateSnapshot(_ context.Context, _ uuid.UUID, _, _ []uuid.UUID) error {
	return nil
}

func (r *fakeMergeOpRepo) MarkFailed(_ context.Context, _ uuid.UUID, _ string) error {
	return nil
}

type fakeFactory struct {
	subRepo *fakeSubscriptionRepo
	intRepo *fakeInteractionRepo
	opRepo  *fakeMergeOpRepo
}

func (f *fakeFactory) NewSubscriptionRepository() repository.SubscriptionRepository {
	return f.subRepo
}

func (f *fakeFactory) NewInteractionRepository() repository.InteractionRepository {
	return f.intRepo
}

func (f *fakeFactory) NewMergeOperationRepository() repository.MergeOperationRepository {
	return f.opRepo
}

type fakeTxManager struct {
	factory *fakeFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type scenarioFixture struct {
	orchestrator  usecase.MergeOrchestrator
	subscriptions *fakeOwnershipStore
	interactions  *fakeOwnershipStore
	auditTrail    *fakeMergeOpRepo
}

func newScenarioFixture(t *testing.T) *scenarioFixture {
	t.Helper()

	subscriptions := newFakeOwnershipStore()
	interactions := newFakeOwnershipStore()
	subRepo := &fakeSubscriptionRepo{store: subscriptions}
	intRepo := &fakeInteractionRepo{store: interactions}
	opRepo := &fakeMergeOpRepo{}
	txManager := &fakeTxManager{factory: &fakeFactory{subRepo: subRepo, intRepo: intRepo, opRepo: opRepo}}

	subscriptionMerger := NewSubscriptionMerger(SubscriptionMergerParams{
		SubscriptionRepo: subRepo,
		TxManager:        txManager,
	})
	interactionMerger := NewInteractionMerger(InteractionMergerParams{
		InteractionRepo: intRepo,
		TxManager:       txManager,
	})

	orchestrator := NewMergeService(MergeServiceParams{
		SubscriptionMerger: subscriptionMerger,
		InteractionMerger:  interactionMerger,
		MergeOpRepo:        opRepo,
		PairLocker:         lock.NewKeyedMutex(time.Second),
		Logger:             slog.Default(),
	})

	return &scenarioFixture{
		orchestrator:  orchestrator,
		subscriptions: subscriptions,
		interactions:  interactions,
		auditTrail:    opRepo,
	}
}

func sortedIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}

// Source follows {A, B, C}, target follows {B, D}: A and C transfer, B is
// deleted as a duplicate, the target ends up with {B, D, A, C} and the source
// with nothing.
func TestScenario_MergeWithOverlap(t *testing.T) {
	fix := newScenarioFixture(t)
	ctx := context.Background()
	sourceID := uuid.New()
	targetID := uuid.New()
	creatorA, creatorB, creatorC, creatorD := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	contentX, contentY := uuid.New(), uuid.New()

	fix.subscriptions.seed(sourceID, creatorA, creatorB, creatorC)
	fix.subscriptions.seed(targetID, creatorB, creatorD)
	fix.interactions.seed(sourceID, contentX, contentY)

	snapshot, err := fix.orchestrator.MergeUserData(ctx, sourceID, targetID)
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	// The snapshot holds the source's full pre-merge membership, duplicate
	// included.
	assert.Equal(t, []uuid.UUID{creatorA, creatorB, creatorC}, snapshot.SourceCreatorIDs)
	assert.Equal(t, []uuid.UUID{contentX, contentY}, snapshot.SourceContentIDs)

	assert.Empty(t, fix.subscriptions.listByUser(sourceID))
	assert.ElementsMatch(t, []uuid.UUID{creatorA, creatorB, creatorC, creatorD}, fix.subscriptions.listByUser(targetID))

	assert.Empty(t, fix.interactions.listByUser(sourceID))
	assert.ElementsMatch(t, []uuid.UUID{contentX, contentY}, fix.interactions.listByUser(targetID))
}

func TestScenario_MergeEmptySource(t *testing.T) {
	fix := newScenarioFixture(t)
	ctx := context.Background()
	sourceID := uuid.New()
	targetID := uuid.New()
	creatorID := uuid.New()

	fix.subscriptions.seed(targetID, creatorID)

	snapshot, err := fix.orchestrator.MergeUserData(ctx, sourceID, targetID)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Empty(t, snapshot.SourceCreatorIDs)
	assert.Empty(t, snapshot.SourceContentIDs)
	assert.Equal(t, []uuid.UUID{creatorID}, fix.subscriptions.listByUser(targetID))
}

// Merging and then rolling back with the returned snapshot restores the
// transferred rows to the source. The target's own pre-existing B row is in
// the snapshot and currently under the target, so it is indistinguishable
// from a transferred row and moves to the source as well; that approximation
// is inherent to the snapshot contract.
func TestScenario_MergeThenRollback(t *testing.T) {
	fix := newScenarioFixture(t)
	ctx := context.Background()
	sourceID := uuid.New()
	targetID := uuid.New()
	creatorA, creatorB, creatorC, creatorD := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	contentX, contentY := uuid.New(), uuid.New()

	fix.subscriptions.seed(sourceID, creatorA, creatorB, creatorC)
	fix.subscriptions.seed(targetID, creatorB, creatorD)
	fix.interactions.seed(sourceID, contentX)
	fix.interactions.seed(targetID, contentY)

	snapshot, err := fix.orchestrator.MergeUserData(ctx, sourceID, targetID)
	require.NoError(t, err)

	err = fix.orchestrator.RollbackMerge(ctx, sourceID, targetID, snapshot)
	require.NoError(t, err)

	// A and C return to the source, plus the target's own B row per the
	// approximation above. Only D stays with the target.
	assert.Equal(t, sortedIDs([]uuid.UUID{creatorA, creatorB, creatorC}), sortedIDs(fix.subscriptions.listByUser(sourceID)))
	assert.Equal(t, []uuid.UUID{creatorD}, fix.subscriptions.listByUser(targetID))

	assert.Equal(t, []uuid.UUID{contentX}, fix.interactions.listByUser(sourceID))
	assert.Equal(t, []uuid.UUID{contentY}, fix.interactions.listByUser(targetID))
}

func TestScenario_RollbackWithNilSnapshotFragments(t *testing.T) {
	fix := newScenarioFixture(t)
	ctx := context.Background()
	sourceID := uuid.New()
	targetID := uuid.New()
	creatorID := uuid.New()

	fix.subscriptions.seed(targetID, creatorID)

	err := fix.orchestrator.RollbackMerge(ctx, sourceID, targetID, &entity.MergeSnapshot{
		SourceCreatorIDs: []uuid.UUID{creatorID},
	})
	require.NoError(t, err)

	// Only the subscription fragment is restored; the nil interaction
	// fragment is a no-op.
	assert.Equal(t, []uuid.UUID{creatorID}, fix.subscriptions.listByUser(sourceID))
	assert.Empty(t, fix.subscriptions.listByUser(targetID))
}

func TestScenario_MergeRecordsAuditTrail(t *testing.T) {
	fix := newScenarioFixture(t)
	ctx := context.Background()
	sourceID := uuid.New()
	targetID := uuid.New()

	fix.subscriptions.seed(sourceID, uuid.New())

	_, err := fix.orchestrator.MergeUserData(ctx, sourceID, targetID)
	require.NoError(t, err)

	require.Len(t, fix.auditTrail.created, 1)
	op := fix.auditTrail.created[0]
	assert.Equal(t, sourceID, op.SourceUserID)
	assert.Equal(t, targetID, op.TargetUserID)
}
