package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"unify/config"
	"unify/internal/domain/entity"
	domainservice "unify/internal/domain/service"
	mockService "unify/internal/mocks/service"
	mockUsecase "unify/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*MergePushHandler, *mockUsecase.MockMergeOrchestrator, *mockService.MockEventPublisher) {
	mergeUC := mockUsecase.NewMockMergeOrchestrator(t)
	publisher := mockService.NewMockEventPublisher(t)

	h := NewMergePushHandler(MergePushHandlerParams{
		Config:    &config.Config{},
		Logger:    slog.Default(),
		MergeUC:   mergeUC,
		Publisher: publisher,
	})

	return h, mergeUC, publisher
}

func pushRequest(t *testing.T, cmd *domainservice.MergeCommand) *http.Request {
	t.Helper()

	payload, err := json.Marshal(cmd)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.MessageID = "1"
	pushMsg.Message.Attributes = map[string]string{"request_id": cmd.RequestID}

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func servePush(t *testing.T, h *MergePushHandler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h.HandlePush(c))

	return rec
}

func TestMergePushHandler_MergeSuccessPublishesSnapshot(t *testing.T) {
	h, mergeUC, publisher := newTestPushHandler(t)
	sourceID := uuid.New()
	targetID := uuid.New()
	creatorID := uuid.New()
	contentID := uuid.New()

	cmd := &domainservice.MergeCommand{
		RequestID:    uuid.New().String(),
		OperationID:  uuid.New().String(),
		Operation:    domainservice.OperationMergeUserData,
		SourceUserID: sourceID.String(),
		TargetUserID: targetID.String(),
	}

	mergeUC.EXPECT().
		MergeUserData(mock.Anything, sourceID, targetID).
		Return(&entity.MergeSnapshot{
			SourceCreatorIDs: []uuid.UUID{creatorID},
			SourceContentIDs: []uuid.UUID{contentID},
		}, nil)

	var published *domainservice.MergeResultEvent
	publisher.EXPECT().
		PublishMergeResult(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *domainservice.MergeResultEvent) error {
			published = event

			return nil
		})

	rec := servePush(t, h, pushRequest(t, cmd))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, published)
	assert.True(t, published.Succeeded)
	assert.Equal(t, cmd.OperationID, published.OperationID)
	assert.Equal(t, cmd.RequestID, published.RequestID)
	assert.Equal(t, []string{creatorID.String()}, published.SourceCreatorIDs)
	assert.Equal(t, []string{contentID.String()}, published.SourceContentIDs)
}

func TestMergePushHandler_PairLockedTriggersRetry(t *testing.T) {
	h, mergeUC, _ := newTestPushHandler(t)
	sourceID := uuid.New()
	targetID := uuid.New()

	cmd := &domainservice.MergeCommand{
		OperationID:  uuid.New().String(),
		Operation:    domainservice.OperationMergeUserData,
		SourceUserID: sourceID.String(),
		TargetUserID: targetID.String(),
	}

	mergeUC.EXPECT().
		MergeUserData(mock.Anything, sourceID, targetID).
		Return(nil, domainservice.ErrPairLocked)

	rec := servePush(t, h, pushRequest(t, cmd))

	// 503 makes Pub/Sub redeliver; no result event is published.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMergePushHandler_MergeFailurePublishesPartialSnapshot(t *testing.T) {
	h, mergeUC, publisher := newTestPushHandler(t)
	sourceID := uuid.New()
	targetID := uuid.New()
	creatorID := uuid.New()

	cmd := &domainservice.MergeCommand{
		OperationID:  uuid.New().String(),
		Operation:    domainservice.OperationMergeUserData,
		SourceUserID: sourceID.String(),
		TargetUserID: targetID.String(),
	}

	mergeUC.EXPECT().
		MergeUserData(mock.Anything, sourceID, targetID).
		Return(&entity.MergeSnapshot{SourceCreatorIDs: []uuid.UUID{creatorID}}, errors.New("interaction step failed"))

	var published *domainservice.MergeResultEvent
	publisher.EXPECT().
		PublishMergeResult(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *domainservice.MergeResultEvent) error {
			published = event

			return nil
		})

	rec := servePush(t, h, pushRequest(t, cmd))

	// A definite failure acks the message; the failure event carries the
	// committed fragment so the caller can compensate.
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, published)
	assert.False(t, published.Succeeded)
	assert.NotEmpty(t, published.Error)
	assert.Equal(t, []string{creatorID.String()}, published.SourceCreatorIDs)
}

func TestMergePushHandler_RollbackSuccess(t *testing.T) {
	h, mergeUC, publisher := newTestPushHandler(t)
	sourceID := uuid.New()
	targetID := uuid.New()
	creatorID := uuid.New()

	cmd := &domainservice.MergeCommand{
		OperationID:  uuid.New().String(),
		Operation:    domainservice.OperationRollbackMerge,
		SourceUserID: sourceID.String(),
		TargetUserID: targetID.String(),
		Snapshot: &domainservice.SnapshotPayload{
			SourceCreatorIDs: []string{creatorID.String()},
		},
	}

	mergeUC.EXPECT().
		RollbackMerge(mock.Anything, sourceID, targetID, mock.MatchedBy(func(s *entity.MergeSnapshot) bool {
			return len(s.SourceCreatorIDs) == 1 && s.SourceCreatorIDs[0] == creatorID
		})).
		Return(nil)

	var published *domainservice.MergeResultEvent
	publisher.EXPECT().
		PublishMergeResult(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *domainservice.MergeResultEvent) error {
			published = event

			return nil
		})

	rec := servePush(t, h, pushRequest(t, cmd))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, published)
	assert.True(t, published.Succeeded)
	assert.Equal(t, domainservice.OperationRollbackMerge, published.Operation)
}

func TestMergePushHandler_InvalidUserIDPublishesFailure(t *testing.T) {
	h, _, publisher := newTestPushHandler(t)

	cmd := &domainservice.MergeCommand{
		OperationID:  uuid.New().String(),
		Operation:    domainservice.OperationMergeUserData,
		SourceUserID: "not-a-uuid",
		TargetUserID: uuid.New().String(),
	}

	var published *domainservice.MergeResultEvent
	publisher.EXPECT().
		PublishMergeResult(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *domainservice.MergeResultEvent) error {
			published = event

			return nil
		})

	rec := servePush(t, h, pushRequest(t, cmd))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, published)
	assert.False(t, published.Succeeded)
}

func TestMergePushHandler_UnknownOperationPublishesFailure(t *testing.T) {
	h, _, publisher := newTestPushHandler(t)

	cmd := &domainservice.MergeCommand{
		OperationID:  uuid.New().String(),
		Operation:    "PURGE_USER_DATA",
		SourceUserID: uuid.New().String(),
		TargetUserID: uuid.New().String(),
	}

	var published *domainservice.MergeResultEvent
	publisher.EXPECT().
		PublishMergeResult(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *domainservice.MergeResultEvent) error {
			published = event

			return nil
		})

	rec := servePush(t, h, pushRequest(t, cmd))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, published)
	assert.False(t, published.Succeeded)
	assert.Contains(t, published.Error, "unknown operation")
}

func TestMergePushHandler_PublishFailureTriggersRetry(t *testing.T) {
	h, mergeUC, publisher := newTestPushHandler(t)
	sourceID := uuid.New()
	targetID := uuid.New()

	cmd := &domainservice.MergeCommand{
		OperationID:  uuid.New().String(),
		Operation:    domainservice.OperationMergeUserData,
		SourceUserID: sourceID.String(),
		TargetUserID: targetID.String(),
	}

	mergeUC.EXPECT().
		MergeUserData(mock.Anything, sourceID, targetID).
		Return(&entity.MergeSnapshot{}, nil)

	publisher.EXPECT().
		PublishMergeResult(mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable"))

	rec := servePush(t, h, pushRequest(t, cmd))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMergePushHandler_MalformedBodyRejected(t *testing.T) {
	h, _, _ := newTestPushHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader([]byte("{not json")))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := servePush(t, h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMergePushHandler_BadBase64Rejected(t *testing.T) {
	h, _, _ := newTestPushHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = "%%%not-base64%%%"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := servePush(t, h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
