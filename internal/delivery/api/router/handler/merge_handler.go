// Package handler contains the HTTP handlers for the internal API.
package handler

import (
	"log/slog"
	"net/http"

	"unify/internal/delivery/api/response"
	"unify/internal/domain/entity"
	domainerrors "unify/internal/domain/errors"
	"unify/internal/domain/service"
	"unify/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MergeHandlerParams holds dependencies for MergeHandler, injected by Fx.
type MergeHandlerParams struct {
	fx.In

	MergeUC usecase.MergeOrchestrator
	Logger  *slog.Logger
}

// MergeHandler holds dependencies for account-merge handlers
type MergeHandler struct {
	mergeUC usecase.MergeOrchestrator
	logger  *slog.Logger
}

// NewMergeHandler is the constructor for MergeHandler
func NewMergeHandler(params MergeHandlerParams) *MergeHandler {
	return &MergeHandler{
		mergeUC: params.MergeUC,
		logger:  params.Logger,
	}
}

// MergeRequest represents the request body for merging two identities
type MergeRequest struct {
	SourceUserID string `json:"source_user_id" validate:"required,uuid"`
	TargetUserID string `json:"target_user_id" validate:"required,uuid"`
}

// SnapshotPayload carries the pre-merge membership of the source identity
// across the wire. The caller persists it after a merge and sends it back
// verbatim to request a rollback.
type SnapshotPayload struct {
	SourceCreatorIDs []string `json:"source_creator_ids" validate:"omitempty,dive,uuid"`
	SourceContentIDs []string `json:"source_content_ids" validate:"omitempty,dive,uuid"`
}

// RollbackRequest represents the request body for rolling back a merge.
// The snapshot is optional: a missing or empty one means nothing was captured
// at merge time, and the rollback is a no-op.
type RollbackRequest struct {
	SourceUserID string           `json:"source_user_id" validate:"required,uuid"`
	TargetUserID string           `json:"target_user_id" validate:"required,uuid"`
	Snapshot     *SnapshotPayload `json:"snapshot" validate:"omitempty"`
}

// MergeResponse is the success payload of a merge
type MergeResponse struct {
	Snapshot SnapshotPayload `json:"snapshot"`
}

// MergeUserData handles consolidation of a source identity into a target identity
func (h *MergeHandler) MergeUserData(c echo.Context) error {
	var req MergeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merge input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidIdentity.ErrorCode(), domainerrors.ErrInvalidIdentity.Message())
	}

	sourceUserID, targetUserID, err := parseIdentityPair(req.SourceUserID, req.TargetUserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	snapshot, err := h.mergeUC.MergeUserData(c.Request().Context(), sourceUserID, targetUserID)
	if err != nil {
		return h.mapMergeError(c, err)
	}

	return response.Success(c, http.StatusOK, MergeResponse{Snapshot: toSnapshotPayload(snapshot)})
}

// RollbackMerge handles compensation of a previous merge from a caller-persisted snapshot
func (h *MergeHandler) RollbackMerge(c echo.Context) error {
	var req RollbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rollback input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidSnapshot.ErrorCode(), domainerrors.ErrInvalidSnapshot.Message())
	}

	sourceUserID, targetUserID, err := parseIdentityPair(req.SourceUserID, req.TargetUserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	snapshot, err := fromSnapshotPayload(req.Snapshot)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidSnapshot)
	}

	if err := h.mergeUC.RollbackMerge(c.Request().Context(), sourceUserID, targetUserID, snapshot); err != nil {
		return h.mapMergeError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "rolled_back"})
}

// mapMergeError translates orchestrator errors into the HTTP error taxonomy.
func (h *MergeHandler) mapMergeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrSameIdentity):
		return response.HandleAppError(c, domainerrors.ErrSameIdentity)
	case errors.Is(err, service.ErrPairLocked):
		return response.HandleAppError(c, domainerrors.ErrMergeInProgress)
	default:
		// Store failures surface untranslated; the central error handler
		// renders them as 500 without leaking internals.
		return errors.WithStack(err)
	}
}

func parseIdentityPair(source, target string) (uuid.UUID, uuid.UUID, error) {
	sourceUserID, err := uuid.Parse(source)
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrInvalidIdentity
	}

	targetUserID, err := uuid.Parse(target)
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrInvalidIdentity
	}

	if sourceUserID == targetUserID {
		return uuid.Nil, uuid.Nil, domainerrors.ErrSameIdentity
	}

	return sourceUserID, targetUserID, nil
}

func toSnapshotPayload(snapshot *entity.MergeSnapshot) SnapshotPayload {
	payload := SnapshotPayload{
		SourceCreatorIDs: make([]string, 0, len(snapshot.SourceCreatorIDs)),
		SourceContentIDs: make([]string, 0, len(snapshot.SourceContentIDs)),
	}
	for _, id := range snapshot.SourceCreatorIDs {
		payload.SourceCreatorIDs = append(payload.SourceCreatorIDs, id.String())
	}
	for _, id := range snapshot.SourceContentIDs {
		payload.SourceContentIDs = append(payload.SourceContentIDs, id.String())
	}

	return payload
}

func fromSnapshotPayload(payload *SnapshotPayload) (*entity.MergeSnapshot, error) {
	if payload == nil {
		return nil, nil
	}

	snapshot := &entity.MergeSnapshot{
		SourceCreatorIDs: make([]uuid.UUID, 0, len(payload.SourceCreatorIDs)),
		SourceContentIDs: make([]uuid.UUID, 0, len(payload.SourceContentIDs)),
	}
	for _, raw := range payload.SourceCreatorIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.Wrap(err, "invalid creator id in snapshot")
		}
		snapshot.SourceCreatorIDs = append(snapshot.SourceCreatorIDs, id)
	}
	for _, raw := range payload.SourceContentIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.Wrap(err, "invalid content id in snapshot")
		}
		snapshot.SourceContentIDs = append(snapshot.SourceContentIDs, id)
	}

	return snapshot, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
