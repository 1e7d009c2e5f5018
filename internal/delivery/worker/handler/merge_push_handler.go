// Package handler contains the Pub/Sub push handlers for the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"unify/config"
	deliverycontext "unify/internal/delivery/context"
	"unify/internal/domain/constants"
	"unify/internal/domain/entity"
	domainservice "unify/internal/domain/service"
	"unify/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// MergePushHandler handles Pub/Sub push messages carrying merge commands
type MergePushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	mergeUC        usecase.MergeOrchestrator
	publisher      domainservice.EventPublisher
}

// MergePushHandlerParams holds dependencies for the MergePushHandler
type MergePushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	MergeUC   usecase.MergeOrchestrator
	Publisher domainservice.EventPublisher
}

// NewMergePushHandler creates a new Pub/Sub push handler for merge commands
func NewMergePushHandler(params MergePushHandlerParams) *MergePushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &MergePushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		mergeUC:        params.MergeUC,
		publisher:      params.Publisher,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *MergePushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse merge command
	var cmd domainservice.MergeCommand
	if err := json.Unmarshal(data, &cmd); err != nil {
		h.logger.Error("[Worker] Failed to parse merge command", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > command field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &cmd)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing merge command",
		slog.String("operation_id", cmd.OperationID),
		slog.String("operation", cmd.Operation),
		slog.String("source_user_id", cmd.SourceUserID),
		slog.String("target_user_id", cmd.TargetUserID),
	)

	// Process the command
	if err := h.processCommand(ctx, requestID, &cmd); err != nil {
		reqLogger.Error("[Worker] Failed to process merge command",
			slog.String("operation_id", cmd.OperationID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Merge command processed",
		slog.String("operation_id", cmd.OperationID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, command, or generates a new one
func (h *MergePushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, cmd *domainservice.MergeCommand) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try command field (from JSON payload)
	if cmd.RequestID != "" {
		return cmd.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processCommand dispatches a merge command and publishes the result event.
// Pair-lock contention is retryable: the command is redelivered instead of
// being answered with a failure, since the in-flight operation owns the pair.
func (h *MergePushHandler) processCommand(ctx context.Context, requestID string, cmd *domainservice.MergeCommand) error {
	sourceUserID, err := uuid.Parse(cmd.SourceUserID)
	if err != nil {
		return h.publishFailure(ctx, requestID, cmd, errors.Wrap(err, "invalid source user id"))
	}

	targetUserID, err := uuid.Parse(cmd.TargetUserID)
	if err != nil {
		return h.publishFailure(ctx, requestID, cmd, errors.Wrap(err, "invalid target user id"))
	}

	switch cmd.Operation {
	case domainservice.OperationMergeUserData:
		return h.processMerge(ctx, requestID, cmd, sourceUserID, targetUserID)
	case domainservice.OperationRollbackMerge:
		return h.processRollback(ctx, requestID, cmd, sourceUserID, targetUserID)
	default:
		return h.publishFailure(ctx, requestID, cmd, errors.Errorf("unknown operation: %s", cmd.Operation))
	}
}

func (h *MergePushHandler) processMerge(ctx context.Context, requestID string, cmd *domainservice.MergeCommand, sourceUserID, targetUserID uuid.UUID) error {
	snapshot, err := h.mergeUC.MergeUserData(ctx, sourceUserID, targetUserID)
	if err != nil {
		if errors.Is(err, domainservice.ErrPairLocked) {
			return newRetryableError(err)
		}

		// A partial snapshot means the subscription half committed before the
		// interaction half failed; the caller needs that fragment to compensate.
		event := h.buildResultEvent(requestID, cmd, false, err)
		if snapshot != nil {
			attachSnapshot(event, snapshot)
		}

		return h.publishResult(ctx, event)
	}

	event := h.buildResultEvent(requestID, cmd, true, nil)
	attachSnapshot(event, snapshot)

	return h.publishResult(ctx, event)
}

func (h *MergePushHandler) processRollback(ctx context.Context, requestID string, cmd *domainservice.MergeCommand, sourceUserID, targetUserID uuid.UUID) error {
	snapshot, err := parseSnapshotPayload(cmd.Snapshot)
	if err != nil {
		return h.publishFailure(ctx, requestID, cmd, err)
	}

	if err := h.mergeUC.RollbackMerge(ctx, sourceUserID, targetUserID, snapshot); err != nil {
		if errors.Is(err, domainservice.ErrPairLocked) {
			return newRetryableError(err)
		}

		return h.publishResult(ctx, h.buildResultEvent(requestID, cmd, false, err))
	}

	return h.publishResult(ctx, h.buildResultEvent(requestID, cmd, true, nil))
}

func (h *MergePushHandler) buildResultEvent(requestID string, cmd *domainservice.MergeCommand, succeeded bool, cause error) *domainservice.MergeResultEvent {
	event := &domainservice.MergeResultEvent{
		RequestID:    requestID,
		OperationID:  cmd.OperationID,
		Operation:    cmd.Operation,
		SourceUserID: cmd.SourceUserID,
		TargetUserID: cmd.TargetUserID,
		Succeeded:    succeeded,
	}
	if cause != nil {
		event.Error = cause.Error()
	}

	return event
}

func (h *MergePushHandler) publishFailure(ctx context.Context, requestID string, cmd *domainservice.MergeCommand, cause error) error {
	return h.publishResult(ctx, h.buildResultEvent(requestID, cmd, false, cause))
}

// publishResult sends the result event. Publish failures are retryable so the
// command is redelivered rather than the outcome being silently dropped.
func (h *MergePushHandler) publishResult(ctx context.Context, event *domainservice.MergeResultEvent) error {
	if err := h.publisher.PublishMergeResult(ctx, event); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

func attachSnapshot(event *domainservice.MergeResultEvent, snapshot *entity.MergeSnapshot) {
	event.SourceCreatorIDs = make([]string, 0, len(snapshot.SourceCreatorIDs))
	for _, id := range snapshot.SourceCreatorIDs {
		event.SourceCreatorIDs = append(event.SourceCreatorIDs, id.String())
	}
	event.SourceContentIDs = make([]string, 0, len(snapshot.SourceContentIDs))
	for _, id := range snapshot.SourceContentIDs {
		event.SourceContentIDs = append(event.SourceContentIDs, id.String())
	}
}

func parseSnapshotPayload(payload *domainservice.SnapshotPayload) (*entity.MergeSnapshot, error) {
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

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
