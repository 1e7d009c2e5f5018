package service

import (
	"context"
)

// Remote operation names carried on merge commands and result events.
const (
	OperationMergeUserData = "MERGE_USER_DATA"
	OperationRollbackMerge = "ROLLBACK_MERGE"
)

// MergeResultEvent is the reply message published after a remote merge or
// rollback command has been processed. For MERGE_USER_DATA it carries the
// snapshot the caller must persist to be able to roll back later.
type MergeResultEvent struct {
	RequestID        string   `json:"request_id,omitempty"` // For distributed tracing
	OperationID      string   `json:"operation_id"`
	Operation        string   `json:"operation"`
	SourceUserID     string   `json:"source_user_id"`
	TargetUserID     string   `json:"target_user_id"`
	SourceCreatorIDs []string `json:"source_creator_ids,omitempty"`
	SourceContentIDs []string `json:"source_content_ids,omitempty"`
	Succeeded        bool     `json:"succeeded"`
	Error            string   `json:"error,omitempty"`
}

// EventPublisher defines the interface for publishing result events to a message queue
type EventPublisher interface {
	// PublishMergeResult publishes the outcome of a merge or rollback command
	PublishMergeResult(ctx context.Context, event *MergeResultEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
