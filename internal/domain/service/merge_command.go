package service

// SnapshotPayload is the wire form of a merge snapshot. IDs travel as strings
// so the payload survives any JSON-capable broker untouched.
type SnapshotPayload struct {
	SourceCreatorIDs []string `json:"source_creator_ids,omitempty"`
	SourceContentIDs []string `json:"source_content_ids,omitempty"`
}

// MergeCommand is the inbound message requesting a merge or rollback. It
// arrives on the worker's Pub/Sub push endpoint; the outcome is reported
// asynchronously as a MergeResultEvent carrying the same OperationID.
type MergeCommand struct {
	RequestID    string           `json:"request_id,omitempty"` // For distributed tracing
	OperationID  string           `json:"operation_id"`
	Operation    string           `json:"operation"` // MERGE_USER_DATA or ROLLBACK_MERGE
	SourceUserID string           `json:"source_user_id"`
	TargetUserID string           `json:"target_user_id"`
	Snapshot     *SnapshotPayload `json:"snapshot,omitempty"` // Required for ROLLBACK_MERGE
}
