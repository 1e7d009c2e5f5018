// Package entity contains the core business objects of the project.
//
// Subscription and interaction rows never cross the repository boundary as
// whole records: the merge algorithms read and move memberships by id, so
// the row shapes live with the persistence models.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MergeSnapshot captures the full membership of the source identity before
// any mutation. It is returned to the caller of a merge and consumed,
// read-only, by a later rollback. This service never persists it; the caller
// must store it if a rollback may ever be required.
type MergeSnapshot struct {
	SourceCreatorIDs []uuid.UUID `json:"source_creator_ids"`
	SourceContentIDs []uuid.UUID `json:"source_content_ids"`
}

// IsEmpty reports whether the snapshot holds nothing to roll back.
func (s *MergeSnapshot) IsEmpty() bool {
	return s == nil || (len(s.SourceCreatorIDs) == 0 && len(s.SourceContentIDs) == 0)
}

// MergeStage marks how far a merge operation has progressed. The two domain
// mergers commit independently, so a crash between them leaves the stage at
// StageSubscriptionsDone; the trail exists so such a state is diagnosable.
type MergeStage string

const (
	StagePending           MergeStage = "pending"
	StageSubscriptionsDone MergeStage = "subscriptions_done"
	StageInteractionsDone  MergeStage = "interactions_done"
	StageRolledBack        MergeStage = "rolled_back"
	StageFailed            MergeStage = "failed"
)

// MergeOperation is the audit trail row written around a merge or rollback.
// It records stage transitions and the captured snapshot fragments. It is
// never read back by merge or rollback decisions.
type MergeOperation struct {
	ID           uuid.UUID   `json:"id"`
	SourceUserID uuid.UUID   `json:"source_user_id"`
	TargetUserID uuid.UUID   `json:"target_user_id"`
	Stage        MergeStage  `json:"stage"`
	CreatorIDs   []uuid.UUID `json:"creator_ids"`
	ContentIDs   []uuid.UUID `json:"content_ids"`
	Failure      string      `json:"failure,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
