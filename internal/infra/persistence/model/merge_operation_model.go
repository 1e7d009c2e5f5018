package model

import (
	"time"

	"github.com/google/uuid"
)

// MergeOperationModel is the GORM-specific struct for the 'merge_operations' table.
// Rows are an audit trail of merge/rollback runs and their stage markers;
// nothing in the merge path ever reads them back.
type MergeOperationModel struct {
	ID           uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SourceUserID uuid.UUID   `gorm:"type:uuid;not null;index:idx_merge_operations_pair"`
	TargetUserID uuid.UUID   `gorm:"type:uuid;not null;index:idx_merge_operations_pair"`
	Stage        string      `gorm:"type:varchar(32);not null"`
	CreatorIDs   []uuid.UUID `gorm:"serializer:json;type:jsonb"`
	ContentIDs   []uuid.UUID `gorm:"serializer:json;type:jsonb"`
	Failure      string      `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MergeOperationModel) TableName() string {
	return "merge_operations"
}
