package model

import (
	"time"

	"github.com/google/uuid"
)

// ContentInteractionModel is the GORM-specific struct for the 'content_interactions' table.
// The composite unique index enforces at most one row per (user, content) pair.
type ContentInteractionModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_interactions_user_content"`
	ContentID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_interactions_user_content;index"`
	IsBookmarked         bool      `gorm:"not null;default:false"`
	IsLiked              bool      `gorm:"not null;default:false"`
	WatchedAt            *time.Time
	WatchDurationSeconds int    `gorm:"not null;default:0"`
	Rating               *int16 `gorm:"type:smallint"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContentInteractionModel) TableName() string {
	return "content_interactions"
}
