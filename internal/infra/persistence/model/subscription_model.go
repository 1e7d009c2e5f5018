package model

import (
	"time"

	"github.com/google/uuid"
)

// CreatorSubscriptionModel is the GORM-specific struct for the 'creator_subscriptions' table.
// The composite unique index enforces at most one row per (user, creator)
// pair. Deletes are hard deletes: a duplicate discarded during an account
// merge is gone for good, which is what the merge semantics require.
type CreatorSubscriptionModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_user_creator"`
	CreatorID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_user_creator;index"`
	NotificationEnabled bool      `gorm:"not null;default:true"`
	SubscribedAt        time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (CreatorSubscriptionModel) TableName() string {
	return "creator_subscriptions"
}
