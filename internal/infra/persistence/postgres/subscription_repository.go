package postgres

import (
	"context"

	"unify/internal/domain/repository"
	"unify/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// ListCreatorIDsByUser retrieves the creator IDs of every subscription owned by the user.
func (repo *subscriptionRepository) ListCreatorIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var creatorIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.CreatorSubscriptionModel{}).
		Where("user_id = ?", userID).
		Order("subscribed_at ASC").
		Pluck("creator_id", &creatorIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list creator IDs by user")
	}

	return creatorIDs, nil
}

// ListCreatorIDsByUserIn retrieves the subset of creatorIDs the user is subscribed to.
func (repo *subscriptionRepository) ListCreatorIDsByUserIn(ctx context.Context, userID uuid.UUID, creatorIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(creatorIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	var owned []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.CreatorSubscriptionModel{}).
		Where("user_id = ? AND creator_id IN ?", userID, creatorIDs).
		Pluck("creator_id", &owned).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list creator IDs by user in set")
	}

	return owned, nil
}

// ReassignOwner moves the subscription rows matching (fromUserID, creatorIDs) to toUserID.
func (repo *subscriptionRepository) ReassignOwner(ctx context.Context, fromUserID, toUserID uuid.UUID, creatorIDs []uuid.UUID) error {
	if len(creatorIDs) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.CreatorSubscriptionModel{}).
		Where("user_id = ? AND creator_id IN ?", fromUserID, creatorIDs).
		Update("user_id", toUserID).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubscription
		}

		return errors.Wrap(err, "failed to reassign subscription owner")
	}

	return nil
}

// DeleteByUserAndCreators removes the subscription rows matching (userID, creatorIDs).
func (repo *subscriptionRepository) DeleteByUserAndCreators(ctx context.Context, userID uuid.UUID, creatorIDs []uuid.UUID) error {
	if len(creatorIDs) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND creator_id IN ?", userID, creatorIDs).
		Delete(&model.CreatorSubscriptionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete subscriptions by user and creators")
	}

	return nil
}
