package postgres

import (
	"context"

	"unify/internal/domain/repository"
	"unify/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// interactionRepository implements the repository.InteractionRepository interface.
type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository is the constructor for interactionRepository.
func NewInteractionRepository(db *gorm.DB) repository.InteractionRepository {
	return &interactionRepository{
		db: db,
	}
}

// ListContentIDsByUser retrieves the content IDs of every interaction owned by the user.
func (repo *interactionRepository) ListContentIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var contentIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.ContentInteractionModel{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("content_id", &contentIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list content IDs by user")
	}

	return contentIDs, nil
}

// ListContentIDsByUserIn retrieves the subset of contentIDs the user has interacted with.
func (repo *interactionRepository) ListContentIDsByUserIn(ctx context.Context, userID uuid.UUID, contentIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(contentIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	var owned []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.ContentInteractionModel{}).
		Where("user_id = ? AND content_id IN ?", userID, contentIDs).
		Pluck("content_id", &owned).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list content IDs by user in set")
	}

	return owned, nil
}

// ReassignOwner moves the interaction rows matching (fromUserID, contentIDs) to toUserID.
func (repo *interactionRepository) ReassignOwner(ctx context.Context, fromUserID, toUserID uuid.UUID, contentIDs []uuid.UUID) error {
	if len(contentIDs) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ContentInteractionModel{}).
		Where("user_id = ? AND content_id IN ?", fromUserID, contentIDs).
		Update("user_id", toUserID).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateInteraction
		}

		return errors.Wrap(err, "failed to reassign interaction owner")
	}

	return nil
}

// DeleteByUserAndContents removes the interaction rows matching (userID, contentIDs).
func (repo *interactionRepository) DeleteByUserAndContents(ctx context.Context, userID uuid.UUID, contentIDs []uuid.UUID) error {
	if len(contentIDs) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND content_id IN ?", userID, contentIDs).
		Delete(&model.ContentInteractionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete interactions by user and contents")
	}

	return nil
}
