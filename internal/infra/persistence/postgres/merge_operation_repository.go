package postgres

import (
	"context"
	"encoding/json"

	"unify/internal/domain/entity"
	"unify/internal/domain/repository"
	"unify/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// mergeOperationRepository implements the repository.MergeOperationRepository interface.
type mergeOperationRepository struct {
	db *gorm.DB
}

// NewMergeOperationRepository is the constructor for mergeOperationRepository.
func NewMergeOperationRepository(db *gorm.DB) repository.MergeOperationRepository {
	return &mergeOperationRepository{
		db: db,
	}
}

// Create persists a new operation row in its initial stage.
func (repo *mergeOperationRepository) Create(ctx context.Context, op *entity.MergeOperation) error {
	opM := fromMergeOperationDomain(op)

	if err := repo.db.WithContext(ctx).Create(opM).Error; err != nil {
		return errors.Wrap(err, "failed to create merge operation")
	}

	// Update the entity with generated values
	op.ID = opM.ID
	op.CreatedAt = opM.CreatedAt
	op.UpdatedAt = opM.UpdatedAt

	return nil
}

// UpdateStage advances the stage marker of an operation.
func (repo *mergeOperationRepository) UpdateStage(ctx context.Context, id uuid.UUID, stage entity.MergeStage) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.MergeOperationModel{}).
		Where("id = ?", id).
		Update("stage", string(stage)).Error; err != nil {
		return errors.Wrap(err, "failed to update merge operation stage")
	}

	return nil
}

// UpdateSnapshot records the captured snapshot fragments on an operation.
func (repo *mergeOperationRepository) UpdateSnapshot(ctx context.Context, id uuid.UUID, creatorIDs, contentIDs []uuid.UUID) error {
	updates, err := snapshotUpdates(creatorIDs, contentIDs)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.MergeOperationModel{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return errors.Wrap(err, "failed to update merge operation snapshot")
	}

	return nil
}

// MarkFailed sets the failed stage together with the failure message.
func (repo *mergeOperationRepository) MarkFailed(ctx context.Context, id uuid.UUID, failure string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.MergeOperationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stage":   string(entity.StageFailed),
			"failure": failure,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to mark merge operation failed")
	}

	return nil
}

// snapshotUpdates builds the column assignments for a snapshot write. A nil
// fragment is left untouched. Map-based updates bypass the model's json
// serializer, so the id lists are marshalled here before they reach the
// driver; the jsonb columns would otherwise receive a raw uuid slice.
func snapshotUpdates(creatorIDs, contentIDs []uuid.UUID) (map[string]any, error) {
	updates := map[string]any{}
	if creatorIDs != nil {
		data, err := json.Marshal(creatorIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal creator id snapshot")
		}
		updates["creator_ids"] = datatypes.JSON(data)
	}
	if contentIDs != nil {
		data, err := json.Marshal(contentIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal content id snapshot")
		}
		updates["content_ids"] = datatypes.JSON(data)
	}

	return updates, nil
}

// fromMergeOperationDomain converts a domain entity to its GORM model.
func fromMergeOperationDomain(op *entity.MergeOperation) *model.MergeOperationModel {
	return &model.MergeOperationModel{
		ID:           op.ID,
		SourceUserID: op.SourceUserID,
		TargetUserID: op.TargetUserID,
		Stage:        string(op.Stage),
		CreatorIDs:   op.CreatorIDs,
		ContentIDs:   op.ContentIDs,
		Failure:      op.Failure,
	}
}
