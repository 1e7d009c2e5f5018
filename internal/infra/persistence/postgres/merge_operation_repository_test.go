package postgres

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotUpdates_MarshalsIDListsToJSON(t *testing.T) {
	creatorIDs := []uuid.UUID{uuid.New(), uuid.New()}
	contentIDs := []uuid.UUID{uuid.New()}

	updates, err := snapshotUpdates(creatorIDs, contentIDs)
	require.NoError(t, err)
	require.Len(t, updates, 2)

	// The jsonb columns must receive serialized JSON, not raw uuid slices;
	// the json serializer on the model only runs for struct updates.
	raw, ok := updates["creator_ids"].(datatypes.JSON)
	require.True(t, ok)

	var decoded []uuid.UUID
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, creatorIDs, decoded)

	raw, ok = updates["content_ids"].(datatypes.JSON)
	require.True(t, ok)
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, contentIDs, decoded)
}

func TestSnapshotUpdates_SkipsNilFragments(t *testing.T) {
	contentIDs := []uuid.UUID{uuid.New()}

	updates, err := snapshotUpdates(nil, contentIDs)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.NotContains(t, updates, "creator_ids")
	assert.Contains(t, updates, "content_ids")

	updates, err = snapshotUpdates(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestSnapshotUpdates_EmptyListIsValidJSON(t *testing.T) {
	// An empty (non-nil) fragment records "[]", not SQL NULL: the merge of a
	// source with no rows still snapshots an empty membership.
	updates, err := snapshotUpdates([]uuid.UUID{}, nil)
	require.NoError(t, err)

	raw, ok := updates["creator_ids"].(datatypes.JSON)
	require.True(t, ok)
	assert.JSONEq(t, "[]", string(raw))
}
