package impl

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestClassifyTransfer_Disjoint(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	transfer, duplicate := classifyTransfer([]uuid.UUID{a, b, c}, nil)

	assert.Equal(t, []uuid.UUID{a, b, c}, transfer)
	assert.Empty(t, duplicate)
}

func TestClassifyTransfer_Overlap(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	transfer, duplicate := classifyTransfer([]uuid.UUID{a, b, c}, []uuid.UUID{b})

	assert.Equal(t, []uuid.UUID{a, c}, transfer)
	assert.Equal(t, []uuid.UUID{b}, duplicate)
}

func TestClassifyTransfer_AllDuplicates(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	transfer, duplicate := classifyTransfer([]uuid.UUID{a, b}, []uuid.UUID{b, a})

	assert.Empty(t, transfer)
	assert.Equal(t, []uuid.UUID{a, b}, duplicate)
}

func TestClassifyTransfer_EmptySource(t *testing.T) {
	transfer, duplicate := classifyTransfer(nil, []uuid.UUID{uuid.New()})

	assert.Empty(t, transfer)
	assert.Empty(t, duplicate)
}

// The target may own creators the source never had; they must not leak into
// either partition.
func TestClassifyTransfer_TargetExtrasIgnored(t *testing.T) {
	a := uuid.New()
	extra := uuid.New()

	transfer, duplicate := classifyTransfer([]uuid.UUID{a}, []uuid.UUID{extra})

	assert.Equal(t, []uuid.UUID{a}, transfer)
	assert.Empty(t, duplicate)
}
