package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID_ValidAndClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id      ID
		valid   bool
		clamped ID
	}{
		{0, false, 1},
		{1, true, 1},
		{4, true, 4},
		{5, false, 4},
		{-3, false, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.id.Valid(), "id %d", tt.id)
		assert.Equal(t, tt.clamped, tt.id.Clamp(), "id %d", tt.id)
	}
	assert.Equal(t, "P3", ID(3).String())
}

func TestIDs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []ID{1, 2, 3}, IDs(3))
	assert.Equal(t, []ID{1, 2, 3, 4}, IDs(9))
	assert.Empty(t, IDs(0))
	assert.Empty(t, IDs(-1))
}

func TestPlayer_ResetForRound(t *testing.T) {
	t.Parallel()

	p := &Player{ID: 2, Active: true, Role: RoleDistinguished, Frozen: true, Score: 3}
	p.ResetForRound()
	assert.False(t, p.IsDistinguished())
	assert.False(t, p.Frozen)
	assert.Equal(t, uint32(3), p.Score)
}

func TestSortedIDs(t *testing.T) {
	t.Parallel()

	m := map[ID]bool{4: true, 1: true, 3: true}
	assert.Equal(t, []ID{1, 3, 4}, SortedIDs(m))
}
