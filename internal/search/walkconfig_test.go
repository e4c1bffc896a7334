package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalkConfig_GoalAndOrdering(t *testing.T) {
	ld := openLevel(t, 3, 4)
	start := NewWalkConfig(ld, 0, 0, 2, 2)
	assert.False(t, start.IsGoal())
	assert.Equal(t, 4, start.EstimatedDistance())

	goal := NewWalkConfig(ld, 2, 2, 2, 2)
	assert.True(t, goal.IsGoal())
	assert.Equal(t, 0, goal.EstimatedDistance())

	other := NewWalkConfig(ld, 0, 1, 2, 2)
	assert.True(t, start.Less(other))
	assert.False(t, other.Less(start))
}

func TestWalkConfig_NeighboursRespectBlocks(t *testing.T) {
	ld := openLevel(t, 3, 4)
	ld.SetBlock(0, 1, true) // block immediately east of (0,0)
	w := NewWalkConfig(ld, 0, 0, 0, 0)
	var seenEast bool
	for _, nb := range w.GetNeighbours() {
		wc := nb.(*WalkConfig)
		if wc.X() == 1 && wc.Y() == 0 {
			seenEast = true
		}
	}
	assert.False(t, seenEast, "a neighbour cannot land on an occupied cell")
}
