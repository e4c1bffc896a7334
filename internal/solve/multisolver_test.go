package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mzm/internal/pool"
)

func TestSearches_ExpandsRatingAndMoveCountToTheirCategories(t *testing.T) {
	assert.Equal(t, bitFewestPushes, searches(Flags{FewestPushes: true}))
	assert.Equal(t, bitFewestPushes, searches(Flags{Rating: true}))
	assert.Equal(t, bitFewestMoves, searches(Flags{FewestMoves: true}))
	assert.Equal(t, bitFastest, searches(Flags{AnySolution: true}))
	assert.Equal(t, bitFewestPushes|bitFewestMoves, searches(Flags{Both: true}))
	assert.Equal(t, bitFewestPushes|bitFewestMoves|bitFastest, searches(Flags{Both: true, AnySolution: true}))
}

func TestTakeBit_DrainsInPushesMovesFastestOrder(t *testing.T) {
	bits := bitFewestMoves | bitFastest | bitFewestPushes

	cat, ok := takeBit(&bits)
	assert.True(t, ok)
	assert.Equal(t, pool.FewestPushes, cat)

	cat, ok = takeBit(&bits)
	assert.True(t, ok)
	assert.Equal(t, pool.FewestMoves, cat)

	cat, ok = takeBit(&bits)
	assert.True(t, ok)
	assert.Equal(t, pool.Fastest, cat)

	_, ok = takeBit(&bits)
	assert.False(t, ok)
}
