package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelData_SetBlockRoundTrip(t *testing.T) {
	ld, err := NewLevelData(2, 4)
	assert.NoError(t, err)

	ld.SetBlock(0, 1, true)
	assert.True(t, ld.GetBlock(0, 1))
	assert.False(t, ld.GetBlock(0, 0))
	assert.False(t, ld.GetBlock(0, 2))
	assert.Equal(t, 1, ld.Inset(0))

	ld.SetBlock(0, 2, true)
	assert.True(t, ld.GetBlock(0, 1))
	assert.True(t, ld.GetBlock(0, 2))

	ld.SetBlock(0, 1, false)
	assert.False(t, ld.GetBlock(0, 1))
	assert.True(t, ld.GetBlock(0, 2))
}

func TestLevelData_SetBlockIdempotent(t *testing.T) {
	// set_block(y,x,v); set_block(y,x,v') must equal one direct set_block(y,x,v').
	tests := []bool{true, false}
	for _, first := range tests {
		for _, second := range tests {
			a, _ := NewLevelData(2, 4)
			a.SetBlock(0, 2, true) // seed some row content
			a.SetBlock(0, 1, first)
			a.SetBlock(0, 1, second)

			b, _ := NewLevelData(2, 4)
			b.SetBlock(0, 2, true)
			b.SetBlock(0, 1, second)

			assert.Equal(t, b.row[0], a.row[0])
			assert.Equal(t, b.inset[0], a.inset[0])
		}
	}
}

func TestLevelData_ShiftPredicates(t *testing.T) {
	ld, _ := NewLevelData(2, 4)
	ld.SetBlock(0, 1, true)

	assert.True(t, ld.CanShiftWest(0))
	assert.True(t, ld.CanShiftEast(0))

	ld.ShiftEast(0)
	assert.True(t, ld.GetBlock(0, 2))
	assert.False(t, ld.GetBlock(0, 1))

	ld.ShiftEast(0)
	assert.True(t, ld.GetBlock(0, 3))
	assert.False(t, ld.CanShiftEast(0))

	ld.ShiftWest(0)
	ld.ShiftWest(0)
	ld.ShiftWest(0)
	assert.False(t, ld.CanShiftWest(0))
	assert.True(t, ld.GetBlock(0, 0))
}

func TestLevelData_EmptyRowInsetInvariant(t *testing.T) {
	ld, _ := NewLevelData(2, 4)
	assert.Equal(t, Row(0), ld.RowBits(0))
	assert.Equal(t, 4, ld.Inset(0))

	ld.SetBlock(0, 0, true)
	ld.SetBlock(0, 0, false)
	assert.Equal(t, Row(0), ld.RowBits(0))
	assert.Equal(t, 4, ld.Inset(0))
}

func TestLevelData_IsValid(t *testing.T) {
	ld, _ := NewLevelData(2, 4)
	ld.SetBlock(0, 1, true)
	assert.True(t, ld.IsValid())

	bad := ld.Clone()
	bad.SetStart(0)
	bad.SetBlock(0, 0, true) // blocks the entrance column
	assert.False(t, bad.IsValid())
}

func TestLevelData_FromGrid(t *testing.T) {
	grid := [][]bool{
		{false, true, false, false},
		{false, false, false, false},
	}
	ld, err := NewLevelDataFromGrid(grid, 0, 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, ld.Height())
	assert.Equal(t, 4, ld.Width())
	assert.True(t, ld.GetBlock(0, 1))
	assert.False(t, ld.GetBlock(1, 0))
	assert.True(t, ld.IsValid())
}

func TestLevelData_SetDimensionsRefusesOverflowingContent(t *testing.T) {
	ld, _ := NewLevelData(2, 5)
	ld.SetBlock(0, 4, true)
	assert.False(t, ld.CanSetDimensions(2, MinWidth))
	err := ld.SetDimensions(2, MinWidth)
	assert.Error(t, err)
}

func TestLevelData_SetDimensionsGrowsAndShrinks(t *testing.T) {
	ld, _ := NewLevelData(2, 4)
	ld.SetBlock(0, 1, true)

	assert.True(t, ld.CanSetDimensions(3, 5))
	assert.NoError(t, ld.SetDimensions(3, 5))
	assert.Equal(t, 3, ld.Height())
	assert.Equal(t, 5, ld.Width())
	assert.True(t, ld.GetBlock(0, 1))
	assert.True(t, ld.IsValid())
}

func TestLevelData_Clone(t *testing.T) {
	ld, _ := NewLevelData(2, 4)
	ld.SetBlock(0, 1, true)
	clone := ld.Clone()
	clone.SetBlock(0, 2, true)
	assert.False(t, ld.GetBlock(0, 2))
	assert.True(t, clone.GetBlock(0, 2))
}
