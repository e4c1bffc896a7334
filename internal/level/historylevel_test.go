package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func minimalHistoryLevel(t *testing.T) *HistoryLevel {
	t.Helper()
	return NewHistoryLevel(minimalSolvableLevel(t))
}

func TestHistoryLevel_MoveSequenceRecordsPath(t *testing.T) {
	h := minimalHistoryLevel(t)
	assert.True(t, h.MoveEast())
	assert.True(t, h.MoveSouth())
	assert.Equal(t, []Direction{East, South}, h.Path)
	assert.Equal(t, 2, h.Cursor)
}

func TestHistoryLevel_IllegalMoveNotRecorded(t *testing.T) {
	h := minimalHistoryLevel(t)
	assert.False(t, h.MoveWest()) // entrance has no west neighbour
	assert.Empty(t, h.Path)
	assert.Equal(t, 0, h.Cursor)
}

func TestHistoryLevel_PushUndoRedo(t *testing.T) {
	h := minimalHistoryLevel(t)
	assert.True(t, h.MoveEast())
	assert.True(t, h.PushEast())
	assert.Equal(t, Coord(1), h.X)
	assert.True(t, h.GetBlock(0, 2))

	assert.True(t, h.CanUndo())
	assert.True(t, h.Undo())
	assert.Equal(t, Coord(0), h.X)
	assert.True(t, h.GetBlock(0, 1))
	assert.False(t, h.GetBlock(0, 2))

	assert.True(t, h.CanRedo())
	assert.True(t, h.Redo())
	assert.Equal(t, Coord(1), h.X)
	assert.True(t, h.GetBlock(0, 2))
	assert.False(t, h.CanRedo())
}

func TestHistoryLevel_NewMoveTruncatesRedoLog(t *testing.T) {
	h := minimalHistoryLevel(t)
	h.MoveEast()
	h.MoveSouth()
	h.Undo()
	assert.True(t, h.CanRedo())

	assert.True(t, h.MoveNorth()) // a fresh move instead of redoing South
	assert.Equal(t, []Direction{East, North}, h.Path)
	assert.Equal(t, 2, h.Cursor)
	assert.False(t, h.CanRedo())
}

func TestHistoryLevel_Reset(t *testing.T) {
	h := minimalHistoryLevel(t)
	h.MoveEast()
	h.PushEast()
	h.Reset()
	assert.False(t, h.CanUndo())
	assert.True(t, h.AtEntrance())
	assert.True(t, h.GetBlock(0, 1))
	assert.False(t, h.GetBlock(0, 2))
}

func TestHistoryLevel_CannotUndoPastStart(t *testing.T) {
	h := minimalHistoryLevel(t)
	assert.False(t, h.CanUndo())
	assert.False(t, h.Undo())
}
