package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mzm/internal/level"
)

// buildScenario is the minimal solvable level shape: H=2, W=4, start=0,
// a single block at row 0 column 1. finish=1 is solvable with zero
// pushes via the open row; finish=0 forces a push in the entrance row.
func buildScenario(t *testing.T, finish level.Coord) *level.LevelData {
	t.Helper()
	ld, err := level.NewLevelData(2, 4)
	assert.NoError(t, err)
	ld.SetBlock(0, 1, true)
	assert.NoError(t, ld.SetStart(0))
	assert.NoError(t, ld.SetFinish(finish))
	assert.True(t, ld.IsValid())
	return ld
}

func TestMoveConfig_StartsAtEntrance(t *testing.T) {
	ld := buildScenario(t, 1)
	c := NewMoveConfig(ld)
	assert.False(t, c.IsGoal())
	assert.Equal(t, ld.Width(), c.xx())
}

func TestMoveConfig_IsGoalAtExitColumn(t *testing.T) {
	ld := buildScenario(t, 1)
	result := NewSearcher(BreadthFirst).Search(NewMoveConfig(ld))
	assert.Equal(t, FoundSolution, result.Status)
	last := result.Path[len(result.Path)-1].(*MoveConfig)
	assert.True(t, last.IsGoal())
	assert.Equal(t, ld.Width(), int(last.x))
}

func TestMoveConfig_FewestMovesUsesOpenRowBypass(t *testing.T) {
	ld := buildScenario(t, 1)
	result := NewSearcher(BreadthFirst).Search(NewMoveConfig(ld))
	assert.Equal(t, FoundSolution, result.Status)

	dirs, err := ReconstructMovePath(result.Path)
	assert.NoError(t, err)
	assert.NotEmpty(t, dirs)
	for _, d := range dirs {
		assert.NotEqual(t, level.PushEast, d, "row 1 bypass needs no push")
		assert.NotEqual(t, level.PushWest, d, "row 1 bypass needs no push")
	}
}

func TestMoveConfig_FewestMovesSolvesSharedEntranceExitRow(t *testing.T) {
	ld := buildScenario(t, 0) // entrance and exit share the blocked row
	result := NewSearcher(BreadthFirst).Search(NewMoveConfig(ld))
	assert.Equal(t, FoundSolution, result.Status)

	dirs, err := ReconstructMovePath(result.Path)
	assert.NoError(t, err)
	assert.NotEmpty(t, dirs)

	pl := level.NewPlayerLevel(ld.Clone())
	for _, d := range dirs {
		assert.Truef(t, pl.CanApply(d), "illegal step %v at (%d,%d)", d, pl.X, pl.Y)
		pl.Apply(d)
	}
	assert.True(t, pl.AtExit())
}

func TestMoveConfig_EstimatedDistanceDecreasesTowardExit(t *testing.T) {
	ld := buildScenario(t, 1)
	start := NewMoveConfig(ld)
	nearExit := &MoveConfig{lvl: ld, inset: ld.InsetVector(), x: level.Coord(ld.Width() - 1), y: ld.Finish()}
	goal := &MoveConfig{lvl: ld, inset: ld.InsetVector(), x: level.Coord(ld.Width()), y: ld.Finish()}

	assert.True(t, goal.IsGoal())
	assert.False(t, nearExit.IsGoal())
	// The heuristic is an admissible, monotonically decreasing underestimate
	// of remaining moves as x approaches the exit; it need not bottom out
	// at exactly zero at the goal state itself.
	assert.Less(t, nearExit.EstimatedDistance(), start.EstimatedDistance())
	assert.LessOrEqual(t, goal.EstimatedDistance(), nearExit.EstimatedDistance())
}

func TestMoveConfig_Less_OrdersByColumnThenRowThenInset(t *testing.T) {
	ld := buildScenario(t, 1)
	a := NewMoveConfig(ld)
	b := a.moved(a.x+1, a.y)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestReconstructMovePath_RejectsEmptyPath(t *testing.T) {
	_, err := ReconstructMovePath(nil)
	assert.Error(t, err)
}

func TestReconstructMovePath_RejectsForeignConfigType(t *testing.T) {
	ld := buildScenario(t, 1)
	walk := NewWalkConfig(ld, 0, 0, 0, 0)
	_, err := ReconstructMovePath([]Config{walk, walk})
	assert.Error(t, err)
}
