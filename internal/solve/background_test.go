package solve

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"mzm/internal/level"
	"mzm/internal/pool"
)

func buildSolvableLevel(t *testing.T) *level.LevelData {
	t.Helper()
	ld, err := level.NewLevelData(2, 4)
	assert.NoError(t, err)
	ld.SetBlock(0, 1, true)
	assert.NoError(t, ld.SetStart(0))
	assert.NoError(t, ld.SetFinish(1))
	assert.True(t, ld.IsValid())
	return ld
}

type solutionCall struct {
	levelNum int
	category pool.Category
	solvable bool
	dirs     []level.Direction
}

type ratingCall struct {
	levelNum int
	rating   float64
	pushes   int
}

// fakeCollector records raw callback invocations, for tests that need to
// inspect what MultiSolver reported rather than the rendered text output.
type fakeCollector struct {
	mu        sync.Mutex
	solutions []solutionCall
	ratings   []ratingCall
	levelNums []int
}

func (f *fakeCollector) CollectSolution(levelNum int, category pool.Category, solvable bool, dirs []level.Direction) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.solutions = append(f.solutions, solutionCall{levelNum, category, solvable, dirs})
}

func (f *fakeCollector) CollectRating(levelNum int, rating float64, pushes int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ratings = append(f.ratings, ratingCall{levelNum, rating, pushes})
}

func (f *fakeCollector) CollectLevelNumber(levelNum int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.levelNums = append(f.levelNums, levelNum)
}

func TestBackgroundSolver_SetNewLevel_ReportsBothCategories(t *testing.T) {
	lvl := buildSolvableLevel(t)
	p := pool.NewWorkerPool(2)
	defer p.Close()

	collector := &fakeCollector{}
	bg := NewBackgroundSolver(p, collector)

	assert.NoError(t, bg.SetNewLevel(lvl, 1, Flags{Both: true}))
	p.WaitAsynchronous()

	collector.mu.Lock()
	defer collector.mu.Unlock()
	assert.Len(t, collector.solutions, 2)
	var cats []pool.Category
	for _, s := range collector.solutions {
		assert.Equal(t, 1, s.levelNum)
		assert.True(t, s.solvable)
		cats = append(cats, s.category)
	}
	assert.ElementsMatch(t, []pool.Category{pool.FewestPushes, pool.FewestMoves}, cats)

	assert.Len(t, collector.ratings, 1)
	assert.Equal(t, 0.0, collector.ratings[0].rating)
	assert.Equal(t, 0, collector.ratings[0].pushes)
}

func TestBackgroundSolver_Stop_IsSafeWithNoWorkQueued(t *testing.T) {
	p := pool.NewWorkerPool(2)
	defer p.Close()

	bg := NewBackgroundSolver(p, &fakeCollector{})
	assert.NotPanics(t, bg.Stop)
	assert.True(t, p.IsFinished())
}
