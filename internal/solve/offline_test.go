package solve

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mzm/internal/level"
	"mzm/internal/pool"
)

type fakeLevelSource struct {
	levels []*level.LevelData
	i      int
}

func (s *fakeLevelSource) Next() (*level.LevelData, int, bool) {
	if s.i >= len(s.levels) {
		return nil, 0, false
	}
	lvl := s.levels[s.i]
	num := s.i + 1
	s.i++
	return lvl, num, true
}

func TestOfflineSolver_Run_EmitsLevelsInOrderRegardlessOfDispatchOrder(t *testing.T) {
	src := &fakeLevelSource{levels: []*level.LevelData{
		buildSolvableLevel(t), buildSolvableLevel(t), buildSolvableLevel(t),
	}}

	p := pool.NewWorkerPool(4)
	defer p.Close()

	var buf bytes.Buffer
	collector := NewOrderedCollector(&buf, Flags{FewestPushes: true}, 1)
	solver := NewOfflineSolver(p, collector, Flags{FewestPushes: true}, false)

	solver.Run(src)

	out := buf.String()
	i1 := strings.Index(out, "Level 1")
	i2 := strings.Index(out, "Level 2")
	i3 := strings.Index(out, "Level 3")
	assert.True(t, i1 >= 0 && i2 > i1 && i3 > i2, "expected strictly increasing level order, got %q", out)
	assert.NoError(t, collector.Err())
}

func TestOfflineSolver_RunCopyMode_EmitsOneLevelAtATime(t *testing.T) {
	src := &fakeLevelSource{levels: []*level.LevelData{
		buildSolvableLevel(t), buildSolvableLevel(t),
	}}

	p := pool.NewWorkerPool(2)
	defer p.Close()

	var buf bytes.Buffer
	collector := NewOrderedCollector(&buf, Flags{FewestPushes: true}, 1)
	solver := NewOfflineSolver(p, collector, Flags{FewestPushes: true}, false)

	solver.RunCopyMode(src)

	out := buf.String()
	assert.Contains(t, out, "Level 1")
	assert.Contains(t, out, "Level 2")
	assert.True(t, strings.Index(out, "Level 1") < strings.Index(out, "Level 2"))
}
