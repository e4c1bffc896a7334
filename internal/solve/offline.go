package solve

import (
	"mzm/internal/level"
	"mzm/internal/pool"
)

// LevelSource streams numbered levels, such as an .mzm reader walking a
// parsed Document.
type LevelSource interface {
	Next() (lvl *level.LevelData, levelNum int, ok bool)
}

// OfflineSolver streams LevelData from a source and solves each per a
// fixed flag set.
type OfflineSolver struct {
	MultiSolver
	pool  *pool.WorkerPool
	flags Flags
}

// NewOfflineSolver builds a solver that dispatches against p, reporting to
// collector, requesting flags for every level it sees. useAStar selects A*
// over breadth-first for the optimal searches (cmd/mzmsolve's -A).
func NewOfflineSolver(p *pool.WorkerPool, collector Collector, flags Flags, useAStar bool) *OfflineSolver {
	s := &OfflineSolver{MultiSolver: newMultiSolver(collector), pool: p, flags: flags}
	s.SetUseAStar(useAStar)
	return s
}

// RunCopyMode solves one level at a time, synchronously, so every level's
// solver output is fully emitted before the caller copies the next source
// line.
func (o *OfflineSolver) RunCopyMode(src LevelSource) {
	for {
		lvl, levelNum, ok := src.Next()
		if !ok {
			return
		}
		o.collector.CollectLevelNumber(levelNum)
		o.reset(levelNum, lvl, o.flags)
		o.pool.WorkSynchronous(o)
	}
}

// Run dispatches every level's jobs up front and lets the pool and
// OrderedCollector restore level-number order.
func (o *OfflineSolver) Run(src LevelSource) {
	for {
		lvl, levelNum, ok := src.Next()
		if !ok {
			break
		}
		o.collector.CollectLevelNumber(levelNum)
		o.enqueue(levelNum, lvl, o.flags)
	}
	o.pool.WorkSynchronous(o)
}
