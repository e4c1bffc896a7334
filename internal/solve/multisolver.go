// Package solve implements the level-stream controllers that sit above
// internal/pool: MultiSolver dispatches the search categories a caller
// wants for one or more levels, BackgroundSolver binds it to a
// live-editing level source, OfflineSolver binds it to a file stream,
// Improver searches for higher-rated neighbour levels, and
// OrderedCollector restores level-number order to out-of-order job
// completions before writing them out.
package solve

import (
	"mzm/internal/level"
	"mzm/internal/pool"
	"mzm/internal/search"
)

// categoryBit is one bit of the per-level `requested` bitfield: which
// solution categories still need a job dispatched.
type categoryBit uint8

const (
	bitFewestPushes categoryBit = 1 << iota
	bitFewestMoves
	bitFastest
)

func bitFor(c pool.Category) categoryBit {
	switch c {
	case pool.FewestPushes:
		return bitFewestPushes
	case pool.FewestMoves:
		return bitFewestMoves
	case pool.Fastest:
		return bitFastest
	default:
		panic("solve: unknown solver category")
	}
}

// Flags selects which solution categories a caller wants computed for a
// level, mirroring cmd/mzmsolve's -a/-p/-m/-b/-r options.
type Flags struct {
	AnySolution  bool // -a: any solution (Fastest/depth-first)
	FewestPushes bool // -p
	FewestMoves  bool // -m
	Both         bool // -b: fewest pushes and fewest moves (the default)
	Rating       bool // -r: requires the fewest-pushes search
}

// searches expands flags into the categories that must run: requesting a
// rating or a push count needs FewestPushes; requesting a move count needs
// FewestMoves.
func searches(flags Flags) categoryBit {
	var bits categoryBit
	if flags.AnySolution {
		bits |= bitFastest
	}
	if flags.FewestPushes || flags.Rating || flags.Both {
		bits |= bitFewestPushes
	}
	if flags.FewestMoves || flags.Both {
		bits |= bitFewestMoves
	}
	return bits
}

// takeBit clears and returns one set bit of *bits (pushes before moves
// before fastest), reporting false once *bits is empty.
func takeBit(bits *categoryBit) (pool.Category, bool) {
	switch {
	case *bits&bitFewestPushes != 0:
		*bits &^= bitFewestPushes
		return pool.FewestPushes, true
	case *bits&bitFewestMoves != 0:
		*bits &^= bitFewestMoves
		return pool.FewestMoves, true
	case *bits&bitFastest != 0:
		*bits &^= bitFastest
		return pool.Fastest, true
	default:
		return 0, false
	}
}

// Collector is the sink MultiSolver reports completed jobs to.
type Collector interface {
	// CollectSolution reports one category's outcome for levelNum: whether
	// it was solvable and, if so, the concrete direction path.
	CollectSolution(levelNum int, category pool.Category, solvable bool, dirs []level.Direction)
	// CollectRating reports the fewest-pushes rating for levelNum, -1 if
	// unsolvable.
	CollectRating(levelNum int, rating float64, pushes int)
	// CollectLevelNumber reserves levelNum as a level whose results will
	// eventually be reported, used by OfflineSolver before any of its jobs
	// complete.
	CollectLevelNumber(levelNum int)
}

// workItem is one level with search categories still to dispatch.
type workItem struct {
	levelNum  int
	lvl       *level.LevelData
	requested categoryBit
}

// jobInfo records which level and category an in-flight pool.Job answers.
type jobInfo struct {
	levelNum int
	lvl      *level.LevelData
	category pool.Category
}

// MultiSolver implements pool.Client: GetNextJob dispatches one requested
// category of one pending level at a time, JobDone reports the outcome to
// the Collector and reconstructs its concrete direction path.
//
// A single pending work item models BackgroundSolver (one level, replaced
// on every edit); multiple queued items model OfflineSolver's non-copy
// mode (every level's jobs queued up front, drained by one pool run).
type MultiSolver struct {
	collector Collector
	useAStar  bool
	pending   []workItem
	inFlight  map[pool.Job]jobInfo
}

func newMultiSolver(collector Collector) MultiSolver {
	return MultiSolver{collector: collector, inFlight: make(map[pool.Job]jobInfo)}
}

// SetUseAStar selects A* instead of breadth-first for the FewestMoves and
// FewestPushes searches this solver dispatches from now on.
func (m *MultiSolver) SetUseAStar(useAStar bool) { m.useAStar = useAStar }

// reset discards any pending work and queues exactly one level.
func (m *MultiSolver) reset(levelNum int, lvl *level.LevelData, flags Flags) {
	m.pending = []workItem{{levelNum: levelNum, lvl: lvl, requested: searches(flags)}}
}

// enqueue appends one more level to the pending queue without disturbing
// what is already queued.
func (m *MultiSolver) enqueue(levelNum int, lvl *level.LevelData, flags Flags) {
	m.pending = append(m.pending, workItem{levelNum: levelNum, lvl: lvl, requested: searches(flags)})
}

// GetNextJob implements pool.Client.
func (m *MultiSolver) GetNextJob() pool.Job {
	for len(m.pending) > 0 {
		item := &m.pending[0]
		cat, ok := takeBit(&item.requested)
		if !ok {
			m.pending = m.pending[1:]
			continue
		}
		job := pool.NewSolverJobWithStrategy(cat, item.lvl, m.useAStar)
		m.inFlight[job] = jobInfo{levelNum: item.levelNum, lvl: item.lvl, category: cat}
		return job
	}
	return nil
}

// JobDone implements pool.Client.
func (m *MultiSolver) JobDone(job pool.Job) {
	info, ok := m.inFlight[job]
	if !ok {
		return
	}
	delete(m.inFlight, job)

	sj := job.(*pool.SolverJob)
	solvable := sj.IsSolvable()

	if info.category == pool.FewestPushes {
		rating, pushes := -1.0, -1
		if solvable {
			rating, pushes = sj.Rating(), sj.PushCount()
		}
		m.collector.CollectRating(info.levelNum, rating, pushes)
	}

	var dirs []level.Direction
	if solvable {
		var err error
		switch info.category {
		case pool.FewestPushes, pool.Fastest:
			dirs, err = search.ReconstructPushPath(info.lvl, sj.Path())
		case pool.FewestMoves:
			dirs, err = search.ReconstructMovePath(sj.Path())
		}
		if err != nil {
			panic(err)
		}
	}
	m.collector.CollectSolution(info.levelNum, info.category, solvable, dirs)
}
