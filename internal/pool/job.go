// Package pool implements the cooperative worker pool that serves
// SolverJobs synchronously or asynchronously, with cancellation and a
// client-lock handshake that keeps client callbacks single-threaded.
package pool

import (
	"fmt"
	"math"

	"mzm/internal/level"
	"mzm/internal/search"
)

// Category is the solution type a SolverJob answers.
type Category int

const (
	FewestMoves Category = iota
	FewestPushes
	Fastest
)

func (c Category) String() string {
	switch c {
	case FewestMoves:
		return "FewestMoves"
	case FewestPushes:
		return "FewestPushes"
	case Fastest:
		return "Fastest"
	default:
		return "Unknown"
	}
}

// JobStatus is the outcome of running a job's body to completion or
// cancellation.
type JobStatus int

const (
	Finished JobStatus = iota
	Interrupted
)

// Job is the unit of work a WorkerPool dispatches: a cancellable body plus
// a completion signal.
type Job interface {
	DoJob() JobStatus
	Stop()
}

// SolverJob wraps an initial Config and a search strategy as a cancellable
// unit of work: FewestMoves is MoveConfig+breadth-first, FewestPushes is
// PushConfig+breadth-first, Fastest is PushConfig+depth-first (any
// solution, not necessarily optimal).
type SolverJob struct {
	Category      Category
	width, height int

	searcher *search.Searcher
	start    search.Config
	result   search.Result
}

// NewSolverJob builds the job for category against lvl, using breadth-first
// search for the two optimal categories.
func NewSolverJob(category Category, lvl *level.LevelData) *SolverJob {
	return NewSolverJobWithStrategy(category, lvl, false)
}

// NewSolverJobWithStrategy builds the job for category against lvl. When
// useAStar is true, FewestMoves and FewestPushes run A* instead of
// breadth-first: both are admissible-heuristic optimal searches, so the
// result is unchanged, only (typically) faster to find. Fastest always runs
// depth-first, since it answers "any solution", not an optimal one.
func NewSolverJobWithStrategy(category Category, lvl *level.LevelData, useAStar bool) *SolverJob {
	j := &SolverJob{Category: category, width: lvl.Width(), height: lvl.Height()}
	optimal := search.BreadthFirst
	if useAStar {
		optimal = search.AStar
	}
	switch category {
	case FewestMoves:
		j.searcher = search.NewSearcher(optimal)
		j.start = search.NewMoveConfig(lvl)
	case FewestPushes:
		j.searcher = search.NewSearcher(optimal)
		j.start = search.NewPushConfig(lvl)
	case Fastest:
		j.searcher = search.NewSearcher(search.DepthFirst)
		j.start = search.NewPushConfig(lvl)
	default:
		panic(fmt.Sprintf("pool: unknown solver category %d", category))
	}
	return j
}

// DoJob runs the search. Safe to call from a worker goroutine while Stop
// is called from another.
func (j *SolverJob) DoJob() JobStatus {
	j.result = j.searcher.Search(j.start)
	if j.result.Status == search.Interrupted {
		return Interrupted
	}
	return Finished
}

// Stop requests cancellation of the in-progress or not-yet-run search.
func (j *SolverJob) Stop() {
	j.searcher.Stop()
}

// IsSolvable reports whether the job's search found a solution. Valid only
// after DoJob has returned Finished.
func (j *SolverJob) IsSolvable() bool {
	return j.result.Status == search.FoundSolution
}

// Path returns the winning sequence of Configs, start to goal inclusive.
func (j *SolverJob) Path() []search.Config {
	return j.result.Path
}

// PushCount is len(Path)-1 for a solved PushConfig job: the number of
// abstract pushes on the winning path.
func (j *SolverJob) PushCount() int {
	return len(j.result.Path) - 1
}

// MoveCount is len(Path)-1 for a solved MoveConfig job.
func (j *SolverJob) MoveCount() int {
	return len(j.result.Path) - 1
}

// Rating normalises push count by the level's diagonal, valid only for a
// solved FewestPushes job.
func (j *SolverJob) Rating() float64 {
	if j.Category != FewestPushes {
		panic("pool: Rating is only defined for a FewestPushes job")
	}
	if !j.IsSolvable() {
		panic("pool: Rating called on an unsolved job")
	}
	diag := math.Sqrt(float64(j.width*j.width + j.height*j.height))
	return float64(j.PushCount()) / diag
}
