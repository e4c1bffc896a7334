// Package search implements a generic graph search (breadth-first,
// depth-first, best-first, A*) over any Config, plus the three concrete
// Config types used by the puzzle core: WalkConfig, MoveConfig and
// PushConfig.
package search

// Config is a search node. GetNeighbours expands it, Key identifies it for
// the closed set, Less gives a total ordering over configs of the same
// type, and EstimatedDistance is the heuristic consulted by the best-first
// and A* strategies (unused, and safe to return 0 from, by breadth-first
// and depth-first).
type Config interface {
	Key() string
	GetNeighbours() []Config
	IsGoal() bool
	Less(other Config) bool
	EstimatedDistance() int
}

// Status is the outcome of a Searcher run.
type Status int

const (
	FoundSolution Status = iota
	NoSolution
	Interrupted
)

func (s Status) String() string {
	switch s {
	case FoundSolution:
		return "FoundSolution"
	case NoSolution:
		return "NoSolution"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown"
	}
}

// Strategy selects the expansion order of a Searcher.
type Strategy int

const (
	BreadthFirst Strategy = iota
	DepthFirst
	BestFirst
	AStar
)

// Result is what a Searcher run produces: a Status plus, when
// FoundSolution, the sequence of Configs from the start (inclusive) to the
// goal (inclusive).
type Result struct {
	Status Status
	Path   []Config
}
