package solve

import (
	"io"

	"mzm/internal/level"
	"mzm/internal/mzmtext"
	"mzm/internal/pool"
)

type solutionRecord struct {
	solvable bool
	dirs     []level.Direction
}

type levelRecord struct {
	outstanding categoryBit
	rating      *float64
	solutions   map[pool.Category]solutionRecord
}

// OrderedCollector buffers per-level solver outcomes and flushes them, in
// level order, to w via mzmtext.WriteSolution: a level is held back until
// every requested category has reported and every earlier level has been
// emitted.
type OrderedCollector struct {
	w        io.Writer
	flags    Flags
	next     int
	reserved bool  // true once CollectLevelNumber has been used
	order    []int // reserved level numbers, in reservation order
	pending  map[int]*levelRecord
	err      error
}

// NewOrderedCollector writes solved levels to w in order starting from
// firstLevel, expecting the categories flags describes for every level.
func NewOrderedCollector(w io.Writer, flags Flags, firstLevel int) *OrderedCollector {
	return &OrderedCollector{w: w, flags: flags, next: firstLevel, pending: make(map[int]*levelRecord)}
}

// Err returns the first write error WriteSolution produced while flushing,
// if any.
func (c *OrderedCollector) Err() error { return c.err }

func (c *OrderedCollector) record(levelNum int) *levelRecord {
	r, ok := c.pending[levelNum]
	if !ok {
		r = &levelRecord{outstanding: searches(c.flags), solutions: make(map[pool.Category]solutionRecord)}
		c.pending[levelNum] = r
	}
	return r
}

// CollectLevelNumber reserves levelNum as a level that will eventually
// report results, needed by OfflineSolver where level numbers may have
// gaps (a range filter) or are all known before any job completes. Once
// any reservation has been made, emission follows the reservation order
// instead of counting up from firstLevel.
func (c *OrderedCollector) CollectLevelNumber(levelNum int) {
	c.reserved = true
	c.order = append(c.order, levelNum)
	c.record(levelNum)
	c.flush()
}

// CollectRating implements Collector. The rating is only retained (and
// later printed) when the collector's flags asked for one.
func (c *OrderedCollector) CollectRating(levelNum int, rating float64, pushes int) {
	r := c.record(levelNum)
	if c.flags.Rating {
		v := rating
		r.rating = &v
	}
	c.flush()
}

// CollectSolution implements Collector.
func (c *OrderedCollector) CollectSolution(levelNum int, category pool.Category, solvable bool, dirs []level.Direction) {
	r := c.record(levelNum)
	r.solutions[category] = solutionRecord{solvable: solvable, dirs: dirs}
	r.outstanding &^= bitFor(category)
	c.flush()
}

// flush emits every level at the front of the buffer whose outstanding
// mask is empty, in order, stopping at the first still-outstanding level.
// "Next expected" is the front of the reservation queue when reservations
// are in use, or a consecutive counter from firstLevel when they are not
// (the background-solver case, where every level is reported as it comes).
func (c *OrderedCollector) flush() {
	for {
		n := c.next
		if c.reserved {
			if len(c.order) == 0 {
				return
			}
			n = c.order[0]
		}
		r, ok := c.pending[n]
		if !ok || r.outstanding != 0 {
			return
		}
		c.emit(n, r)
		delete(c.pending, n)
		if c.reserved {
			c.order = c.order[1:]
		} else {
			c.next++
		}
	}
}

var emitOrder = []pool.Category{pool.FewestPushes, pool.FewestMoves, pool.Fastest}

func (c *OrderedCollector) emit(levelNum int, r *levelRecord) {
	var solutions []mzmtext.Solution
	for _, cat := range emitOrder {
		sol, ok := r.solutions[cat]
		if !ok {
			continue
		}
		solutions = append(solutions, mzmtext.Solution{
			Label:    solutionLabel(cat),
			Solvable: sol.solvable,
			Dirs:     sol.dirs,
		})
	}
	if err := mzmtext.WriteSolution(c.w, levelNum, solutions, r.rating); err != nil && c.err == nil {
		c.err = err
	}
}

func solutionLabel(cat pool.Category) string {
	switch cat {
	case pool.FewestPushes:
		return "Solution(Pushes)"
	case pool.FewestMoves:
		return "Solution(Moves)"
	default:
		return "Solution"
	}
}
