package solve

import (
	"sync"

	"mzm/internal/level"
	"mzm/internal/pool"
	"mzm/internal/search"
)

// ImproverCollector is where an Improver reports each strictly better
// neighbour it finds.
type ImproverCollector interface {
	CollectImprovement(rating float64, pushes int, dirs []level.Direction, lvl *level.LevelData)
}

// Improver enumerates levels reachable from a starting level by flipping
// between 1 and radius block positions (skipping the cell directly in
// front of the entrance, and respecting an optional selection mask) and
// keeps the best-rated solvable variant found.
type Improver struct {
	pool      *pool.WorkerPool
	collector ImproverCollector
	radius    int
	start     *level.LevelData
	cells     []int // flattened y*width+x candidate cell indices

	mu         sync.Mutex
	bestRating float64
	bestLevel  *level.LevelData

	pending  []*level.LevelData
	inFlight map[pool.Job]*level.LevelData
}

// NewImprover builds an Improver seeded with start at startRating.
// selection, if non-nil, is a flattened y*width+x mask of modifiable
// positions; nil means every position is modifiable.
func NewImprover(p *pool.WorkerPool, collector ImproverCollector, start *level.LevelData, startRating float64, radius int, selection []bool) *Improver {
	im := &Improver{
		pool: p, collector: collector, radius: radius,
		start: start, bestRating: startRating, bestLevel: start,
	}
	im.cells = candidateCells(start, selection)
	return im
}

func candidateCells(start *level.LevelData, selection []bool) []int {
	width, height := start.Width(), start.Height()
	forbiddenY := int(start.Start())
	var cells []int
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if y == forbiddenY && x == 0 {
				continue // directly in front of the entrance
			}
			idx := y*width + x
			if selection != nil && !selection[idx] {
				continue
			}
			cells = append(cells, idx)
		}
	}
	return cells
}

// combinations returns every strictly-increasing length-k selection of
// indices from [0,n), the mixed-radix odometer the neighbour enumeration
// walks.
func combinations(n, k int) [][]int {
	if k <= 0 || k > n {
		return nil
	}
	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		out = append(out, append([]int(nil), idx...))
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func (im *Improver) neighbourLevel(cellIdx []int) *level.LevelData {
	width := im.start.Width()
	nb := im.start.Clone()
	for _, idx := range cellIdx {
		y, x := idx/width, idx%width
		nb.SetBlock(y, level.Coord(x), !nb.GetBlock(y, level.Coord(x)))
	}
	return nb
}

func (im *Improver) enqueueAll() {
	im.pending = nil
	for k := 1; k <= im.radius; k++ {
		for _, combo := range combinations(len(im.cells), k) {
			cellIdx := make([]int, len(combo))
			for i, c := range combo {
				cellIdx[i] = im.cells[c]
			}
			im.pending = append(im.pending, im.neighbourLevel(cellIdx))
		}
	}
}

// GetNextJob implements pool.Client.
func (im *Improver) GetNextJob() pool.Job {
	if len(im.pending) == 0 {
		return nil
	}
	nb := im.pending[0]
	im.pending = im.pending[1:]
	job := pool.NewSolverJob(pool.FewestPushes, nb)
	im.inFlight[job] = nb
	return job
}

// JobDone implements pool.Client.
func (im *Improver) JobDone(job pool.Job) {
	nb, ok := im.inFlight[job]
	if !ok {
		return
	}
	delete(im.inFlight, job)

	sj := job.(*pool.SolverJob)
	if !sj.IsSolvable() {
		return
	}
	rating := sj.Rating()

	im.mu.Lock()
	better := rating > im.bestRating
	if better {
		im.bestRating = rating
		im.bestLevel = nb
	}
	im.mu.Unlock()
	if !better {
		return
	}

	dirs, err := search.ReconstructPushPath(nb, sj.Path())
	if err != nil {
		panic(err)
	}
	im.collector.CollectImprovement(rating, sj.PushCount(), dirs, nb)
}

// Improve runs the whole neighbour enumeration synchronously and returns
// the best rating and level found, which is the unchanged starting level
// if radius is 0 or no neighbour scores higher.
func (im *Improver) Improve() (float64, *level.LevelData) {
	im.inFlight = make(map[pool.Job]*level.LevelData)
	im.enqueueAll()
	im.pool.WorkSynchronous(im)
	return im.BestRating(), im.BestLevel()
}

// ImproveAsynchronously starts the same enumeration on the pool's worker
// goroutines and returns immediately.
func (im *Improver) ImproveAsynchronously() error {
	im.inFlight = make(map[pool.Job]*level.LevelData)
	im.enqueueAll()
	return im.pool.WorkAsynchronous(im)
}

// Stop cancels any in-flight asynchronous improvement.
func (im *Improver) Stop() {
	im.pool.ReleaseAsynchronous()
}

// BestRating reports the current best found so far; safe to call while
// ImproveAsynchronously runs on the pool.
func (im *Improver) BestRating() float64 {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.bestRating
}

// BestLevel reports the level achieving BestRating.
func (im *Improver) BestLevel() *level.LevelData {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.bestLevel
}
