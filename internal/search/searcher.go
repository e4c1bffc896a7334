package search

import "sync/atomic"

// Searcher runs one of the four strategies over a Config graph. A search
// is single-threaded; parallelism is by job, one search per worker. The
// one field a Searcher exposes to other goroutines is the cancellation
// flag, an atomic.Bool polled once per expansion.
type Searcher struct {
	strategy Strategy
	stopped  atomic.Bool
}

// NewSearcher creates a Searcher for the given strategy.
func NewSearcher(strategy Strategy) *Searcher {
	return &Searcher{strategy: strategy}
}

// Stop requests cancellation. Safe to call from any goroutine while Search
// runs on another; Search observes it at the top of its next loop
// iteration and returns Interrupted.
func (s *Searcher) Stop() {
	s.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (s *Searcher) Stopped() bool {
	return s.stopped.Load()
}

func (s *Searcher) newFrontier() frontier {
	switch s.strategy {
	case DepthFirst:
		return newLIFOFrontier()
	case BestFirst:
		return newPriorityFrontier(func(n *node) int { return n.cfg.EstimatedDistance() })
	case AStar:
		return newPriorityFrontier(func(n *node) int { return n.depth + n.cfg.EstimatedDistance() })
	default:
		return newFIFOFrontier()
	}
}

// Search explores the graph reachable from start, returning the first goal
// found under the Searcher's strategy. Breadth-first guarantees a
// minimum-length path; the others do not.
//
// Breadth-first, depth-first and best-first close a config the moment it
// is generated, so exactly one copy of each distinct config is ever kept.
// A* instead keeps an open map alongside the heap: a config stays open
// until expanded, and a cheaper path found to an open config updates its
// parent and g-value in place, re-heapifying through frontier.fix.
func (s *Searcher) Search(start Config) Result {
	fr := s.newFrontier()
	closed := make(map[string]struct{})
	astar := s.strategy == AStar
	var open map[string]*node
	if astar {
		open = make(map[string]*node)
	}

	startNode := &node{cfg: start}
	if astar {
		open[start.Key()] = startNode
	} else {
		closed[start.Key()] = struct{}{}
	}
	fr.push(startNode)

	for fr.len() > 0 {
		if s.stopped.Load() {
			return Result{Status: Interrupted}
		}

		cur := fr.pop()
		if astar {
			key := cur.cfg.Key()
			delete(open, key)
			closed[key] = struct{}{}
		}
		if cur.cfg.IsGoal() {
			return Result{Status: FoundSolution, Path: reconstructPath(cur)}
		}

		for _, nb := range cur.cfg.GetNeighbours() {
			key := nb.Key()
			if _, seen := closed[key]; seen {
				continue
			}
			if astar {
				if ex, ok := open[key]; ok {
					if cur.depth+1 < ex.depth {
						ex.parent = cur
						ex.depth = cur.depth + 1
						fr.fix(ex)
					}
					continue
				}
				n := &node{cfg: nb, parent: cur, depth: cur.depth + 1}
				open[key] = n
				fr.push(n)
				continue
			}
			closed[key] = struct{}{}
			fr.push(&node{cfg: nb, parent: cur, depth: cur.depth + 1})
		}
	}

	return Result{Status: NoSolution}
}

func reconstructPath(goal *node) []Config {
	var path []Config
	for n := goal; n != nil; n = n.parent {
		path = append(path, n.cfg)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
