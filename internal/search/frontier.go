package search

import "container/heap"

// node is the Searcher's own bookkeeping around a Config: the parent link
// used to reconstruct a winning path, and the depth used as the g-cost by
// the A* strategy.
type node struct {
	cfg    Config
	parent *node
	depth  int
	index  int // heap slot, maintained by container/heap for priority frontiers
}

// frontier is the open set container the four strategies share one
// expansion loop over; only the push/pop order differs between them. fix
// restores ordering after a node's priority changed in place (an A*
// g-value improvement); it is a no-op for the unordered containers.
type frontier interface {
	push(n *node)
	pop() *node
	fix(n *node)
	len() int
}

// fifoFrontier gives breadth-first order.
type fifoFrontier struct {
	items []*node
}

func newFIFOFrontier() *fifoFrontier { return &fifoFrontier{} }

func (f *fifoFrontier) push(n *node) { f.items = append(f.items, n) }

func (f *fifoFrontier) pop() *node {
	n := f.items[0]
	f.items = f.items[1:]
	return n
}

func (f *fifoFrontier) fix(*node) {}

func (f *fifoFrontier) len() int { return len(f.items) }

// lifoFrontier gives depth-first order.
type lifoFrontier struct {
	items []*node
}

func newLIFOFrontier() *lifoFrontier { return &lifoFrontier{} }

func (f *lifoFrontier) push(n *node) { f.items = append(f.items, n) }

func (f *lifoFrontier) pop() *node {
	last := len(f.items) - 1
	n := f.items[last]
	f.items[last] = nil
	f.items = f.items[:last]
	return n
}

func (f *lifoFrontier) fix(*node) {}

func (f *lifoFrontier) len() int { return len(f.items) }

// priorityFrontier gives best-first (priority = heuristic) or A* (priority
// = depth + heuristic) order, depending on the cost function supplied.
type priorityFrontier struct {
	h nodeHeap
}

func newPriorityFrontier(cost func(*node) int) *priorityFrontier {
	return &priorityFrontier{h: nodeHeap{cost: cost}}
}

func (f *priorityFrontier) push(n *node) { heap.Push(&f.h, n) }

func (f *priorityFrontier) pop() *node { return heap.Pop(&f.h).(*node) }

func (f *priorityFrontier) fix(n *node) { heap.Fix(&f.h, n.index) }

func (f *priorityFrontier) len() int { return len(f.h.items) }

type nodeHeap struct {
	items []*node
	cost  func(*node) int
}

func (h nodeHeap) Len() int { return len(h.items) }

func (h nodeHeap) Less(i, j int) bool { return h.cost(h.items[i]) < h.cost(h.items[j]) }

func (h nodeHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].index = i
	h.items[j].index = j
}

func (h *nodeHeap) Push(x any) {
	n := x.(*node)
	n.index = len(h.items)
	h.items = append(h.items, n)
}

func (h *nodeHeap) Pop() any {
	old := h.items
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	h.items = old[:last]
	return n
}
