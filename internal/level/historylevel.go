package level

// HistoryLevel is a PlayerLevel with an undo/redo log: Path is the move
// sequence played so far, Cursor indexes the next redo-able entry. A new
// move truncates Path at Cursor before appending.
type HistoryLevel struct {
	*PlayerLevel
	Path   []Direction
	Cursor int
}

// NewHistoryLevel starts a fresh log over pl.
func NewHistoryLevel(pl *PlayerLevel) *HistoryLevel {
	return &HistoryLevel{PlayerLevel: pl}
}

// CanUndo reports whether Undo is currently legal.
func (h *HistoryLevel) CanUndo() bool { return h.Cursor > 0 }

// CanRedo reports whether Redo is currently legal.
func (h *HistoryLevel) CanRedo() bool { return h.Cursor < len(h.Path) }

func (h *HistoryLevel) record(dir Direction) {
	h.Path = append(h.Path[:h.Cursor], dir)
	h.Cursor++
}

func (h *HistoryLevel) doMove(dir Direction) bool {
	if !h.CanApply(dir) {
		return false
	}
	h.Apply(dir)
	h.record(dir)
	return true
}

// MoveNorth, MoveSouth, MoveEast and MoveWest attempt the named move,
// recording it on success.
func (h *HistoryLevel) MoveNorth() bool { return h.doMove(North) }
func (h *HistoryLevel) MoveSouth() bool { return h.doMove(South) }
func (h *HistoryLevel) MoveEast() bool  { return h.doMove(East) }
func (h *HistoryLevel) MoveWest() bool  { return h.doMove(West) }

// PushEast and PushWest attempt the named push, recording it on success.
func (h *HistoryLevel) PushEast() bool { return h.doMove(PushEast) }
func (h *HistoryLevel) PushWest() bool { return h.doMove(PushWest) }

// Undo reverses the most recently applied move or push and moves Cursor
// back by one. A push is undone by its "pull": pull_east restores a
// previous push_west by shifting the row east then moving the player
// east; pull_west is symmetric.
func (h *HistoryLevel) Undo() bool {
	if !h.CanUndo() {
		return false
	}
	dir := h.Path[h.Cursor-1]
	switch dir {
	case PushWest:
		h.ShiftEast(int(h.Y))
		h.X++
	case PushEast:
		h.ShiftWest(int(h.Y))
		h.X--
	default:
		h.Apply(dir.Opposite())
	}
	h.Cursor--
	return true
}

// Redo re-executes the move or push at Cursor and advances it.
func (h *HistoryLevel) Redo() bool {
	if !h.CanRedo() {
		return false
	}
	h.Apply(h.Path[h.Cursor])
	h.Cursor++
	return true
}

// Reset undoes every move back to the start of the log.
func (h *HistoryLevel) Reset() {
	for h.CanUndo() {
		h.Undo()
	}
}
