package search

import (
	"fmt"

	"mzm/internal/level"
)

// WalkConfig is a search node for moving the player from its current cell
// to a target cell without pushing any block. lvl supplies the row shapes
// and insets it is asked against; WalkConfig never mutates it.
type WalkConfig struct {
	lvl    *level.LevelData
	x, y   level.Coord
	tx, ty level.Coord
}

// NewWalkConfig starts a walk from (x,y) toward (tx,ty) over lvl.
func NewWalkConfig(lvl *level.LevelData, x, y, tx, ty level.Coord) *WalkConfig {
	return &WalkConfig{lvl: lvl, x: x, y: y, tx: tx, ty: ty}
}

func (w *WalkConfig) X() level.Coord { return w.x }
func (w *WalkConfig) Y() level.Coord { return w.y }

func (w *WalkConfig) Key() string {
	return fmt.Sprintf("W%d,%d", w.x, w.y)
}

func (w *WalkConfig) IsGoal() bool {
	return w.x == w.tx && w.y == w.ty
}

func (w *WalkConfig) Less(other Config) bool {
	o := other.(*WalkConfig)
	if w.x != o.x {
		return w.x < o.x
	}
	return w.y < o.y
}

// EstimatedDistance is the Manhattan distance to the target, an admissible
// heuristic since every move is one cell.
func (w *WalkConfig) EstimatedDistance() int {
	return absInt(int(w.tx)-int(w.x)) + absInt(int(w.ty)-int(w.y))
}

func (w *WalkConfig) GetNeighbours() []Config {
	pl := level.PlayerLevel{LevelData: w.lvl, X: w.x, Y: w.y}
	var out []Config
	if pl.CanMoveEast() {
		out = append(out, w.stepTo(w.x+1, w.y))
	}
	if pl.CanMoveWest() {
		out = append(out, w.stepTo(w.x-1, w.y))
	}
	if pl.CanMoveNorth() {
		out = append(out, w.stepTo(w.x, w.y-1))
	}
	if pl.CanMoveSouth() {
		out = append(out, w.stepTo(w.x, w.y+1))
	}
	return out
}

func (w *WalkConfig) stepTo(x, y level.Coord) *WalkConfig {
	return &WalkConfig{lvl: w.lvl, x: x, y: y, tx: w.tx, ty: w.ty}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
