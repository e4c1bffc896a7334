package search

import (
	"fmt"

	"mzm/internal/level"
)

// ReconstructPushPath expands a sequence of abstract PushConfig states (as
// returned by a Searcher run started from NewPushConfig) into a concrete
// Direction sequence: an entrance step, then for every abstract push a walk
// to the cell the push is legal from followed by the push itself, and
// finally a walk to the exit column and an exit step.
func ReconstructPushPath(lvl *level.LevelData, path []Config) ([]level.Direction, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("search: cannot reconstruct an empty push path")
	}
	cur, ok := path[0].(*PushConfig)
	if !ok {
		return nil, fmt.Errorf("search: reconstruction requires a PushConfig path")
	}

	dirs := []level.Direction{level.East}
	playerX, playerY := level.Coord(0), lvl.Start()

	for i := 1; i < len(path); i++ {
		next, ok := path[i].(*PushConfig)
		if !ok {
			return nil, fmt.Errorf("search: reconstruction requires a PushConfig path")
		}

		row, dir := diffRow(cur, next)
		blockX, found := findPushPoint(lvl, cur, next, row, dir)
		if !found {
			panic("search: no push point for an abstract push transition; search bug")
		}

		var standX level.Coord
		if dir == level.PushEast {
			standX = level.Coord(blockX - 1)
		} else {
			standX = level.Coord(blockX + 1)
		}

		steps, reached := walk(lvl, cur.inset, playerX, playerY, standX, level.Coord(row))
		if !reached {
			panic("search: no walk from the player's cell to the push point; search bug")
		}
		dirs = append(dirs, steps...)
		dirs = append(dirs, dir)

		playerX, playerY = level.Coord(blockX), level.Coord(row)
		cur = next
	}

	steps, reached := walk(lvl, cur.inset, playerX, playerY, level.Coord(lvl.Width()-1), lvl.Finish())
	if !reached {
		panic("search: no walk from the player's cell to the exit column; search bug")
	}
	dirs = append(dirs, steps...)
	dirs = append(dirs, level.East)
	return dirs, nil
}

// diffRow finds the single row whose inset changed between two
// consecutive PushConfigs and reports the push direction that explains it.
func diffRow(a, b *PushConfig) (row int, dir level.Direction) {
	for y := range a.inset {
		if a.inset[y] == b.inset[y] {
			continue
		}
		if b.inset[y] > a.inset[y] {
			return y, level.PushEast
		}
		return y, level.PushWest
	}
	panic("search: consecutive push configs have identical insets; search bug")
}

// findPushPoint locates the block in row whose push explains the cur→next
// transition, returning its column. A row can hold several pushable blocks
// with the same inset delta but different landing cells, so a candidate
// only matches when the zone recomputed from its landing cell equals
// next's zone.
func findPushPoint(lvl *level.LevelData, cur, next *PushConfig, row int, dir level.Direction) (int, bool) {
	width := lvl.Width()
	for x := 0; x < width; x++ {
		if !level.DisplayBit(lvl.RowBits(row), width, cur.inset[row], level.Coord(x)) {
			continue
		}
		legal := false
		switch dir {
		case level.PushEast:
			legal = cur.zoneHas(row, x-1) && level.CanShiftEastBits(lvl.RowBits(row), cur.inset[row])
		case level.PushWest:
			legal = cur.zoneHas(row, x+1) && cur.inset[row] > 0
		}
		if !legal {
			continue
		}
		if zonesEqual(computeZone(lvl, next.inset, level.Coord(x), level.Coord(row)), next.zone) {
			return x, true
		}
	}
	return 0, false
}

func zonesEqual(a, b []level.Row) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// walk finds a concrete move sequence from (x,y) to (tx,ty) under a
// snapshot of lvl shifted to match inset, via a breadth-first WalkConfig
// search.
func walk(lvl *level.LevelData, inset []int, x, y, tx, ty level.Coord) ([]level.Direction, bool) {
	snap := snapshotAt(lvl, inset)
	if x == tx && y == ty {
		return nil, true
	}
	result := NewSearcher(BreadthFirst).Search(NewWalkConfig(snap, x, y, tx, ty))
	if result.Status != FoundSolution {
		return nil, false
	}
	dirs := make([]level.Direction, 0, len(result.Path)-1)
	for i := 1; i < len(result.Path); i++ {
		prev := result.Path[i-1].(*WalkConfig)
		cur := result.Path[i].(*WalkConfig)
		dirs = append(dirs, stepDirection(prev, cur))
	}
	return dirs, true
}

func stepDirection(from, to *WalkConfig) level.Direction {
	switch {
	case to.x == from.x+1:
		return level.East
	case to.x == from.x-1:
		return level.West
	case to.y == from.y-1:
		return level.North
	case to.y == from.y+1:
		return level.South
	default:
		panic("search: non-adjacent walk step; search bug")
	}
}

// snapshotAt clones lvl and re-shifts every row to match inset, producing
// an independent LevelData a WalkConfig can read against without disturbing
// the shared level_ref.
func snapshotAt(lvl *level.LevelData, inset []int) *level.LevelData {
	clone := lvl.Clone()
	for y := 0; y < clone.Height(); y++ {
		for clone.Inset(y) < inset[y] {
			clone.ShiftEast(y)
		}
		for clone.Inset(y) > inset[y] {
			clone.ShiftWest(y)
		}
	}
	return clone
}
