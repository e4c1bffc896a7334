package search

import (
	"fmt"

	"mzm/internal/level"
)

// ReconstructMovePath turns a sequence of MoveConfig states (as returned by
// a Searcher run started from NewMoveConfig) into the concrete Direction
// that explains each consecutive pair: MoveConfig.GetNeighbours always
// emits exactly one neighbour per atomic move or push, so the transition
// is fully determined by how x, y and the touched row's inset changed.
func ReconstructMovePath(path []Config) ([]level.Direction, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("search: cannot reconstruct an empty move path")
	}
	dirs := make([]level.Direction, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		prev, ok := path[i-1].(*MoveConfig)
		if !ok {
			return nil, fmt.Errorf("search: reconstruction requires a MoveConfig path")
		}
		cur, ok := path[i].(*MoveConfig)
		if !ok {
			return nil, fmt.Errorf("search: reconstruction requires a MoveConfig path")
		}
		dirs = append(dirs, moveStepDirection(prev, cur))
	}
	return dirs, nil
}

func moveStepDirection(prev, cur *MoveConfig) level.Direction {
	switch {
	case cur.y == prev.y-1:
		return level.North
	case cur.y == prev.y+1:
		return level.South
	case cur.x == prev.x+1:
		if cur.inset[prev.y] != prev.inset[prev.y] {
			return level.PushEast
		}
		return level.East
	case cur.x == prev.x-1:
		if cur.inset[prev.y] != prev.inset[prev.y] {
			return level.PushWest
		}
		return level.West
	default:
		panic("search: non-adjacent move-config transition; search bug")
	}
}
