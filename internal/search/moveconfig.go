package search

import (
	"fmt"

	"mzm/internal/level"
)

// MoveConfig is a search node for move-optimal search: the full state of a
// play-through (every row's inset plus the player's position), carried
// independently of lvl's own (untouched) inset so a Searcher can explore
// many divergent shift-states from one shared, read-only LevelData.
type MoveConfig struct {
	lvl   *level.LevelData
	inset []int
	x, y  level.Coord
}

// NewMoveConfig starts a MoveConfig at the entrance of lvl, cloning its
// current inset vector as the starting state.
func NewMoveConfig(lvl *level.LevelData) *MoveConfig {
	return &MoveConfig{lvl: lvl, inset: lvl.InsetVector(), x: -1, y: lvl.Start()}
}

func (c *MoveConfig) xx() int { return c.lvl.Width() - 1 - int(c.x) }

func (c *MoveConfig) getBlock(y int, x level.Coord) bool {
	return level.DisplayBit(c.lvl.RowBits(y), c.lvl.Width(), c.inset[y], x)
}

func (c *MoveConfig) canShiftEast(y int) bool {
	return level.CanShiftEastBits(c.lvl.RowBits(y), c.inset[y])
}

func (c *MoveConfig) canShiftWest(y int) bool {
	return c.inset[y] > 0
}

func (c *MoveConfig) Key() string {
	return fmt.Sprintf("M%d,%d,%v", c.xx(), c.y, c.inset)
}

func (c *MoveConfig) IsGoal() bool {
	return int(c.x) == c.lvl.Width()
}

func (c *MoveConfig) Less(other Config) bool {
	o := other.(*MoveConfig)
	if xx, oxx := -c.xx(), -o.xx(); xx != oxx {
		return xx < oxx
	}
	if c.y != o.y {
		return c.y < o.y
	}
	for i := range c.inset {
		if c.inset[i] != o.inset[i] {
			return c.inset[i] < o.inset[i]
		}
	}
	return false
}

// EstimatedDistance is xx (columns left to the exit wall) plus the row
// distance to the finish row, an admissible under-estimate of the number
// of remaining moves.
func (c *MoveConfig) EstimatedDistance() int {
	return c.xx() + absInt(int(c.lvl.Finish())-int(c.y))
}

func (c *MoveConfig) canMoveEast() bool {
	width := c.lvl.Width()
	switch {
	case int(c.x) == width:
		return false
	case c.x == -1:
		return !c.getBlock(int(c.y), 0)
	case int(c.x) == width-1:
		return c.y == c.lvl.Finish()
	default:
		return !c.getBlock(int(c.y), c.x+1)
	}
}

func (c *MoveConfig) canMoveWest() bool {
	width := c.lvl.Width()
	switch {
	case c.x == -1:
		return false
	case int(c.x) == width:
		return c.y == c.lvl.Finish()
	case c.x == 0:
		return c.y == c.lvl.Start()
	default:
		return !c.getBlock(int(c.y), c.x-1)
	}
}

func (c *MoveConfig) canMoveNorth() bool {
	if int(c.x) < 0 || int(c.x) >= c.lvl.Width() || c.y <= 0 {
		return false
	}
	return !c.getBlock(int(c.y)-1, c.x)
}

func (c *MoveConfig) canMoveSouth() bool {
	if int(c.x) < 0 || int(c.x) >= c.lvl.Width() || int(c.y) >= c.lvl.Height()-1 {
		return false
	}
	return !c.getBlock(int(c.y)+1, c.x)
}

func (c *MoveConfig) canPushEast() bool {
	if int(c.x) < 0 || int(c.x) >= c.lvl.Width()-1 {
		return false
	}
	return c.getBlock(int(c.y), c.x+1) && c.canShiftEast(int(c.y))
}

func (c *MoveConfig) canPushWest() bool {
	if int(c.x) < 1 || int(c.x) > c.lvl.Width() {
		return false
	}
	return c.getBlock(int(c.y), c.x-1) && c.canShiftWest(int(c.y))
}

func (c *MoveConfig) moved(x, y level.Coord) *MoveConfig {
	return &MoveConfig{lvl: c.lvl, inset: c.inset, x: x, y: y}
}

func (c *MoveConfig) pushed(x, y level.Coord, deltaInset int) *MoveConfig {
	inset := append([]int(nil), c.inset...)
	inset[y] += deltaInset
	return &MoveConfig{lvl: c.lvl, inset: inset, x: x, y: y}
}

func (c *MoveConfig) GetNeighbours() []Config {
	var out []Config
	if c.canMoveEast() {
		out = append(out, c.moved(c.x+1, c.y))
	}
	if c.canMoveWest() {
		out = append(out, c.moved(c.x-1, c.y))
	}
	if c.canMoveNorth() {
		out = append(out, c.moved(c.x, c.y-1))
	}
	if c.canMoveSouth() {
		out = append(out, c.moved(c.x, c.y+1))
	}
	if c.canPushEast() {
		out = append(out, c.pushed(c.x+1, c.y, +1))
	}
	if c.canPushWest() {
		out = append(out, c.pushed(c.x-1, c.y, -1))
	}
	return out
}
