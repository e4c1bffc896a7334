package search

import (
	"fmt"

	"mzm/internal/level"
)

// PushConfig is a search node for push-optimal search: every row's inset
// plus a "zone" per row, the set of columns reachable by walking, without
// pushing, from wherever the player currently stands. Two player positions
// in the same zone are push-equivalent, so PushConfig abstracts away exact
// player position entirely once the zone has been computed.
//
// zone[y] is a column-indexed bitmask: bit x set means column x of row y
// is walk-reachable. Indexing by display column rather than by raw row
// bit position keeps the mask within the Row width at MaxWidth, where a
// row-aligned index (width-1-x)+inset[y] could run past the top bit.
type PushConfig struct {
	lvl   *level.LevelData
	inset []int
	zone  []level.Row
}

// NewPushConfig starts a PushConfig at lvl's entrance: the player is about
// to step from the entrance onto column 0 of the start row, which level
// validity guarantees is open.
func NewPushConfig(lvl *level.LevelData) *PushConfig {
	inset := lvl.InsetVector()
	zone := computeZone(lvl, inset, 0, lvl.Start())
	return &PushConfig{lvl: lvl, inset: inset, zone: zone}
}

func computeZone(lvl *level.LevelData, inset []int, seedX, seedY level.Coord) []level.Row {
	width := lvl.Width()
	height := lvl.Height()
	zone := make([]level.Row, height)
	if int(seedX) < 0 || int(seedX) >= width || int(seedY) < 0 || int(seedY) >= height {
		return zone
	}

	visited := make([][]bool, height)
	for y := range visited {
		visited[y] = make([]bool, width)
	}
	getBlock := func(y, x int) bool {
		return level.DisplayBit(lvl.RowBits(y), width, inset[y], level.Coord(x))
	}

	type cell struct{ x, y int }
	queue := []cell{{int(seedX), int(seedY)}}
	visited[seedY][seedX] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		zone[cur.y] |= 1 << uint(cur.x)

		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nx, ny := cur.x+d[0], cur.y+d[1]
			if nx < 0 || nx >= width || ny < 0 || ny >= height {
				continue
			}
			if visited[ny][nx] || getBlock(ny, nx) {
				continue
			}
			visited[ny][nx] = true
			queue = append(queue, cell{nx, ny})
		}
	}
	return zone
}

func (c *PushConfig) zoneHas(y, x int) bool {
	if y < 0 || y >= len(c.zone) || x < 0 || x >= c.lvl.Width() {
		return false
	}
	return c.zone[y]&(1<<uint(x)) != 0
}

func (c *PushConfig) Key() string {
	return fmt.Sprintf("P%v,%v", c.inset, c.zone)
}

// IsGoal reports whether the exit is reachable: column width-1 of the
// finish row is in the zone, from which moving east always steps out.
func (c *PushConfig) IsGoal() bool {
	return c.zoneHas(int(c.lvl.Finish()), c.lvl.Width()-1)
}

func (c *PushConfig) Less(other Config) bool {
	o := other.(*PushConfig)
	for i := range c.inset {
		if c.inset[i] != o.inset[i] {
			return c.inset[i] < o.inset[i]
		}
	}
	for i := range c.zone {
		if c.zone[i] != o.zone[i] {
			return c.zone[i] < o.zone[i]
		}
	}
	return false
}

// EstimatedDistance is 0 at the goal and 1 otherwise: simple, and
// admissible because at least one push remains whenever not at the goal.
func (c *PushConfig) EstimatedDistance() int {
	if c.IsGoal() {
		return 0
	}
	return 1
}

func (c *PushConfig) pushed(y, landingX, deltaInset int) *PushConfig {
	inset := append([]int(nil), c.inset...)
	inset[y] += deltaInset
	zone := computeZone(c.lvl, inset, level.Coord(landingX), level.Coord(y))
	return &PushConfig{lvl: c.lvl, inset: inset, zone: zone}
}

// GetNeighbours enumerates one abstract push per block whose near side is
// reachable and whose row has room to shift the other way. The whole row
// shifts rigidly; the player ends up standing where the block used to be.
func (c *PushConfig) GetNeighbours() []Config {
	width := c.lvl.Width()
	var out []Config
	for y := 0; y < c.lvl.Height(); y++ {
		for x := 0; x < width; x++ {
			if !level.DisplayBit(c.lvl.RowBits(y), width, c.inset[y], level.Coord(x)) {
				continue
			}
			if c.zoneHas(y, x-1) && level.CanShiftEastBits(c.lvl.RowBits(y), c.inset[y]) {
				out = append(out, c.pushed(y, x, +1))
			}
			if c.zoneHas(y, x+1) && c.inset[y] > 0 {
				out = append(out, c.pushed(y, x, -1))
			}
		}
	}
	return out
}
