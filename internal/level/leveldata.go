package level

import (
	"fmt"
)

// LevelData is the bit-packed grid: a height x width boolean field of
// blocks, stored one Row per line together with that row's inset (the
// number of empty columns between the west wall and the row's westmost
// block; equal to width when the row is empty), plus the entrance row
// (start) and exit row (finish).
//
// Invariant, per row y: row[y] == 0 iff inset[y] == width; otherwise bit
// (width-1) of row[y] is set and every bit at or beyond width is clear.
type LevelData struct {
	height int
	width  int
	start  Coord
	finish Coord
	row    []Row
	inset  []int
}

// NewLevelData creates an empty level of the given dimensions, start and
// finish rows both 0.
func NewLevelData(height, width int) (*LevelData, error) {
	if height < MinHeight || height > MaxHeight {
		return nil, fmt.Errorf("level: height %d out of range [%d,%d]", height, MinHeight, MaxHeight)
	}
	if width < MinWidth || width > MaxWidth {
		return nil, fmt.Errorf("level: width %d out of range [%d,%d]", width, MinWidth, MaxWidth)
	}
	ld := &LevelData{
		height: height,
		width:  width,
		row:    make([]Row, height),
		inset:  make([]int, height),
	}
	for y := range ld.inset {
		ld.inset[y] = width
	}
	return ld, nil
}

// NewLevelDataFromGrid builds a level from a height x width Boolean grid
// (grid[y][x] true means a block at row y, column x). start and finish
// select the entrance and exit rows.
func NewLevelDataFromGrid(grid [][]bool, start, finish Coord) (*LevelData, error) {
	height := len(grid)
	width := 0
	if height > 0 {
		width = len(grid[0])
	}
	ld, err := NewLevelData(height, width)
	if err != nil {
		return nil, err
	}
	for y, r := range grid {
		if len(r) != width {
			return nil, fmt.Errorf("level: ragged grid row %d", y)
		}
		for x, blocked := range r {
			if blocked {
				ld.SetBlock(y, Coord(x), true)
			}
		}
	}
	if err := ld.SetStart(start); err != nil {
		return nil, err
	}
	if err := ld.SetFinish(finish); err != nil {
		return nil, err
	}
	if !ld.IsValid() {
		return nil, fmt.Errorf("level: grid violates level invariants")
	}
	return ld, nil
}

// Height returns the number of rows.
func (l *LevelData) Height() int { return l.height }

// Width returns the number of columns.
func (l *LevelData) Width() int { return l.width }

// Start returns the entrance row.
func (l *LevelData) Start() Coord { return l.start }

// Finish returns the exit row.
func (l *LevelData) Finish() Coord { return l.finish }

// SetStart sets the entrance row.
func (l *LevelData) SetStart(y Coord) error {
	if int(y) < 0 || int(y) >= l.height {
		return fmt.Errorf("level: start row %d out of range [0,%d)", y, l.height)
	}
	l.start = y
	return nil
}

// SetFinish sets the exit row.
func (l *LevelData) SetFinish(y Coord) error {
	if int(y) < 0 || int(y) >= l.height {
		return fmt.Errorf("level: finish row %d out of range [0,%d)", y, l.height)
	}
	l.finish = y
	return nil
}

// Inset returns the current inset of row y.
func (l *LevelData) Inset(y int) int { return l.inset[y] }

// RowBits returns the raw, left-aligned bit pattern stored for row y.
func (l *LevelData) RowBits(y int) Row { return l.row[y] }

// DisplayBit reports whether column x of row y, as currently shifted, holds
// a block. It is the pure form of GetBlock, usable against an externally
// carried inset (used by search Configs that track their own inset vector
// against a shared, otherwise-immutable LevelData).
func DisplayBit(row Row, width, inset int, x Coord) bool {
	idx := (width - 1 - int(x)) + inset
	return (row>>uint(idx))&1 == 1
}

// CanShiftEastBits is the pure form of CanShiftEast.
func CanShiftEastBits(row Row, inset int) bool {
	return (row>>uint(inset))&1 == 0
}

// GetBlock reports whether row y, column x currently holds a block.
func (l *LevelData) GetBlock(y int, x Coord) bool {
	return DisplayBit(l.row[y], l.width, l.inset[y], x)
}

// SetBlock sets or clears the block at row y, column x.
func (l *LevelData) SetBlock(y int, x Coord, v bool) {
	width := l.width
	if v {
		if int(x) < l.inset[y] {
			shift := l.inset[y] - int(x)
			l.row[y] = (l.row[y] >> uint(shift)) | (1 << uint(width-1))
			l.inset[y] = int(x)
		} else {
			idx := (width - 1 - int(x)) + l.inset[y]
			l.row[y] |= 1 << uint(idx)
		}
		return
	}
	if int(x) == l.inset[y] {
		l.row[y] &^= 1 << uint(width-1)
		if l.row[y] == 0 {
			l.inset[y] = width
			return
		}
		shifted := 0
		for l.row[y]&(1<<uint(width-1)) == 0 {
			l.row[y] <<= 1
			shifted++
		}
		l.inset[y] += shifted
		return
	}
	idx := (width - 1 - int(x)) + l.inset[y]
	l.row[y] &^= 1 << uint(idx)
}

// CanShiftWest reports whether row y has room to shift one column west.
func (l *LevelData) CanShiftWest(y int) bool {
	return l.inset[y] > 0
}

// CanShiftEast reports whether row y has room to shift one column east.
func (l *LevelData) CanShiftEast(y int) bool {
	return CanShiftEastBits(l.row[y], l.inset[y])
}

// ShiftWest shifts row y one column west (decrements its inset) if the row
// is non-empty.
func (l *LevelData) ShiftWest(y int) {
	if l.row[y] != 0 {
		l.inset[y]--
	}
}

// ShiftEast shifts row y one column east (increments its inset).
func (l *LevelData) ShiftEast(y int) {
	l.inset[y]++
}

// CanSetDimensions reports whether SetDimensions(h, w) would succeed.
func (l *LevelData) CanSetDimensions(h, w int) bool {
	if h < MinHeight || h > MaxHeight || w < MinWidth || w > MaxWidth {
		return false
	}
	if int(l.start) >= h || int(l.finish) >= h {
		return false
	}
	for y := h; y < l.height; y++ {
		if l.row[y] != 0 {
			return false
		}
	}
	if w < l.width {
		for y := 0; y < l.height && y < h; y++ {
			for x := w; x < l.width; x++ {
				if l.GetBlock(y, Coord(x)) {
					return false
				}
			}
		}
	}
	return true
}

// SetDimensions resizes the level, refusing if any occupied row/column
// would be cut off. Re-shifts rows on width change to keep left-alignment.
func (l *LevelData) SetDimensions(h, w int) error {
	if !l.CanSetDimensions(h, w) {
		return fmt.Errorf("level: cannot resize to %dx%d", h, w)
	}
	if w != l.width {
		grid := make([][]bool, l.height)
		for y := 0; y < l.height; y++ {
			grid[y] = make([]bool, min(l.width, w))
			for x := 0; x < len(grid[y]); x++ {
				grid[y][x] = l.GetBlock(y, Coord(x))
			}
		}
		l.width = w
		for y := 0; y < l.height; y++ {
			l.row[y] = 0
			l.inset[y] = w
			for x, blocked := range grid[y] {
				if blocked {
					l.SetBlock(y, Coord(x), true)
				}
			}
		}
	}
	if h != l.height {
		newRow := make([]Row, h)
		newInset := make([]int, h)
		for y := 0; y < h; y++ {
			if y < l.height {
				newRow[y] = l.row[y]
				newInset[y] = l.inset[y]
			} else {
				newInset[y] = l.width
			}
		}
		l.row = newRow
		l.inset = newInset
		l.height = h
	}
	return nil
}

// Clear empties every row.
func (l *LevelData) Clear() {
	for y := range l.row {
		l.row[y] = 0
		l.inset[y] = l.width
	}
}

// Clone deep-copies the level.
func (l *LevelData) Clone() *LevelData {
	out := &LevelData{
		height: l.height,
		width:  l.width,
		start:  l.start,
		finish: l.finish,
		row:    append([]Row(nil), l.row...),
		inset:  append([]int(nil), l.inset...),
	}
	return out
}

// InsetVector returns a fresh copy of the per-row inset slice, the piece
// of mutable state search Configs carry independently of a shared LevelData.
func (l *LevelData) InsetVector() []int {
	return append([]int(nil), l.inset...)
}

// IsValid checks every LevelData invariant: dimension and start/finish
// bounds, per-row left-alignment, the empty-row inset convention, and a
// traversable entrance.
func (l *LevelData) IsValid() bool {
	if l.height < MinHeight || l.height > MaxHeight {
		return false
	}
	if l.width < MinWidth || l.width > MaxWidth {
		return false
	}
	if int(l.start) < 0 || int(l.start) >= l.height {
		return false
	}
	if int(l.finish) < 0 || int(l.finish) >= l.height {
		return false
	}
	for y := 0; y < l.height; y++ {
		if l.row[y] == 0 {
			if l.inset[y] != l.width {
				return false
			}
			continue
		}
		if l.inset[y] >= l.width {
			return false
		}
		if l.row[y]&(1<<uint(l.width-1)) == 0 {
			return false
		}
		if l.row[y]>>uint(l.width) != 0 {
			return false
		}
	}
	if l.inset[l.start] == 0 {
		return false
	}
	return true
}
