package level

// PlayerLevel is a LevelData plus a player position. (-1, Start()) is the
// entrance; (Width(), Finish()) is the exit; every other occupied cell
// must be a non-block.
type PlayerLevel struct {
	*LevelData
	X Coord
	Y Coord
}

// NewPlayerLevel places the player at the entrance of ld.
func NewPlayerLevel(ld *LevelData) *PlayerLevel {
	return &PlayerLevel{LevelData: ld, X: -1, Y: ld.Start()}
}

// AtEntrance reports whether the player currently occupies the entrance.
func (p *PlayerLevel) AtEntrance() bool {
	return p.X == -1
}

// AtExit reports whether the player currently occupies the exit.
func (p *PlayerLevel) AtExit() bool {
	return int(p.X) == p.Width()
}

// CanMoveEast reports whether the player may step one column east.
func (p *PlayerLevel) CanMoveEast() bool {
	width := p.Width()
	switch {
	case int(p.X) == width:
		return false
	case p.X == -1:
		return !p.GetBlock(int(p.Y), 0)
	case int(p.X) == width-1:
		return p.Y == p.Finish()
	default:
		return !p.GetBlock(int(p.Y), p.X+1)
	}
}

// CanMoveWest reports whether the player may step one column west.
func (p *PlayerLevel) CanMoveWest() bool {
	width := p.Width()
	switch {
	case p.X == -1:
		return false
	case int(p.X) == width:
		return p.Y == p.Finish()
	case p.X == 0:
		return p.Y == p.Start()
	default:
		return !p.GetBlock(int(p.Y), p.X-1)
	}
}

// CanMoveNorth reports whether the player may step one row north.
func (p *PlayerLevel) CanMoveNorth() bool {
	if int(p.X) < 0 || int(p.X) >= p.Width() || p.Y <= 0 {
		return false
	}
	return !p.GetBlock(int(p.Y)-1, p.X)
}

// CanMoveSouth reports whether the player may step one row south.
func (p *PlayerLevel) CanMoveSouth() bool {
	if int(p.X) < 0 || int(p.X) >= p.Width() || int(p.Y) >= p.Height()-1 {
		return false
	}
	return !p.GetBlock(int(p.Y)+1, p.X)
}

// CanPushEast reports whether the player may push the block immediately
// east of them one column further east.
func (p *PlayerLevel) CanPushEast() bool {
	if int(p.X) < 0 || int(p.X) >= p.Width()-1 {
		return false
	}
	return p.GetBlock(int(p.Y), p.X+1) && p.CanShiftEast(int(p.Y))
}

// CanPushWest reports whether the player may push the block immediately
// west of them one column further west.
func (p *PlayerLevel) CanPushWest() bool {
	if int(p.X) < 1 || int(p.X) > p.Width() {
		return false
	}
	return p.GetBlock(int(p.Y), p.X-1) && p.CanShiftWest(int(p.Y))
}

// MoveEast moves the player one column east. Caller must check CanMoveEast.
func (p *PlayerLevel) MoveEast() { p.X++ }

// MoveWest moves the player one column west. Caller must check CanMoveWest.
func (p *PlayerLevel) MoveWest() { p.X-- }

// MoveNorth moves the player one row north. Caller must check CanMoveNorth.
func (p *PlayerLevel) MoveNorth() { p.Y-- }

// MoveSouth moves the player one row south. Caller must check CanMoveSouth.
func (p *PlayerLevel) MoveSouth() { p.Y++ }

// PushEast pushes the block east of the player and steps into its place.
// Caller must check CanPushEast.
func (p *PlayerLevel) PushEast() {
	p.ShiftEast(int(p.Y))
	p.X++
}

// PushWest pushes the block west of the player and steps into its place.
// Caller must check CanPushWest.
func (p *PlayerLevel) PushWest() {
	p.ShiftWest(int(p.Y))
	p.X--
}

// Apply performs the move/push named by dir, without validating it.
func (p *PlayerLevel) Apply(dir Direction) {
	switch dir {
	case North:
		p.MoveNorth()
	case South:
		p.MoveSouth()
	case East:
		p.MoveEast()
	case West:
		p.MoveWest()
	case PushEast:
		p.PushEast()
	case PushWest:
		p.PushWest()
	}
}

// CanApply reports whether dir is currently legal.
func (p *PlayerLevel) CanApply(dir Direction) bool {
	switch dir {
	case North:
		return p.CanMoveNorth()
	case South:
		return p.CanMoveSouth()
	case East:
		return p.CanMoveEast()
	case West:
		return p.CanMoveWest()
	case PushEast:
		return p.CanPushEast()
	case PushWest:
		return p.CanPushWest()
	default:
		return false
	}
}

// Clone deep-copies the player level.
func (p *PlayerLevel) Clone() *PlayerLevel {
	return &PlayerLevel{LevelData: p.LevelData.Clone(), X: p.X, Y: p.Y}
}
