package mino

// Direction is a single-tile translation of the falling piece.
type Direction int

const (
	DirectionDown Direction = iota
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// SpawnRow is the row of the pivot of a newly spawned piece, above the top of
// the visible matrix.
const SpawnRow = -4

// SpawnPoint returns the pivot position of a newly spawned piece in a matrix
// of the given width.
func SpawnPoint(w int) Point {
	return Point{w / 2, SpawnRow}
}

// Controller moves and rotates the falling piece, consulting the matrix for
// collisions. It never writes to the matrix.
type Controller struct {
	P *Piece

	m *Matrix
}

func NewController(m *Matrix) *Controller {
	c := &Controller{m: m, P: NewPiece(ShapeI, BlockNone, SpawnPoint(m.W))}

	return c
}

// Spawn replaces the falling piece with a new one at the spawn point. The
// spawn position is not checked against the matrix.
func (c *Controller) Spawn(s Shape, color Block) {
	c.P = NewPiece(s, color, SpawnPoint(c.m.W))
}

// Reset returns the falling piece to the spawn point as an I piece, keeping
// its color.
func (c *Controller) Reset() {
	c.Spawn(ShapeI, c.P.Color)
}

// CanMove reports whether the piece can be moved one tile in direction d.
// Tiles above the board only collide with the matrix once they would enter it.
func (c *Controller) CanMove(d Direction) bool {
	for _, t := range c.P.Tiles() {
		switch d {
		case DirectionDown:
			if t.Y+1 >= c.m.H {
				return false
			} else if t.Y+1 >= 0 && c.m.Filled(t.X, t.Y+1) {
				return false
			}
		case DirectionLeft:
			if t.X-1 < 0 {
				return false
			} else if t.Y >= 0 && c.m.Filled(t.X-1, t.Y) {
				return false
			}
		case DirectionRight:
			if t.X+1 >= c.m.W {
				return false
			} else if t.Y >= 0 && c.m.Filled(t.X+1, t.Y) {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// Move shifts the piece one tile in direction d without checking it. Callers
// check CanMove first.
func (c *Controller) Move(d Direction) {
	switch d {
	case DirectionDown:
		c.P.Y++
	case DirectionLeft:
		c.P.X--
	case DirectionRight:
		c.P.X++
	}
}

// ValidPosition reports whether the piece lies within the matrix walls and
// floor and does not overlap a filled block. Rows above the board are allowed.
func (c *Controller) ValidPosition() bool {
	for _, t := range c.P.Tiles() {
		if t.Y >= c.m.H || t.X < 0 || t.X >= c.m.W {
			return false
		} else if t.Y >= 0 && c.m.Filled(t.X, t.Y) {
			return false
		}
	}

	return true
}

// Rotate turns the piece clockwise. When the rotated piece does not fit it is
// kicked one tile left, then one tile right of where it started. If neither
// fits the rotation is undone and Rotate returns false.
func (c *Controller) Rotate() bool {
	c.P.Template = c.P.Template.Rotate()

	if c.ValidPosition() || c.wallKick() {
		return true
	}

	c.P.Template = c.P.Template.ReverseRotate()
	return false
}

func (c *Controller) wallKick() bool {
	c.P.X--
	if c.ValidPosition() {
		return true
	}

	c.P.X += 2
	if c.ValidPosition() {
		return true
	}

	c.P.X--
	return false
}
