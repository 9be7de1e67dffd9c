package game

import "github.com/qnkhuat/tetristerm/pkg/mino"

// Snapshot is a read-only copy of everything the presentation layer draws.
type Snapshot struct {
	W, H   int
	Blocks []mino.Block

	Piece mino.Piece
	Score int

	NextShape mino.Shape
	NextColor mino.Block
	HeldShape mino.Shape
	HeldColor mino.Block
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		W:         g.matrix.W,
		H:         g.matrix.H,
		Blocks:    g.matrix.Blocks(),
		Piece:     g.Piece(),
		Score:     g.score,
		NextShape: g.nextShape,
		NextColor: g.nextColor,
		HeldShape: g.heldShape,
		HeldColor: g.heldColor,
	}
}

// Block returns the block at x, y, or BlockNone outside the matrix.
func (s Snapshot) Block(x int, y int) mino.Block {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return mino.BlockNone
	}

	return s.Blocks[mino.I(x, y, s.W)]
}

// Color returns the color the falling piece is drawn in.
func (s Snapshot) Color() mino.Block {
	return s.Piece.Color
}

func (s Snapshot) HasHeld() bool {
	return s.HeldShape != mino.ShapeNone
}
