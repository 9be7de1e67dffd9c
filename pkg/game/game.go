package game

import (
	"math/rand"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	ScoreSingle = 40
	ScoreDouble = 100
	ScoreTriple = 300
	ScoreTetris = 1200
)

// LineScore returns the points awarded for clearing lines at once.
func LineScore(lines int) int {
	switch {
	case lines <= 0:
		return 0
	case lines == 1:
		return ScoreSingle
	case lines == 2:
		return ScoreDouble
	case lines == 3:
		return ScoreTriple
	default:
		return ScoreTetris
	}
}

// Game is a single round of play. It is not safe for concurrent use; one
// goroutine issues every command and query.
type Game struct {
	matrix *mino.Matrix
	ctl    *mino.Controller
	rng    *rand.Rand

	score int

	nextShape mino.Shape
	nextColor mino.Block
	heldShape mino.Shape
	heldColor mino.Block

	w, h int

	logger   chan<- string
	LogLevel int
}

type Option func(*Game)

// WithSize sets the matrix dimensions.
func WithSize(w int, h int) Option {
	return func(g *Game) {
		g.w, g.h = w, h
	}
}

// WithLogger sends session log messages up to level to logger.
func WithLogger(logger chan<- string, level int) Option {
	return func(g *Game) {
		g.logger = logger
		g.LogLevel = level
	}
}

// NewGame returns a session with an I piece falling and J up next. Colors are
// drawn from a generator seeded with seed.
func NewGame(seed int64, opts ...Option) *Game {
	g := &Game{w: mino.DefaultWidth, h: mino.DefaultHeight}
	for _, opt := range opts {
		opt(g)
	}

	g.rng = rand.New(rand.NewSource(seed))
	g.matrix = mino.NewMatrix(g.w, g.h)
	g.ctl = mino.NewController(g.matrix)

	g.start()

	return g
}

func (g *Game) start() {
	g.score = 0
	g.heldShape = mino.ShapeNone
	g.heldColor = mino.BlockNone
	g.nextShape = mino.ShapeI
	g.nextColor = g.randomColor()

	g.SpawnNext()
}

func (g *Game) randomColor() mino.Block {
	return mino.Colors[g.rng.Intn(len(mino.Colors))]
}

// sync redraws the falling piece into the matrix.
func (g *Game) sync() {
	g.matrix.ClearPiece()
	g.matrix.MapPiece(g.ctl.P)
}

// Move moves the falling piece one tile when the move is legal.
func (g *Game) Move(d mino.Direction) bool {
	if !g.ctl.CanMove(d) {
		return false
	}

	g.ctl.Move(d)
	g.sync()

	g.Logf(LogVerbose, "Moved %s to %s", d, g.ctl.P.Point)
	return true
}

// Rotate turns the falling piece clockwise, kicking it off a wall when
// needed. The piece is left unchanged when no rotation fits.
func (g *Game) Rotate() bool {
	ok := g.ctl.Rotate()
	g.sync()

	g.Logf(LogVerbose, "Rotated %s: %v", g.ctl.P, ok)
	return ok
}

// Place locks the falling piece and clears filled lines. It returns the number
// of lines cleared, and false when the piece locked above the board, which
// ends the game. A finished game must be Reset before play continues.
func (g *Game) Place() (int, bool) {
	if !g.matrix.LockPiece(g.ctl.P) {
		g.Logf(LogStandard, "Game over with a score of %d", g.score)
		return 0, false
	}

	lines := g.matrix.ClearFilled()
	g.score += LineScore(lines)

	if lines > 0 {
		g.Logf(LogStandard, "Cleared %d line(s), score %d", lines, g.score)
	} else {
		g.Logf(LogDebug, "Placed %s", g.ctl.P)
	}

	return lines, true
}

// SpawnNext makes the pending piece fall and picks the one after it.
func (g *Game) SpawnNext() {
	g.ctl.Spawn(g.nextShape, g.nextColor)

	g.nextShape = g.nextShape.Next()
	g.nextColor = g.randomColor()

	g.sync()

	g.Logf(LogDebug, "Spawned %s, next %s/%s", g.ctl.P, g.nextShape, g.nextColor)
}

// Store holds the falling piece and spawns the next one. It fails when a
// piece is already held.
func (g *Game) Store() bool {
	if g.HasHeld() {
		return false
	}

	g.heldShape = g.ctl.P.Shape
	g.heldColor = g.ctl.P.Color

	g.Logf(LogDebug, "Stored %s/%s", g.heldShape, g.heldColor)

	g.SpawnNext()
	return true
}

// Release replaces the falling piece with the held one and empties the hold.
// It fails when nothing is held.
func (g *Game) Release() bool {
	if !g.HasHeld() {
		return false
	}

	g.ctl.Spawn(g.heldShape, g.heldColor)

	g.Logf(LogDebug, "Released %s/%s", g.heldShape, g.heldColor)

	g.heldShape = mino.ShapeNone
	g.heldColor = mino.BlockNone

	g.sync()
	return true
}

// Reset clears the matrix, score and hold and starts over from an I piece.
func (g *Game) Reset() {
	g.ctl.Reset()
	g.matrix.Reset()

	g.start()

	g.Log(LogDebug, "Reset game")
}

func (g *Game) Score() int {
	return g.score
}

// Color returns the color of the falling piece.
func (g *Game) Color() mino.Block {
	return g.ctl.P.Color
}

func (g *Game) Next() (mino.Shape, mino.Block) {
	return g.nextShape, g.nextColor
}

func (g *Game) HasHeld() bool {
	return g.heldShape != mino.ShapeNone
}

// Held returns the held piece, if any.
func (g *Game) Held() (mino.Shape, mino.Block, bool) {
	return g.heldShape, g.heldColor, g.HasHeld()
}

// Piece returns a copy of the falling piece.
func (g *Game) Piece() mino.Piece {
	return *g.ctl.P
}

func (g *Game) Block(x int, y int) (mino.Block, error) {
	return g.matrix.Block(x, y)
}

func (g *Game) Size() (int, int) {
	return g.matrix.W, g.matrix.H
}

func (g *Game) Render() string {
	return g.matrix.Render()
}
