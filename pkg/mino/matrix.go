package mino

import (
	"errors"
	"fmt"
	"strings"
)

var ErrOutOfBounds = errors.New("out of bounds")

const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Matrix is the playing field. Row 0 is the top row.
type Matrix struct {
	W int // Width
	H int // Height

	M []Block
}

func I(x int, y int, w int) int {
	return (y * w) + x
}

func NewMatrix(w int, h int) *Matrix {
	return &Matrix{W: w, H: h, M: make([]Block, w*h)}
}

func (m *Matrix) inBounds(x int, y int) bool {
	return x >= 0 && x < m.W && y >= 0 && y < m.H
}

// Block returns the block at x, y.
func (m *Matrix) Block(x int, y int) (Block, error) {
	if !m.inBounds(x, y) {
		return BlockNone, fmt.Errorf("block (%d, %d) in %dx%d matrix: %w", x, y, m.W, m.H, ErrOutOfBounds)
	}

	return m.M[I(x, y, m.W)], nil
}

// Filled reports whether x, y holds a locked block. Cells of the falling
// piece are not filled. Coordinates outside the matrix are never filled.
func (m *Matrix) Filled(x int, y int) bool {
	if !m.inBounds(x, y) {
		return false
	}

	b := m.M[I(x, y, m.W)]
	return b != BlockNone && !b.Active()
}

// MapPiece draws the piece into the matrix as active blocks. Tiles above the
// board are skipped.
func (m *Matrix) MapPiece(p *Piece) {
	for _, t := range p.Tiles() {
		if t.Y < 0 || !m.inBounds(t.X, t.Y) {
			continue
		}

		m.M[I(t.X, t.Y, m.W)] = t.Marker.Block()
	}
}

// ClearPiece removes every active block.
func (m *Matrix) ClearPiece() {
	for i := range m.M {
		if m.M[i].Active() {
			m.M[i] = BlockNone
		}
	}
}

// LockPiece turns the active blocks into blocks of the piece's color. It
// returns false when part of the piece never entered the board.
func (m *Matrix) LockPiece(p *Piece) bool {
	for i := range m.M {
		if m.M[i].Active() {
			m.M[i] = p.Color
		}
	}

	return !p.AboveBoard()
}

func (m *Matrix) LineFilled(y int) bool {
	for x := 0; x < m.W; x++ {
		if !m.Filled(x, y) {
			return false
		}
	}

	return true
}

// ClearFilled removes every filled line, shifting the lines above it down,
// and returns the number of lines removed.
func (m *Matrix) ClearFilled() int {
	cleared := 0

	for y := m.H - 1; y >= 0; y-- {
		for m.LineFilled(y) {
			m.clearLine(y)
			cleared++
		}
	}

	return cleared
}

func (m *Matrix) clearLine(y int) {
	for my := y; my > 0; my-- {
		copy(m.M[I(0, my, m.W):I(0, my+1, m.W)], m.M[I(0, my-1, m.W):I(0, my, m.W)])
	}

	for mx := 0; mx < m.W; mx++ {
		m.M[I(mx, 0, m.W)] = BlockNone
	}
}

// SetBlock places a block directly, returning false when x, y is outside the
// matrix.
func (m *Matrix) SetBlock(x int, y int, b Block) bool {
	if !m.inBounds(x, y) {
		return false
	}

	m.M[I(x, y, m.W)] = b
	return true
}

func (m *Matrix) Reset() {
	for i := range m.M {
		m.M[i] = BlockNone
	}
}

// Blocks returns a copy of the matrix contents in row-major order.
func (m *Matrix) Blocks() []Block {
	b := make([]Block, len(m.M))
	copy(b, m.M)

	return b
}

func (m *Matrix) Render() string {
	var b strings.Builder

	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			b.WriteRune(m.M[I(x, y, m.W)].Rune())
		}

		if y == m.H-1 {
			break
		}

		b.WriteRune('\n')
	}

	return b.String()
}
