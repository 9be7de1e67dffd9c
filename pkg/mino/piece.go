package mino

import "fmt"

// Tile is one occupied template cell placed in the world.
type Tile struct {
	Point
	Marker Marker
}

// Piece is the falling piece. Point is the world position of the pivot tile;
// every other tile is placed relative to it.
type Piece struct {
	Point
	Shape    Shape
	Color    Block
	Template Template
}

func NewPiece(s Shape, color Block, loc Point) *Piece {
	return &Piece{Point: loc, Shape: s, Color: color, Template: s.Template()}
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s/%s@%s", p.Shape, p.Color, p.Point)
}

// Tile returns the world position of the template index (col, row).
func (p *Piece) Tile(col int, row int) Point {
	pivot, _ := p.Template.Pivot()
	return p.Point.Add(Point{col, row}.Sub(pivot))
}

// Tiles returns the world position of every occupied template cell, in
// row-major template order.
func (p *Piece) Tiles() []Tile {
	pivot, _ := p.Template.Pivot()

	tiles := make([]Tile, 0, 4)
	for row := 0; row < TemplateSize; row++ {
		for col := 0; col < TemplateSize; col++ {
			m := p.Template[row][col]
			if !m.Occupied() {
				continue
			}

			tiles = append(tiles, Tile{Point: p.Point.Add(Point{col, row}.Sub(pivot)), Marker: m})
		}
	}

	return tiles
}

// AboveBoard reports whether any tile of the piece is above row 0.
func (p *Piece) AboveBoard() bool {
	for _, t := range p.Tiles() {
		if t.Y < 0 {
			return true
		}
	}

	return false
}
