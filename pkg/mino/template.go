package mino

import "strings"

const TemplateSize = 4

// Marker is the content of a single template cell.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerBody
	MarkerPivot
)

// Occupied reports whether the marker is part of the piece.
func (m Marker) Occupied() bool {
	return m == MarkerBody || m == MarkerPivot
}

// Block returns the transient matrix block drawn for the marker.
func (m Marker) Block() Block {
	switch m {
	case MarkerBody:
		return BlockActive
	case MarkerPivot:
		return BlockActivePivot
	default:
		return BlockNone
	}
}

// Template is a piece shape stored row-major as [row][col]. Templates are
// values; rotating one returns a new template and leaves the receiver intact.
type Template [TemplateSize][TemplateSize]Marker

// Rotate returns the template turned 90 degrees clockwise.
func (t Template) Rotate() Template {
	var r Template
	for i := 0; i < TemplateSize; i++ {
		for j := 0; j < TemplateSize; j++ {
			r[i][j] = t[TemplateSize-1-j][i]
		}
	}

	return r
}

// ReverseRotate returns the template turned 90 degrees anticlockwise.
func (t Template) ReverseRotate() Template {
	var r Template
	for i := 0; i < TemplateSize; i++ {
		for j := 0; j < TemplateSize; j++ {
			r[i][j] = t[j][TemplateSize-1-i]
		}
	}

	return r
}

// Pivot returns the template index of the pivot marker as (col, row). The
// second return value is false when the template has no pivot.
func (t Template) Pivot() (Point, bool) {
	for row := 0; row < TemplateSize; row++ {
		for col := 0; col < TemplateSize; col++ {
			if t[row][col] == MarkerPivot {
				return Point{col, row}, true
			}
		}
	}

	return Point{}, false
}

// At returns the marker at the given template index.
func (t Template) At(col int, row int) Marker {
	return t[row][col]
}

func (t Template) Render() string {
	var b strings.Builder
	for row := 0; row < TemplateSize; row++ {
		for col := 0; col < TemplateSize; col++ {
			switch t[row][col] {
			case MarkerBody:
				b.WriteRune('X')
			case MarkerPivot:
				b.WriteRune('O')
			default:
				b.WriteRune('.')
			}
		}

		b.WriteRune('\n')
	}

	return b.String()
}
