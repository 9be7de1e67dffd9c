package mino

// Shape identifies one of the seven tetrominoes. Shapes are ordered; Next
// walks them cyclically.
type Shape int

const (
	ShapeNone Shape = iota - 1
	ShapeI
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ

	ShapeCount = 7
)

var templates = [ShapeCount]Template{
	ShapeI: {
		{1, 0, 0, 0},
		{1, 0, 0, 0},
		{2, 0, 0, 0},
		{1, 0, 0, 0},
	},
	ShapeJ: {
		{1, 0, 0, 0},
		{1, 2, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	ShapeL: {
		{0, 0, 1, 0},
		{1, 2, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	ShapeO: {
		{1, 1, 0, 0},
		{2, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	ShapeS: {
		{0, 1, 1, 0},
		{1, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	ShapeT: {
		{0, 1, 0, 0},
		{1, 2, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	ShapeZ: {
		{1, 1, 0, 0},
		{0, 2, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
}

// Valid reports whether s names one of the seven tetrominoes.
func (s Shape) Valid() bool {
	return s >= ShapeI && s <= ShapeZ
}

// Template returns the canonical template of the shape. Invalid shapes return
// an empty template.
func (s Shape) Template() Template {
	if !s.Valid() {
		return Template{}
	}

	return templates[s]
}

// Next returns the shape following s, wrapping from Z back to I.
func (s Shape) Next() Shape {
	if s >= ShapeZ || s < ShapeI {
		return ShapeI
	}

	return s + 1
}

func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeO:
		return "O"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeZ:
		return "Z"
	default:
		return "-"
	}
}
