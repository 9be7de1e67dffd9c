package mino

// Block is the state of a single matrix cell.
type Block int

const (
	BlockNone Block = iota
	BlockActive
	BlockActivePivot
	BlockBlue
	BlockGreen
	BlockOrange
	BlockRed
	BlockPurple
	BlockYellow
)

// Colors lists every block a piece may lock as.
var Colors = []Block{BlockBlue, BlockGreen, BlockOrange, BlockRed, BlockPurple, BlockYellow}

// Locked reports whether the block is a settled, colored cell.
func (b Block) Locked() bool {
	return b >= BlockBlue && b <= BlockYellow
}

// Active reports whether the block belongs to the falling piece.
func (b Block) Active() bool {
	return b == BlockActive || b == BlockActivePivot
}

func (b Block) String() string {
	switch b {
	case BlockNone:
		return "none"
	case BlockActive:
		return "active"
	case BlockActivePivot:
		return "pivot"
	case BlockBlue:
		return "blue"
	case BlockGreen:
		return "green"
	case BlockOrange:
		return "orange"
	case BlockRed:
		return "red"
	case BlockPurple:
		return "purple"
	case BlockYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

func (b Block) Rune() rune {
	switch {
	case b == BlockNone:
		return ' '
	case b.Active():
		return '▓'
	case b.Locked():
		return '█'
	default:
		return '?'
	}
}
