package gui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

var ansiColors = map[mino.Block]*color.Color{
	mino.BlockBlue:   color.New(color.FgBlue),
	mino.BlockGreen:  color.New(color.FgGreen),
	mino.BlockOrange: color.New(color.FgHiYellow),
	mino.BlockRed:    color.New(color.FgRed),
	mino.BlockPurple: color.New(color.FgMagenta),
	mino.BlockYellow: color.New(color.FgYellow),
}

var ansiBorder = color.New(color.FgHiBlack)

// RenderANSI draws the matrix with ANSI escapes, for output after the
// terminal UI has exited.
func RenderANSI(s game.Snapshot) string {
	var b strings.Builder

	edge := ansiBorder.Sprint("+" + strings.Repeat("-", s.W*2) + "+")

	b.WriteString(edge)
	b.WriteRune('\n')
	for y := 0; y < s.H; y++ {
		b.WriteString(ansiBorder.Sprint("|"))
		for x := 0; x < s.W; x++ {
			block := s.Block(x, y)
			if block == mino.BlockNone {
				b.WriteString("  ")
				continue
			}

			cell := strings.Repeat(string(block.Rune()), 2)
			if block.Active() {
				block = s.Color()
			}
			if c, ok := ansiColors[block]; ok {
				cell = c.Sprint(cell)
			}
			b.WriteString(cell)
		}
		b.WriteString(ansiBorder.Sprint("|"))
		b.WriteRune('\n')
	}
	b.WriteString(edge)
	b.WriteRune('\n')

	b.WriteString(fmt.Sprintf("Score: %d\n", s.Score))

	return b.String()
}
