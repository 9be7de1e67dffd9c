package gui

import (
	"bytes"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

var (
	renderHLine    = string(tcell.RuneHLine)
	renderVLine    = string(tcell.RuneVLine)
	renderULCorner = string(tcell.RuneULCorner)
	renderURCorner = string(tcell.RuneURCorner)
	renderLLCorner = string(tcell.RuneLLCorner)
	renderLRCorner = string(tcell.RuneLRCorner)
)

// colorTag returns the tview color tag selecting c
func colorTag(c tcell.Color) string {
	if c == tcell.ColorDefault || c.Hex() == -1 {
		return "[-]"
	}
	return fmt.Sprintf("[#%06x]", c.Hex())
}

func writeBlock(buf *bytes.Buffer, b mino.Block, piece mino.Block, t Theme, width int) {
	if b == mino.BlockNone {
		for i := 0; i < width; i++ {
			buf.WriteRune(' ')
		}
		return
	}

	buf.WriteString(colorTag(t.Block(b, piece)))
	for i := 0; i < width; i++ {
		buf.WriteRune(b.Rune())
	}
}

// RenderMatrix draws the visible rows of the matrix inside a box using tview
// color tags. Each cell is two columns wide and one row high, scaled by
// blockSize.
func RenderMatrix(s game.Snapshot, t Theme, blockSize int) []byte {
	var buf bytes.Buffer

	if blockSize < 1 {
		blockSize = 1
	}
	width := s.W * 2 * blockSize
	border := colorTag(t.Border)

	buf.WriteString(border)
	buf.WriteString(renderULCorner)
	for x := 0; x < width; x++ {
		buf.WriteString(renderHLine)
	}
	buf.WriteString(renderURCorner)
	buf.WriteRune('\n')

	for y := 0; y < s.H; y++ {
		for j := 0; j < blockSize; j++ {
			buf.WriteString(border)
			buf.WriteString(renderVLine)

			for x := 0; x < s.W; x++ {
				writeBlock(&buf, s.Block(x, y), s.Color(), t, 2*blockSize)
			}

			buf.WriteString(border)
			buf.WriteString(renderVLine)
			buf.WriteRune('\n')
		}
	}

	buf.WriteString(renderLLCorner)
	for x := 0; x < width; x++ {
		buf.WriteString(renderHLine)
	}
	buf.WriteString(renderLRCorner)
	buf.WriteString("[-]")

	return buf.Bytes()
}

// renderPreview draws the rows of a shape's template that hold part of it
func renderPreview(buf *bytes.Buffer, shape mino.Shape, color mino.Block, t Theme) {
	if !shape.Valid() {
		buf.WriteString("  -\n")
		return
	}

	tmpl := shape.Template()
	for row := 0; row < mino.TemplateSize; row++ {
		var occupied bool
		for col := 0; col < mino.TemplateSize; col++ {
			occupied = occupied || tmpl.At(col, row).Occupied()
		}
		if !occupied {
			continue
		}

		buf.WriteString("  ")
		for col := 0; col < mino.TemplateSize; col++ {
			if tmpl.At(col, row).Occupied() {
				writeBlock(buf, color, color, t, 2)
			} else {
				writeBlock(buf, mino.BlockNone, color, t, 2)
			}
		}
		buf.WriteString("[-]\n")
	}
}

// RenderSide draws the score with previews of the next and held pieces
func RenderSide(s game.Snapshot, t Theme) []byte {
	var buf bytes.Buffer

	label := colorTag(t.Label)

	buf.WriteString(label + "Score[-]\n")
	buf.WriteString(fmt.Sprintf("%s  %d[-]\n\n", colorTag(t.Score), s.Score))

	buf.WriteString(label + "Next[-]\n")
	renderPreview(&buf, s.NextShape, s.NextColor, t)
	buf.WriteRune('\n')

	buf.WriteString(label + "Hold[-]\n")
	renderPreview(&buf, s.HeldShape, s.HeldColor, t)

	return buf.Bytes()
}
