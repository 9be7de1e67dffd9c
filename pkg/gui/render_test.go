package gui

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

func testSnapshot(t *testing.T) game.Snapshot {
	t.Helper()

	g := game.NewGame(1)
	for i := 0; i < 10; i++ {
		require.True(t, g.Move(mino.DirectionDown))
	}
	require.True(t, g.Store())

	s := g.Snapshot()
	s.Blocks[mino.I(0, s.H-1, s.W)] = mino.BlockRed
	s.Blocks[mino.I(1, s.H-1, s.W)] = mino.BlockRed

	return s
}

func TestRenderMatrix(t *testing.T) {
	s := testSnapshot(t)

	for _, bs := range []int{1, 2} {
		out := string(RenderMatrix(s, ThemeBasic, bs))
		lines := strings.Split(out, "\n")
		require.Len(t, lines, s.H*bs+2)

		assert.Contains(t, lines[0], renderULCorner)
		assert.Equal(t, s.W*2*bs, strings.Count(lines[0], renderHLine))
		assert.Contains(t, lines[len(lines)-1], renderLRCorner)

		bottom := lines[len(lines)-2]
		assert.Equal(t, 2*2*bs, strings.Count(bottom, "█"))
		assert.Contains(t, bottom, colorTag(ThemeBasic.Red))
		assert.Equal(t, 2, strings.Count(bottom, renderVLine))
	}
}

func TestRenderMatrixActivePiece(t *testing.T) {
	g := game.NewGame(1)
	for i := 0; i < 22; i++ {
		require.True(t, g.Move(mino.DirectionDown))
	}

	s := g.Snapshot()
	out := string(RenderMatrix(s, ThemeBasic, 1))
	assert.Equal(t, 4*2, strings.Count(out, "▓"))
	assert.Contains(t, out, colorTag(ThemeBasic.Block(s.Color(), s.Color())))
}

func TestRenderMatrixAboveBoard(t *testing.T) {
	s := game.NewGame(1).Snapshot()

	out := string(RenderMatrix(s, ThemeBasic, 0))
	assert.NotContains(t, out, "▓")
	assert.Len(t, strings.Split(out, "\n"), s.H+2)
}

func TestRenderSide(t *testing.T) {
	s := testSnapshot(t)
	s.Score = 1240

	out := string(RenderSide(s, ThemeBasic))
	assert.Contains(t, out, "Score")
	assert.Contains(t, out, "1240")
	assert.Contains(t, out, "Next")
	assert.Contains(t, out, "Hold")
	// Next is L (4 cells) and the held I (4 cells), two columns per cell.
	assert.Equal(t, 16, strings.Count(out, "█"))

	s.HeldShape = mino.ShapeNone
	out = string(RenderSide(s, ThemeBasic))
	assert.Equal(t, 8, strings.Count(out, "█"))
	assert.Contains(t, out, "  -")
}

func TestRenderANSI(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	s := testSnapshot(t)
	s.Score = 40

	out := RenderANSI(s)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, s.H+3)

	assert.Equal(t, "+"+strings.Repeat("-", s.W*2)+"+", lines[0])
	assert.Equal(t, "|████"+strings.Repeat(" ", (s.W-2)*2)+"|", lines[s.H])
	assert.Equal(t, "Score: 40", lines[len(lines)-1])
	assert.NotContains(t, out, "▓")
}

func TestColorTag(t *testing.T) {
	assert.Equal(t, "[-]", colorTag(ThemeMono.Blue))
	assert.Equal(t, "[#ff0000]", colorTag(tcell.NewHexColor(0xff0000)))
}
