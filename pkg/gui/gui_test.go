package gui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
)

func TestKeyAction(t *testing.T) {
	for _, tc := range []struct {
		ev     *tcell.EventKey
		action event.GameAction
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), event.ActionMoveLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), event.ActionMoveRight},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), event.ActionSoftDrop},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), event.ActionRotate},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), event.ActionRotate},
		{tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), event.ActionHold},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), event.ActionHold},
		{tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), event.ActionRestart},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), event.ActionUnknown},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), event.ActionUnknown},
	} {
		assert.Equal(t, tc.action, KeyAction(tc.ev), "key %s", tc.ev.Name())
	}
}

func TestGUIKeypress(t *testing.T) {
	g := NewGUI(ThemeBasic, 1)

	assert.Nil(t, g.handleKeypress(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	require.Len(t, g.actions, 1)
	assert.Equal(t, event.ActionMoveLeft, <-g.Actions())

	ev := tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)
	assert.Equal(t, ev, g.handleKeypress(ev))
	assert.Len(t, g.actions, 0)

	for i := 0; i < ActionQueueSize+5; i++ {
		g.handleKeypress(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	}
	assert.Len(t, g.actions, ActionQueueSize)

	g.handleKeypress(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	select {
	case <-g.Done:
	default:
		t.Error("expected quit key to close the GUI")
	}
}

func TestGUIDraw(t *testing.T) {
	g := NewGUI(ThemeBasic, 2)
	assert.Equal(t, 2, g.blockSize)

	g.drawAll()
	assert.Empty(t, g.mtx.GetText(true))

	s := game.NewGame(1).Snapshot()
	s.Score = 300
	g.Update(s)
	g.drawAll()

	assert.Len(t, strings.Split(g.mtx.GetText(true), "\n"), s.H*2+2)
	assert.Contains(t, g.side.GetText(true), "300")

	g.Message("hello")
	g.Message("world")
	text := g.recent.GetText(true)
	assert.Contains(t, text, "hello")
	assert.Contains(t, text, "world")

	assert.Equal(t, MaxBlockSize, NewGUI(ThemeBasic, 9).blockSize)
}
