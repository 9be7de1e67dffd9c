package gui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/event"
)

type Keybinding struct {
	k tcell.Key
	r rune
	m tcell.ModMask

	a event.GameAction
}

var Keybindings = []*Keybinding{
	{k: tcell.KeyUp, a: event.ActionRotate},
	{r: 'r', a: event.ActionRotate},
	{r: 'R', a: event.ActionRotate},
	{r: 'x', a: event.ActionRotate},
	{r: 'X', a: event.ActionRotate},
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'a', a: event.ActionMoveLeft},
	{r: 'A', a: event.ActionMoveLeft},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'd', a: event.ActionMoveRight},
	{r: 'D', a: event.ActionMoveRight},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 's', a: event.ActionSoftDrop},
	{r: 'S', a: event.ActionSoftDrop},
	{r: 'h', a: event.ActionHold},
	{r: 'H', a: event.ActionHold},
	{r: 'c', a: event.ActionHold},
	{r: 'C', a: event.ActionHold},
	{r: ' ', a: event.ActionHold},
	{r: 'n', a: event.ActionRestart},
	{r: 'N', a: event.ActionRestart},
}

func (b *Keybinding) matches(ev *tcell.EventKey) bool {
	if b.r != 0 && ev.Key() != tcell.KeyRune {
		return false
	}

	return (b.k == 0 || b.k == ev.Key()) &&
		(b.r == 0 || b.r == ev.Rune()) &&
		(b.m == 0 || b.m == ev.Modifiers())
}

// KeyAction returns the action bound to ev, or ActionUnknown.
func KeyAction(ev *tcell.EventKey) event.GameAction {
	for _, bind := range Keybindings {
		if bind.matches(ev) {
			return bind.a
		}
	}

	return event.ActionUnknown
}

// quitKey reports whether ev closes the client
func quitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'))
}
