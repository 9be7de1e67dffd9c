package game

import (
	"context"
	"fmt"
	"time"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	InitialFallInterval = 750 * time.Millisecond
	FallIntervalStep    = 50 * time.Millisecond
	FallIntervalScore   = 200
	MinFallInterval     = 100 * time.Millisecond
)

// FallInterval returns the time between gravity ticks at the given score.
func FallInterval(score int) time.Duration {
	d := InitialFallInterval - FallIntervalStep*time.Duration(score/FallIntervalScore)
	if d < MinFallInterval {
		return MinFallInterval
	}

	return d
}

// Player drives a Game from discrete actions and gravity ticks. It holds the
// per-piece turn state: a piece may be stored or released at most once
// before the next one locks.
type Player struct {
	Name string
	Game *Game

	Event chan<- interface{}
	Draw  chan<- Snapshot

	canStore   bool
	canRelease bool
}

func NewPlayer(name string, g *Game) *Player {
	return &Player{Name: name, Game: g, canStore: true, canRelease: true}
}

func (p *Player) CanStore() bool   { return p.canStore }
func (p *Player) CanRelease() bool { return p.canRelease }

func (p *Player) ProcessAction(a event.GameAction) {
	switch a {
	case event.ActionMoveLeft:
		p.Game.Move(mino.DirectionLeft)
	case event.ActionMoveRight:
		p.Game.Move(mino.DirectionRight)
	case event.ActionRotate:
		p.Game.Rotate()
	case event.ActionSoftDrop:
		p.Drop()
	case event.ActionHold:
		p.hold()
	case event.ActionRestart:
		p.Game.Reset()
		p.resetTurn()
	}
}

// Drop lowers the piece by one line. When it cannot move the piece lands and
// Drop returns false.
func (p *Player) Drop() bool {
	if p.Game.Move(mino.DirectionDown) {
		return true
	}

	p.land()
	return false
}

func (p *Player) land() {
	lines, ok := p.Game.Place()
	if !ok {
		score := p.Game.Score()
		p.event(&event.GameOverEvent{
			Event: event.Event{Player: p.Name, Message: fmt.Sprintf("Game over! %s scored %d", p.Name, score)},
			Score: score})

		p.Game.Reset()
	} else {
		if lines > 0 {
			p.event(&event.ScoreEvent{
				Event: event.Event{Player: p.Name},
				Lines: lines,
				Score: p.Game.Score()})
		}

		p.Game.SpawnNext()
	}

	p.resetTurn()
}

func (p *Player) hold() {
	if p.Game.HasHeld() {
		if p.canRelease && p.Game.Release() {
			p.canStore = false
		}
	} else if p.canStore && p.Game.Store() {
		p.canRelease = false
	}
}

func (p *Player) resetTurn() {
	p.canStore = true
	p.canRelease = true
}

func (p *Player) event(e interface{}) {
	if p.Event == nil {
		return
	}

	p.Event <- e
}

func (p *Player) draw(ctx context.Context) {
	if p.Draw == nil {
		return
	}

	select {
	case p.Draw <- p.Game.Snapshot():
	case <-ctx.Done():
	}
}

// Run processes actions and gravity ticks until ctx is done or actions is
// closed. It is the only goroutine touching the game while it runs.
func (p *Player) Run(ctx context.Context, actions <-chan event.GameAction) error {
	timer := time.NewTimer(FallInterval(p.Game.Score()))
	defer timer.Stop()

	p.draw(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case a, ok := <-actions:
			if !ok {
				return nil
			}

			p.ProcessAction(a)
		case <-timer.C:
			p.Drop()

			timer.Reset(FallInterval(p.Game.Score()))
		}

		p.draw(ctx)
	}
}
