package gui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	DefaultStatusText = "Arrow keys or A/S/D to move, Up/R/X to rotate, H/C/Space to hold, N to restart, Q to quit"

	LogTimeFormat   = "3:04:05"
	ActionQueueSize = 10
	DrawQueueSize   = 10
	MaxBlockSize    = 3
)

// GUI is the terminal client. It only draws snapshots and forwards key
// presses; it never touches a running game.
type GUI struct {
	App   *tview.Application
	Theme Theme

	Done chan struct{}

	actions chan event.GameAction
	draw    chan event.DrawObject

	grid   *tview.Grid
	mtx    *tview.TextView
	side   *tview.TextView
	status *tview.TextView
	recent *tview.TextView

	renderLock sync.Mutex
	snapshot   game.Snapshot
	hasDrawn   bool

	blockSize      int
	fixedBlockSize bool
	screenW        int
	screenH        int

	closeOnce         sync.Once
	wroteFirstMessage bool
}

// NewGUI builds the application. A blockSize of 0 picks the largest scale
// fitting the terminal.
func NewGUI(theme Theme, blockSize int) *GUI {
	g := &GUI{
		App:     tview.NewApplication(),
		Theme:   theme,
		Done:    make(chan struct{}),
		actions: make(chan event.GameAction, ActionQueueSize),
		draw:    make(chan event.DrawObject, DrawQueueSize),
	}

	g.blockSize = 1
	if blockSize > 0 {
		g.fixedBlockSize = true
		g.blockSize = blockSize
		if g.blockSize > MaxBlockSize {
			g.blockSize = MaxBlockSize
		}
	}

	g.mtx = newTextView(false)
	g.side = newTextView(false)
	g.status = newTextView(false).SetText(DefaultStatusText)
	g.recent = newTextView(true)

	g.grid = tview.NewGrid().SetBorders(false)
	g.layout(mino.DefaultWidth, mino.DefaultHeight)
	g.grid.
		AddItem(tview.NewBox(), 0, 0, 3, 1, 0, 0, false).
		AddItem(g.mtx, 0, 1, 1, 1, 0, 0, false).
		AddItem(g.side, 0, 2, 1, 1, 0, 0, false).
		AddItem(g.status, 1, 1, 1, 3, 0, 0, false).
		AddItem(g.recent, 2, 1, 1, 3, 0, 0, false)

	g.App.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		g.handleResize(screen)
		return false
	})
	g.App.SetInputCapture(g.handleKeypress)
	g.App.SetRoot(g.grid, true)

	return g
}

func newTextView(scrollable bool) *tview.TextView {
	v := tview.NewTextView().
		SetScrollable(scrollable).
		SetTextAlign(tview.AlignLeft).
		SetWrap(scrollable).
		SetWordWrap(scrollable)

	v.SetDynamicColors(true)

	return v
}

func (g *GUI) layout(w int, h int) {
	g.grid.
		SetRows(h*g.blockSize+2, 1, -1).
		SetColumns(1, w*2*g.blockSize+2, 12, -1)
}

// Actions delivers the actions bound to key presses.
func (g *GUI) Actions() <-chan event.GameAction {
	return g.actions
}

// Run starts drawing and blocks until the application stops.
func (g *GUI) Run() error {
	go g.handleDraw()

	defer g.Close()

	return g.App.Run()
}

// Close stops the application and closes Done.
func (g *GUI) Close() {
	g.closeOnce.Do(func() {
		g.App.Stop()
		close(g.Done)
	})
}

// Update replaces the snapshot being drawn.
func (g *GUI) Update(s game.Snapshot) {
	g.renderLock.Lock()
	resized := !g.hasDrawn || s.W != g.snapshot.W || s.H != g.snapshot.H
	g.snapshot = s
	g.hasDrawn = true
	g.renderLock.Unlock()

	if resized {
		g.App.QueueUpdate(func() { g.layout(s.W, s.H) })
	}

	g.queueDraw(event.DrawAll)
}

// Message appends a line to the message log.
func (g *GUI) Message(msg string) {
	g.renderLock.Lock()
	var prefix string
	if g.wroteFirstMessage {
		prefix = "\n"
	}
	g.wroteFirstMessage = true
	g.renderLock.Unlock()

	g.recent.Write([]byte(prefix + time.Now().Format(LogTimeFormat) + " " + msg))
	g.recent.ScrollToEnd()

	g.queueDraw(event.DrawMessages)
}

// queueDraw never blocks; a pending redraw of everything covers any request
// dropped here.
func (g *GUI) queueDraw(o event.DrawObject) {
	select {
	case g.draw <- o:
	default:
	}
}

func (g *GUI) drawMatrix() {
	g.renderLock.Lock()
	defer g.renderLock.Unlock()

	if !g.hasDrawn {
		return
	}

	g.mtx.Clear()
	g.mtx.Write(RenderMatrix(g.snapshot, g.Theme, g.blockSize))
}

func (g *GUI) drawSide() {
	g.renderLock.Lock()
	defer g.renderLock.Unlock()

	if !g.hasDrawn {
		return
	}

	g.side.Clear()
	g.side.Write(RenderSide(g.snapshot, g.Theme))
}

func (g *GUI) drawAll() {
	g.drawMatrix()
	g.drawSide()
}

func (g *GUI) handleDraw() {
	for {
		var o event.DrawObject
		select {
		case <-g.Done:
			return
		case o = <-g.draw:
		}

		switch o {
		case event.DrawMatrix:
			g.App.QueueUpdateDraw(g.drawMatrix)
		case event.DrawSide:
			g.App.QueueUpdateDraw(g.drawSide)
		case event.DrawMessages:
			g.App.QueueUpdateDraw(func() {})
		default:
			g.App.QueueUpdateDraw(g.drawAll)
		}
	}
}

func (g *GUI) handleResize(screen tcell.Screen) {
	w, h := screen.Size()
	if w == g.screenW && h == g.screenH {
		return
	}
	g.screenW, g.screenH = w, h

	g.renderLock.Lock()
	mw, mh := g.snapshot.W, g.snapshot.H
	g.renderLock.Unlock()
	if mw == 0 {
		mw, mh = mino.DefaultWidth, mino.DefaultHeight
	}

	if !g.fixedBlockSize {
		g.blockSize = 1
		for bs := MaxBlockSize; bs > 1; bs-- {
			if w >= mw*2*bs+16 && h >= mh*bs+4 {
				g.blockSize = bs
				break
			}
		}
	}

	g.layout(mw, mh)
	g.queueDraw(event.DrawAll)
}

func (g *GUI) handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	if quitKey(ev) {
		g.Close()
		return nil
	}

	a := KeyAction(ev)
	if a == event.ActionUnknown {
		return ev
	}

	select {
	case g.actions <- a:
	default:
	}
	return nil
}
