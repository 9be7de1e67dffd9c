package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
)

var (
	nicknameFlag string
	seed         int64
	themeName    string
	themeFile    string
	logPath      string
	blockSize    int

	logDebug   bool
	logVerbose bool
)

func init() {
	flag.StringVar(&nicknameFlag, "nick", "", "nickname")
	flag.Int64Var(&seed, "seed", 0, "seed for piece colors (0 picks one)")
	flag.StringVar(&themeName, "theme", gui.ThemeBasic.Name, "theme name")
	flag.StringVar(&themeFile, "theme-file", "", "path to a JSON list of themes")
	flag.StringVar(&logPath, "log", "", "path to log file")
	flag.IntVar(&blockSize, "scale", 0, "UI scale (0 fits the terminal)")
	flag.BoolVar(&logDebug, "debug", false, "enable debug logging")
	flag.BoolVar(&logVerbose, "verbose", false, "enable verbose logging")
}

func loadTheme(name string, file string) (gui.Theme, error) {
	var themes []gui.ThemeHex
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return gui.Theme{}, fmt.Errorf("failed to open theme file: %w", err)
		}
		defer f.Close()

		themes, err = gui.LoadThemes(f)
		if err != nil {
			return gui.Theme{}, err
		}
	}

	return gui.ImportThemes(name, themes)
}

func handleEvents(ui *gui.GUI, events <-chan interface{}) {
	for e := range events {
		switch e := e.(type) {
		case *event.GameOverEvent:
			log.Println(e.Message)
			ui.Message(e.Message)
		case *event.ScoreEvent:
			ui.Message(fmt.Sprintf("%s cleared %d line(s), score %d", e.Player, e.Lines, e.Score))
		}
	}
}

func main() {
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("failed to start tetristerm: non-interactive terminals are not supported")
	}

	// The terminal belongs to the GUI while it runs.
	if logPath != "" {
		f, err := game.InitLog(logPath, "CLIENT: ")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	theme, err := loadTheme(themeName, themeFile)
	if err != nil {
		log.Fatalf("failed to load theme: %s", err)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rand.Seed(seed)

	nickname := game.Nickname(nicknameFlag)

	logLevel := game.LogStandard
	if logVerbose {
		logLevel = game.LogVerbose
	} else if logDebug {
		logLevel = game.LogDebug
	}

	logger := make(chan string, game.LogQueueSize)
	events := make(chan interface{}, game.LogQueueSize)
	draw := make(chan game.Snapshot, gui.DrawQueueSize)

	g := game.NewGame(seed, game.WithLogger(logger, logLevel))
	ui := gui.NewGUI(theme, blockSize)

	player := game.NewPlayer(nickname, g)
	player.Event = events
	player.Draw = draw

	go func() {
		for msg := range logger {
			log.Println(msg)
			ui.Message(msg)
		}
	}()
	go handleEvents(ui, events)
	go func() {
		for s := range draw {
			ui.Update(s)
		}
	}()

	log.Printf("Started %s with seed %d", nickname, seed)
	ui.Message(fmt.Sprintf("Welcome to tetristerm, %s", nickname))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	guiErr := make(chan error, 1)
	go func() {
		guiErr <- ui.Run()
	}()

	playErr := make(chan error, 1)
	go func() {
		playErr <- player.Run(ctx, ui.Actions())
	}()

	select {
	case <-ctx.Done():
	case <-ui.Done:
	}

	cancel()
	ui.Close()
	<-playErr

	if err := <-guiErr; err != nil {
		log.Fatalf("failed to run application: %s", err)
	}

	fmt.Print(gui.RenderANSI(g.Snapshot()))
	fmt.Printf("Thanks for playing, %s!\n", nickname)
}
