package game

import (
	"fmt"
	"log"
	"os"
)

const (
	LogStandard = iota
	LogDebug
	LogVerbose
)

const LogQueueSize = 10

func (g *Game) Log(level int, a ...interface{}) {
	if g.logger == nil || level > g.LogLevel {
		return
	}

	g.logger <- fmt.Sprint(a...)
}

func (g *Game) Logf(level int, format string, a ...interface{}) {
	if g.logger == nil || level > g.LogLevel {
		return
	}

	g.logger <- fmt.Sprintf(format, a...)
}

// InitLog sends the standard logger to dest. The terminal is owned by the
// GUI, so the client never logs to stderr while it runs.
func InitLog(dest, prefix string) (*os.File, error) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", dest, err)
	}

	log.SetOutput(f)
	log.SetPrefix(prefix)

	return f, nil
}
