package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/game/ssh"
)

var (
	listenAddressSSH string
	clientBinary     string
	hostKeyFile      string
	logPath          string
	themeName        string
)

const ShutdownTimeout = 5 * time.Second

func init() {
	flag.StringVar(&listenAddressSSH, "listen-ssh", ":2222", "host SSH server on network address")
	flag.StringVar(&clientBinary, "tetristerm", "", "path to tetristerm client")
	flag.StringVar(&hostKeyFile, "host-key", "", "path to SSH host key (generated when empty)")
	flag.StringVar(&logPath, "log", "", "path to log file")
	flag.StringVar(&themeName, "theme", "", "theme passed to every client")
}

func main() {
	flag.Parse()

	if clientBinary == "" {
		log.Fatal("path to tetristerm client is required (--tetristerm)")
	}

	if logPath != "" {
		f, err := game.InitLog(logPath, "SERVER: ")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	var args []string
	if themeName != "" {
		args = append(args, "--theme", themeName)
	}

	server := &ssh.SSHServer{ListenAddress: listenAddressSSH, Binary: clientBinary, HostKeyFile: hostKeyFile, Args: args}
	if err := server.Host(); err != nil {
		log.Fatalf("failed to host SSH server: %s", err)
	}
	log.Printf("Listening for SSH connections at %s", server.Addr())

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("failed to shut down cleanly: %s", err)
	}
}
