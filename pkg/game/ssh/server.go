//go:build !windows
// +build !windows

package ssh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/qnkhuat/tetristerm/pkg/game"
)

const (
	ServerIdleTimeout = 5 * time.Minute
)

var ErrNoListenAddress = errors.New("ssh: listen address must be specified")

// SSHServer runs the client binary in a pseudo-terminal for every SSH
// session. Each connection plays its own game.
type SSHServer struct {
	ListenAddress string
	Binary        string
	HostKeyFile   string

	// Args are passed to the client after the nickname.
	Args []string

	mu       sync.Mutex
	server   *ssh.Server
	listener net.Listener
}

func (s *SSHServer) handle(sshSession ssh.Session) {
	ptyReq, winCh, isPty := sshSession.Pty()
	if !isPty {
		io.WriteString(sshSession, "failed to start tetristerm: non-interactive terminals are not supported\n")

		sshSession.Exit(1)
		return
	}

	nick := game.Nickname(sshSession.User())
	log.Printf("SSH session started for %s from %s", nick, sshSession.RemoteAddr())

	cmdCtx, cancelCmd := context.WithCancel(sshSession.Context())
	defer cancelCmd()

	args := append([]string{"--nick", nick}, s.Args...)
	cmd := exec.CommandContext(cmdCtx, s.Binary, args...)
	cmd.Env = append(cmd.Env, fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(ptyReq.Window.Height), Cols: uint16(ptyReq.Window.Width)})
	if err != nil {
		io.WriteString(sshSession, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sshSession.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			pty.Setsize(f, &pty.Winsize{Rows: uint16(win.Height), Cols: uint16(win.Width)})
		}
	}()

	go func() {
		io.Copy(f, sshSession)
	}()
	io.Copy(sshSession, f)

	var status int
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			status = exitErr.ExitCode()
		} else {
			status = 1
		}
	}

	log.Printf("SSH session ended for %s with status %d", nick, status)
	sshSession.Exit(status)
}

// Host starts accepting connections and returns once the listener is open.
func (s *SSHServer) Host() error {
	if s.ListenAddress == "" {
		return ErrNoListenAddress
	}

	server := &ssh.Server{
		Addr:        s.ListenAddress,
		IdleTimeout: ServerIdleTimeout,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	// Without a key file a host key is generated for this run.
	if s.HostKeyFile != "" {
		if err := server.SetOption(ssh.HostKeyFile(s.HostKeyFile)); err != nil {
			return fmt.Errorf("failed to load host key %s: %w", s.HostKeyFile, err)
		}
	}

	ln, err := net.Listen("tcp", s.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.ListenAddress, err)
	}

	s.mu.Lock()
	s.server = server
	s.listener = ln
	s.mu.Unlock()

	go func() {
		err := server.Serve(ln)
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Printf("SSH server stopped: %s", err)
		}
	}()

	return nil
}

// Addr returns the address being listened on, or nil before Host.
func (s *SSHServer) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Shutdown stops listening and waits for sessions to end until ctx is done.
func (s *SSHServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	server := s.server
	s.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}
