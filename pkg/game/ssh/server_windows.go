//go:build windows
// +build windows

package ssh

import (
	"context"
	"errors"
	"net"
)

// SSH server is unsupported on Windows

var ErrNoListenAddress = errors.New("ssh: listen address must be specified")

var ErrUnsupported = errors.New("ssh: hosting is not supported on windows")

type SSHServer struct {
	ListenAddress string
	Binary        string
	HostKeyFile   string
	Args          []string
}

func (s *SSHServer) Host() error {
	return ErrUnsupported
}

func (s *SSHServer) Addr() net.Addr {
	return nil
}

func (s *SSHServer) Shutdown(ctx context.Context) error {
	return nil
}
