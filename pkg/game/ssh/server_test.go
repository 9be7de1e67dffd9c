//go:build !windows
// +build !windows

package ssh

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func startTestServer(t *testing.T, binary string) *SSHServer {
	t.Helper()

	s := &SSHServer{ListenAddress: "127.0.0.1:0", Binary: binary, Args: []string{"--seed", "7"}}
	require.NoError(t, s.Host())

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		s.Shutdown(ctx)
	})

	return s
}

func dial(t *testing.T, s *SSHServer, user string) *gossh.Session {
	t.Helper()

	client, err := gossh.Dial("tcp", s.Addr().String(), &gossh.ClientConfig{
		User:            user,
		Auth:            []gossh.AuthMethod{gossh.Password("anything")},
		HostKeyCallback: gossh.InsecureIgnoreHostKey(),
		Timeout:         5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	session, err := client.NewSession()
	require.NoError(t, err)

	return session
}

func TestHostRequiresAddress(t *testing.T) {
	s := &SSHServer{}
	assert.ErrorIs(t, s.Host(), ErrNoListenAddress)
	assert.Nil(t, s.Addr())
	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestHostMissingKeyFile(t *testing.T) {
	s := &SSHServer{ListenAddress: "127.0.0.1:0", HostKeyFile: "/nonexistent/id_rsa"}
	assert.Error(t, s.Host())
}

func TestSessionRequiresPty(t *testing.T) {
	s := startTestServer(t, "/bin/echo")

	session := dial(t, s, "tester")
	out, err := session.CombinedOutput("")

	var exitErr *gossh.ExitError
	require.True(t, errors.As(err, &exitErr), "unexpected error %v", err)
	assert.Equal(t, 1, exitErr.ExitStatus())
	assert.Contains(t, string(out), "non-interactive terminals are not supported")
}

func TestSessionRunsClient(t *testing.T) {
	if _, err := os.Stat("/bin/echo"); err != nil {
		t.Skip("/bin/echo not available")
	}

	s := startTestServer(t, "/bin/echo")

	session := dial(t, s, "bad nick!")
	require.NoError(t, session.RequestPty("xterm", 24, 80, gossh.TerminalModes{}))

	out, err := session.Output("")
	require.NoError(t, err)
	assert.Contains(t, string(out), "--nick badnick! --seed 7")
}
