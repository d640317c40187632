package pkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNickname(t *testing.T) {
	assert.Equal(t, "alice", Nickname("alice"))
	assert.Equal(t, "bob_2", Nickname("  bob_2 "))
	assert.Equal(t, "evilname", Nickname("evil;name\x1b"))
	assert.Equal(t, "abcdefghijklmnop", Nickname("abcdefghijklmnopqrstuvwxyz"))

	generated := Nickname("!!!")
	assert.NotEmpty(t, generated)
	assert.Contains(t, generated, "-")
}

func TestNewServer(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	s, err := NewServer(cfg)
	require.NoError(t, err)

	assert.Equal(t, SshPort, s.Addr)
	assert.Equal(t, ServerIdleTimeout, s.IdleTimeout)
	assert.NotNil(t, s.Handler)
	assert.NotNil(t, s.KeyboardInteractiveHandler)

	cfg.HostKeyFile = "/nonexistent/host_key"
	_, err = NewServer(cfg)
	assert.Error(t, err)
}

func TestServerSessions(t *testing.T) {
	s, err := NewServer(Config{ViewerBinary: ViewerBinary, ViewerTheme: "light"})
	require.NoError(t, err)

	a := s.addSession("alice", "xterm")
	b := s.addSession("", "screen")
	assert.NotEqual(t, a.Id, b.Id)

	sessions := s.Sessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, "alice", sessions[0].Nick)
	assert.Equal(t, "screen", sessions[1].Term)

	args := strings.Join(s.viewerArgs(a), " ")
	assert.Contains(t, args, "-theme light")
	assert.Contains(t, args, "-seed ")

	s.removeSession(a.Id)
	s.removeSession(a.Id)
	sessions = s.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, b.Id, sessions[0].Id)
}
