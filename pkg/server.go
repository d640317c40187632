package pkg

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

// Server runs a viewer in a pseudo-terminal for every SSH session
type Server struct {
	*ssh.Server
	Config Config

	sessions map[int]*Session
	nextId   int
	sync.Mutex
}

func setWinsize(f *os.File, w, h int) {
	if err := pty.Setsize(f, &pty.Winsize{Rows: uint16(h), Cols: uint16(w)}); err != nil {
		log.Printf("Failed to resize terminal: %v", err)
	}
}

func NewServer(cfg Config) (*Server, error) {
	server := &Server{
		Config:   cfg,
		sessions: make(map[int]*Session),
	}

	s := &ssh.Server{
		Addr:        cfg.SshPort,
		IdleTimeout: cfg.IdleTimeout,
		Handler:     server.handle,
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

	// Without a host key file gliderlabs/ssh generates a key per run
	if cfg.HostKeyFile != "" {
		if err := s.SetOption(ssh.HostKeyFile(cfg.HostKeyFile)); err != nil {
			return nil, fmt.Errorf("failed to load host key %s: %w", cfg.HostKeyFile, err)
		}
	}

	server.Server = s
	return server, nil
}

func (s *Server) handle(sshSession ssh.Session) {
	ptyReq, winCh, isPty := sshSession.Pty()
	if !isPty {
		io.WriteString(sshSession, "failed to start tetroterm: non-interactive terminals are not supported\n")

		sshSession.Exit(1)
		return
	}

	session := s.addSession(sshSession.User(), ptyReq.Term)
	defer s.removeSession(session.Id)

	cmdCtx, cancelCmd := context.WithCancel(sshSession.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.Config.ViewerBinary, s.viewerArgs(session)...)
	cmd.Env = append(sshSession.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(ptyReq.Window.Height), Cols: uint16(ptyReq.Window.Width)})
	if err != nil {
		log.Printf("Session %s failed to start viewer: %v", session, err)
		io.WriteString(sshSession, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sshSession.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			setWinsize(f, win.Width, win.Height)
		}
	}()

	go func() {
		io.Copy(f, sshSession)
	}()
	io.Copy(sshSession, f)

	f.Close()
	cmd.Wait()
}

func (s *Server) viewerArgs(session *Session) []string {
	args := []string{"-seed", strconv.FormatInt(session.Seed, 10), "-log", os.DevNull}
	if s.Config.ViewerTheme != "" {
		args = append(args, "-theme", s.Config.ViewerTheme)
	}
	return args
}

func (s *Server) addSession(user, term string) *Session {
	s.Lock()
	defer s.Unlock()

	s.nextId++
	session := &Session{
		Id:      s.nextId,
		Nick:    Nickname(user),
		Term:    term,
		Seed:    time.Now().UnixNano(),
		Started: time.Now(),
	}
	s.sessions[session.Id] = session

	log.Printf("Session %s started, %d active", session, len(s.sessions))
	return session
}

func (s *Server) removeSession(id int) {
	s.Lock()
	defer s.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return
	}
	delete(s.sessions, id)

	log.Printf("Session %s ended after %s, %d active", session, time.Since(session.Started).Round(time.Second), len(s.sessions))
}

// Sessions returns a copy of the active sessions ordered by id
func (s *Server) Sessions() []Session {
	s.Lock()
	defer s.Unlock()

	sessions := make([]Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, *session)
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].Id < sessions[j].Id })

	return sessions
}
