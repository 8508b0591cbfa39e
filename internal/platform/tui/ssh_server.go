package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/ecoclean/internal/config"
	"github.com/vovakirdan/ecoclean/internal/core"
	"github.com/vovakirdan/ecoclean/internal/games/cleanup"
	"github.com/vovakirdan/ecoclean/internal/storage"
)

// shutdownGrace bounds how long open sessions get to finish on shutdown.
const shutdownGrace = 10 * time.Second

// SSHServerConfig configures the remote play server.
type SSHServerConfig struct {
	Address     string        // host:port to listen on
	HostKeyPath string        // Empty means ~/.ecoclean/host_key, generated on first start
	DBPath      string        // Empty gives each connection its own in-memory results
	IdleTimeout time.Duration // Idle connections are closed after this long
	TickRate    int           // Clean-up frame rate
	Game        config.CleanupConfig
}

// DefaultSSHServerConfig returns the config used by `ecoclean serve`
// without flags.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		Game:        config.DefaultCleanupConfig(),
	}
}

// SSHServer serves one menu session per SSH connection. Each session
// keeps its own results unless a database file is configured, in which
// case the file is shared.
type SSHServer struct {
	cfg    SSHServerConfig
	srv    *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer validates the game config, opens the results store and
// prepares the wish server. It does not start listening.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if _, err := cleanup.New(cfg.Game); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{
		cfg: cfg,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "ecoclean-ssh",
		}),
	}

	if cfg.DBPath != "" {
		if s.store, err = storage.Open(cfg.DBPath); err != nil {
			// Sessions still work, they just keep no scores
			s.logger.Warn("results database unavailable", "path", cfg.DBPath, "error", err)
			s.store = nil
		}
	}

	s.srv, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			s.logSession,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	return s, nil
}

// hostKeyPath resolves the host key location and makes sure its
// directory exists.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot locate home directory for the host key: %w", err)
		}
		path = filepath.Join(home, ".ecoclean", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// newSession builds the Bubble Tea program for one connection.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("connection without a PTY", "user", sess.User())
		return nil, nil
	}

	rt := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.cfg.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	model := NewSessionModel(s.sessionStore(sess.Context(), sess.User()), s.cfg.Game, rt, sess.User(), s.logger)
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// sessionStore returns the shared file store, or a fresh in-memory store
// that lives as long as the connection.
func (s *SSHServer) sessionStore(ctx context.Context, user string) *storage.Store {
	if s.store != nil || s.cfg.DBPath != "" {
		return s.store
	}

	store, err := storage.Open(storage.MemoryPath)
	if err != nil {
		s.logger.Warn("session results unavailable", "user", user, "error", err)
		return nil
	}
	go func() {
		<-ctx.Done()
		if err := store.Close(); err != nil {
			s.logger.Warn("closing session results", "user", user, "error", err)
		}
	}()
	return store
}

// logSession logs connects and disconnects.
func (s *SSHServer) logSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("connected", "user", sess.User(), "remote", sess.RemoteAddr().String())
		next(sess)
		s.logger.Info("disconnected", "user", sess.User(), "remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down and
// closes the store.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("listening", "address", s.cfg.Address, "shared_results", s.store != nil)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down")
		return s.Shutdown()
	})

	return g.Wait()
}

// Shutdown stops accepting connections, waits up to shutdownGrace for
// open sessions and closes the store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := s.srv.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("closing results database", "error", err)
	}
	s.store = nil
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}
