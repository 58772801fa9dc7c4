package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/t4gged/t4gged/internal/client/client"
	"github.com/t4gged/t4gged/internal/client/config"
	"github.com/t4gged/t4gged/internal/client/identity"
	"github.com/t4gged/t4gged/internal/client/repositories/profiles"
	"github.com/t4gged/t4gged/internal/client/services"
	"github.com/t4gged/t4gged/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const onlineCheckInterval = 10 * time.Second

type App struct {
	config   *config.Config
	db       *sql.DB
	store    client.RecordStore
	writer   *services.ProfileWriter
	sessions services.SessionService
	profiles services.ProfileService
	invites  services.InviteService
	logger   logging.Logger

	in       io.Reader
	out      io.Writer
	readFile func(string) ([]byte, error)

	mu       sync.Mutex
	mode     Mode
	locked   bool
	userName string
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	db, err := client.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open profile database: %w", err)
	}

	tokens := identity.NewTokenProvider(c.TokenFile)
	store, err := client.NewGRPCClient(c.ServerEndpointAddr, tokens, c.RequestTimeout, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return newApp(c, db, store, tokens, logger, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, db *sql.DB, store client.RecordStore, provider identity.Provider, logger logging.Logger, in io.Reader, out io.Writer) *App {
	repo := profiles.NewSQLiteRepository(db)
	writer := services.NewProfileWriter(repo)
	resolver := identity.NewResolver(provider, store, logger)
	sessions := services.NewSessionService(resolver, store, repo, writer, logger)

	return &App{
		config:   c,
		db:       db,
		store:    store,
		writer:   writer,
		sessions: sessions,
		profiles: services.NewProfileService(sessions, store, writer, nil),
		invites:  services.NewInviteService(sessions, store, logger),
		logger:   logger,
		in:       in,
		out:      &syncWriter{w: out},
		readFile: os.ReadFile,
	}
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()
	if changed {
		fmt.Fprintf(a.out, "Switched to %s mode\n", mode)
	}
}

func (a *App) status() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	var parts []string
	if a.userName != "" {
		parts = append(parts, a.userName)
	}
	if a.locked {
		parts = append(parts, "locked")
	}
	if a.mode != "" {
		parts = append(parts, string(a.mode))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (a *App) isSignedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userName != ""
}

// Run restores a stored session, starts the connectivity watcher and runs
// the REPL until the user exits. A stored profile with a passcode starts
// locked.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	fmt.Fprintln(a.out, "Welcome to T4GGED (type 'help' for commands)")
	if p, err := a.sessions.Current(ctx); err == nil {
		a.mu.Lock()
		a.userName = p.DisplayName()
		a.locked = p.HasPasscode()
		a.mu.Unlock()
		fmt.Fprintf(a.out, "Signed in as %s\n", p.DisplayName())
	}

	watchCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.StartOnlineStatusWatcher(watchCtx, onlineCheckInterval)
	}()

	runREPL(ctx, a, a.status, bufio.NewScanner(a.in))
	cancel()
	wg.Wait()
}

func (a *App) close() {
	a.writer.Close()
	if err := a.store.Close(); err != nil {
		a.logger.Warn(context.Background(), "closing record store", "error", err.Error())
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn(context.Background(), "closing profile database", "error", err.Error())
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := a.store.Ping(ctx); err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return
		}
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// syncWriter serializes writes from the REPL and the connectivity watcher.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
