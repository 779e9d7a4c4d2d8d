// Package cli implements the interactive Haven client: a small REPL over the
// identity directory, the support chat, and the report dashboard.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/havenlocal/haven/internal/chat"
	"github.com/havenlocal/haven/internal/config"
	"github.com/havenlocal/haven/internal/identity"
	"github.com/havenlocal/haven/internal/kv"
	"github.com/havenlocal/haven/internal/logging"
	"github.com/havenlocal/haven/internal/models"
	"github.com/havenlocal/haven/internal/reports"
	"github.com/havenlocal/haven/internal/storage"
)

// App wires the services together and holds the in-memory view of the
// current session. The persisted session pointer in the store remains the
// source of truth; App.session is just the copy the prompt renders.
type App struct {
	config    *config.Config
	logger    logging.Logger
	directory *identity.Directory
	chatLog   *chat.Log
	responder *chat.Responder
	catalog   *reports.Catalog
	reader    *bufio.Reader
	session   *models.Profile
}

// NewApp opens the local database and builds a fully wired App.
func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "failed to open local database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	return newApp(cfg, logger, kv.NewSQLiteStore(db)), nil
}

// newApp builds an App over an arbitrary store; tests inject kv.MemoryStore.
func newApp(cfg *config.Config, logger logging.Logger, store kv.Store) *App {
	a := &App{
		config:    cfg,
		logger:    logger,
		directory: identity.NewDirectory(store),
		chatLog:   chat.NewLog(store),
		catalog:   reports.NewCatalog(store),
		reader:    bufio.NewReader(os.Stdin),
	}
	a.responder = chat.NewResponder(a.chatLog, logger, cfg.ResponderDelay, a.ownerActive)
	a.responder.OnDelivery(func(m models.Message) { printMessage(m) })
	return a
}

// ownerActive guards timer-scheduled counselor replies: a reply is only
// applied while ownerID still holds the session.
func (a *App) ownerActive(ctx context.Context, ownerID string) bool {
	current, ok, err := a.directory.Current(ctx)
	return err == nil && ok && current.ID == ownerID
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return "(" + a.session.DisplayName + ")"
}

// Run restores any persisted session and enters the REPL. A session written
// by a previous process is picked up here, so a restart does not log the
// user out.
func (a *App) Run(ctx context.Context) {
	if current, ok, err := a.directory.Current(ctx); err == nil && ok {
		a.session = &current
		a.logger.Info(ctx, "restored session", "email", current.Email)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
