package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/deckkeeper/internal/client/client"
	"github.com/dmitrijs2005/deckkeeper/internal/client/config"
	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
	"github.com/dmitrijs2005/deckkeeper/internal/client/services"
	"github.com/dmitrijs2005/deckkeeper/internal/client/storage"
	"github.com/dmitrijs2005/deckkeeper/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  storage.Storage

	authService   services.AuthService
	deckService   services.DeckService
	searchService services.SearchService

	session *models.Session

	// last search, for "next" and for resolving card ids in "add"
	lastFilters *models.SearchFilters
	lastPage    int
	lastResult  *models.SearchResult

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens local storage and builds the services described by c.
// Log output goes to stderr so it does not mix with command output.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.LogBackend, c.LogLevel, os.Stderr)

	store, err := storage.Open(ctx, c.StorageDriver, c.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	api := client.NewHTTPClient(c.APIBaseURL, logger.With("component", "card-client"),
		client.WithTimeout(c.RequestTimeout),
		client.WithRequestInterval(c.RequestInterval),
	)

	return &App{
		config: c,
		logger: logger,
		store:  store,
		authService: services.NewAuthService(store, logger.With("component", "auth"), services.AuthConfig{
			SessionTTL: c.SessionTTL,
			Delay:      c.AuthDelay,
		}),
		deckService:   services.NewDeckService(store, logger.With("component", "decks"), nil),
		searchService: services.NewSearchService(api, logger.With("component", "search")),
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
	}, nil
}

// Run restores the previous session and serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to deckkeeper (type 'help' for commands)")
	a.restoreSession(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Error(context.Background(), "close storage", "err", err)
		}
	}
	// Sync on a terminal stderr returns EINVAL; the error is ignored.
	if s, ok := a.logger.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) userID() string {
	if a.session == nil {
		return ""
	}
	return a.session.User.ID
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	s := a.session.User.Username
	if d := a.deckService.Current(context.Background(), a.userID()); d != nil {
		s += " deck:" + d.Name
	}
	return fmt.Sprintf("(%s)", s)
}
