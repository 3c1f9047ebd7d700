// Package cli implements the interactive SkillSwap client: a REPL over the
// session store and the application services.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync/atomic"
	"time"

	"skillswap/internal/client/api"
	"skillswap/internal/client/config"
	"skillswap/internal/client/models"
	"skillswap/internal/client/services"
	"skillswap/internal/client/session"
	"skillswap/internal/client/storage"
)

type App struct {
	config    *config.Config
	session   *session.Store
	directory *services.DirectoryService
	swaps     *services.SwapService
	ratings   *services.RatingService
	profile   *services.ProfileService

	reader *bufio.Reader
	out    io.Writer

	// busy blocks a second mutating command while one is in flight.
	busy atomic.Bool

	// cached lists backing the numeric arguments of request/accept/...
	lastDirectory []*models.User
	lastOutgoing  []*models.SwapRequest
	lastIncoming  []*models.SwapRequest
}

func NewApp(cfg *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	client := api.NewRestClient(cfg.ServerBaseURL)
	sess := session.NewStore(client, storage.NewSQLiteMetadataRepository(db))

	return &App{
		config:    cfg,
		session:   sess,
		directory: services.NewDirectoryService(client, sess),
		swaps:     services.NewSwapService(client, sess),
		ratings:   services.NewRatingService(client, sess),
		profile:   services.NewProfileService(client, sess),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

// opCtx derives the per-request context every command runs under.
func (a *App) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

// beginOp claims the in-flight slot; endOp releases it. A command that
// cannot claim it reports "busy" instead of firing a duplicate request.
func (a *App) beginOp() bool {
	return a.busy.CompareAndSwap(false, true)
}

func (a *App) endOp() {
	a.busy.Store(false)
}

func (a *App) Run(ctx context.Context) {
	restoreCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := a.session.Restore(restoreCtx); err != nil {
		logPrintf("could not restore session: %v", err)
	}
	cancel()

	a.Root(ctx)
}
