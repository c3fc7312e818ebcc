package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jekabolt/sheel/config"
	httpapi "github.com/jekabolt/sheel/internal/api/http"
	"github.com/jekabolt/sheel/internal/auth"
	"github.com/jekabolt/sheel/internal/dependency"
	"github.com/jekabolt/sheel/internal/listing"
	"github.com/jekabolt/sheel/internal/preference/bunt"
	"github.com/jekabolt/sheel/internal/store"
	"golang.org/x/sync/errgroup"
)

// App is the main application
type App struct {
	hs        *httpapi.Server
	db        dependency.Repository
	prefs     *bunt.Store
	submitter *listing.Submitter
	c         *config.Config
	done      chan struct{}
	doneOnce  sync.Once
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	slog.Default().InfoContext(ctx, "starting sheel")

	// The store outlives Start, so it gets ctx rather than the group context.
	var g errgroup.Group
	g.Go(func() error {
		db, err := store.New(ctx, a.c.DB)
		if err != nil {
			slog.Default().ErrorContext(ctx, "couldn't connect to mysql", slog.String("err", err.Error()))
			return err
		}
		a.db = db
		return nil
	})
	g.Go(func() error {
		prefs, err := a.c.Preferences.New()
		if err != nil {
			slog.Default().ErrorContext(ctx, "couldn't open preferences db", slog.String("err", err.Error()))
			return err
		}
		a.prefs = prefs
		return nil
	})
	if err := g.Wait(); err != nil {
		a.closeStores(ctx)
		return err
	}

	files, err := a.c.Bucket.New()
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't create bucket client", slog.String("err", err.Error()))
		a.closeStores(ctx)
		return err
	}

	authS, err := auth.New(&a.c.Auth, a.db.Owners())
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new auth service", slog.String("err", err.Error()))
		a.closeStores(ctx)
		return err
	}

	a.submitter = listing.NewSubmitter(&a.c.Listing, a.db.Listings(), files)

	// start API server
	a.hs = httpapi.New(&a.c.HTTP, a.db, files, authS, a.submitter, a.prefs)
	if err := a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		a.hs = nil
		a.release(ctx)
		return err
	}

	go func() {
		<-a.hs.Done()
		a.doneOnce.Do(func() { close(a.done) })
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop http server", slog.String("err", err.Error()))
		}
	}
	a.release(ctx)
	a.doneOnce.Do(func() { close(a.done) })
}

// release stops the submitter and closes the stores.
func (a *App) release(ctx context.Context) {
	if a.submitter != nil {
		a.submitter.Close()
		a.submitter = nil
	}
	a.closeStores(ctx)
}

func (a *App) closeStores(ctx context.Context) {
	if a.prefs != nil {
		if err := a.prefs.Close(); err != nil {
			slog.Default().ErrorContext(ctx, "can't close preferences db", slog.String("err", err.Error()))
		}
		a.prefs = nil
	}
	if a.db != nil {
		a.db.Close()
		a.db = nil
	}
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() <-chan struct{} {
	return a.done
}

// Register creates an owner account. It is used by the command line to
// provision owners.
func Register(ctx context.Context, c *config.Config, email, password string) (*auth.Identity, error) {
	db, err := store.New(ctx, c.DB)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	authS, err := auth.New(&c.Auth, db.Owners())
	if err != nil {
		return nil, err
	}
	return authS.Register(ctx, email, password)
}
