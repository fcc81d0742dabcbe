package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/apiclient"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/credentials"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/credentials/filerepo"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/credentials/redisrepo"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/credentials/repofake"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/config"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/portal"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/session"
	"github.com/rs/zerolog/log"
)

// App is the portal wired against one backend and one credential store.
type App struct {
	Config   *config.Config
	Store    *credentials.Store
	Clients  *apiclient.Set
	Verifier *session.Verifier
	Portal   *portal.Portal

	close func() error
}

// Option adjusts how New wires the app
type Option func(*options)

type options struct {
	repo      credentials.Repo
	transport http.RoundTripper
}

// WithRepo uses repo instead of the configured store backend.
func WithRepo(repo credentials.Repo) Option {
	return func(o *options) { o.repo = repo }
}

// WithTransport sets the HTTP transport under every scoped client.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	closeRepo := func() error { return nil }
	repo := o.repo
	if repo == nil {
		var err error
		repo, closeRepo, err = OpenRepo(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	store := credentials.NewStore(repo)
	clients, err := apiclient.NewSet(cfg.API.BaseURL, store, o.transport)
	if err != nil {
		_ = closeRepo()
		return nil, fmt.Errorf("[app New] %w", err)
	}

	return &App{
		Config:   cfg,
		Store:    store,
		Clients:  clients,
		Verifier: session.NewVerifier(clients),
		Portal:   portal.New(clients),
		close:    closeRepo,
	}, nil
}

// OpenRepo opens the configured credential backend. The returned func
// releases it.
func OpenRepo(ctx context.Context, cfg *config.Config) (credentials.Repo, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Backend {
	case config.BackendMemory:
		return repofake.NewFakeRepo(), noop, nil
	case config.BackendFile:
		repo, err := filerepo.New(cfg.Store.Path, cfg.Store.Passphrase)
		if err != nil {
			return nil, nil, fmt.Errorf("[app OpenRepo] %w", err)
		}
		log.Debug().Str("path", repo.Path()).Bool("encrypted", cfg.Store.Passphrase != "").Msg("Using file credential store")
		return repo, noop, nil
	case config.BackendRedis:
		client, err := redisrepo.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("[app OpenRepo] %w", err)
		}
		repo, err := redisrepo.New(client, cfg.Redis.Prefix)
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("[app OpenRepo] %w", err)
		}
		log.Debug().Str("addr", cfg.Redis.Addr).Str("prefix", cfg.Redis.Prefix).Msg("Using redis credential store")
		return repo, client.Close, nil
	}
	return nil, nil, fmt.Errorf("[app OpenRepo] unknown store backend %q", cfg.Store.Backend)
}

func (a *App) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

func (a *App) NewGuard(s scope.Scope, nav session.Navigator) *session.Guard {
	return session.NewGuard(s, a.Store, a.Verifier, nav)
}

func (a *App) NewLayout(nav session.Navigator) *session.Layout {
	return session.NewLayout(a.Store, a.Verifier, nav)
}
