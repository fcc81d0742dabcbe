package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/credentials/redisrepo"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/credentials/repofake"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/app"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/config"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/session"
	"github.com/stretchr/testify/require"
)

func testConfig(backend string) *config.Config {
	return &config.Config{
		Environment: "development",
		API:         config.APIConfig{BaseURL: "http://127.0.0.1:8000", Timeout: time.Second},
		Log:         config.LogConfig{Level: "info"},
		Store:       config.StoreConfig{Backend: backend},
		Redis:       config.RedisConfig{Prefix: "xcalibr:"},
	}
}

func TestNew_Backends(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		a, err := app.New(ctx, testConfig(config.BackendMemory))
		require.NoError(t, err)
		t.Cleanup(func() { _ = a.Close() })

		require.NoError(t, a.Store.SetToken(scope.Admin, "t"))
		_, ok := a.Store.Token(scope.Admin)
		require.True(t, ok)
	})

	t.Run("file survives reopen", func(t *testing.T) {
		cfg := testConfig(config.BackendFile)
		cfg.Store.Path = filepath.Join(t.TempDir(), "creds.json")
		cfg.Store.Passphrase = "correct horse"

		a, err := app.New(ctx, cfg)
		require.NoError(t, err)
		require.NoError(t, a.Store.SetToken(scope.Recruiter, "hr-tok"))
		require.NoError(t, a.Close())

		b, err := app.New(ctx, cfg)
		require.NoError(t, err)
		tok, ok := b.Store.Token(scope.Recruiter)
		require.True(t, ok)
		require.Equal(t, "hr-tok", tok)
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := testConfig(config.BackendRedis)
		cfg.Redis.Addr = mr.Addr()

		a, err := app.New(ctx, cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = a.Close() })

		require.NoError(t, a.Store.SetToken(scope.Candidate, "cand-tok"))
		got, err := mr.Get("xcalibr:" + scope.KeyCandidateToken)
		require.NoError(t, err)
		require.Equal(t, "cand-tok", got)
	})

	t.Run("redis without prefix", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := testConfig(config.BackendRedis)
		cfg.Redis.Addr = mr.Addr()
		cfg.Redis.Prefix = ""

		_, err := app.New(ctx, cfg)
		require.ErrorIs(t, err, redisrepo.ErrEmptyPrefix)
	})

	t.Run("redis unreachable", func(t *testing.T) {
		cfg := testConfig(config.BackendRedis)
		cfg.Redis.Addr = "127.0.0.1:1"

		_, err := app.New(ctx, cfg)
		require.Error(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := app.New(ctx, testConfig("sqlite"))
		require.Error(t, err)
	})
}

func TestApp_GuardUsesWiredStore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path != "/api/admin/me" || r.Header.Get("Authorization") != "Bearer admin-tok" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Not authenticated"}`))
			return
		}
		_, _ = w.Write([]byte(`{"adminid":1,"firstname":"Root","lastname":"User","email":"root@x.io"}`))
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(config.BackendMemory)
	cfg.API.BaseURL = srv.URL
	a, err := app.New(context.Background(), cfg, app.WithRepo(repofake.NewFakeRepo()))
	require.NoError(t, err)
	require.NoError(t, a.Store.SetToken(scope.Admin, "admin-tok"))

	history := session.NewHistory(scope.RouteAdminPortal)
	guard := a.NewGuard(scope.Admin, history)
	require.Equal(t, session.StateAuthenticated, guard.Mount(context.Background()))

	layout := a.NewLayout(history)
	require.Equal(t, session.StateUnauthenticated, layout.Mount(context.Background(), scope.RouteRecruiterDashboard))
	require.Equal(t, scope.RouteRecruiterLogin, history.Current())
}
