package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/config"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "portal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "http://127.0.0.1:8000", cfg.API.BaseURL)
	require.Equal(t, 30*time.Second, cfg.API.Timeout)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, config.BackendFile, cfg.Store.Backend)
	require.Equal(t, "xcalibr:", cfg.Redis.Prefix)
	require.Equal(t, "info", cfg.Log.Level)
	require.False(t, cfg.IsProduction())

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".xcalibr", "credentials.json"), cfg.Store.Path)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
environment: production
api:
  baseurl: https://api.xcalibr.example
  timeout: 5s
store:
  backend: redis
redis:
  addr: cache:6379
  db: 2
`)
	t.Setenv("XCALIBR_REDIS_PREFIX", "portal:")
	t.Setenv("XCALIBR_LOG_LEVEL", "debug")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.True(t, cfg.IsProduction())
	require.Equal(t, "https://api.xcalibr.example", cfg.API.BaseURL)
	require.Equal(t, 5*time.Second, cfg.API.Timeout)
	require.Equal(t, config.BackendRedis, cfg.Store.Backend)
	require.Equal(t, "cache:6379", cfg.Redis.Addr)
	require.Equal(t, 2, cfg.Redis.DB)
	require.Equal(t, "portal:", cfg.Redis.Prefix)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_RedisRequiresPrefix(t *testing.T) {
	path := writeConfig(t, `
store:
  backend: redis
redis:
  addr: cache:6379
  prefix: ""
`)

	_, err := config.Load(path)
	require.ErrorContains(t, err, "redis.prefix")
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			API:   config.APIConfig{BaseURL: "http://127.0.0.1:8000", Timeout: time.Second},
			Log:   config.LogConfig{Level: "info"},
			Store: config.StoreConfig{Backend: config.BackendMemory},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *config.Config)
		ok     bool
	}{
		{name: "valid", mutate: func(*config.Config) {}, ok: true},
		{name: "relative base url", mutate: func(c *config.Config) { c.API.BaseURL = "/api" }},
		{name: "zero timeout", mutate: func(c *config.Config) { c.API.Timeout = 0 }},
		{name: "bad level", mutate: func(c *config.Config) { c.Log.Level = "loud" }},
		{name: "unknown backend", mutate: func(c *config.Config) { c.Store.Backend = "sqlite" }},
		{name: "file without path", mutate: func(c *config.Config) { c.Store.Backend = config.BackendFile }},
		{name: "file with path", mutate: func(c *config.Config) {
			c.Store.Backend = config.BackendFile
			c.Store.Path = "/tmp/creds.json"
		}, ok: true},
		{name: "redis without addr", mutate: func(c *config.Config) {
			c.Store.Backend = config.BackendRedis
			c.Redis.Prefix = "xcalibr:"
		}},
		{name: "redis without prefix", mutate: func(c *config.Config) {
			c.Store.Backend = config.BackendRedis
			c.Redis.Addr = "127.0.0.1:6379"
		}},
		{name: "redis", mutate: func(c *config.Config) {
			c.Store.Backend = config.BackendRedis
			c.Redis.Addr = "127.0.0.1:6379"
			c.Redis.Prefix = "xcalibr:"
		}, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
