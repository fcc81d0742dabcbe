package credentials

import (
	"fmt"

	apperrors "github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/errors"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
	"github.com/rs/zerolog/log"
)

// Store holds at most one bearer token per scope plus the cached display
// names shown before a session has been verified. Presence of a token says
// nothing about its validity.
type Store struct {
	repo Repo
}

func NewStore(repo Repo) *Store {
	return &Store{repo: repo}
}

// SetToken stores token for s as-is.
func (st *Store) SetToken(s scope.Scope, token string) error {
	return apperrors.Wrapf(st.repo.Set(s.Describe().TokenKey, token), "[Store SetToken] %s", s)
}

// Token returns the stored token for s. Backend failures are logged and
// reported as absent.
func (st *Store) Token(s scope.Scope) (string, bool) {
	return st.get(s.Describe().TokenKey)
}

// ClearToken removes the token for s along with its display cache.
func (st *Store) ClearToken(s scope.Scope) error {
	d := s.Describe()
	if err := st.repo.Delete(d.TokenKey); err != nil {
		return fmt.Errorf("[Store ClearToken] %s: %w", s, err)
	}
	if d.NameKey != "" {
		if err := st.repo.Delete(d.NameKey); err != nil {
			return fmt.Errorf("[Store ClearToken] %s display name: %w", s, err)
		}
	}
	return nil
}

// ClearAll removes every key held by the store.
func (st *Store) ClearAll() error {
	return apperrors.Wrapf(st.repo.Clear(), "[Store ClearAll]")
}

// SetDisplayName caches name for s. Scopes without a display cache ignore it.
func (st *Store) SetDisplayName(s scope.Scope, name string) error {
	key := s.Describe().NameKey
	if key == "" {
		return nil
	}
	if name == "" {
		return st.repo.Delete(key)
	}
	return apperrors.Wrapf(st.repo.Set(key, name), "[Store SetDisplayName] %s", s)
}

// DisplayName returns the cached display name for s.
func (st *Store) DisplayName(s scope.Scope) (string, bool) {
	key := s.Describe().NameKey
	if key == "" {
		return "", false
	}
	return st.get(key)
}

func (st *Store) get(key string) (string, bool) {
	value, err := st.repo.Get(key)
	if err != nil {
		if !apperrors.Is(err, ErrNotFound) {
			log.Err(err).Str("key", key).Msg("Credential store read failed, treating as absent")
		}
		return "", false
	}
	return value, true
}
