package session

import (
	"context"
	"sync"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/identity"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
	"github.com/rs/zerolog/log"
)

// State of a guarded mount
type State int

const (
	StateChecking State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

// View is what a guarded subtree should render for its current state.
type View int

const (
	ViewLoading View = iota
	ViewContent
	ViewRedirect
)

func (v View) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewContent:
		return "content"
	case ViewRedirect:
		return "redirect"
	}
	return "unknown"
}

func viewFor(s State) View {
	switch s {
	case StateAuthenticated:
		return ViewContent
	case StateUnauthenticated:
		return ViewRedirect
	}
	return ViewLoading
}

// CredentialStore is the part of credentials.Store the session layer uses.
type CredentialStore interface {
	Token(s scope.Scope) (string, bool)
	SetToken(s scope.Scope, token string) error
	ClearToken(s scope.Scope) error
	ClearAll() error
	SetDisplayName(s scope.Scope, name string) error
}

// check is the one-shot verification shared by Guard and Layout. Once
// unmounted or signed out it never writes state, touches the store or
// navigates again.
type check struct {
	store     CredentialStore
	verifier  IdentityVerifier
	nav       Navigator
	cacheName bool

	once sync.Once
	done chan struct{}

	mu        sync.Mutex
	scope     scope.Scope
	state     State
	identity  identity.Identity
	cancel    context.CancelFunc
	unmounted bool
	signedOut bool
}

func (c *check) init(store CredentialStore, verifier IdentityVerifier, nav Navigator) {
	c.store = store
	c.verifier = verifier
	c.nav = nav
	c.done = make(chan struct{})
}

// run performs the verification for s on the first call and blocks later
// callers until it settles. A cancelled ctx leaves the state at checking.
func (c *check) run(ctx context.Context, s scope.Scope) State {
	c.once.Do(func() {
		defer close(c.done)

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		c.mu.Lock()
		if c.unmounted {
			c.mu.Unlock()
			return
		}
		c.scope = s
		c.cancel = cancel
		c.mu.Unlock()

		c.resolve(ctx, s)
	})
	<-c.done
	return c.State()
}

func (c *check) resolve(ctx context.Context, s scope.Scope) {
	if _, ok := c.store.Token(s); !ok {
		log.Debug().Str("scope", s.String()).Msg("[session] no stored token")
		c.finish(s, nil, false)
		return
	}

	id, err := c.verifier.Verify(ctx, s)
	if err != nil {
		if ctx.Err() != nil {
			log.Debug().Str("scope", s.String()).Msg("[session] verification abandoned")
			return
		}
		log.Err(err).Str("scope", s.String()).Msg("[session] verification failed")
		c.finish(s, nil, true)
		return
	}
	c.finish(s, id, false)
}

func (c *check) finish(s scope.Scope, id identity.Identity, clearToken bool) {
	if redirect := c.settle(s, id, clearToken); redirect != "" {
		c.nav.Navigate(redirect, true)
	}
}

// settle records the outcome and returns the page to redirect to, if any.
// Navigation happens outside the lock because navigating usually unmounts.
func (c *check) settle(s scope.Scope, id identity.Identity, clearToken bool) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.unmounted || c.signedOut {
		log.Debug().Str("scope", s.String()).Msg("[session] ignoring result after unmount or logout")
		return ""
	}

	if id == nil {
		if clearToken {
			if err := c.store.ClearToken(s); err != nil {
				log.Err(err).Str("scope", s.String()).Msg("[session] failed to clear rejected token")
			}
		}
		c.state = StateUnauthenticated
		return s.Describe().LoginPage
	}

	if c.cacheName {
		if err := c.store.SetDisplayName(s, id.FullName()); err != nil {
			log.Err(err).Str("scope", s.String()).Msg("[session] failed to cache display name")
		}
	}
	c.state = StateAuthenticated
	c.identity = id
	return ""
}

func (c *check) unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.unmounted = true
	if c.cancel != nil {
		c.cancel()
	}
}

// signOut settles the check as unauthenticated and abandons any verification
// still in flight. It returns the mounted scope, empty before mount.
func (c *check) signOut() scope.Scope {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scope == "" {
		return ""
	}
	c.signedOut = true
	c.state = StateUnauthenticated
	c.identity = nil
	if c.cancel != nil {
		c.cancel()
	}
	return c.scope
}

func (c *check) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *check) View() View {
	return viewFor(c.State())
}

// Identity returns the verified identity once authenticated.
func (c *check) Identity() (identity.Identity, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identity, c.state == StateAuthenticated && c.identity != nil
}
