package session

import (
	"context"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/identity"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
)

// Layout resolves the active scope from the URL, verifies it once and hands
// the identity to nested pages.
type Layout struct {
	check
}

func NewLayout(store CredentialStore, verifier IdentityVerifier, nav Navigator) *Layout {
	l := &Layout{}
	l.init(store, verifier, nav)
	l.cacheName = true
	return l
}

// LayoutScope picks the scope a layout mounted at path serves. Admin paths use
// the admin layout; every other path follows the dashboard rule.
func LayoutScope(path string) scope.Scope {
	if s, ok := scope.Infer(path); ok && s == scope.Admin {
		return scope.Admin
	}
	return scope.InferDashboard(path)
}

func (l *Layout) Mount(ctx context.Context, path string) State {
	return l.run(ctx, LayoutScope(path))
}

func (l *Layout) Unmount() {
	l.unmount()
}

// Scope returns the scope chosen at mount, empty before.
func (l *Layout) Scope() scope.Scope {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.scope
}

// Page returns a context carrying the verified identity for nested pages.
func (l *Layout) Page(ctx context.Context) (context.Context, error) {
	l.mu.Lock()
	state, id := l.state, l.identity
	l.mu.Unlock()

	switch state {
	case StateAuthenticated:
		return identity.WithIdentity(ctx, id), nil
	case StateChecking:
		return ctx, ErrNotReady
	}
	return ctx, ErrUnauthenticated
}

// Logout signs the active scope out. Calling it again is harmless.
func (l *Layout) Logout() error {
	s := l.signOut()
	if s == "" {
		return ErrNotReady
	}
	return Logout(l.store, l.nav, s)
}
