package session

import (
	"context"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
)

// Guard gates a subtree on a verified session for a fixed scope. The portal
// mounts one over the admin console.
type Guard struct {
	check
	target scope.Scope
}

func NewGuard(s scope.Scope, store CredentialStore, verifier IdentityVerifier, nav Navigator) *Guard {
	g := &Guard{target: s}
	g.init(store, verifier, nav)
	return g
}

// Mount runs the check once and returns the settled state. Later calls do not
// verify again.
func (g *Guard) Mount(ctx context.Context) State {
	return g.run(ctx, g.target)
}

// Unmount abandons an in-flight check; its result is discarded.
func (g *Guard) Unmount() {
	g.unmount()
}

func (g *Guard) Scope() scope.Scope {
	return g.target
}
