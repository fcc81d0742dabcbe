package session

import (
	"context"
	"fmt"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/apiclient"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/identity"
	apperrors "github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/errors"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
)

var (
	ErrUnauthenticated = apperrors.ErrUnauthenticated
	ErrNotReady        = apperrors.ErrNotReady
)

// IdentityVerifier resolves the identity behind a scope's stored token.
type IdentityVerifier interface {
	Verify(ctx context.Context, s scope.Scope) (identity.Identity, error)
}

// Verifier asks the backend "who am I" through the scope's own client. It
// reports only; clearing a rejected token is the caller's job.
type Verifier struct {
	clients *apiclient.Set
}

var _ IdentityVerifier = (*Verifier)(nil)

func NewVerifier(clients *apiclient.Set) *Verifier {
	return &Verifier{clients: clients}
}

// Verify returns the identity for s. Every failure, whatever the cause, wraps
// ErrUnauthenticated.
func (v *Verifier) Verify(ctx context.Context, s scope.Scope) (identity.Identity, error) {
	id := identity.New(s)
	if id == nil {
		return nil, fmt.Errorf("%w: unknown scope %q", ErrUnauthenticated, string(s))
	}
	if err := v.clients.For(s).Get(ctx, s.Describe().MeEndpoint, id); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnauthenticated, s, err)
	}
	if id.ID() == 0 && id.EmailAddress() == "" {
		return nil, fmt.Errorf("%w: %s: empty identity", ErrUnauthenticated, s)
	}
	return id, nil
}
