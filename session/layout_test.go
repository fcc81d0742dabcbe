package session_test

import (
	"context"
	"testing"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/identity"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/session"
	"github.com/stretchr/testify/require"
)

func TestLayoutScope(t *testing.T) {
	tests := []struct {
		path string
		want scope.Scope
	}{
		{path: "/recruiter/dashboard", want: scope.Recruiter},
		{path: "/recruiter/post-job", want: scope.Recruiter},
		{path: "/candidate/profile", want: scope.Candidate},
		{path: "/jobs", want: scope.Candidate},
		{path: "/system-admin-portal-2024", want: scope.Admin},
		{path: "/admin/user-management", want: scope.Admin},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, session.LayoutScope(tt.path))
		})
	}
}

func TestLayout_CandidateIdentityReachesPages(t *testing.T) {
	f := setupTestFixture(t, defaultRoutes())
	require.NoError(t, f.store.SetToken(scope.Candidate, "cand-tok"))
	history := session.NewHistory(scope.RouteCandidateProfile)
	layout := session.NewLayout(f.store, f.verifier, history)
	ctx := context.Background()

	_, err := layout.Page(ctx)
	require.ErrorIs(t, err, session.ErrNotReady)

	require.Equal(t, session.StateAuthenticated, layout.Mount(ctx, scope.RouteCandidateProfile))
	require.Equal(t, scope.Candidate, layout.Scope())

	pageCtx, err := layout.Page(ctx)
	require.NoError(t, err)

	id, ok := identity.FromContext(pageCtx)
	require.True(t, ok)
	c, ok := id.(*identity.Candidate)
	require.True(t, ok)
	require.Equal(t, 7, c.CandID)
	require.Equal(t, "Sam Lee", c.FullName())
	require.Equal(t, "sam@example.com", c.Email)

	name, ok := f.store.DisplayName(scope.Candidate)
	require.True(t, ok)
	require.Equal(t, "Sam Lee", name)
	require.Equal(t, []string{scope.RouteCandidateProfile}, history.Entries())
}

func TestLayout_NoTokenRedirectsWithoutNetwork(t *testing.T) {
	f := setupTestFixture(t, defaultRoutes())
	history := session.NewHistory(scope.RouteRecruiterDashboard)
	layout := session.NewLayout(f.store, f.verifier, history)

	require.Equal(t, session.StateUnauthenticated, layout.Mount(context.Background(), scope.RouteRecruiterDashboard))
	require.Zero(t, f.backend.hitCount())
	require.Equal(t, scope.RouteRecruiterLogin, history.Current())

	_, err := layout.Page(context.Background())
	require.ErrorIs(t, err, session.ErrUnauthenticated)
}

func TestLayout_RejectedTokenIsCleared(t *testing.T) {
	f := setupTestFixture(t, defaultRoutes())
	require.NoError(t, f.store.SetToken(scope.Recruiter, "revoked"))
	require.NoError(t, f.store.SetDisplayName(scope.Recruiter, "Old Name"))
	require.NoError(t, f.store.SetToken(scope.Candidate, "cand-tok"))

	history := session.NewHistory(scope.RouteRecruiterDashboard)
	layout := session.NewLayout(f.store, f.verifier, history)

	require.Equal(t, session.StateUnauthenticated, layout.Mount(context.Background(), scope.RouteRecruiterDashboard))

	_, ok := f.store.Token(scope.Recruiter)
	require.False(t, ok)
	_, ok = f.store.DisplayName(scope.Recruiter)
	require.False(t, ok)
	_, ok = f.store.Token(scope.Candidate)
	require.True(t, ok)
	require.Equal(t, []string{scope.RouteRecruiterLogin}, history.Entries())
}

func TestLayout_AdminPath(t *testing.T) {
	f := setupTestFixture(t, defaultRoutes())
	require.NoError(t, f.store.SetToken(scope.Admin, "admin-tok"))
	layout := session.NewLayout(f.store, f.verifier, session.NewHistory(scope.RouteAdminPortal))

	require.Equal(t, session.StateAuthenticated, layout.Mount(context.Background(), scope.RouteAdminPortal))
	require.Equal(t, scope.Admin, layout.Scope())

	_, ok := f.store.DisplayName(scope.Admin)
	require.False(t, ok, "admin keeps no display cache")
}

func TestLayout_Logout(t *testing.T) {
	tests := []struct {
		path   string
		scope  scope.Scope
		token  string
		target string
	}{
		{path: scope.RouteCandidateProfile, scope: scope.Candidate, token: "cand-tok", target: scope.RouteHome},
		{path: scope.RouteRecruiterDashboard, scope: scope.Recruiter, token: "hr-tok", target: scope.RouteRecruiterLogin},
		{path: scope.RouteAdminPortal, scope: scope.Admin, token: "admin-tok", target: scope.RouteAdminLogin},
	}

	for _, tt := range tests {
		t.Run(tt.scope.String(), func(t *testing.T) {
			f := setupTestFixture(t, defaultRoutes())
			for _, s := range scope.All {
				require.NoError(t, f.store.SetToken(s, "keep-"+s.String()))
			}
			require.NoError(t, f.store.SetToken(tt.scope, tt.token))

			history := session.NewHistory(tt.path)
			layout := session.NewLayout(f.store, f.verifier, history)
			require.Equal(t, session.StateAuthenticated, layout.Mount(context.Background(), tt.path))

			require.NoError(t, layout.Logout())
			_, ok := f.store.Token(tt.scope)
			require.False(t, ok)

			require.NoError(t, layout.Logout())
			_, ok = f.store.Token(tt.scope)
			require.False(t, ok)

			for _, s := range scope.All {
				if s == tt.scope {
					continue
				}
				_, ok := f.store.Token(s)
				require.True(t, ok, "%s token survives", s)
			}

			require.Equal(t, tt.target, history.Current())
			_, err := layout.Page(context.Background())
			require.ErrorIs(t, err, session.ErrUnauthenticated)
		})
	}
}

func TestLayout_LogoutDuringCheck(t *testing.T) {
	f := setupTestFixture(t, defaultRoutes())
	require.NoError(t, f.store.SetToken(scope.Candidate, "cand-tok"))
	verifier := newBlockingVerifier(&identity.Candidate{CandID: 7, FirstName: "Sam", LastName: "Lee"}, nil)
	history := session.NewHistory(scope.RouteCandidateProfile)
	layout := session.NewLayout(f.store, verifier, history)

	done := make(chan session.State, 1)
	go func() { done <- layout.Mount(context.Background(), scope.RouteCandidateProfile) }()

	<-verifier.started
	require.NoError(t, layout.Logout())
	close(verifier.release)

	require.Equal(t, session.StateUnauthenticated, <-done)
	require.Equal(t, session.StateUnauthenticated, layout.State())

	_, ok := f.store.Token(scope.Candidate)
	require.False(t, ok)
	_, ok = f.store.DisplayName(scope.Candidate)
	require.False(t, ok)

	_, err := layout.Page(context.Background())
	require.ErrorIs(t, err, session.ErrUnauthenticated)
	require.Equal(t, scope.RouteHome, history.Current())
}

func TestLayout_LogoutBeforeMount(t *testing.T) {
	f := setupTestFixture(t, defaultRoutes())
	layout := session.NewLayout(f.store, f.verifier, session.NewHistory(scope.RouteHome))

	require.ErrorIs(t, layout.Logout(), session.ErrNotReady)
}

func TestLogoutAll(t *testing.T) {
	f := setupTestFixture(t, defaultRoutes())
	for _, s := range scope.All {
		require.NoError(t, f.store.SetToken(s, "t-"+s.String()))
	}
	require.NoError(t, f.store.SetDisplayName(scope.Candidate, "Sam"))
	history := session.NewHistory(scope.RouteCandidateProfile)

	require.NoError(t, session.LogoutAll(f.store, history))
	require.NoError(t, session.LogoutAll(f.store, history))

	for _, s := range scope.All {
		_, ok := f.store.Token(s)
		require.False(t, ok)
	}
	_, ok := f.store.DisplayName(scope.Candidate)
	require.False(t, ok)
	require.Equal(t, scope.RouteHome, history.Current())
}
