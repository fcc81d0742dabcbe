package session_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/apiclient"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/credentials"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/credentials/repofake"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/identity"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/session"
	"github.com/stretchr/testify/require"
)

const (
	candidateMe = `{"candid":7,"firstname":"Sam","lastname":"Lee","email":"sam@example.com","dateregistered":"2024-05-01T10:00:00","is_active":true}`
	recruiterMe = `{"hr_id":3,"firstname":"Ada","lastname":"King","email":"ada@corp.io","is_active":true}`
	adminMe     = `{"adminid":1,"firstname":"Root","lastname":"User","email":"root@x.io"}`
)

// backend is a fake portal API that counts hits and keeps the last request
// body per path.
type backend struct {
	mu     sync.Mutex
	hits   map[string]int
	bodies map[string][]byte
	srv    *httptest.Server
}

func newBackend(t *testing.T, routes map[string]http.HandlerFunc) *backend {
	t.Helper()

	b := &backend{hits: map[string]int{}, bodies: map[string][]byte{}}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		b.mu.Lock()
		b.hits[r.URL.Path]++
		b.bodies[r.URL.Path] = body
		b.mu.Unlock()

		h, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *backend) hitCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, c := range b.hits {
		n += c
	}
	return n
}

func (b *backend) body(path string) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[path]
}

// authed answers body when the request carries token, 401 otherwise.
func authed(token, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
			return
		}
		_, _ = w.Write([]byte(body))
	}
}

func status(code int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}
}

type testFixture struct {
	backend  *backend
	store    *credentials.Store
	clients  *apiclient.Set
	verifier *session.Verifier
}

func setupTestFixture(t *testing.T, routes map[string]http.HandlerFunc) *testFixture {
	t.Helper()

	b := newBackend(t, routes)
	store := credentials.NewStore(repofake.NewFakeRepo())
	clients, err := apiclient.NewSet(b.srv.URL, store, nil)
	require.NoError(t, err)

	return &testFixture{
		backend:  b,
		store:    store,
		clients:  clients,
		verifier: session.NewVerifier(clients),
	}
}

func defaultRoutes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/candidates/me": authed("cand-tok", candidateMe),
		"/hr/me":         authed("hr-tok", recruiterMe),
		"/api/admin/me":  authed("admin-tok", adminMe),
	}
}

// blockingVerifier holds Verify until released and ignores cancellation, like
// a response that arrives after the view went away.
type blockingVerifier struct {
	started chan struct{}
	release chan struct{}
	id      identity.Identity
	err     error
}

func newBlockingVerifier(id identity.Identity, err error) *blockingVerifier {
	return &blockingVerifier{
		started: make(chan struct{}),
		release: make(chan struct{}),
		id:      id,
		err:     err,
	}
}

func (v *blockingVerifier) Verify(context.Context, scope.Scope) (identity.Identity, error) {
	close(v.started)
	<-v.release
	return v.id, v.err
}

func TestVerifier(t *testing.T) {
	f := setupTestFixture(t, defaultRoutes())
	ctx := context.Background()

	t.Run("resolves each scope", func(t *testing.T) {
		require.NoError(t, f.store.SetToken(scope.Candidate, "cand-tok"))
		require.NoError(t, f.store.SetToken(scope.Recruiter, "hr-tok"))
		require.NoError(t, f.store.SetToken(scope.Admin, "admin-tok"))

		id, err := f.verifier.Verify(ctx, scope.Candidate)
		require.NoError(t, err)
		require.Equal(t, 7, id.(*identity.Candidate).CandID)

		id, err = f.verifier.Verify(ctx, scope.Recruiter)
		require.NoError(t, err)
		require.Equal(t, "Ada King", id.FullName())

		id, err = f.verifier.Verify(ctx, scope.Admin)
		require.NoError(t, err)
		require.Equal(t, scope.Admin, id.Scope())
	})

	t.Run("rejected token is reported not cleared", func(t *testing.T) {
		require.NoError(t, f.store.SetToken(scope.Admin, "stale"))

		_, err := f.verifier.Verify(ctx, scope.Admin)
		require.ErrorIs(t, err, session.ErrUnauthenticated)

		tok, ok := f.store.Token(scope.Admin)
		require.True(t, ok)
		require.Equal(t, "stale", tok)
	})

	t.Run("missing token", func(t *testing.T) {
		require.NoError(t, f.store.ClearAll())

		_, err := f.verifier.Verify(ctx, scope.Recruiter)
		require.ErrorIs(t, err, session.ErrUnauthenticated)
	})

	t.Run("server error and empty body", func(t *testing.T) {
		g := setupTestFixture(t, map[string]http.HandlerFunc{
			"/candidates/me": status(http.StatusInternalServerError, `{"detail":"boom"}`),
			"/hr/me":         status(http.StatusOK, `{}`),
		})
		require.NoError(t, g.store.SetToken(scope.Candidate, "x"))
		require.NoError(t, g.store.SetToken(scope.Recruiter, "y"))

		_, err := g.verifier.Verify(ctx, scope.Candidate)
		require.ErrorIs(t, err, session.ErrUnauthenticated)

		_, err = g.verifier.Verify(ctx, scope.Recruiter)
		require.ErrorIs(t, err, session.ErrUnauthenticated)
	})

	t.Run("unreachable backend", func(t *testing.T) {
		store := credentials.NewStore(repofake.NewFakeRepo())
		require.NoError(t, store.SetToken(scope.Admin, "admin-tok"))
		clients, err := apiclient.NewSet("http://127.0.0.1:1", store, nil)
		require.NoError(t, err)

		_, err = session.NewVerifier(clients).Verify(ctx, scope.Admin)
		require.ErrorIs(t, err, session.ErrUnauthenticated)
	})
}

func TestGuard_NoTokenSkipsNetwork(t *testing.T) {
	f := setupTestFixture(t, defaultRoutes())
	history := session.NewHistory(scope.RouteAdminPortal)
	guard := session.NewGuard(scope.Admin, f.store, f.verifier, history)

	require.Equal(t, session.StateChecking, guard.State())
	require.Equal(t, session.ViewLoading, guard.View())

	state := guard.Mount(context.Background())
	require.Equal(t, session.StateUnauthenticated, state)
	require.Equal(t, session.ViewRedirect, guard.View())
	require.Zero(t, f.backend.hitCount())
	require.Equal(t, []string{scope.RouteAdminLogin}, history.Entries())
}

func TestGuard_RejectedTokenIsCleared(t *testing.T) {
	f := setupTestFixture(t, defaultRoutes())
	require.NoError(t, f.store.SetToken(scope.Admin, "expired"))
	require.NoError(t, f.store.SetToken(scope.Candidate, "cand-tok"))

	history := session.NewHistory(scope.RouteHome)
	history.Navigate(scope.RouteAdminPortal, false)
	guard := session.NewGuard(scope.Admin, f.store, f.verifier, history)

	require.Equal(t, session.StateUnauthenticated, guard.Mount(context.Background()))

	_, ok := f.store.Token(scope.Admin)
	require.False(t, ok)
	_, ok = f.store.Token(scope.Candidate)
	require.True(t, ok, "other scopes keep their tokens")

	require.Equal(t, scope.RouteAdminLogin, history.Current())
	require.Equal(t, scope.RouteHome, history.Back(), "guarded page was replaced")

	_, ok = guard.Identity()
	require.False(t, ok)
}

func TestGuard_Authenticated(t *testing.T) {
	f := setupTestFixture(t, defaultRoutes())
	require.NoError(t, f.store.SetToken(scope.Admin, "admin-tok"))
	history := session.NewHistory(scope.RouteAdminPortal)
	guard := session.NewGuard(scope.Admin, f.store, f.verifier, history)

	ctx := context.Background()
	require.Equal(t, session.StateAuthenticated, guard.Mount(ctx))
	require.Equal(t, session.ViewContent, guard.View())

	id, ok := guard.Identity()
	require.True(t, ok)
	require.Equal(t, "root@x.io", id.EmailAddress())

	t.Run("check runs once per mount", func(t *testing.T) {
		require.Equal(t, session.StateAuthenticated, guard.Mount(ctx))
		require.Equal(t, session.StateAuthenticated, guard.Mount(ctx))
		require.Equal(t, 1, f.backend.hitCount())
		require.Equal(t, []string{scope.RouteAdminPortal}, history.Entries())
	})
}

func TestGuard_LateResultIgnored(t *testing.T) {
	tests := []struct {
		name string
		id   identity.Identity
		err  error
	}{
		{name: "late success", id: &identity.Admin{AdminID: 1, Email: "root@x.io"}},
		{name: "late failure", err: errors.New("401")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := credentials.NewStore(repofake.NewFakeRepo())
			require.NoError(t, store.SetToken(scope.Admin, "admin-tok"))
			history := session.NewHistory(scope.RouteAdminPortal)
			verifier := newBlockingVerifier(tt.id, tt.err)
			guard := session.NewGuard(scope.Admin, store, verifier, history)

			done := make(chan session.State, 1)
			go func() { done <- guard.Mount(context.Background()) }()

			<-verifier.started
			guard.Unmount()
			close(verifier.release)

			require.Equal(t, session.StateChecking, <-done)
			_, ok := guard.Identity()
			require.False(t, ok)

			tok, ok := store.Token(scope.Admin)
			require.True(t, ok)
			require.Equal(t, "admin-tok", tok)
			require.Equal(t, []string{scope.RouteAdminPortal}, history.Entries())
		})
	}
}

func TestGuard_UnmountCancelsRequest(t *testing.T) {
	arrived := make(chan struct{})
	release := make(chan struct{})
	f := setupTestFixture(t, map[string]http.HandlerFunc{
		"/api/admin/me": func(w http.ResponseWriter, r *http.Request) {
			close(arrived)
			select {
			case <-r.Context().Done():
			case <-release:
			}
		},
	})
	t.Cleanup(func() { close(release) })

	require.NoError(t, f.store.SetToken(scope.Admin, "admin-tok"))
	history := session.NewHistory(scope.RouteAdminPortal)
	guard := session.NewGuard(scope.Admin, f.store, f.verifier, history)

	done := make(chan session.State, 1)
	go func() { done <- guard.Mount(context.Background()) }()

	<-arrived
	guard.Unmount()

	require.Equal(t, session.StateChecking, <-done)
	_, ok := f.store.Token(scope.Admin)
	require.True(t, ok)
	require.Equal(t, []string{scope.RouteAdminPortal}, history.Entries())
}

func TestGuard_UnmountBeforeMount(t *testing.T) {
	f := setupTestFixture(t, defaultRoutes())
	history := session.NewHistory(scope.RouteAdminPortal)
	guard := session.NewGuard(scope.Admin, f.store, f.verifier, history)

	guard.Unmount()
	require.Equal(t, session.StateChecking, guard.Mount(context.Background()))
	require.Zero(t, f.backend.hitCount())
	require.Equal(t, []string{scope.RouteAdminPortal}, history.Entries())
}

func TestGuard_NavigatorMayUnmount(t *testing.T) {
	f := setupTestFixture(t, defaultRoutes())

	var (
		guard   *session.Guard
		visited []string
	)
	nav := session.NavigatorFunc(func(path string, replace bool) {
		require.True(t, replace)
		visited = append(visited, path)
		guard.Unmount()
	})
	guard = session.NewGuard(scope.Admin, f.store, f.verifier, nav)

	require.Equal(t, session.StateUnauthenticated, guard.Mount(context.Background()))
	require.Equal(t, []string{scope.RouteAdminLogin}, visited)
}
