package scope

import (
	"fmt"
	"strings"
)

// Scope is the unit of credential isolation. A token stored for one scope is
// never attached to a request made for another.
type Scope string

const (
	Candidate Scope = "candidate"
	Recruiter Scope = "recruiter"
	Admin     Scope = "admin"
)

// All lists every scope in a fixed order.
var All = []Scope{Candidate, Recruiter, Admin}

// Storage keys for credentials and the display cache.
const (
	KeyCandidateToken = "token"
	KeyRecruiterToken = "hr_token"
	KeyAdminToken     = "admin_token"

	KeyCandidateName = "candidate_name"
	KeyRecruiterName = "hr_name"
)

// Descriptor holds everything that differs between scopes.
type Descriptor struct {
	Scope         Scope
	TokenKey      string // credential store key for the bearer token
	NameKey       string // display-name cache key, empty when the scope has none
	LoginEndpoint string // backend path that issues tokens
	MeEndpoint    string // backend "who am I" path
	LoginPage     string // where unauthenticated sessions are sent
	LogoutTarget  string // where an explicit logout lands
	LandingPage   string // first page after a successful login
}

var descriptors = map[Scope]Descriptor{
	Candidate: {
		Scope:         Candidate,
		TokenKey:      KeyCandidateToken,
		NameKey:       KeyCandidateName,
		LoginEndpoint: "/candidates/login",
		MeEndpoint:    "/candidates/me",
		LoginPage:     RouteCandidateLogin,
		LogoutTarget:  RouteHome,
		LandingPage:   RouteCandidateProfile,
	},
	Recruiter: {
		Scope:         Recruiter,
		TokenKey:      KeyRecruiterToken,
		NameKey:       KeyRecruiterName,
		LoginEndpoint: "/hr/login",
		MeEndpoint:    "/hr/me",
		LoginPage:     RouteRecruiterLogin,
		LogoutTarget:  RouteRecruiterLogin,
		LandingPage:   RouteRecruiterDashboard,
	},
	Admin: {
		Scope:         Admin,
		TokenKey:      KeyAdminToken,
		LoginEndpoint: "/api/admin/login",
		MeEndpoint:    "/api/admin/me",
		LoginPage:     RouteAdminLogin,
		LogoutTarget:  RouteAdminLogin,
		LandingPage:   RouteAdminPortal,
	},
}

// Describe returns the descriptor for s. It panics on an unknown scope since
// scopes are a closed set.
func (s Scope) Describe() Descriptor {
	d, ok := descriptors[s]
	if !ok {
		panic(fmt.Sprintf("scope: unknown scope %q", string(s)))
	}
	return d
}

// Valid reports whether s is one of the known scopes.
func (s Scope) Valid() bool {
	_, ok := descriptors[s]
	return ok
}

func (s Scope) String() string {
	return string(s)
}

// Parse accepts the canonical names plus "hr" for the recruiter scope.
func Parse(value string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "candidate":
		return Candidate, nil
	case "recruiter", "hr":
		return Recruiter, nil
	case "admin":
		return Admin, nil
	}
	return "", fmt.Errorf("unknown scope %q (want candidate, recruiter or admin)", value)
}

// Infer maps a portal path onto the scope that owns it. Public pages and the
// scope login pages themselves are reported as unscoped.
func Infer(path string) (Scope, bool) {
	switch path {
	case RouteCandidateLogin, RouteCandidateSignup, RouteCandidateForgotPassword,
		RouteRecruiterLogin, RouteRecruiterForgotPassword, RouteAdminLogin:
		return "", false
	}
	switch {
	case hasSegmentPrefix(path, RouteAdminPortal):
		return Admin, true
	case hasSegmentPrefix(path, "/admin"):
		return Admin, true
	case hasSegmentPrefix(path, "/recruiter"):
		return Recruiter, true
	case hasSegmentPrefix(path, "/candidate"):
		return Candidate, true
	}
	return "", false
}

// InferDashboard applies the dashboard layout rule: recruiter pages are
// recognised by prefix and everything else under the layout is a candidate
// page.
func InferDashboard(path string) Scope {
	if strings.HasPrefix(path, "/recruiter") {
		return Recruiter
	}
	return Candidate
}

func hasSegmentPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	rest := path[len(prefix):]
	return rest == "" || rest[0] == '/' || rest[0] == '?'
}
