package scope_test

import (
	"testing"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
	"github.com/stretchr/testify/require"
)

func TestInfer(t *testing.T) {
	cases := map[string]struct {
		want   scope.Scope
		scoped bool
	}{
		"/candidate/profile":                        {scope.Candidate, true},
		"/candidate/job-board":                      {scope.Candidate, true},
		"/recruiter/dashboard":                      {scope.Recruiter, true},
		"/recruiter/applicants?job=3":               {scope.Recruiter, true},
		"/system-admin-portal-2024":                 {scope.Admin, true},
		"/system-admin-portal-2024/user-management": {scope.Admin, true},
		"/admin":                {scope.Admin, true},
		"/candidate/login":      {"", false},
		"/candidate/signup":     {"", false},
		"/recruiter/login":      {"", false},
		"/admin/login":          {"", false},
		"/":                     {"", false},
		"/careers":              {"", false},
		"/candidates-are-great": {"", false},
		"/administrator":        {"", false},
	}

	for path, tc := range cases {
		t.Run(path, func(t *testing.T) {
			got, ok := scope.Infer(path)
			require.Equal(t, tc.scoped, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestInferDashboard(t *testing.T) {
	require.Equal(t, scope.Recruiter, scope.InferDashboard("/recruiter/post-job"))
	require.Equal(t, scope.Candidate, scope.InferDashboard("/candidate/settings"))
	require.Equal(t, scope.Candidate, scope.InferDashboard("/anything"))
}

func TestParse(t *testing.T) {
	t.Run("aliases", func(t *testing.T) {
		s, err := scope.Parse("HR")
		require.NoError(t, err)
		require.Equal(t, scope.Recruiter, s)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := scope.Parse("guest")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown scope")
	})
}

func TestDescriptorsAreDistinct(t *testing.T) {
	keys := map[string]scope.Scope{}
	for _, s := range scope.All {
		d := s.Describe()
		require.Equal(t, s, d.Scope)
		require.NotEmpty(t, d.TokenKey)
		require.NotEmpty(t, d.MeEndpoint)
		require.NotEmpty(t, d.LoginPage)

		other, dup := keys[d.TokenKey]
		require.Falsef(t, dup, "token key %q shared by %s and %s", d.TokenKey, s, other)
		keys[d.TokenKey] = s
	}

	require.Equal(t, "token", scope.Candidate.Describe().TokenKey)
	require.Equal(t, "hr_token", scope.Recruiter.Describe().TokenKey)
	require.Equal(t, "admin_token", scope.Admin.Describe().TokenKey)
	require.Equal(t, scope.RouteHome, scope.Candidate.Describe().LogoutTarget)
}

func TestDescribeUnknownPanics(t *testing.T) {
	require.Panics(t, func() { scope.Scope("guest").Describe() })
}
