package identity_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/identity"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/scope"
	"github.com/stretchr/testify/require"
)

func TestDecodeVariants(t *testing.T) {
	t.Run("candidate", func(t *testing.T) {
		id := identity.New(scope.Candidate)
		body := `{"candid":7,"firstname":"Sam","lastname":"Lee","email":"sam@example.com","skills":"go, sql","dateregistered":"2024-05-01T10:00:00","is_active":true}`
		require.NoError(t, json.Unmarshal([]byte(body), id))

		c, ok := id.(*identity.Candidate)
		require.True(t, ok)
		require.Equal(t, 7, c.ID())
		require.Equal(t, "Sam Lee", c.FullName())
		require.Equal(t, "go, sql", *c.Skills)
		require.Equal(t, scope.Candidate, c.Scope())
		require.Equal(t, 2024, c.DateRegistered.Year())
	})

	t.Run("recruiter", func(t *testing.T) {
		id := identity.New(scope.Recruiter)
		require.NoError(t, json.Unmarshal([]byte(`{"hr_id":3,"firstname":"Ada","lastname":"","email":"ada@corp.io","is_active":true}`), id))
		require.Equal(t, 3, id.ID())
		require.Equal(t, "Ada", id.FullName())
		require.Equal(t, "ada@corp.io", id.EmailAddress())
	})

	t.Run("admin", func(t *testing.T) {
		id := identity.New(scope.Admin)
		require.NoError(t, json.Unmarshal([]byte(`{"adminid":1,"firstname":"Root","lastname":"User","email":"root@x.io","organization":"XCalibr"}`), id))

		switch v := id.(type) {
		case *identity.Admin:
			require.Equal(t, "XCalibr", *v.Organization)
		default:
			t.Fatalf("unexpected variant %T", v)
		}
	})

	t.Run("unknown scope", func(t *testing.T) {
		require.Nil(t, identity.New(scope.Scope("guest")))
	})
}

func TestContext(t *testing.T) {
	_, ok := identity.FromContext(context.Background())
	require.False(t, ok)

	ctx := identity.WithIdentity(context.Background(), &identity.Recruiter{HRID: 9})
	id, ok := identity.FromContext(ctx)
	require.True(t, ok)
	require.Equal(t, 9, id.ID())
}
