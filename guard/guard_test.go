package guard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hostelworks/hostel-dashboard/guard"
	"github.com/hostelworks/hostel-dashboard/session"
)

func TestEvaluate(t *testing.T) {
	admin := &session.Identity{ID: "1", Role: session.RoleAdmin}
	student := &session.Identity{ID: "2", Role: session.RoleStudent}

	tests := []struct {
		name         string
		ready        bool
		identity     *session.Identity
		requiredRole session.Role
		want         guard.Decision
	}{
		{"not ready never redirects", false, nil, session.RoleAdmin, guard.DecisionLoading},
		{"not ready even with identity", false, admin, "", guard.DecisionLoading},
		{"no identity goes to sign-in", true, nil, "", guard.DecisionSignIn},
		{"no identity on role view goes to sign-in", true, nil, session.RoleAdmin, guard.DecisionSignIn},
		{"matching role renders", true, admin, session.RoleAdmin, guard.DecisionRender},
		{"wrong role goes home not sign-in", true, student, session.RoleAdmin, guard.DecisionHome},
		{"wrong role other direction", true, admin, session.RoleStudent, guard.DecisionHome},
		{"no required role renders for admin", true, admin, "", guard.DecisionRender},
		{"no required role renders for student", true, student, "", guard.DecisionRender},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, guard.Evaluate(tc.ready, tc.identity, tc.requiredRole))
		})
	}
}

func TestHomePathPerRole(t *testing.T) {
	require.Equal(t, "/admin", session.RoleAdmin.HomePath())
	require.Equal(t, "/student", session.RoleStudent.HomePath())
}
