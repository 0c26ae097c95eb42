package nav_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hostelworks/hostel-dashboard/nav"
	"github.com/hostelworks/hostel-dashboard/session"
)

func TestAdminSeesFullOperationalMenu(t *testing.T) {
	menu := nav.MenuFor(session.RoleAdmin)

	var paths []string
	for _, item := range menu {
		paths = append(paths, item.Path)
	}
	require.Equal(t, []string{"/admin", "/rooms", "/payments", "/complaints", "/maintenance", "/menu", "/waiting-list", "/room-change-requests", "/announcements"}, paths)
}

func TestStudentSeesSubset(t *testing.T) {
	menu := nav.MenuFor(session.RoleStudent)

	var paths []string
	for _, item := range menu {
		paths = append(paths, item.Path)
	}
	require.Equal(t, []string{"/student", "/rooms", "/complaints", "/maintenance", "/menu", "/room-change-requests", "/announcements"}, paths)
	require.NotContains(t, paths, "/payments")
	require.NotContains(t, paths, "/waiting-list")
}

func TestMenuIsACopy(t *testing.T) {
	menu := nav.MenuFor(session.RoleAdmin)
	menu[0].Name = "mutated"
	require.Equal(t, "Dashboard", nav.MenuFor(session.RoleAdmin)[0].Name)
}
