// Package nav derives the menu for the current role. The derivation is
// pure and stateless; nothing is cached across role changes.
package nav

import "github.com/hostelworks/hostel-dashboard/session"

type Item struct {
	Name string
	Path string
}

var adminMenu = []Item{
	{Name: "Dashboard", Path: "/admin"},
	{Name: "Rooms", Path: "/rooms"},
	{Name: "Payments", Path: "/payments"},
	{Name: "Complaints", Path: "/complaints"},
	{Name: "Maintenance", Path: "/maintenance"},
	{Name: "Menu", Path: "/menu"},
	{Name: "Waiting List", Path: "/waiting-list"},
	{Name: "Room Changes", Path: "/room-change-requests"},
	{Name: "Announcements", Path: "/announcements"},
}

var studentMenu = []Item{
	{Name: "Dashboard", Path: "/student"},
	{Name: "Rooms", Path: "/rooms"},
	{Name: "Complaints", Path: "/complaints"},
	{Name: "Maintenance", Path: "/maintenance"},
	{Name: "Menu", Path: "/menu"},
	{Name: "Room Changes", Path: "/room-change-requests"},
	{Name: "Announcements", Path: "/announcements"},
}

// MenuFor returns the menu entries for a role. Admin sees the full
// operational menu; students see the subset they may reach.
func MenuFor(role session.Role) []Item {
	var src []Item
	if role == session.RoleAdmin {
		src = adminMenu
	} else {
		src = studentMenu
	}
	out := make([]Item, len(src))
	copy(out, src)
	return out
}
