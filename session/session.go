package session

import "time"

// Role governs which views are reachable and which menu entries render.
// There are exactly two roles; anything else in a persisted record makes
// the record structurally invalid.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// HomePath is the default view for a role. The access guard sends a
// wrong-role visitor here rather than to sign-in.
func (r Role) HomePath() string {
	if r == RoleAdmin {
		return "/admin"
	}
	return "/student"
}

// Identity is the dashboard's record of who is logged in. It is created
// from the backend's /login response and persisted verbatim.
type Identity struct {
	ID    string `json:"id"`
	Role  Role   `json:"role"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	// RoomID is set for students assigned to a room, empty otherwise.
	RoomID string `json:"room_id,omitempty"`
}

// Valid reports structural validity: an identifier and a recognised role.
// A persisted record failing this check is discarded during Restore.
func (i Identity) Valid() bool {
	return i.ID != "" && i.Role.Valid()
}

// Record is one persisted session: a session ID bound to an identity.
type Record struct {
	SessionID string    `json:"session_id"`
	Identity  Identity  `json:"identity"`
	CreatedAt time.Time `json:"created_at"`
}
