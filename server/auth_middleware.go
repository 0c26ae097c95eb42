package server

import (
	"context"
	"net/http"

	"github.com/hostelworks/hostel-dashboard/guard"
	"github.com/hostelworks/hostel-dashboard/session"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyIdentity stores the authenticated identity
	ContextKeyIdentity ContextKey = "identity"
	// ContextKeySessionID stores the session ID behind the cookie
	ContextKeySessionID ContextKey = "session_id"
)

// RequireSession gates a view on session presence and role match. The
// decision is recomputed per request from the session store:
//   - store still restoring: render the loading view, no redirect
//   - no session: redirect to sign-in
//   - wrong role: redirect to that identity's own home, not sign-in
//   - otherwise: inject the identity and render
//
// An empty requiredRole admits any authenticated identity; used for views
// shared by both roles.
func (s *Server) RequireSession(requiredRole session.Role) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			var identity *session.Identity
			var sessionID string
			if sid, ok := s.sessionIDFromRequest(r); ok {
				if id, found := s.store.Get(sid); found {
					identity = &id
					sessionID = sid
				}
			}

			switch guard.Evaluate(s.store.Ready(), identity, requiredRole) {
			case guard.DecisionLoading:
				s.renderLoading(w)
			case guard.DecisionSignIn:
				http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
			case guard.DecisionHome:
				http.Redirect(w, r, identity.Role.HomePath(), http.StatusSeeOther)
			case guard.DecisionRender:
				ctx := context.WithValue(r.Context(), ContextKeyIdentity, *identity)
				ctx = context.WithValue(ctx, ContextKeySessionID, sessionID)
				next(w, r.WithContext(ctx))
			}
		}
	}
}

// identityFrom returns the identity injected by RequireSession.
func identityFrom(r *http.Request) session.Identity {
	identity, _ := r.Context().Value(ContextKeyIdentity).(session.Identity)
	return identity
}

func sessionIDFrom(r *http.Request) string {
	sessionID, _ := r.Context().Value(ContextKeySessionID).(string)
	return sessionID
}
