// Package guard decides, per navigation, whether a requested view may
// render. The decision is pure and recomputed on every request from the
// session store's current state; nothing here is persisted.
package guard

import "github.com/hostelworks/hostel-dashboard/session"

type Decision int

const (
	// DecisionLoading: the session store has not finished restoring.
	// Render a neutral waiting indicator; never redirect yet.
	DecisionLoading Decision = iota
	// DecisionSignIn: restore is done and there is no identity.
	DecisionSignIn
	// DecisionHome: authenticated but the wrong role for this view.
	// Wrong-role access means "go to where you belong", not an error.
	DecisionHome
	// DecisionRender: the view may render.
	DecisionRender
)

func (d Decision) String() string {
	switch d {
	case DecisionLoading:
		return "loading"
	case DecisionSignIn:
		return "sign-in"
	case DecisionHome:
		return "home"
	case DecisionRender:
		return "render"
	}
	return "unknown"
}

// Evaluate computes the access decision for a view. requiredRole may be
// empty, in which case any authenticated identity may render the view.
func Evaluate(ready bool, identity *session.Identity, requiredRole session.Role) Decision {
	if !ready {
		return DecisionLoading
	}
	if identity == nil {
		return DecisionSignIn
	}
	if requiredRole != "" && identity.Role != requiredRole {
		return DecisionHome
	}
	return DecisionRender
}
