package server

import (
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/hostelworks/hostel-dashboard/session"
)

// LoginPageData contains data for rendering the login page
type LoginPageData struct {
	AppName string
	Error   string
	Email   string // Preserve email on error
}

// IndexHandler sends an authenticated visitor to their role's home and
// everyone else to sign-in.
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sid, ok := s.sessionIDFromRequest(r); ok {
			if identity, found := s.store.Get(sid); found {
				http.Redirect(w, r, identity.Role.HomePath(), http.StatusSeeOther)
				return
			}
		}
		http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
	}
}

// LoginPageHandler displays the login page (GET /login). An already
// authenticated visitor is sent home instead of seeing the form again.
func (s *Server) LoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sid, ok := s.sessionIDFromRequest(r); ok {
			if identity, found := s.store.Get(sid); found {
				http.Redirect(w, r, identity.Role.HomePath(), http.StatusSeeOther)
				return
			}
		}

		data := LoginPageData{
			AppName: s.config.GetAppName(),
			Error:   r.URL.Query().Get("error"),
			Email:   r.URL.Query().Get("email"),
		}
		s.renderStandalone(w, "login.html", data)
	}
}

type loginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
	UserType string `validate:"required,oneof=admin student"`
}

// LoginSubmissionHandler processes the login form submission
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.loginLimiter.allow(clientIP(r)) {
			s.redirectLoginError(w, r, "Too many attempts, try again shortly", "")
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := loginForm{
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
			UserType: r.FormValue("userType"),
		}
		if form.UserType == "" {
			form.UserType = string(session.RoleStudent)
		}
		if err := s.validate.Struct(form); err != nil {
			s.redirectLoginError(w, r, "Email and password are required", form.Email)
			return
		}

		identity, err := s.api.Login(r.Context(), form.Email, form.Password, session.Role(form.UserType))
		if err != nil {
			log.Debug().Err(err).Str("email", form.Email).Msg("login rejected")
			s.redirectLoginError(w, r, "Invalid email or password", form.Email)
			return
		}

		sessionID, err := s.store.Login(r.Context(), identity)
		if err != nil {
			s.redirectLoginError(w, r, "Login failed", form.Email)
			return
		}

		signed, err := s.signSessionCookie(sessionID)
		if err != nil {
			log.Err(err).Msg("failed to sign session cookie")
			s.store.Logout(r.Context(), sessionID)
			s.redirectLoginError(w, r, "Login failed", form.Email)
			return
		}

		s.setSessionCookie(w, signed)
		http.Redirect(w, r, identity.Role.HomePath(), http.StatusSeeOther)
	}
}

// LogoutHandler clears the session and forces navigation to sign-in. It is
// unconditional: a missing or garbled cookie still lands on the login page.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sid, ok := s.sessionIDFromRequest(r); ok {
			s.store.Logout(r.Context(), sid)
		}
		s.clearSessionCookie(w)
		http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
	}
}

func (s *Server) redirectLoginError(w http.ResponseWriter, r *http.Request, message, email string) {
	query := url.Values{}
	query.Set("error", message)
	if email != "" {
		query.Set("email", email)
	}
	http.Redirect(w, r, RouteLogin+"?"+query.Encode(), http.StatusSeeOther)
}
