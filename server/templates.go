package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hostelworks/hostel-dashboard/nav"
	"github.com/hostelworks/hostel-dashboard/session"
)

//go:embed templates/*
var templateFiles embed.FS

// Pages rendered inside the layout (sidebar + top bar). login and loading
// render standalone.
var layoutPages = []string{
	"admin_dashboard.html",
	"student_dashboard.html",
	"rooms.html",
	"payments.html",
	"complaints.html",
	"maintenance.html",
	"menu.html",
	"waiting_list.html",
	"room_changes.html",
	"announcements.html",
}

var standalonePages = []string{
	"login.html",
	"loading.html",
}

func (s *Server) parseTemplates() error {
	subFS, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		return fmt.Errorf("templates sub filesystem: %w", err)
	}

	s.templates = make(map[string]*template.Template)
	for _, name := range layoutPages {
		tmpl, err := template.New("layout.html").ParseFS(subFS, "layout.html", name)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		s.templates[name] = tmpl
	}
	for _, name := range standalonePages {
		tmpl, err := template.New(name).ParseFS(subFS, name)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		s.templates[name] = tmpl
	}
	return nil
}

// basePage carries what every layout page needs; page structs embed it.
type basePage struct {
	Title     string
	Identity  session.Identity
	Menu      []nav.Item
	Active    string
	Error     string
	FetchedAt time.Time
}

func (s *Server) newBasePage(r *http.Request, title, fetchErr string, fetchedAt time.Time) basePage {
	identity := identityFrom(r)
	errMsg := fetchErr
	if qerr := r.URL.Query().Get("error"); qerr != "" {
		errMsg = qerr
	}
	return basePage{
		Title:     title,
		Identity:  identity,
		Menu:      nav.MenuFor(identity.Role),
		Active:    r.URL.Path,
		Error:     errMsg,
		FetchedAt: fetchedAt,
	}
}

// renderPage executes a layout page. Render errors surface as a 500
// rather than a half-written body.
func (s *Server) renderPage(w http.ResponseWriter, name string, data any) {
	tmpl, ok := s.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		log.Err(err).Str("template", name).Msg("failed to render page")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	buf.WriteTo(w)
}

func (s *Server) renderStandalone(w http.ResponseWriter, name string, data any) {
	tmpl, ok := s.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Err(err).Str("template", name).Msg("failed to render page")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	buf.WriteTo(w)
}

// renderLoading shows the neutral waiting view served while the session
// store is still restoring; it refreshes itself until the store is ready.
func (s *Server) renderLoading(w http.ResponseWriter) {
	s.renderStandalone(w, "loading.html", nil)
}
