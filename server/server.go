package server

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hostelworks/hostel-dashboard/hostelapi"
	"github.com/hostelworks/hostel-dashboard/internal/config"
	"github.com/hostelworks/hostel-dashboard/refresh"
	"github.com/hostelworks/hostel-dashboard/session"
)

// Server is the dashboard's web shell: it wires the session store, the
// access guard, the refresh bus and the per-view pollers behind role-gated
// HTML routes.
type Server struct {
	env       string // Environment (e.g., "DEV", "production")
	mux       *http.ServeMux
	routes    []string
	config    config.Config
	store     *session.Store
	api       *hostelapi.Client
	bus       *refresh.Bus
	pollers   *Pollers
	validate  *validator.Validate
	templates map[string]*template.Template

	loginLimiter *ipRateLimiter
}

func New(cfg config.Config, store *session.Store, api *hostelapi.Client, bus *refresh.Bus) (*Server, error) {
	s := &Server{
		mux:          http.NewServeMux(),
		config:       cfg,
		store:        store,
		api:          api,
		bus:          bus,
		validate:     validator.New(),
		loginLimiter: newIPRateLimiter(cfg.GetLoginRatePerMinute()/60.0, cfg.GetLoginBurst()),
	}
	s.env = cfg.GetEnv()
	s.pollers = newPollers(api, bus, cfg.GetPollInterval())

	if err := s.parseTemplates(); err != nil {
		return nil, fmt.Errorf("[Server New] failed to parse templates: %w", err)
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

// Start restores persisted sessions and begins polling. Requests arriving
// before restore completes see the neutral loading view, never a redirect.
func (s *Server) Start(ctx context.Context) {
	s.store.Restore(ctx)
	s.pollers.Start(ctx)
}

// Stop halts every poller.
func (s *Server) Stop() {
	s.pollers.Stop()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}
