package server

import (
	"net/http"

	"github.com/hostelworks/hostel-dashboard/hostelapi"
)

type menuPage struct {
	basePage
	Items []hostelapi.MenuItem
}

func (s *Server) MenuPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, fetchedAt, errMsg := s.pollers.Menu.Snapshot()
		s.renderPage(w, "menu.html", menuPage{
			basePage: s.newBasePage(r, "Menu", errMsg, fetchedAt),
			Items:    items,
		})
	}
}
