package server

import (
	"net/http"

	"github.com/hostelworks/hostel-dashboard/hostelapi"
)

type roomsPage struct {
	basePage
	Rooms []hostelapi.Room
}

func (s *Server) RoomsPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rooms, fetchedAt, errMsg := s.pollers.Rooms.Snapshot()
		s.renderPage(w, "rooms.html", roomsPage{
			basePage: s.newBasePage(r, "Rooms", errMsg, fetchedAt),
			Rooms:    rooms,
		})
	}
}
