package server

import (
	"net/http"

	"github.com/hostelworks/hostel-dashboard/hostelapi"
)

type announcementsPage struct {
	basePage
	Announcements []hostelapi.Announcement
}

func (s *Server) AnnouncementsPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		announcements, fetchedAt, errMsg := s.pollers.Announcements.Snapshot()
		s.renderPage(w, "announcements.html", announcementsPage{
			basePage:      s.newBasePage(r, "Announcements", errMsg, fetchedAt),
			Announcements: announcements,
		})
	}
}
