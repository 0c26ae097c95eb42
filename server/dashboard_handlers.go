package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hostelworks/hostel-dashboard/hostelapi"
)

type adminDashboardPage struct {
	basePage
	Stats         hostelapi.AdminStats
	Announcements []hostelapi.Announcement
}

// AdminDashboardHandler renders the admin summary from the stats poller's
// latest snapshot.
func (s *Server) AdminDashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, fetchedAt, errMsg := s.pollers.AdminStats.Snapshot()
		announcements, _, _ := s.pollers.Announcements.Snapshot()

		s.renderPage(w, "admin_dashboard.html", adminDashboardPage{
			basePage:      s.newBasePage(r, "Dashboard", errMsg, fetchedAt),
			Stats:         stats,
			Announcements: announcements,
		})
	}
}

type studentDashboardPage struct {
	basePage
	Summary       hostelapi.StudentSummary
	Announcements []hostelapi.Announcement
}

// StudentDashboardHandler renders the per-student summary. The data is
// scoped to the signed-in student, so it is fetched per request rather
// than from a process-wide poller.
func (s *Server) StudentDashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := identityFrom(r)

		var errMsg string
		fetchedAt := time.Now()
		summary, err := s.api.StudentDashboard(r.Context(), identity.ID)
		if err != nil {
			log.Debug().Err(err).Str("student_id", identity.ID).Str("session_id", sessionIDFrom(r)).Msg("student dashboard fetch failed")
			errMsg = err.Error()
			fetchedAt = time.Time{}
		}
		announcements, _, _ := s.pollers.Announcements.Snapshot()

		s.renderPage(w, "student_dashboard.html", studentDashboardPage{
			basePage:      s.newBasePage(r, "Dashboard", errMsg, fetchedAt),
			Summary:       summary,
			Announcements: announcements,
		})
	}
}
