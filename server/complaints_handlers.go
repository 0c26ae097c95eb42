package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hostelworks/hostel-dashboard/hostelapi"
	"github.com/hostelworks/hostel-dashboard/session"
)

type complaintsPage struct {
	basePage
	Complaints []hostelapi.Complaint
	IsAdmin    bool
}

// ComplaintsPageHandler shows all complaints to admins (from the shared
// poller) and a student's own complaints to students (fetched per
// request, the per-identity slice cannot be cached process-wide).
func (s *Server) ComplaintsPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := identityFrom(r)

		if identity.Role == session.RoleAdmin {
			complaints, fetchedAt, errMsg := s.pollers.Complaints.Snapshot()
			s.renderPage(w, "complaints.html", complaintsPage{
				basePage:   s.newBasePage(r, "Complaints", errMsg, fetchedAt),
				Complaints: complaints,
				IsAdmin:    true,
			})
			return
		}

		var errMsg string
		fetchedAt := time.Now()
		complaints, err := s.api.Complaints(r.Context(), identity.ID)
		if err != nil {
			log.Debug().Err(err).Str("student_id", identity.ID).Msg("complaints fetch failed")
			errMsg = err.Error()
			fetchedAt = time.Time{}
		}
		s.renderPage(w, "complaints.html", complaintsPage{
			basePage:   s.newBasePage(r, "Complaints", errMsg, fetchedAt),
			Complaints: complaints,
		})
	}
}

type complaintForm struct {
	ComplaintType string `validate:"required"`
	Description   string `validate:"required,min=5"`
}

// ComplaintCreateHandler submits a new complaint for the signed-in
// student, then re-fetches and signals the bus.
func (s *Server) ComplaintCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := identityFrom(r)
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := complaintForm{
			ComplaintType: r.FormValue("complaint_type"),
			Description:   r.FormValue("description"),
		}
		if err := s.validate.Struct(form); err != nil {
			s.redirectWithError(w, r, RouteComplaints, "Complaint type and a short description are required")
			return
		}

		studentID, _ := strconv.Atoi(identity.ID)
		roomID, _ := strconv.Atoi(identity.RoomID)
		complaint := hostelapi.NewComplaint{
			StudentID:     studentID,
			RoomID:        roomID,
			ComplaintType: form.ComplaintType,
			Description:   form.Description,
		}

		if err := s.api.CreateComplaint(r.Context(), complaint); err != nil {
			log.Debug().Err(err).Str("student_id", identity.ID).Msg("complaint create failed")
			s.redirectWithError(w, r, RouteComplaints, err.Error())
			return
		}

		s.pollers.Complaints.Kick()
		s.bus.Trigger()
		http.Redirect(w, r, RouteComplaints, http.StatusSeeOther)
	}
}

// ComplaintStatusHandler moves a complaint along
// Pending -> In Progress -> Resolved.
func (s *Server) ComplaintStatusHandler() http.HandlerFunc {
	valid := map[string]bool{
		hostelapi.StatusPending:    true,
		hostelapi.StatusInProgress: true,
		hostelapi.StatusResolved:   true,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		complaintID := r.PathValue("id")
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		status := r.FormValue("status")
		if !valid[status] {
			s.redirectWithError(w, r, RouteComplaints, "Unknown complaint status")
			return
		}

		if err := s.api.UpdateComplaint(r.Context(), complaintID, status); err != nil {
			log.Debug().Err(err).Str("complaint_id", complaintID).Msg("complaint update failed")
			s.redirectWithError(w, r, RouteComplaints, err.Error())
			return
		}

		s.pollers.Complaints.Kick()
		s.bus.Trigger()
		http.Redirect(w, r, RouteComplaints, http.StatusSeeOther)
	}
}
