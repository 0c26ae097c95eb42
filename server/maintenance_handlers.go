package server

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/hostelworks/hostel-dashboard/hostelapi"
	"github.com/hostelworks/hostel-dashboard/session"
)

type maintenancePage struct {
	basePage
	Requests []hostelapi.MaintenanceRequest
	IsAdmin  bool
}

func (s *Server) MaintenancePageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := identityFrom(r)
		requests, fetchedAt, errMsg := s.pollers.Maintenance.Snapshot()
		s.renderPage(w, "maintenance.html", maintenancePage{
			basePage: s.newBasePage(r, "Maintenance", errMsg, fetchedAt),
			Requests: requests,
			IsAdmin:  identity.Role == session.RoleAdmin,
		})
	}
}

type maintenanceForm struct {
	Category    string `validate:"required"`
	Description string `validate:"required,min=5"`
	Priority    string `validate:"omitempty,oneof=Low Medium High"`
}

func (s *Server) MaintenanceCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := identityFrom(r)
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := maintenanceForm{
			Category:    r.FormValue("category"),
			Description: r.FormValue("description"),
			Priority:    r.FormValue("priority"),
		}
		if err := s.validate.Struct(form); err != nil {
			s.redirectWithError(w, r, RouteMaintenance, "Category and a short description are required")
			return
		}
		if form.Priority == "" {
			form.Priority = "Medium"
		}

		studentID, _ := strconv.Atoi(identity.ID)
		roomID, _ := strconv.Atoi(identity.RoomID)
		request := hostelapi.NewMaintenanceRequest{
			StudentID:   studentID,
			RoomID:      roomID,
			Category:    form.Category,
			Description: form.Description,
			Priority:    form.Priority,
		}

		if err := s.api.CreateMaintenance(r.Context(), request); err != nil {
			log.Debug().Err(err).Str("student_id", identity.ID).Msg("maintenance create failed")
			s.redirectWithError(w, r, RouteMaintenance, err.Error())
			return
		}

		s.pollers.Maintenance.Kick()
		s.bus.Trigger()
		http.Redirect(w, r, RouteMaintenance, http.StatusSeeOther)
	}
}
