package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/hostelworks/hostel-dashboard/hostelapi"
	"github.com/hostelworks/hostel-dashboard/session"
)

type roomChangesPage struct {
	basePage
	Requests       []hostelapi.RoomChangeRequest
	AvailableRooms []hostelapi.Room
	IsAdmin        bool
}

// RoomChangesPageHandler lists pending room change requests. Students
// additionally see the rooms with free capacity to request.
func (s *Server) RoomChangesPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := identityFrom(r)
		requests, fetchedAt, errMsg := s.pollers.RoomChanges.Snapshot()

		page := roomChangesPage{
			basePage: s.newBasePage(r, "Room Changes", errMsg, fetchedAt),
			Requests: requests,
			IsAdmin:  identity.Role == session.RoleAdmin,
		}
		if identity.Role == session.RoleStudent {
			available, err := s.api.AvailableRooms(r.Context())
			if err != nil {
				log.Debug().Err(err).Msg("available rooms fetch failed")
			} else {
				page.AvailableRooms = available
			}
		}
		s.renderPage(w, "room_changes.html", page)
	}
}

type roomChangeForm struct {
	RequestedRoom string `validate:"required,numeric"`
	Reason        string `validate:"required,min=5"`
}

func (s *Server) RoomChangeCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := identityFrom(r)
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := roomChangeForm{
			RequestedRoom: r.FormValue("requested_room"),
			Reason:        r.FormValue("reason"),
		}
		if err := s.validate.Struct(form); err != nil {
			s.redirectWithError(w, r, RouteRoomChanges, "A requested room and a reason are required")
			return
		}

		studentID, _ := strconv.Atoi(identity.ID)
		currentRoom, _ := strconv.Atoi(identity.RoomID)
		requestedRoom, _ := strconv.Atoi(form.RequestedRoom)
		request := hostelapi.NewRoomChangeRequest{
			StudentID:     studentID,
			CurrentRoom:   currentRoom,
			RequestedRoom: requestedRoom,
			Reason:        form.Reason,
		}

		if err := s.api.CreateRoomChangeRequest(r.Context(), request); err != nil {
			log.Debug().Err(err).Str("student_id", identity.ID).Msg("room change create failed")
			s.redirectWithError(w, r, RouteRoomChanges, err.Error())
			return
		}

		s.pollers.RoomChanges.Kick()
		s.bus.Trigger()
		http.Redirect(w, r, RouteRoomChanges, http.StatusSeeOther)
	}
}

// RoomChangeApproveHandler resolves a request in the student's favour.
// Room occupancy moves server-side; this layer only re-fetches.
func (s *Server) RoomChangeApproveHandler() http.HandlerFunc {
	return s.resolveRoomChange(s.api.ApproveRoomChangeRequest, "approve")
}

func (s *Server) RoomChangeDenyHandler() http.HandlerFunc {
	return s.resolveRoomChange(s.api.DenyRoomChangeRequest, "deny")
}

func (s *Server) resolveRoomChange(resolve func(ctx context.Context, id string) error, action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.PathValue("id")
		if err := resolve(r.Context(), requestID); err != nil {
			log.Debug().Err(err).Str("request_id", requestID).Str("action", action).Msg("room change resolve failed")
			s.redirectWithError(w, r, RouteRoomChanges, err.Error())
			return
		}

		s.pollers.RoomChanges.Kick()
		s.pollers.Rooms.Kick()
		s.bus.Trigger()
		http.Redirect(w, r, RouteRoomChanges, http.StatusSeeOther)
	}
}
