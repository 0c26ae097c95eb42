package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hostelworks/hostel-dashboard/hostelapi"
)

type waitingListPage struct {
	basePage
	Entries []hostelapi.WaitingListEntry
}

func (s *Server) WaitingListPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, fetchedAt, errMsg := s.pollers.WaitingList.Snapshot()
		s.renderPage(w, "waiting_list.html", waitingListPage{
			basePage: s.newBasePage(r, "Waiting List", errMsg, fetchedAt),
			Entries:  entries,
		})
	}
}

type waitingListForm struct {
	StudentName string `validate:"required"`
	Phone       string `validate:"required"`
}

// WaitingListAddHandler registers a prospective student, then re-fetches
// the list and signals the bus so the dashboard count updates.
func (s *Server) WaitingListAddHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := waitingListForm{
			StudentName: r.FormValue("student_name"),
			Phone:       r.FormValue("phone"),
		}
		if err := s.validate.Struct(form); err != nil {
			s.redirectWithError(w, r, RouteWaitingList, "Name and phone are required")
			return
		}

		entry := hostelapi.NewWaitingListEntry{
			StudentName: form.StudentName,
			Phone:       form.Phone,
			JoinDate:    time.Now().Format("2006-01-02"),
		}

		if err := s.api.AddToWaitingList(r.Context(), entry); err != nil {
			log.Debug().Err(err).Msg("waiting list add failed")
			s.redirectWithError(w, r, RouteWaitingList, err.Error())
			return
		}

		s.pollers.WaitingList.Kick()
		s.bus.Trigger()
		http.Redirect(w, r, RouteWaitingList, http.StatusSeeOther)
	}
}
