package server

import (
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/hostelworks/hostel-dashboard/hostelapi"
)

type paymentsPage struct {
	basePage
	Payments []hostelapi.Payment
}

func (s *Server) PaymentsPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payments, fetchedAt, errMsg := s.pollers.Payments.Snapshot()
		s.renderPage(w, "payments.html", paymentsPage{
			basePage: s.newBasePage(r, "Payments", errMsg, fetchedAt),
			Payments: payments,
		})
	}
}

// PaymentStatusHandler marks a payment paid or unpaid. On success it
// re-fetches the payments view and signals the refresh bus so summary
// dashboards observe the change; on failure displayed data is untouched.
func (s *Server) PaymentStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		paymentID := r.PathValue("id")
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		status := r.FormValue("status")
		if status != hostelapi.PaymentPaid && status != hostelapi.PaymentUnpaid {
			s.redirectWithError(w, r, RoutePayments, "Unknown payment status")
			return
		}

		if err := s.api.UpdatePayment(r.Context(), paymentID, status); err != nil {
			log.Debug().Err(err).Str("payment_id", paymentID).Msg("payment update failed")
			s.redirectWithError(w, r, RoutePayments, err.Error())
			return
		}

		s.pollers.Payments.Kick()
		s.bus.Trigger()
		http.Redirect(w, r, RoutePayments, http.StatusSeeOther)
	}
}

func (s *Server) redirectWithError(w http.ResponseWriter, r *http.Request, path, message string) {
	http.Redirect(w, r, path+"?error="+url.QueryEscape(message), http.StatusSeeOther)
}
