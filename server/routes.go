package server

import (
	"net/http"

	"github.com/hostelworks/hostel-dashboard/session"
)

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET /{$}", s.IndexHandler())

	// LOGIN / LOGOUT
	s.RegisterRouteFunc("GET "+RouteLogin, s.LoginPageHandler())
	s.RegisterRouteFunc("POST "+RouteAuthLogin, s.LoginSubmissionHandler())
	s.RegisterRouteFunc("GET "+RouteAuthLogout, s.LogoutHandler())

	// Admin-only views
	s.registerGuarded("GET "+RouteAdminDashboard, s.AdminDashboardHandler(), session.RoleAdmin)
	s.registerGuarded("GET "+RoutePayments, s.PaymentsPageHandler(), session.RoleAdmin)
	s.registerGuarded("POST "+RoutePaymentStatus, s.PaymentStatusHandler(), session.RoleAdmin)
	s.registerGuarded("GET "+RouteWaitingList, s.WaitingListPageHandler(), session.RoleAdmin)
	s.registerGuarded("POST "+RouteWaitingList, s.WaitingListAddHandler(), session.RoleAdmin)
	s.registerGuarded("POST "+RouteComplaintStatus, s.ComplaintStatusHandler(), session.RoleAdmin)
	s.registerGuarded("POST "+RouteRoomChangeApprove, s.RoomChangeApproveHandler(), session.RoleAdmin)
	s.registerGuarded("POST "+RouteRoomChangeDeny, s.RoomChangeDenyHandler(), session.RoleAdmin)

	// Student-only views
	s.registerGuarded("GET "+RouteStudentDashboard, s.StudentDashboardHandler(), session.RoleStudent)
	s.registerGuarded("POST "+RouteRoomChanges, s.RoomChangeCreateHandler(), session.RoleStudent)
	s.registerGuarded("POST "+RouteComplaints, s.ComplaintCreateHandler(), session.RoleStudent)
	s.registerGuarded("POST "+RouteMaintenance, s.MaintenanceCreateHandler(), session.RoleStudent)

	// Views shared by both roles (no required role, any authenticated identity)
	s.registerGuarded("GET "+RouteRooms, s.RoomsPageHandler(), "")
	s.registerGuarded("GET "+RouteComplaints, s.ComplaintsPageHandler(), "")
	s.registerGuarded("GET "+RouteMaintenance, s.MaintenancePageHandler(), "")
	s.registerGuarded("GET "+RouteMenu, s.MenuPageHandler(), "")
	s.registerGuarded("GET "+RouteRoomChanges, s.RoomChangesPageHandler(), "")
	s.registerGuarded("GET "+RouteAnnouncements, s.AnnouncementsPageHandler(), "")
}

func (s *Server) registerGuarded(pattern string, handler http.HandlerFunc, requiredRole session.Role) {
	s.RegisterRouteHandler(pattern, ChainMiddleware(handler, s.HTMLMiddleWare(s.RequireSession(requiredRole))...))
}
