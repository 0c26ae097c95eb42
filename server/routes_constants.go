package server

const (
	RouteLogin      = "/login"
	RouteAuthLogin  = "/auth/login"
	RouteAuthLogout = "/auth/logout"

	RouteAdminDashboard   = "/admin"
	RouteStudentDashboard = "/student"

	RouteRooms             = "/rooms"
	RoutePayments          = "/payments"
	RoutePaymentStatus     = "/payments/{id}/status"
	RouteComplaints        = "/complaints"
	RouteComplaintStatus   = "/complaints/{id}/status"
	RouteMaintenance       = "/maintenance"
	RouteMenu              = "/menu"
	RouteWaitingList       = "/waiting-list"
	RouteRoomChanges       = "/room-change-requests"
	RouteRoomChangeApprove = "/room-change-requests/{id}/approve"
	RouteRoomChangeDeny    = "/room-change-requests/{id}/deny"
	RouteAnnouncements     = "/announcements"
)

const contentTypeHTML = "text/html; charset=utf-8"
