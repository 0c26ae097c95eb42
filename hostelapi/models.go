package hostelapi

// Display-scoped copies of backend entities. The backend owns and mutates
// all of these; the dashboard only fetches and renders them.

type Room struct {
	RoomID           int    `json:"room_id"`
	RoomNumber       string `json:"room_number"`
	Capacity         int    `json:"capacity"`
	CurrentOccupancy int    `json:"current_occupancy"`
	// Students is a comma-joined list of occupant names.
	Students string `json:"students,omitempty"`
}

func (r Room) Full() bool {
	return r.CurrentOccupancy >= r.Capacity
}

type Payment struct {
	PaymentID   int     `json:"payment_id"`
	StudentID   int     `json:"student_id"`
	Amount      float64 `json:"amount"`
	Deadline    string  `json:"deadline"`
	Status      string  `json:"status"`
	PaymentDate string  `json:"payment_date,omitempty"`
	Name        string  `json:"name,omitempty"`
	Email       string  `json:"email,omitempty"`
	RoomNumber  string  `json:"room_number,omitempty"`
}

type Complaint struct {
	ComplaintID   int    `json:"complaint_id"`
	StudentID     int    `json:"student_id"`
	RoomID        int    `json:"room_id"`
	ComplaintType string `json:"complaint_type"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	RaisedDate    string `json:"raised_date"`
	Name          string `json:"name,omitempty"`
	RoomNumber    string `json:"room_number,omitempty"`
}

// Complaint and maintenance statuses move Pending -> In Progress -> Resolved.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
)

// Payment statuses.
const (
	PaymentPaid   = "Paid"
	PaymentUnpaid = "Unpaid"
)

type MaintenanceRequest struct {
	RequestID   int    `json:"request_id"`
	StudentID   int    `json:"student_id"`
	RoomID      int    `json:"room_id"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type MenuItem struct {
	MenuID    int    `json:"menu_id"`
	Day       string `json:"day"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

type WaitingListEntry struct {
	ID          int    `json:"id"`
	StudentName string `json:"student_name"`
	Phone       string `json:"phone"`
	JoinDate    string `json:"join_date"`
}

type RoomChangeRequest struct {
	RequestID           int    `json:"request_id"`
	StudentID           int    `json:"student_id"`
	StudentName         string `json:"student_name"`
	StudentEmail        string `json:"student_email"`
	CurrentRoom         int    `json:"current_room"`
	CurrentRoomNumber   string `json:"current_room_number"`
	RequestedRoom       int    `json:"requested_room"`
	RequestedRoomNumber string `json:"requested_room_number"`
	Reason              string `json:"reason"`
	Status              string `json:"status"`
	RequestDate         string `json:"request_date"`
}

type Announcement struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	PostedBy  string `json:"posted_by,omitempty"`
	CreatedAt string `json:"created_at"`
}

// AdminStats is the admin dashboard summary.
type AdminStats struct {
	TotalRooms        int       `json:"total_rooms"`
	OccupancyRate     float64   `json:"occupancy_rate"`
	PendingPayments   int       `json:"pending_payments"`
	PendingComplaints int       `json:"pending_complaints"`
	WaitingList       int       `json:"waiting_list"`
	TodayMenu         *MenuItem `json:"today_menu"`
}

type Student struct {
	StudentID  int    `json:"student_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	RoomID     int    `json:"room_id"`
	RoomNumber string `json:"room_number,omitempty"`
	Capacity   int    `json:"capacity,omitempty"`
}

// StudentSummary is the per-student dashboard.
type StudentSummary struct {
	Student          Student     `json:"student"`
	Roommates        []string    `json:"roommates"`
	Payment          *Payment    `json:"payment"`
	TodayMenu        *MenuItem   `json:"today_menu"`
	RecentComplaints []Complaint `json:"recent_complaints"`
}

// NewComplaint is the create-complaint payload.
type NewComplaint struct {
	StudentID     int    `json:"student_id"`
	RoomID        int    `json:"room_id"`
	ComplaintType string `json:"complaint_type"`
	Description   string `json:"description"`
}

// NewMaintenanceRequest is the create-maintenance payload.
type NewMaintenanceRequest struct {
	StudentID   int    `json:"student_id"`
	RoomID      int    `json:"room_id"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// NewWaitingListEntry is the add-to-waiting-list payload.
type NewWaitingListEntry struct {
	StudentName string `json:"student_name"`
	Phone       string `json:"phone"`
	JoinDate    string `json:"join_date"`
}

// NewRoomChangeRequest is the create-room-change payload.
type NewRoomChangeRequest struct {
	StudentID     int    `json:"student_id"`
	CurrentRoom   int    `json:"current_room"`
	RequestedRoom int    `json:"requested_room"`
	Reason        string `json:"reason"`
}
