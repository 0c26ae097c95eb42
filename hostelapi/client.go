// Package hostelapi is the REST client for the external hostel backend.
// Every response arrives in the envelope {success, data?, message?}; a
// success:false or a transport failure is the only error signal.
package hostelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/hostelworks/hostel-dashboard/internal/errors"
	"github.com/hostelworks/hostel-dashboard/session"
)

type Client struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		log:     logger.With().Str("component", "hostelapi").Logger(),
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	User    json.RawMessage `json:"user"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrBackend, "%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	// The backend wraps failures in the same envelope with non-2xx codes,
	// so decode before checking the status.
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return apperrors.Wrapf(apperrors.ErrBackend, "%s %s: status %d, undecodable body", method, path, resp.StatusCode)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return apperrors.Wrapf(apperrors.ErrBackendRejected, "%s %s: %s", method, path, msg)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode %s %s data: %w", method, path, err)
		}
	}
	return nil
}

// loginUser matches the /login response's user object. The backend sends
// numeric IDs and the role under "type".
type loginUser struct {
	ID     json.Number  `json:"id"`
	Type   session.Role `json:"type"`
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	RoomID json.Number  `json:"room_id"`
}

// Login authenticates against the backend and maps the returned user to an
// Identity. Credentials are never held beyond this call.
func (c *Client) Login(ctx context.Context, email, password string, userType session.Role) (session.Identity, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
		"userType": string(userType),
	}

	data, err := json.Marshal(body)
	if err != nil {
		return session.Identity{}, fmt.Errorf("marshal login body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(data))
	if err != nil {
		return session.Identity{}, fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return session.Identity{}, apperrors.Wrapf(apperrors.ErrBackend, "POST /login: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return session.Identity{}, apperrors.Wrapf(apperrors.ErrBackend, "POST /login: status %d, undecodable body", resp.StatusCode)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "invalid credentials"
		}
		return session.Identity{}, apperrors.Wrapf(apperrors.ErrLoginFailed, "%s", msg)
	}

	var user loginUser
	if err := json.Unmarshal(env.User, &user); err != nil {
		return session.Identity{}, apperrors.Wrapf(apperrors.ErrLoginFailed, "undecodable user record")
	}

	identity := session.Identity{
		ID:     user.ID.String(),
		Role:   user.Type,
		Name:   user.Name,
		Email:  user.Email,
		RoomID: user.RoomID.String(),
	}
	if !identity.Valid() {
		return session.Identity{}, apperrors.ErrInvalidIdentity
	}
	return identity, nil
}

func (c *Client) AdminDashboard(ctx context.Context) (AdminStats, error) {
	var stats AdminStats
	err := c.do(ctx, http.MethodGet, "/admin/dashboard", nil, &stats)
	return stats, err
}

func (c *Client) StudentDashboard(ctx context.Context, studentID string) (StudentSummary, error) {
	var summary StudentSummary
	err := c.do(ctx, http.MethodGet, "/student/dashboard/"+url.PathEscape(studentID), nil, &summary)
	return summary, err
}

func (c *Client) Rooms(ctx context.Context) ([]Room, error) {
	var rooms []Room
	err := c.do(ctx, http.MethodGet, "/rooms", nil, &rooms)
	return rooms, err
}

func (c *Client) AvailableRooms(ctx context.Context) ([]Room, error) {
	var rooms []Room
	err := c.do(ctx, http.MethodGet, "/available-rooms", nil, &rooms)
	return rooms, err
}

func (c *Client) Payments(ctx context.Context) ([]Payment, error) {
	var payments []Payment
	err := c.do(ctx, http.MethodGet, "/payments", nil, &payments)
	return payments, err
}

func (c *Client) UpdatePayment(ctx context.Context, paymentID, status string) error {
	return c.do(ctx, http.MethodPut, "/payments/"+url.PathEscape(paymentID), map[string]string{"status": status}, nil)
}

// Complaints lists complaints, optionally scoped to one student.
func (c *Client) Complaints(ctx context.Context, studentID string) ([]Complaint, error) {
	path := "/complaints"
	if studentID != "" {
		path += "?student_id=" + url.QueryEscape(studentID)
	}
	var complaints []Complaint
	err := c.do(ctx, http.MethodGet, path, nil, &complaints)
	return complaints, err
}

func (c *Client) CreateComplaint(ctx context.Context, complaint NewComplaint) error {
	return c.do(ctx, http.MethodPost, "/complaints", complaint, nil)
}

func (c *Client) UpdateComplaint(ctx context.Context, complaintID, status string) error {
	return c.do(ctx, http.MethodPut, "/complaints/"+url.PathEscape(complaintID), map[string]string{"status": status}, nil)
}

func (c *Client) Maintenance(ctx context.Context) ([]MaintenanceRequest, error) {
	var requests []MaintenanceRequest
	err := c.do(ctx, http.MethodGet, "/maintenance", nil, &requests)
	return requests, err
}

func (c *Client) CreateMaintenance(ctx context.Context, request NewMaintenanceRequest) error {
	return c.do(ctx, http.MethodPost, "/maintenance", request, nil)
}

func (c *Client) Menu(ctx context.Context) ([]MenuItem, error) {
	var menu []MenuItem
	err := c.do(ctx, http.MethodGet, "/menu", nil, &menu)
	return menu, err
}

func (c *Client) WaitingList(ctx context.Context) ([]WaitingListEntry, error) {
	var entries []WaitingListEntry
	err := c.do(ctx, http.MethodGet, "/waiting-list", nil, &entries)
	return entries, err
}

func (c *Client) AddToWaitingList(ctx context.Context, entry NewWaitingListEntry) error {
	return c.do(ctx, http.MethodPost, "/waiting-list", entry, nil)
}

func (c *Client) RoomChangeRequests(ctx context.Context) ([]RoomChangeRequest, error) {
	var requests []RoomChangeRequest
	err := c.do(ctx, http.MethodGet, "/room-change-requests", nil, &requests)
	return requests, err
}

func (c *Client) CreateRoomChangeRequest(ctx context.Context, request NewRoomChangeRequest) error {
	return c.do(ctx, http.MethodPost, "/room-change-requests", request, nil)
}

func (c *Client) ApproveRoomChangeRequest(ctx context.Context, requestID string) error {
	return c.do(ctx, http.MethodPut, "/room-change-requests/"+url.PathEscape(requestID)+"/approve", nil, nil)
}

func (c *Client) DenyRoomChangeRequest(ctx context.Context, requestID string) error {
	return c.do(ctx, http.MethodPut, "/room-change-requests/"+url.PathEscape(requestID)+"/deny", nil, nil)
}

func (c *Client) Announcements(ctx context.Context) ([]Announcement, error) {
	var announcements []Announcement
	err := c.do(ctx, http.MethodGet, "/announcements", nil, &announcements)
	return announcements, err
}
