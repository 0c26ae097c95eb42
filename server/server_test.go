package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/hostelworks/hostel-dashboard/hostelapi"
	"github.com/hostelworks/hostel-dashboard/internal/config"
	"github.com/hostelworks/hostel-dashboard/refresh"
	"github.com/hostelworks/hostel-dashboard/server"
	"github.com/hostelworks/hostel-dashboard/session"
	"github.com/hostelworks/hostel-dashboard/session/repofakes"
)

const (
	testAdminEmail   = "warden@example.com"
	testStudentEmail = "alice@example.com"
	testPassword     = "password123"
)

// backendStub fakes the hostel REST backend, wrapping every response in
// the {success, data/user, message} envelope and counting requests so
// tests can observe poller refetches.
type backendStub struct {
	srv *httptest.Server

	mu        sync.Mutex
	gets      map[string]int
	mutations []string
	loginFail bool
}

func newBackendStub() *backendStub {
	b := &backendStub{gets: make(map[string]int)}
	b.srv = httptest.NewServer(http.HandlerFunc(b.handle))
	return b
}

func (b *backendStub) handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == http.MethodPost && r.URL.Path == "/login" {
		b.handleLogin(w, r)
		return
	}

	b.mu.Lock()
	if r.Method == http.MethodGet {
		b.gets[r.URL.Path]++
	} else {
		b.mutations = append(b.mutations, r.Method+" "+r.URL.Path)
	}
	b.mu.Unlock()

	if r.Method != http.MethodGet {
		json.NewEncoder(w).Encode(map[string]any{"success": true})
		return
	}
	json.NewEncoder(w).Encode(map[string]any{"success": true, "data": b.dataFor(r.URL.Path)})
}

func (b *backendStub) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		UserType string `json:"userType"`
	}
	json.NewDecoder(r.Body).Decode(&body)

	b.mu.Lock()
	fail := b.loginFail
	b.mu.Unlock()
	if fail {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Invalid credentials"})
		return
	}

	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"user": map[string]any{
			"id":      1,
			"type":    body.UserType,
			"name":    "Test User",
			"email":   body.Email,
			"room_id": 101,
		},
	})
}

func (b *backendStub) dataFor(path string) any {
	switch {
	case path == "/admin/dashboard":
		return hostelapi.AdminStats{TotalRooms: 12, OccupancyRate: 75, PendingPayments: 3, PendingComplaints: 2, WaitingList: 4}
	case strings.HasPrefix(path, "/student/dashboard/"):
		return hostelapi.StudentSummary{
			Student:   hostelapi.Student{StudentID: 1, Name: "Test User", RoomNumber: "A-101"},
			Roommates: []string{"Bob"},
		}
	case path == "/payments":
		return []hostelapi.Payment{{PaymentID: 1, StudentID: 1, Amount: 5000, Deadline: "2026-10-01", Status: hostelapi.PaymentUnpaid, Name: "Test User"}}
	case path == "/rooms", path == "/available-rooms":
		return []hostelapi.Room{{RoomID: 101, RoomNumber: "A-101", Capacity: 2, CurrentOccupancy: 1}}
	case path == "/menu":
		return []hostelapi.MenuItem{{MenuID: 1, Day: "Monday", Breakfast: "Idli", Lunch: "Rice", Dinner: "Roti"}}
	default:
		return []any{}
	}
}

func (b *backendStub) setLoginFail(fail bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.loginFail = fail
}

func (b *backendStub) getCount(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.gets[path]
}

func (b *backendStub) mutationSeen(methodAndPath string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, m := range b.mutations {
		if m == methodAndPath {
			return true
		}
	}
	return false
}

type fixture struct {
	backend *backendStub
	repo    *repofakes.FakeSessionRepo
	store   *session.Store
	bus     *refresh.Bus
	srv     *server.Server
}

func testConfig(backendURL string) config.EnvVars {
	return config.EnvVars{
		Port:                  ":0",
		AppName:               "Hostel Dashboard",
		Env:                   "TEST",
		BackendBaseURL:        backendURL,
		PollIntervalSeconds:   60,
		RequestTimeoutSeconds: 5,
		SessionDir:            "unused",
		SessionTTLHours:       1,
		SessionSecret:         "test-secret",
		LoginRatePerMinute:    6000,
		LoginBurst:            100,
	}
}

// setupFixture builds a server against the stub backend. With start true
// the session store is restored and the pollers run; with start false
// the store stays in its restoring state.
func setupFixture(t *testing.T, start bool, mutate func(*config.EnvVars)) *fixture {
	t.Helper()

	backend := newBackendStub()
	t.Cleanup(backend.srv.Close)

	cfg := testConfig(backend.srv.URL)
	if mutate != nil {
		mutate(&cfg)
	}

	repo := repofakes.NewFakeSessionRepo()
	store := session.NewStore(repo, zerolog.Nop())
	api := hostelapi.NewClient(backend.srv.URL, cfg.GetRequestTimeout(), zerolog.Nop())
	bus := refresh.NewBus()

	srv, err := server.New(cfg, store, api, bus)
	require.NoError(t, err)

	if start {
		srv.Start(context.Background())
		t.Cleanup(srv.Stop)
	}

	return &fixture{backend: backend, repo: repo, store: store, bus: bus, srv: srv}
}

func (f *fixture) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		r.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	f.srv.ServeHTTP(w, r)
	return w
}

func (f *fixture) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		r.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	f.srv.ServeHTTP(w, r)
	return w
}

// login runs the full form login and returns the issued session cookie.
func (f *fixture) login(t *testing.T, email string, role session.Role) *http.Cookie {
	t.Helper()

	w := f.postForm("/auth/login", url.Values{
		"email":    {email},
		"password": {testPassword},
		"userType": {string(role)},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, role.HomePath(), w.Header().Get("Location"))

	for _, c := range w.Result().Cookies() {
		if c.Name == "hostel_session" && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func TestUnauthenticatedVisitorRedirectedToLogin(t *testing.T) {
	f := setupFixture(t, true, nil)

	for _, path := range []string{"/admin", "/student", "/payments", "/menu", "/rooms"} {
		w := f.get(path, nil)
		require.Equal(t, http.StatusSeeOther, w.Code, path)
		require.Equal(t, "/login", w.Header().Get("Location"), path)
	}
}

func TestGarbledCookieReadsAsSignedOut(t *testing.T) {
	f := setupFixture(t, true, nil)

	w := f.get("/admin", &http.Cookie{Name: "hostel_session", Value: "not-a-token"})
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLoadingViewBeforeRestoreCompletes(t *testing.T) {
	f := setupFixture(t, false, nil)

	w := f.get("/admin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `http-equiv="refresh"`)
}

func TestAdminLoginAndDashboard(t *testing.T) {
	f := setupFixture(t, true, nil)

	cookie := f.login(t, testAdminEmail, session.RoleAdmin)

	w := f.get("/admin", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Total rooms")
	require.Contains(t, w.Body.String(), "Test User")

	records, err := f.repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, session.RoleAdmin, records[0].Identity.Role)
}

func TestStudentLoginAndDashboard(t *testing.T) {
	f := setupFixture(t, true, nil)

	cookie := f.login(t, testStudentEmail, session.RoleStudent)

	w := f.get("/student", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "A-101")
	require.Contains(t, w.Body.String(), "Roommates")
}

func TestStudentRedirectedFromAdminViews(t *testing.T) {
	f := setupFixture(t, true, nil)

	cookie := f.login(t, testStudentEmail, session.RoleStudent)

	for _, path := range []string{"/admin", "/payments", "/waiting-list"} {
		w := f.get(path, cookie)
		require.Equal(t, http.StatusSeeOther, w.Code, path)
		require.Equal(t, "/student", w.Header().Get("Location"), path)
	}
}

func TestAdminRedirectedFromStudentViews(t *testing.T) {
	f := setupFixture(t, true, nil)

	cookie := f.login(t, testAdminEmail, session.RoleAdmin)

	w := f.get("/student", cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/admin", w.Header().Get("Location"))
}

func TestSharedViewsServeBothRoles(t *testing.T) {
	f := setupFixture(t, true, nil)

	admin := f.login(t, testAdminEmail, session.RoleAdmin)
	student := f.login(t, testStudentEmail, session.RoleStudent)

	for _, cookie := range []*http.Cookie{admin, student} {
		w := f.get("/menu", cookie)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Idli")
	}
}

func TestRejectedLoginRedirectsWithError(t *testing.T) {
	f := setupFixture(t, true, nil)
	f.backend.setLoginFail(true)

	w := f.postForm("/auth/login", url.Values{
		"email":    {testAdminEmail},
		"password": {"wrong"},
		"userType": {"admin"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)

	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "/login", location.Path)
	require.NotEmpty(t, location.Query().Get("error"))
	require.Equal(t, testAdminEmail, location.Query().Get("email"))
}

func TestMissingCredentialsNeverReachBackend(t *testing.T) {
	f := setupFixture(t, true, nil)

	w := f.postForm("/auth/login", url.Values{"email": {testAdminEmail}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)

	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "/login", location.Path)
	require.NotEmpty(t, location.Query().Get("error"))
}

func TestLogoutClearsSessionAndCookie(t *testing.T) {
	f := setupFixture(t, true, nil)

	cookie := f.login(t, testAdminEmail, session.RoleAdmin)

	w := f.get("/auth/logout", cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))

	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "hostel_session" && c.MaxAge < 0 {
			cleared = true
		}
	}
	require.True(t, cleared, "session cookie should be expired")

	records, err := f.repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)

	w = f.get("/admin", cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLogoutWithoutSessionStillLandsOnLogin(t *testing.T) {
	f := setupFixture(t, true, nil)

	w := f.get("/auth/logout", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))
}

func TestPaymentMutationKicksPollersAndSignalsRefresh(t *testing.T) {
	f := setupFixture(t, true, nil)

	cookie := f.login(t, testAdminEmail, session.RoleAdmin)
	signals, cancel := f.bus.Subscribe()
	defer cancel()
	before := f.backend.getCount("/payments")

	w := f.postForm("/payments/1/status", url.Values{"status": {hostelapi.PaymentPaid}}, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/payments", w.Header().Get("Location"))
	require.True(t, f.backend.mutationSeen("PUT /payments/1"))

	select {
	case <-signals:
	case <-time.After(2 * time.Second):
		t.Fatal("no refresh signal after mutation")
	}

	require.Eventually(t, func() bool {
		return f.backend.getCount("/payments") > before
	}, 2*time.Second, 10*time.Millisecond, "payments poller should refetch after mutation")
}

func TestComplaintCreateGoesToBackend(t *testing.T) {
	f := setupFixture(t, true, nil)

	cookie := f.login(t, testStudentEmail, session.RoleStudent)

	w := f.postForm("/complaints", url.Values{
		"complaint_type": {"Plumbing"},
		"description":    {"Tap is leaking in room A-101"},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/complaints", w.Header().Get("Location"))
	require.True(t, f.backend.mutationSeen("POST /complaints"))
}

func TestRoomChangeApprovalRefreshesRooms(t *testing.T) {
	f := setupFixture(t, true, nil)

	cookie := f.login(t, testAdminEmail, session.RoleAdmin)
	before := f.backend.getCount("/rooms")

	w := f.postForm("/room-change-requests/7/approve", nil, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/room-change-requests", w.Header().Get("Location"))
	require.True(t, f.backend.mutationSeen("PUT /room-change-requests/7/approve"))

	require.Eventually(t, func() bool {
		return f.backend.getCount("/rooms") > before
	}, 2*time.Second, 10*time.Millisecond, "rooms poller should refetch after approval")
}

func TestLoginRateLimited(t *testing.T) {
	f := setupFixture(t, true, func(cfg *config.EnvVars) {
		cfg.LoginRatePerMinute = 1
		cfg.LoginBurst = 1
	})

	form := url.Values{
		"email":    {testAdminEmail},
		"password": {testPassword},
		"userType": {"admin"},
	}

	w := f.postForm("/auth/login", form, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = f.postForm("/auth/login", form, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "/login", location.Path)
	require.Contains(t, location.Query().Get("error"), "Too many")
}
