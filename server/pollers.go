package server

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hostelworks/hostel-dashboard/hostelapi"
	"github.com/hostelworks/hostel-dashboard/poller"
	"github.com/hostelworks/hostel-dashboard/refresh"
)

// Pollers holds one polling fetcher per shared view. Each fetches on
// start, on the fixed interval, and on every refresh-bus change; mutation
// handlers additionally Kick the poller owning the mutated data.
//
// Per-student data (student dashboard, a student's own complaints) is not
// pollable process-wide and is fetched per request instead.
type Pollers struct {
	AdminStats    *poller.Poller[hostelapi.AdminStats]
	Rooms         *poller.Poller[[]hostelapi.Room]
	Payments      *poller.Poller[[]hostelapi.Payment]
	Complaints    *poller.Poller[[]hostelapi.Complaint]
	Maintenance   *poller.Poller[[]hostelapi.MaintenanceRequest]
	Menu          *poller.Poller[[]hostelapi.MenuItem]
	WaitingList   *poller.Poller[[]hostelapi.WaitingListEntry]
	RoomChanges   *poller.Poller[[]hostelapi.RoomChangeRequest]
	Announcements *poller.Poller[[]hostelapi.Announcement]
}

func newPollers(api *hostelapi.Client, bus *refresh.Bus, interval time.Duration) *Pollers {
	logger := log.Logger
	return &Pollers{
		AdminStats:    poller.New("admin-stats", api.AdminDashboard, interval, bus, logger),
		Rooms:         poller.New("rooms", api.Rooms, interval, bus, logger),
		Payments:      poller.New("payments", api.Payments, interval, bus, logger),
		Complaints: poller.New("complaints", func(ctx context.Context) ([]hostelapi.Complaint, error) {
			return api.Complaints(ctx, "")
		}, interval, bus, logger),
		Maintenance:   poller.New("maintenance", api.Maintenance, interval, bus, logger),
		Menu:          poller.New("menu", api.Menu, interval, bus, logger),
		WaitingList:   poller.New("waiting-list", api.WaitingList, interval, bus, logger),
		RoomChanges:   poller.New("room-changes", api.RoomChangeRequests, interval, bus, logger),
		Announcements: poller.New("announcements", api.Announcements, interval, bus, logger),
	}
}

func (p *Pollers) Start(ctx context.Context) {
	p.AdminStats.Start(ctx)
	p.Rooms.Start(ctx)
	p.Payments.Start(ctx)
	p.Complaints.Start(ctx)
	p.Maintenance.Start(ctx)
	p.Menu.Start(ctx)
	p.WaitingList.Start(ctx)
	p.RoomChanges.Start(ctx)
	p.Announcements.Start(ctx)
}

func (p *Pollers) Stop() {
	p.AdminStats.Stop()
	p.Rooms.Stop()
	p.Payments.Stop()
	p.Complaints.Stop()
	p.Maintenance.Stop()
	p.Menu.Stop()
	p.WaitingList.Stop()
	p.RoomChanges.Stop()
	p.Announcements.Stop()
}
