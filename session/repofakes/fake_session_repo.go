package repofakes

import (
	"context"
	"sync"

	"github.com/hostelworks/hostel-dashboard/session"
)

var _ session.Repo = (*FakeSessionRepo)(nil)

// FakeSessionRepo is an in-memory session.Repo for tests. Error fields may
// be set to force failures on specific operations.
type FakeSessionRepo struct {
	lock    sync.RWMutex
	records map[string]session.Record

	ListErr   error
	UpsertErr error
	DeleteErr error

	Deleted []string
}

func NewFakeSessionRepo() *FakeSessionRepo {
	return &FakeSessionRepo{records: make(map[string]session.Record)}
}

// Seed places a record directly into the fake, bypassing validation, the
// way a hand-edited or corrupted persisted file would.
func (r *FakeSessionRepo) Seed(rec session.Record) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.records[rec.SessionID] = rec
}

func (r *FakeSessionRepo) Upsert(ctx context.Context, rec session.Record) error {
	if r.UpsertErr != nil {
		return r.UpsertErr
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.records[rec.SessionID] = rec
	return nil
}

func (r *FakeSessionRepo) Delete(ctx context.Context, sessionID string) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.records, sessionID)
	r.Deleted = append(r.Deleted, sessionID)
	return nil
}

func (r *FakeSessionRepo) List(ctx context.Context) ([]session.Record, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.lock.RLock()
	defer r.lock.RUnlock()
	out := make([]session.Record, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	return out, nil
}

// Has reports whether a record is currently stored.
func (r *FakeSessionRepo) Has(sessionID string) bool {
	r.lock.RLock()
	defer r.lock.RUnlock()
	_, ok := r.records[sessionID]
	return ok
}
