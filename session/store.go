package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	apperrors "github.com/hostelworks/hostel-dashboard/internal/errors"
)

// Store is the single source of truth for who is logged in. It holds
// identities in memory, keyed by session ID, and mirrors them to a Repo so
// they survive a restart.
//
// Consumers must not read identities before Ready reports true; Get returns
// no identity during that window rather than a stale or default value.
type Store struct {
	repo Repo
	log  zerolog.Logger

	mu       sync.RWMutex
	ready    bool
	sessions map[string]Identity
}

func NewStore(repo Repo, logger zerolog.Logger) *Store {
	return &Store{
		repo:     repo,
		log:      logger.With().Str("component", "session-store").Logger(),
		sessions: make(map[string]Identity),
	}
}

// Restore loads persisted records once at startup. Structurally invalid
// records are deleted rather than trusted. Restore always completes and
// flips the ready flag regardless of outcome.
func (s *Store) Restore(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.ready = true
		s.mu.Unlock()
	}()

	recs, err := s.repo.List(ctx)
	if err != nil {
		s.log.Err(err).Msg("failed to list persisted sessions, starting empty")
		return
	}

	restored := 0
	for _, rec := range recs {
		if !rec.Identity.Valid() {
			if err := s.repo.Delete(ctx, rec.SessionID); err != nil {
				s.log.Err(err).Str("session_id", rec.SessionID).Msg("failed to delete invalid session record")
			}
			continue
		}
		s.mu.Lock()
		s.sessions[rec.SessionID] = rec.Identity
		s.mu.Unlock()
		restored++
	}
	s.log.Info().Int("restored", restored).Int("discarded", len(recs)-restored).Msg("session restore complete")
}

// Ready reports whether Restore has completed.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Login records an identity, mints a session ID and persists the record
// verbatim. A persistence failure is logged but does not fail the login:
// the in-memory session is authoritative for this process's lifetime.
func (s *Store) Login(ctx context.Context, identity Identity) (string, error) {
	if !identity.Valid() {
		return "", apperrors.ErrInvalidIdentity
	}

	sessionID := uuid.NewString()
	s.mu.Lock()
	s.sessions[sessionID] = identity
	s.mu.Unlock()

	rec := Record{SessionID: sessionID, Identity: identity, CreatedAt: time.Now()}
	if err := s.repo.Upsert(ctx, rec); err != nil {
		s.log.Err(err).Str("session_id", sessionID).Msg("failed to persist session")
	}
	return sessionID, nil
}

// Logout clears the session from memory and from the persisted store. It is
// unconditional and always succeeds locally; repo failures are only logged.
func (s *Store) Logout(ctx context.Context, sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if err := s.repo.Delete(ctx, sessionID); err != nil {
		s.log.Err(err).Str("session_id", sessionID).Msg("failed to delete persisted session")
	}
}

// Get returns the identity for a session ID. It reports no identity until
// Restore has completed, so callers never see a pre-restore default.
func (s *Store) Get(sessionID string) (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ready {
		return Identity{}, false
	}
	identity, ok := s.sessions[sessionID]
	return identity, ok
}
