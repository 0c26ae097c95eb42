// Package poller keeps a view's displayed data reasonably fresh without
// manual refresh: one fetch on start, one per interval tick, and one per
// refresh-signal change. A failed fetch leaves the prior snapshot visible
// and does not stop future fetches.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hostelworks/hostel-dashboard/refresh"
)

type FetchFunc[T any] func(ctx context.Context) (T, error)

// Poller owns one view's slice of backend data. Fetches may overlap;
// every fetch carries a sequence number and completions that are not the
// latest issued are discarded, so a slow early request can never
// overwrite a newer result.
type Poller[T any] struct {
	name     string
	fetch    FetchFunc[T]
	interval time.Duration
	bus      *refresh.Bus
	log      zerolog.Logger

	mu        sync.Mutex
	data      T
	fetchedAt time.Time
	errMsg    string
	seq       uint64
	stopped   bool

	kick   chan struct{}
	cancel context.CancelFunc
	done   chan struct{}
}

// New builds a poller. bus may be nil for views that only poll on the
// timer. interval must be positive.
func New[T any](name string, fetch FetchFunc[T], interval time.Duration, bus *refresh.Bus, logger zerolog.Logger) *Poller[T] {
	return &Poller[T]{
		name:     name,
		fetch:    fetch,
		interval: interval,
		bus:      bus,
		log:      logger.With().Str("poller", name).Logger(),
		kick:     make(chan struct{}, 1),
	}
}

// Start issues the initial fetch and begins the tick/signal loop.
func (p *Poller[T]) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	var signals <-chan uint64
	unsubscribe := func() {}
	if p.bus != nil {
		signals, unsubscribe = p.bus.Subscribe()
	}
	go p.run(ctx, signals, unsubscribe)
}

func (p *Poller[T]) run(ctx context.Context, signals <-chan uint64, unsubscribe func()) {
	defer close(p.done)
	defer unsubscribe()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.fetchOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchOnce(ctx)
		case <-signals:
			p.fetchOnce(ctx)
		case <-p.kick:
			p.fetchOnce(ctx)
		}
	}
}

// Kick forces an immediate fetch, used after a mutation in this view.
func (p *Poller[T]) Kick() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

// Stop halts the loop. No fetch attempt is observable after Stop returns;
// completions still in flight are discarded.
func (p *Poller[T]) Stop() {
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		<-p.done
	}
}

func (p *Poller[T]) fetchOnce(ctx context.Context) {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.seq++
	seq := p.seq
	p.mu.Unlock()

	go func() {
		data, err := p.fetch(ctx)

		p.mu.Lock()
		defer p.mu.Unlock()
		if p.stopped || seq != p.seq {
			// The view is gone or a newer fetch was issued.
			return
		}
		if err != nil {
			p.errMsg = err.Error()
			p.log.Debug().Err(err).Msg("fetch failed, keeping stale data")
			return
		}
		p.data = data
		p.fetchedAt = time.Now()
		p.errMsg = ""
	}()
}

// Snapshot returns the latest successful data, when it was fetched, and
// the current error message ("" when the last fetch succeeded). Stale
// data stays visible through failures.
func (p *Poller[T]) Snapshot() (T, time.Time, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data, p.fetchedAt, p.errMsg
}
