// Package search owns the query text and candidate list of the overview
// screen. Keystrokes are debounced into single geocoding lookups.
package search

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"nimbus/internal/domain"
	"nimbus/internal/eventbus"
	"nimbus/internal/metrics"
)

// DefaultDelay is the quiet period before a lookup fires
const DefaultDelay = 500 * time.Millisecond

// Searcher performs one geocoding lookup
type Searcher interface {
	Search(ctx context.Context, name string) ([]domain.LocationCandidate, error)
}

// AfterFunc schedules f after d and returns a function that cancels it
type AfterFunc func(d time.Duration, f func()) (stop func() bool)

func realAfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// Option configures a Controller
type Option func(*Controller)

// WithDelay overrides DefaultDelay
func WithDelay(d time.Duration) Option {
	return func(c *Controller) { c.delay = d }
}

// WithBus publishes candidate updates and failures on bus
func WithBus(bus eventbus.EventBus) Option {
	return func(c *Controller) { c.bus = bus }
}

// WithLogger sets the diagnostic logger
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Controller) { c.log = log }
}

// WithAfterFunc replaces the timer primitive
func WithAfterFunc(fn AfterFunc) Option {
	return func(c *Controller) { c.afterFunc = fn }
}

// Controller is the search state of one overview screen.
//
// Tokens: every lookup gets the next token. A response is applied only when
// its token is newer than the last applied one and above the floor that
// clear/cancel raise, so a slow stale response never overwrites newer state.
type Controller struct {
	searcher  Searcher
	bus       eventbus.EventBus
	log       *zap.SugaredLogger
	delay     time.Duration
	afterFunc AfterFunc

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	query      string
	candidates []domain.LocationCandidate
	stop       func() bool // pending timer, nil when idle
	generation uint64      // invalidates callbacks of replaced timers
	issued     uint64
	applied    uint64
	floor      uint64
	inflight   int
}

// NewController creates a controller backed by searcher
func NewController(searcher Searcher, opts ...Option) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		searcher:  searcher,
		log:       zap.NewNop().Sugar(),
		delay:     DefaultDelay,
		afterFunc: realAfterFunc,
		ctx:       ctx,
		cancel:    cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnQueryChange records text immediately and (re)schedules the lookup.
// An empty text clears the candidates synchronously and issues nothing.
func (c *Controller) OnQueryChange(text string) {
	c.mu.Lock()
	c.query = text
	c.stopTimerLocked()

	if text == "" {
		c.clearLocked()
		c.mu.Unlock()
		c.publish(eventbus.CandidatesUpdatedEvent{})
		return
	}

	gen := c.generation
	c.stop = c.afterFunc(c.delay, func() { c.fire(gen) })
	c.mu.Unlock()
}

// Cancel clears query and candidates; in-flight responses are dropped
func (c *Controller) Cancel() {
	c.mu.Lock()
	c.query = ""
	c.stopTimerLocked()
	c.clearLocked()
	c.mu.Unlock()
	c.publish(eventbus.CandidatesUpdatedEvent{})
}

// Flush fires a pending lookup now instead of waiting out the delay
func (c *Controller) Flush() {
	c.mu.Lock()
	if c.stop == nil {
		c.mu.Unlock()
		return
	}
	c.stopTimerLocked()
	gen := c.generation
	c.mu.Unlock()

	go c.fire(gen)
}

// Query returns the current text
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Candidates returns a copy of the list in arrival order
func (c *Controller) Candidates() []domain.LocationCandidate {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.LocationCandidate, len(c.candidates))
	copy(out, c.candidates)
	return out
}

// Pending reports whether a debounce timer is armed
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}

// Searching reports whether a lookup is in flight
func (c *Controller) Searching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight > 0
}

// Close stops the timer and abandons in-flight lookups
func (c *Controller) Close() {
	c.mu.Lock()
	c.stopTimerLocked()
	c.floor = c.issued
	c.mu.Unlock()
	c.cancel()
}

func (c *Controller) stopTimerLocked() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
	c.generation++
}

func (c *Controller) clearLocked() {
	c.candidates = nil
	c.floor = c.issued
}

func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	if gen != c.generation || c.query == "" {
		c.mu.Unlock()
		return
	}
	c.stop = nil
	c.issued++
	token := c.issued
	text := c.query
	c.inflight++
	c.mu.Unlock()

	metrics.SearchLookups.Inc()
	c.log.Debugw("geocoding lookup", "query", text, "token", token)

	results, err := c.searcher.Search(c.ctx, text)

	c.mu.Lock()
	c.inflight--
	stale := token <= c.floor || token <= c.applied
	if err != nil {
		c.mu.Unlock()
		if stale {
			return
		}
		c.log.Warnw("geocoding lookup failed", "query", text, "error", err)
		c.publish(eventbus.SearchFailedEvent{Query: text, Err: err})
		return
	}
	if stale {
		c.mu.Unlock()
		metrics.StaleResponsesDiscarded.WithLabelValues("search").Inc()
		c.log.Debugw("discarding stale geocoding response", "query", text, "token", token)
		return
	}
	if results == nil {
		results = []domain.LocationCandidate{}
	}
	c.applied = token
	c.candidates = results
	out := make([]domain.LocationCandidate, len(results))
	copy(out, results)
	c.mu.Unlock()

	c.log.Debugw("geocoding results", "query", text, "count", len(out))
	c.publish(eventbus.CandidatesUpdatedEvent{Query: text, Candidates: out})
}

func (c *Controller) publish(e eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}
