// Package forecast owns the snapshot of one selected location and the
// derivations used to render it.
package forecast

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"nimbus/internal/domain"
	"nimbus/internal/eventbus"
	"nimbus/internal/metrics"
)

// Fetcher retrieves a forecast by coordinates
type Fetcher interface {
	Forecast(ctx context.Context, lat, lon float64) (*domain.ForecastSnapshot, error)
}

// Viewer loads and refreshes the forecast for a single location.
// A refresh never clears the current snapshot; it is replaced only when a
// newer load succeeds.
type Viewer struct {
	fetcher  Fetcher
	location domain.SelectedLocation
	bus      eventbus.EventBus
	log      *zap.SugaredLogger

	done   context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	snapshot   *domain.ForecastSnapshot
	lastErr    error
	refreshing bool
	inflight   int
	issued     uint64
	applied    uint64
	closed     bool
}

// NewViewer creates a viewer for location. bus and log may be nil.
func NewViewer(fetcher Fetcher, location domain.SelectedLocation, bus eventbus.EventBus, log *zap.SugaredLogger) *Viewer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	done, cancel := context.WithCancel(context.Background())
	return &Viewer{
		fetcher:  fetcher,
		location: location,
		bus:      bus,
		log:      log.With("location", location.Name),
		done:     done,
		cancel:   cancel,
	}
}

// Load issues one forecast request. On failure the previous snapshot is kept
// and the error is returned for logging only.
func (v *Viewer) Load(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return context.Canceled
	}
	v.issued++
	token := v.issued
	v.inflight++
	v.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(v.done, cancel)
	defer stop()

	v.log.Debugw("loading forecast", "lat", v.location.Latitude, "lon", v.location.Longitude, "token", token)
	snap, err := v.fetcher.Forecast(ctx, v.location.Latitude, v.location.Longitude)

	v.mu.Lock()
	v.inflight--
	if v.closed {
		v.mu.Unlock()
		return err
	}

	var events []eventbus.DomainEvent
	stale := token <= v.applied
	switch {
	case stale:
		// a newer load already settled; neither result nor error applies
		metrics.StaleResponsesDiscarded.WithLabelValues("forecast").Inc()
		v.log.Debugw("discarding stale forecast", "token", token, "applied", v.applied, "error", err)
	case err != nil:
		v.lastErr = err
		v.log.Warnw("forecast load failed", "error", err)
		events = append(events, eventbus.ForecastFailedEvent{Location: v.location, Err: err})
	default:
		v.applied = token
		v.snapshot = snap
		v.lastErr = nil
		events = append(events, eventbus.ForecastUpdatedEvent{Location: v.location, Snapshot: snap})
	}

	if v.inflight == 0 && v.refreshing {
		v.refreshing = false
		events = append(events, eventbus.RefreshStateChangedEvent{Location: v.location, Refreshing: false})
	}
	v.mu.Unlock()

	for _, e := range events {
		v.publish(e)
	}
	return err
}

// Refresh sets the refreshing flag and re-issues Load. The flag clears when
// every outstanding load has settled.
func (v *Viewer) Refresh(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return context.Canceled
	}
	changed := !v.refreshing
	v.refreshing = true
	v.mu.Unlock()

	if changed {
		v.publish(eventbus.RefreshStateChangedEvent{Location: v.location, Refreshing: true})
	}
	return v.Load(ctx)
}

// Snapshot returns the current snapshot, nil before the first success
func (v *Viewer) Snapshot() *domain.ForecastSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot
}

// Refreshing reports whether a user-initiated refresh is outstanding
func (v *Viewer) Refreshing() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.refreshing
}

// Loading reports whether any load is in flight
func (v *Viewer) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.inflight > 0
}

// Location returns the location this viewer was created for
func (v *Viewer) Location() domain.SelectedLocation {
	return v.location
}

// LastError returns the error of the most recent failed load, cleared on success
func (v *Viewer) LastError() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastErr
}

// Close abandons in-flight loads; nothing is published afterwards
func (v *Viewer) Close() {
	v.mu.Lock()
	v.closed = true
	v.refreshing = false
	v.mu.Unlock()
	v.cancel()
}

func (v *Viewer) publish(e eventbus.DomainEvent) {
	if v.bus != nil {
		v.bus.Publish(e)
	}
}
