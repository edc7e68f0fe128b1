// SPDX-License-Identifier: Apache-2.0

// Package connectivity tracks whether the audit server is reachable from the
// field device.
//
// The [Monitor] probes the server on a heartbeat ticker via a [Prober]
// (normally the HTTP server adapter) and publishes state transitions to
// subscribers. Consumers such as the sync job react to an offline→online
// transition by triggering a sync pass, and the TUI renders the current
// state. Probe outcome is the only signal used: the monitor never guesses
// from OS-level interface state, because a device can hold an IP address on a
// network that cannot reach the server.
package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-park-audit/internal/logger"
)

// State describes the last observed reachability of the server.
type State string

const (
	// StateUnknown is the state before the first probe completes.
	StateUnknown State = "unknown"
	// StateOnline means the last probe succeeded.
	StateOnline State = "online"
	// StateOffline means the last probe failed.
	StateOffline State = "offline"
)

// Transition is a single observed change of reachability.
type Transition struct {
	From State
	To   State
	At   time.Time
}

// Prober performs a single reachability probe. Implemented by the server
// adapter's Ping.
type Prober interface {
	Ping(ctx context.Context) error
}

// Monitor polls a Prober on a fixed interval and fans observed transitions
// out to subscribers. The zero value is not usable; construct with
// [NewMonitor]. The monitor is idle until Start is called.
type Monitor struct {
	prober   Prober
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	state  State
	subs   []chan Transition
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMonitor creates a Monitor that probes on the given heartbeat interval.
// If interval is zero or negative it defaults to 30 seconds.
func NewMonitor(prober Prober, interval time.Duration, log *logger.Logger) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Monitor{
		prober:   prober,
		interval: interval,
		logger:   log,
		state:    StateUnknown,
	}
}

// Start stops any previously running heartbeat loop, probes once immediately,
// then launches a background goroutine that probes every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (m *Monitor) Start(ctx context.Context) {
	m.Stop()

	m.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(m.interval)
		defer t.Stop()

		m.probe(loopCtx)
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				m.probe(loopCtx)
			}
		}
	}()
}

// Stop cancels the heartbeat goroutine and blocks until it has fully exited.
// Safe to call when the monitor is not running.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

// State returns the last observed reachability state.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers a new transition listener and returns its channel. The
// channel is buffered; if a subscriber stops draining, further transitions
// for it are dropped rather than blocking the heartbeat loop.
func (m *Monitor) Subscribe() <-chan Transition {
	ch := make(chan Transition, 8)

	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()

	return ch
}

// ForceCheck runs one probe outside the heartbeat schedule, for example right
// before a manual sync attempt. It returns the resulting state.
func (m *Monitor) ForceCheck(ctx context.Context) State {
	m.probe(ctx)
	return m.State()
}

func (m *Monitor) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.interval)
	err := m.prober.Ping(probeCtx)
	cancel()

	next := StateOnline
	if err != nil {
		next = StateOffline
	}

	m.mu.Lock()
	prev := m.state
	if prev == next {
		m.mu.Unlock()
		return
	}
	m.state = next
	tr := Transition{From: prev, To: next, At: time.Now().UTC()}
	subs := make([]chan Transition, len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	m.logger.Info().
		Str("func", "Monitor.probe").
		Str("from", string(tr.From)).
		Str("to", string(tr.To)).
		Msg("connectivity state changed")

	for _, ch := range subs {
		select {
		case ch <- tr:
		default:
		}
	}
}
