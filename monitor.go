package authclient

import (
	"context"
	"sync"
	"time"
)

// defaultCheckInterval is one expiry check per minute.
const defaultCheckInterval = 60 * time.Second

// ExpirationMonitor periodically re-evaluates the stored credential and
// forces a logout once it expires. Expiry is a pure function of wall-clock
// time, so no event would otherwise tell the application about it; this is
// the only component that logs out without a user or network trigger.
type ExpirationMonitor struct {
	gateway  *Gateway
	interval time.Duration
	logger   Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// MonitorOption customizes monitor construction.
type MonitorOption func(*ExpirationMonitor)

// WithInterval overrides the check cadence, default 60s.
func WithInterval(interval time.Duration) MonitorOption {
	return func(m *ExpirationMonitor) {
		if interval > 0 {
			m.interval = interval
		}
	}
}

// WithMonitorLogger overrides the monitor logger.
func WithMonitorLogger(logger Logger) MonitorOption {
	return func(m *ExpirationMonitor) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewExpirationMonitor builds a monitor around the gateway. Call Start once
// at application startup.
func NewExpirationMonitor(gateway *Gateway, opts ...MonitorOption) *ExpirationMonitor {
	m := &ExpirationMonitor{
		gateway:  gateway,
		interval: defaultCheckInterval,
		logger:   gateway.logger,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Start launches the ticker goroutine. Starting an already running monitor
// is a no-op. The monitor stops when ctx is canceled or Stop is called.
func (m *ExpirationMonitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	go m.run(runCtx, m.done)
}

// Stop halts the ticker and waits for the in-flight tick, if any, to finish.
// Safe to call multiple times.
func (m *ExpirationMonitor) Stop() {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.cancel = nil
	m.done = nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

// CheckNow runs a single expiry check synchronously. Exposed so hosts and
// tests can force a tick without waiting out the interval.
func (m *ExpirationMonitor) CheckNow(ctx context.Context) {
	snapshot := m.gateway.State().Current()
	if !snapshot.Present() {
		return
	}

	if !m.gateway.IsAuthenticated() {
		m.logger.Warn("credential expired, forcing logout", "username", snapshot.Identity.Username)
		m.gateway.Logout(ctx)
	}
}

func (m *ExpirationMonitor) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.CheckNow(ctx)
		}
	}
}
