package connectivity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"restaurant-page/internal/pkg/config"
)

// CheckFunc probes the upstream link; a nil error means reachable.
type CheckFunc func(ctx context.Context) error

// Monitor derives an online/offline signal from periodic upstream probes.
type Monitor struct {
	check    CheckFunc
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger

	mu        sync.Mutex
	online    bool
	nextToken int
	restored  map[int]func()

	stop chan struct{}
	done chan struct{}
}

var _ Signal = (*Monitor)(nil)

func NewMonitor(check CheckFunc, cfg config.ProbeConfig, logger *slog.Logger) *Monitor {
	return &Monitor{
		check:    check,
		interval: cfg.Interval,
		timeout:  cfg.Timeout,
		logger:   logger,
		restored: make(map[int]func()),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start seeds the state with a synchronous probe and begins polling.
func (m *Monitor) Start(ctx context.Context) error {
	m.setOnline(m.probe(ctx))
	go m.loop()
	return nil
}

func (m *Monitor) Stop(context.Context) error {
	close(m.stop)
	<-m.done
	return nil
}

// IsOnline performs a live probe rather than returning the cached state; the
// poll loop can lag a transition and submissions must not queue spuriously.
func (m *Monitor) IsOnline() bool {
	online := m.probe(context.Background())
	m.setOnline(online)
	return online
}

func (m *Monitor) OnRestored(fn func()) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token := m.nextToken
	m.nextToken++
	m.restored[token] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.restored, token)
	}
}

func (m *Monitor) loop() {
	defer close(m.done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.setOnline(m.probe(context.Background()))
		}
	}
}

func (m *Monitor) probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	if err := m.check(ctx); err != nil {
		return false
	}
	return true
}

func (m *Monitor) setOnline(online bool) {
	m.mu.Lock()

	wasOnline := m.online
	m.online = online

	var fire []func()
	if online && !wasOnline {
		fire = make([]func(), 0, len(m.restored))
		for _, fn := range m.restored {
			fire = append(fire, fn)
		}
		m.restored = make(map[int]func())
		m.logger.Info("upstream connectivity restored", "callbacks", len(fire))
	} else if !online && wasOnline {
		m.logger.Warn("upstream connectivity lost")
	}
	m.mu.Unlock()

	// Callbacks run outside the lock so they may re-register.
	for _, fn := range fire {
		fn()
	}
}
