//go:build unit

package connectivity_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"restaurant-page/internal/connectivity"
	"restaurant-page/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMonitor(reachable *atomic.Bool) *connectivity.Monitor {
	check := func(context.Context) error {
		if reachable.Load() {
			return nil
		}
		return errors.New("unreachable")
	}
	cfg := config.ProbeConfig{Interval: 10 * time.Millisecond, Timeout: 10 * time.Millisecond}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return connectivity.NewMonitor(check, cfg, logger)
}

func TestMonitorIsOnline(t *testing.T) {
	var reachable atomic.Bool
	m := newMonitor(&reachable)

	assert.False(t, m.IsOnline())

	reachable.Store(true)
	assert.True(t, m.IsOnline())
}

func TestMonitorOnRestored(t *testing.T) {
	t.Run("one-shot callback fires on the offline to online transition", func(t *testing.T) {
		var reachable atomic.Bool
		m := newMonitor(&reachable)
		require.False(t, m.IsOnline())

		fired := 0
		m.OnRestored(func() { fired++ })

		reachable.Store(true)
		require.True(t, m.IsOnline())
		assert.Equal(t, 1, fired)

		// one-shot: further transitions do not re-fire
		reachable.Store(false)
		require.False(t, m.IsOnline())
		reachable.Store(true)
		require.True(t, m.IsOnline())
		assert.Equal(t, 1, fired)
	})

	t.Run("callback registered after the transition waits for the next one", func(t *testing.T) {
		var reachable atomic.Bool
		reachable.Store(true)
		m := newMonitor(&reachable)
		require.True(t, m.IsOnline())

		fired := 0
		m.OnRestored(func() { fired++ })

		// already online; nothing may fire until an offline period ends
		require.True(t, m.IsOnline())
		assert.Equal(t, 0, fired)

		reachable.Store(false)
		require.False(t, m.IsOnline())
		reachable.Store(true)
		require.True(t, m.IsOnline())
		assert.Equal(t, 1, fired)
	})

	t.Run("independent callbacks do not cancel each other", func(t *testing.T) {
		var reachable atomic.Bool
		m := newMonitor(&reachable)
		require.False(t, m.IsOnline())

		var first, second bool
		cancelFirst := m.OnRestored(func() { first = true })
		m.OnRestored(func() { second = true })
		cancelFirst()

		reachable.Store(true)
		require.True(t, m.IsOnline())

		assert.False(t, first, "cancelled callback must not fire")
		assert.True(t, second)
	})
}

func TestMonitorPolling(t *testing.T) {
	var reachable atomic.Bool
	m := newMonitor(&reachable)

	require.NoError(t, m.Start(context.Background()))
	defer func() { _ = m.Stop(context.Background()) }()

	fired := make(chan struct{})
	m.OnRestored(func() { close(fired) })

	reachable.Store(true)

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("poll loop never observed the restored link")
	}
}
