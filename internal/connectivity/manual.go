package connectivity

import "sync"

// ManualSignal is a hand-driven Signal for tests, the counterpart of
// clock.MockClock.
type ManualSignal struct {
	mu        sync.Mutex
	online    bool
	nextToken int
	restored  map[int]func()
}

var _ Signal = (*ManualSignal)(nil)

func NewManualSignal(online bool) *ManualSignal {
	return &ManualSignal{
		online:   online,
		restored: make(map[int]func()),
	}
}

func (s *ManualSignal) IsOnline() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online
}

func (s *ManualSignal) OnRestored(fn func()) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := s.nextToken
	s.nextToken++
	s.restored[token] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.restored, token)
	}
}

// SetOnline flips the state, firing one-shot callbacks on an offline->online
// transition.
func (s *ManualSignal) SetOnline(online bool) {
	s.mu.Lock()
	wasOnline := s.online
	s.online = online

	var fire []func()
	if online && !wasOnline {
		fire = make([]func(), 0, len(s.restored))
		for _, fn := range s.restored {
			fire = append(fire, fn)
		}
		s.restored = make(map[int]func())
	}
	s.mu.Unlock()

	for _, fn := range fire {
		fn()
	}
}

// FireRestored delivers a restored event without changing the state,
// simulating a spurious platform signal.
func (s *ManualSignal) FireRestored() {
	s.mu.Lock()
	fire := make([]func(), 0, len(s.restored))
	for _, fn := range s.restored {
		fire = append(fire, fn)
	}
	s.restored = make(map[int]func())
	s.mu.Unlock()

	for _, fn := range fire {
		fn()
	}
}

func (s *ManualSignal) PendingCallbacks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.restored)
}
