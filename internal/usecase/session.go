package usecase

import (
	"log/slog"
	"sync"

	"restaurant-page/internal/connectivity"
	"restaurant-page/internal/gateway"
	"restaurant-page/internal/pkg/clock"
	"restaurant-page/internal/pkg/config"
)

// Session owns the page-scoped state for one restaurant: the record cache
// and the submission queue bound to it. It lives from first page access to
// service shutdown; nothing in it is durable.
type Session struct {
	Cache *RecordCache
	Queue *SubmissionQueue
}

func NewSession(restaurantID string, gw gateway.RemoteData, sig connectivity.Signal, clk clock.Clock, renderer Renderer, logger *slog.Logger, cfg config.SubmissionConfig) *Session {
	cache := NewRecordCache(restaurantID, gw, renderer, logger)
	queue := NewSubmissionQueue(cache, gw, sig, clk, logger, cfg.MaxReconcileAttempts)
	return &Session{Cache: cache, Queue: queue}
}

func (s *Session) Close() {
	s.Queue.Close()
}

// Registry hands out exactly one session per restaurant id.
type Registry struct {
	newSession func(restaurantID string) *Session

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(gw gateway.RemoteData, sig connectivity.Signal, clk clock.Clock, renderer Renderer, logger *slog.Logger, cfg config.SubmissionConfig) *Registry {
	return &Registry{
		newSession: func(restaurantID string) *Session {
			return NewSession(restaurantID, gw, sig, clk, renderer, logger, cfg)
		},
		sessions: make(map[string]*Session),
	}
}

func (r *Registry) GetOrCreate(restaurantID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[restaurantID]; ok {
		return s
	}
	s := r.newSession(restaurantID)
	r.sessions[restaurantID] = s
	return s
}

func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
