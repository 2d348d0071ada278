package view

import (
	"log/slog"
	"sync"

	"restaurant-page/internal/usecase"
)

const (
	EventPage    = "page"
	EventReviews = "reviews"
)

// Event is one re-render pushed by the core after a cache mutation.
type Event struct {
	Type         string
	RestaurantID string
	Page         *usecase.PageView
	Reviews      []usecase.ReviewView
}

const subscriberBuffer = 8

// Broadcaster fans re-render events out to page subscribers. It derives
// everything from the snapshots the core hands it and keeps no state of its
// own beyond the subscriber list.
type Broadcaster struct {
	logger *slog.Logger

	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan Event
}

var _ usecase.Renderer = (*Broadcaster)(nil)

func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		logger: logger,
		subs:   make(map[string]map[int]chan Event),
	}
}

func (b *Broadcaster) RenderPage(restaurantID string, view usecase.PageView) {
	b.publish(Event{Type: EventPage, RestaurantID: restaurantID, Page: &view})
}

func (b *Broadcaster) RenderReviews(restaurantID string, reviews []usecase.ReviewView) {
	b.publish(Event{Type: EventReviews, RestaurantID: restaurantID, Reviews: reviews})
}

// Subscribe registers a listener for one restaurant's re-render events. The
// returned func tears the subscription down.
func (b *Broadcaster) Subscribe(restaurantID string) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	if b.subs[restaurantID] == nil {
		b.subs[restaurantID] = make(map[int]chan Event)
	}
	b.subs[restaurantID][id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if listeners, ok := b.subs[restaurantID]; ok {
			if _, ok := listeners[id]; ok {
				delete(listeners, id)
				close(ch)
			}
			if len(listeners) == 0 {
				delete(b.subs, restaurantID)
			}
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

func (b *Broadcaster) publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs[ev.RestaurantID] {
		select {
		case ch <- ev:
		default:
			// Slow consumer; dropping is fine, the next event carries the
			// full snapshot anyway.
			b.logger.Debug("dropping render event for slow subscriber",
				"restaurant_id", ev.RestaurantID, "type", ev.Type)
		}
	}
}
