//go:build unit

package view_test

import (
	"io"
	"log/slog"
	"testing"

	"restaurant-page/internal/usecase"
	"restaurant-page/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBroadcaster() *view.Broadcaster {
	return view.NewBroadcaster(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBroadcasterSubscribe(t *testing.T) {
	t.Run("subscriber receives review re-renders for its restaurant", func(t *testing.T) {
		b := newBroadcaster()
		ch, cancel := b.Subscribe("7")
		defer cancel()

		reviews := []usecase.ReviewView{{ID: "991", Name: "Ann", Rating: 5}}
		b.RenderReviews("7", reviews)

		ev := <-ch
		assert.Equal(t, view.EventReviews, ev.Type)
		assert.Equal(t, "7", ev.RestaurantID)
		require.Len(t, ev.Reviews, 1)
		assert.Equal(t, "991", ev.Reviews[0].ID)
	})

	t.Run("events are isolated per restaurant", func(t *testing.T) {
		b := newBroadcaster()
		ch, cancel := b.Subscribe("7")
		defer cancel()

		b.RenderReviews("8", []usecase.ReviewView{{ID: "1"}})

		select {
		case ev := <-ch:
			t.Fatalf("unexpected event for restaurant %s", ev.RestaurantID)
		default:
		}
	})

	t.Run("cancel closes the channel", func(t *testing.T) {
		b := newBroadcaster()
		ch, cancel := b.Subscribe("7")
		cancel()

		_, ok := <-ch
		assert.False(t, ok)

		// double cancel is harmless
		cancel()
	})

	t.Run("page render carries the full snapshot", func(t *testing.T) {
		b := newBroadcaster()
		ch, cancel := b.Subscribe("7")
		defer cancel()

		b.RenderPage("7", usecase.PageView{Restaurant: &usecase.RestaurantView{ID: "7", Name: "Mission Chinese Food"}})

		ev := <-ch
		assert.Equal(t, view.EventPage, ev.Type)
		require.NotNil(t, ev.Page)
		assert.Equal(t, "Mission Chinese Food", ev.Page.Restaurant.Name)
	})

	t.Run("slow subscriber does not block the publisher", func(t *testing.T) {
		b := newBroadcaster()
		_, cancel := b.Subscribe("7")
		defer cancel()

		// more events than the subscriber buffer holds; publish must not block
		for range 64 {
			b.RenderReviews("7", nil)
		}
	})
}
