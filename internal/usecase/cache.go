package usecase

import (
	"context"
	"log/slog"
	"sync"

	"restaurant-page/internal/domain/restaurant"
	"restaurant-page/internal/domain/review"
	"restaurant-page/internal/gateway"

	"golang.org/x/sync/singleflight"
)

// RecordCache is the per-session memoized store of one restaurant and its
// review sequence. Each entity is fetched from the gateway at most once per
// session; after the review fetch only the submission queue may append or
// replace entries. A failed fetch leaves the slot unpopulated so a later
// call may retry.
type RecordCache struct {
	restaurantID string
	gateway      gateway.RemoteData
	renderer     Renderer
	logger       *slog.Logger

	group singleflight.Group

	mu             sync.Mutex
	restaurant     *restaurant.Restaurant
	reviews        []*review.Review
	reviewsFetched bool
}

func NewRecordCache(restaurantID string, gw gateway.RemoteData, renderer Renderer, logger *slog.Logger) *RecordCache {
	return &RecordCache{
		restaurantID: restaurantID,
		gateway:      gw,
		renderer:     renderer,
		logger:       logger,
	}
}

func (c *RecordCache) RestaurantID() string {
	return c.restaurantID
}

// GetOrFetchRestaurant returns the cached restaurant, fetching it on first
// use. Concurrent first calls share a single in-flight gateway request.
func (c *RecordCache) GetOrFetchRestaurant(ctx context.Context) (*restaurant.Restaurant, error) {
	c.mu.Lock()
	if c.restaurant != nil {
		r := c.restaurant
		c.mu.Unlock()
		return r, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do("restaurant", func() (any, error) {
		r, err := c.gateway.FetchRestaurantByID(ctx, c.restaurantID)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.restaurant = r
		view := c.pageViewLocked()
		c.mu.Unlock()

		c.renderer.RenderPage(c.restaurantID, view)
		return r, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*restaurant.Restaurant), nil
}

// GetOrFetchReviews returns the cached review sequence, fetching it on first
// use. A second call before the first resolves does not issue a second
// fetch. Pending reviews appended before the fetch resolved are kept at the
// tail of the fetched sequence.
func (c *RecordCache) GetOrFetchReviews(ctx context.Context) ([]*review.Review, error) {
	c.mu.Lock()
	if c.reviewsFetched {
		rvs := c.reviewsLocked()
		c.mu.Unlock()
		return rvs, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do("reviews", func() (any, error) {
		fetched, err := c.gateway.FetchReviewsByID(ctx, c.restaurantID)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if !c.reviewsFetched {
			// Offline submissions may have landed before the fetch; they
			// stay at the tail of the freshly fetched sequence.
			pending := make([]*review.Review, 0)
			for _, rv := range c.reviews {
				if rv.Pending() {
					pending = append(pending, rv)
				}
			}
			c.reviews = append(fetched, pending...)
			c.reviewsFetched = true
		}
		rvs := c.reviewsLocked()
		views := NewReviewViews(rvs)
		c.mu.Unlock()

		c.renderer.RenderReviews(c.restaurantID, views)
		return rvs, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*review.Review), nil
}

// AppendConfirmed inserts a gateway-confirmed review at the tail, creating
// the sequence slot if no fetch has populated it yet.
func (c *RecordCache) AppendConfirmed(rv *review.Review) {
	c.appendTail(rv)
}

// AppendPending inserts a pending review at the tail.
func (c *RecordCache) AppendPending(rv *review.Review) {
	c.appendTail(rv)
}

// ReplacePending substitutes the confirmed review at the placeholder's
// position, preserving original submission order. The no-op on a missing
// placeholder is deliberate: reconciliation can race with a fresh fetch that
// already replaced the whole sequence.
func (c *RecordCache) ReplacePending(placeholderID string, confirmed *review.Review) {
	c.mu.Lock()
	replaced := false
	for i, rv := range c.reviews {
		if rv.ID() == placeholderID {
			c.reviews[i] = confirmed
			replaced = true
			break
		}
	}
	views := NewReviewViews(c.reviewsLocked())
	c.mu.Unlock()

	if !replaced {
		c.logger.Warn("placeholder absent on reconciliation, review sequence already refreshed",
			"restaurant_id", c.restaurantID, "placeholder_id", placeholderID)
		return
	}
	c.renderer.RenderReviews(c.restaurantID, views)
}

// Reviews returns the current sequence without triggering a fetch.
func (c *RecordCache) Reviews() []*review.Review {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reviewsLocked()
}

// Restaurant returns the cached restaurant without triggering a fetch.
func (c *RecordCache) Restaurant() *restaurant.Restaurant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.restaurant
}

// Snapshot derives the full page view from the current cache contents.
func (c *RecordCache) Snapshot() PageView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageViewLocked()
}

func (c *RecordCache) appendTail(rv *review.Review) {
	c.mu.Lock()
	c.reviews = append(c.reviews, rv)
	views := NewReviewViews(c.reviewsLocked())
	c.mu.Unlock()

	c.renderer.RenderReviews(c.restaurantID, views)
}

func (c *RecordCache) reviewsLocked() []*review.Review {
	out := make([]*review.Review, len(c.reviews))
	copy(out, c.reviews)
	return out
}

func (c *RecordCache) pageViewLocked() PageView {
	var view PageView
	if c.restaurant != nil {
		view.Restaurant = NewRestaurantView(c.restaurant)
	}
	view.Reviews = NewReviewViews(c.reviews)
	return view
}
