package gateway

import (
	"context"

	"restaurant-page/internal/domain/restaurant"
	"restaurant-page/internal/domain/review"
)

// ReviewPayload is the submission body sent to the upstream reviews API.
type ReviewPayload struct {
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Rating       int    `json:"rating"`
	Comments     string `json:"comments"`
}

// RemoteData is the upstream reviews API consumed by the page core.
//
// FetchReviewsByID treats an empty list as a valid success, distinct from a
// network failure. CreateReview returns the server-confirmed review with its
// gateway-issued identifier.
type RemoteData interface {
	FetchRestaurantByID(ctx context.Context, id string) (*restaurant.Restaurant, error)
	FetchReviewsByID(ctx context.Context, restaurantID string) ([]*review.Review, error)
	CreateReview(ctx context.Context, payload ReviewPayload) (*review.Review, error)
}
