//go:build unit

package builder

import (
	"time"

	domreview "restaurant-page/internal/domain/review"
	"restaurant-page/internal/gateway"
	"restaurant-page/internal/usecase"
)

type ReviewBuilder struct {
	ID           string
	RestaurantID string
	Name         string
	Rating       int
	Comments     string
	UpdatedAt    time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:           "991",
		RestaurantID: "7",
		Name:         "Ann",
		Rating:       5,
		Comments:     "Excellent service!",
		UpdatedAt:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Build methods
func (r *ReviewBuilder) BuildConfirmedDomain() (*domreview.Review, error) {
	return domreview.NewConfirmed(r.ID, r.RestaurantID, r.Name, r.Rating, r.Comments, r.UpdatedAt)
}

func (r *ReviewBuilder) BuildPendingDomain() (*domreview.Review, error) {
	return domreview.NewPending(r.RestaurantID, r.Name, r.Rating, r.Comments, r.UpdatedAt)
}

func (r *ReviewBuilder) BuildPayload() gateway.ReviewPayload {
	return gateway.ReviewPayload{
		RestaurantID: r.RestaurantID,
		Name:         r.Name,
		Rating:       r.Rating,
		Comments:     r.Comments,
	}
}

func (r *ReviewBuilder) BuildSubmitRequest() usecase.SubmitRequest {
	return usecase.SubmitRequest{
		RestaurantID: r.RestaurantID,
		Name:         r.Name,
		Rating:       r.Rating,
		Comments:     r.Comments,
	}
}

// BuildSubmitBody is the JSON submission body as a mutable map for
// validation-boundary tests.
func (r *ReviewBuilder) BuildSubmitBody() map[string]any {
	return map[string]any{
		"name":     r.Name,
		"rating":   r.Rating,
		"comments": r.Comments,
	}
}

func (r *ReviewBuilder) BuildView() usecase.ReviewView {
	return usecase.ReviewView{
		ID:           r.ID,
		RestaurantID: r.RestaurantID,
		Name:         r.Name,
		Rating:       r.Rating,
		Comments:     r.Comments,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithID(id string) *ReviewBuilder {
	r.ID = id
	return r
}

func (r *ReviewBuilder) WithRestaurantID(restaurantID string) *ReviewBuilder {
	r.RestaurantID = restaurantID
	return r
}

func (r *ReviewBuilder) WithName(name string) *ReviewBuilder {
	r.Name = name
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComments(comments string) *ReviewBuilder {
	r.Comments = comments
	return r
}

func (r *ReviewBuilder) WithUpdatedAt(t time.Time) *ReviewBuilder {
	r.UpdatedAt = t
	return r
}
