package review

import (
	"strings"
	"time"
)

type Review struct {
	id           string
	restaurantID string
	author       Author
	rating       Rating
	comment      Comment
	updatedAt    time.Time
}

// NewConfirmed builds a review carrying a gateway-issued identifier.
func NewConfirmed(id, restaurantID, authorName string, ratingValue int, commentText string, updatedAt time.Time) (*Review, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrMissingID
	}
	return newReview(id, restaurantID, authorName, ratingValue, commentText, updatedAt)
}

// NewPending builds an optimistic local review under a fresh placeholder
// identifier. It becomes confirmed only through reconciliation.
func NewPending(restaurantID, authorName string, ratingValue int, commentText string, now time.Time) (*Review, error) {
	return newReview(NewPlaceholderID(), restaurantID, authorName, ratingValue, commentText, now)
}

func newReview(id, restaurantID, authorName string, ratingValue int, commentText string, updatedAt time.Time) (*Review, error) {
	if strings.TrimSpace(restaurantID) == "" {
		return nil, ErrMissingRestaurantID
	}
	author, err := NewAuthor(authorName)
	if err != nil {
		return nil, err
	}
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}
	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:           id,
		restaurantID: restaurantID,
		author:       author,
		rating:       rating,
		comment:      comment,
		updatedAt:    updatedAt,
	}, nil
}

func (r *Review) ID() string           { return r.id }
func (r *Review) RestaurantID() string { return r.restaurantID }
func (r *Review) Author() Author       { return r.author }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }

// Pending reports whether the review still awaits server confirmation.
func (r *Review) Pending() bool {
	return IsPlaceholderID(r.id)
}
