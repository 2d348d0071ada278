package review

import "errors"

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrEmptyComment   = errors.New("comment cannot be empty")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")
	ErrEmptyAuthor    = errors.New("author name cannot be empty")
	ErrAuthorTooLong  = errors.New("author name exceeds maximum length")

	ErrMissingID           = errors.New("review id cannot be empty")
	ErrMissingRestaurantID = errors.New("restaurant id cannot be empty")
)
