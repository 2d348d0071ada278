package api

import (
	"errors"

	"restaurant-page/internal/domain/review"
	"restaurant-page/internal/gateway"
)

// isValidationErr covers both local domain validation and upstream
// validation rejections; both mean the payload itself is bad.
func isValidationErr(err error) bool {
	if gateway.IsKind(err, gateway.KindValidation) {
		return true
	}
	return errors.Is(err, review.ErrInvalidRating) ||
		errors.Is(err, review.ErrEmptyComment) ||
		errors.Is(err, review.ErrCommentTooLong) ||
		errors.Is(err, review.ErrEmptyAuthor) ||
		errors.Is(err, review.ErrAuthorTooLong)
}
