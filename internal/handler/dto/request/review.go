package request

import (
	"restaurant-page/internal/usecase"
)

type SubmitReviewRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comments string `json:"comments" binding:"required,max=1000"`
}

func (r *SubmitReviewRequest) ToSubmit(restaurantID string) usecase.SubmitRequest {
	return usecase.SubmitRequest{
		RestaurantID: restaurantID,
		Name:         r.Name,
		Rating:       r.Rating,
		Comments:     r.Comments,
	}
}
