package response

import (
	"restaurant-page/internal/usecase"
)

type RestaurantResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Address        string            `json:"address"`
	CuisineType    string            `json:"cuisine_type"`
	Lat            float64           `json:"lat"`
	Lng            float64           `json:"lng"`
	Photograph     string            `json:"photograph"`
	OperatingHours map[string]string `json:"operating_hours"`
}

type ReviewResponse struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Rating       int    `json:"rating"`
	Comments     string `json:"comments"`
	UpdatedAt    int64  `json:"updated_at"`
	Pending      bool   `json:"pending"`
}

type PageResponse struct {
	Restaurant *RestaurantResponse `json:"restaurant"`
	Reviews    []*ReviewResponse   `json:"reviews"`
}

type SubmitReviewResponse struct {
	Review   *ReviewResponse `json:"review"`
	Deferred bool            `json:"deferred"`
	Notice   string          `json:"notice,omitempty"`
}

func FromRestaurantView(v *usecase.RestaurantView) *RestaurantResponse {
	if v == nil {
		return nil
	}
	return &RestaurantResponse{
		ID:             v.ID,
		Name:           v.Name,
		Address:        v.Address,
		CuisineType:    v.CuisineType,
		Lat:            v.Lat,
		Lng:            v.Lng,
		Photograph:     v.Photograph,
		OperatingHours: v.OperatingHours,
	}
}

func FromReviewView(v usecase.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:           v.ID,
		RestaurantID: v.RestaurantID,
		Name:         v.Name,
		Rating:       v.Rating,
		Comments:     v.Comments,
		UpdatedAt:    v.UpdatedAt.UnixMilli(),
		Pending:      v.Pending,
	}
}

func FromReviewViews(views []usecase.ReviewView) []*ReviewResponse {
	res := make([]*ReviewResponse, len(views))
	for i, v := range views {
		res[i] = FromReviewView(v)
	}
	return res
}

func FromPageView(v *usecase.PageView) *PageResponse {
	return &PageResponse{
		Restaurant: FromRestaurantView(v.Restaurant),
		Reviews:    FromReviewViews(v.Reviews),
	}
}

func FromSubmitResult(r *usecase.SubmitResult) *SubmitReviewResponse {
	return &SubmitReviewResponse{
		Review:   FromReviewView(r.Review),
		Deferred: r.Deferred,
		Notice:   r.Notice,
	}
}
