package usecase

import (
	"time"

	"restaurant-page/internal/domain/restaurant"
	"restaurant-page/internal/domain/review"
)

type RestaurantView struct {
	ID             string
	Name           string
	Address        string
	CuisineType    string
	Lat            float64
	Lng            float64
	Photograph     string
	OperatingHours map[string]string
}

type ReviewView struct {
	ID           string
	RestaurantID string
	Name         string
	Rating       int
	Comments     string
	UpdatedAt    time.Time
	Pending      bool
}

type PageView struct {
	Restaurant *RestaurantView
	Reviews    []ReviewView
}

// Renderer is the push-side view consumer. The core invokes it after every
// cache mutation; it never mutates core state and holds no state the core
// depends on.
type Renderer interface {
	RenderPage(restaurantID string, view PageView)
	RenderReviews(restaurantID string, reviews []ReviewView)
}

// NopRenderer satisfies Renderer where no view surface is attached.
type NopRenderer struct{}

func (NopRenderer) RenderPage(string, PageView)        {}
func (NopRenderer) RenderReviews(string, []ReviewView) {}

func NewRestaurantView(r *restaurant.Restaurant) *RestaurantView {
	latlng := r.Latlng()
	return &RestaurantView{
		ID:             r.ID(),
		Name:           r.Name(),
		Address:        r.Address(),
		CuisineType:    r.CuisineType(),
		Lat:            latlng.Lat,
		Lng:            latlng.Lng,
		Photograph:     r.Photograph(),
		OperatingHours: r.OperatingHours(),
	}
}

func NewReviewView(rv *review.Review) ReviewView {
	return ReviewView{
		ID:           rv.ID(),
		RestaurantID: rv.RestaurantID(),
		Name:         rv.Author().String(),
		Rating:       rv.Rating().Value(),
		Comments:     rv.Comment().String(),
		UpdatedAt:    rv.UpdatedAt(),
		Pending:      rv.Pending(),
	}
}

func NewReviewViews(reviews []*review.Review) []ReviewView {
	views := make([]ReviewView, len(reviews))
	for i, rv := range reviews {
		views[i] = NewReviewView(rv)
	}
	return views
}
