package gateway

import (
	"encoding/json"
	"time"

	"restaurant-page/internal/domain/restaurant"
	"restaurant-page/internal/domain/review"
)

// Wire records of the upstream reviews API. Identifiers arrive as JSON
// numbers but are opaque strings to the rest of the system; timestamps are
// epoch milliseconds.

type latlngRecord struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type restaurantRecord struct {
	ID             json.Number       `json:"id"`
	Name           string            `json:"name"`
	Address        string            `json:"address"`
	CuisineType    string            `json:"cuisine_type"`
	Latlng         latlngRecord      `json:"latlng"`
	Photograph     string            `json:"photograph"`
	OperatingHours map[string]string `json:"operating_hours"`
}

type reviewRecord struct {
	ID           json.Number `json:"id"`
	RestaurantID json.Number `json:"restaurant_id"`
	Name         string      `json:"name"`
	Rating       int         `json:"rating"`
	Comments     string      `json:"comments"`
	UpdatedAt    int64       `json:"updatedAt"`
}

func (r restaurantRecord) toDomain() (*restaurant.Restaurant, error) {
	return restaurant.New(
		r.ID.String(),
		r.Name,
		r.Address,
		r.CuisineType,
		restaurant.Coordinates{Lat: r.Latlng.Lat, Lng: r.Latlng.Lng},
		r.Photograph,
		r.OperatingHours,
	)
}

func (r reviewRecord) toDomain() (*review.Review, error) {
	return review.NewConfirmed(
		r.ID.String(),
		r.RestaurantID.String(),
		r.Name,
		r.Rating,
		r.Comments,
		time.UnixMilli(r.UpdatedAt),
	)
}
