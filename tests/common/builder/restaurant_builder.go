//go:build unit

package builder

import (
	domrestaurant "restaurant-page/internal/domain/restaurant"
)

type RestaurantBuilder struct {
	ID             string
	Name           string
	Address        string
	CuisineType    string
	Lat            float64
	Lng            float64
	Photograph     string
	OperatingHours map[string]string
}

func NewRestaurantBuilder() *RestaurantBuilder {
	return &RestaurantBuilder{
		ID:          "7",
		Name:        "Mission Chinese Food",
		Address:     "171 E Broadway, New York, NY 10002",
		CuisineType: "Asian",
		Lat:         40.713829,
		Lng:         -73.989667,
		Photograph:  "7.jpg",
		OperatingHours: map[string]string{
			"Monday": "5:30 pm - 11:00 pm",
			"Sunday": "12:00 pm - 3:00 pm, 5:30 pm - 11:00 pm",
		},
	}
}

func (b *RestaurantBuilder) BuildDomain() (*domrestaurant.Restaurant, error) {
	return domrestaurant.New(
		b.ID,
		b.Name,
		b.Address,
		b.CuisineType,
		domrestaurant.Coordinates{Lat: b.Lat, Lng: b.Lng},
		b.Photograph,
		b.OperatingHours,
	)
}

// Fluent builder methods
func (b *RestaurantBuilder) WithID(id string) *RestaurantBuilder {
	b.ID = id
	return b
}

func (b *RestaurantBuilder) WithName(name string) *RestaurantBuilder {
	b.Name = name
	return b
}
