package restaurant

import "strings"

type Coordinates struct {
	Lat float64
	Lng float64
}

// Restaurant is immutable once fetched; the cache hands out the same value
// for the whole page session.
type Restaurant struct {
	id             string
	name           string
	address        string
	cuisineType    string
	latlng         Coordinates
	photograph     string
	operatingHours map[string]string
}

func New(id, name, address, cuisineType string, latlng Coordinates, photograph string, operatingHours map[string]string) (*Restaurant, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrMissingID
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrMissingName
	}

	hours := make(map[string]string, len(operatingHours))
	for day, span := range operatingHours {
		hours[day] = span
	}

	return &Restaurant{
		id:             id,
		name:           name,
		address:        address,
		cuisineType:    cuisineType,
		latlng:         latlng,
		photograph:     photograph,
		operatingHours: hours,
	}, nil
}

func (r *Restaurant) ID() string          { return r.id }
func (r *Restaurant) Name() string        { return r.name }
func (r *Restaurant) Address() string     { return r.address }
func (r *Restaurant) CuisineType() string { return r.cuisineType }
func (r *Restaurant) Latlng() Coordinates { return r.latlng }
func (r *Restaurant) Photograph() string  { return r.photograph }

// OperatingHours returns a copy so callers cannot mutate the cached record.
func (r *Restaurant) OperatingHours() map[string]string {
	hours := make(map[string]string, len(r.operatingHours))
	for day, span := range r.operatingHours {
		hours[day] = span
	}
	return hours
}
