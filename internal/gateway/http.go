package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"restaurant-page/internal/domain/restaurant"
	"restaurant-page/internal/domain/review"
	"restaurant-page/internal/pkg/config"
)

// HTTPGateway talks to the upstream reviews API over plain HTTP/JSON.
type HTTPGateway struct {
	client *http.Client
	cfg    config.UpstreamConfig
}

var _ RemoteData = (*HTTPGateway)(nil)

func NewHTTPGateway(cfg config.UpstreamConfig) *HTTPGateway {
	return &HTTPGateway{
		client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
	}
}

func (g *HTTPGateway) FetchRestaurantByID(ctx context.Context, id string) (*restaurant.Restaurant, error) {
	endpoint, err := g.cfg.ResolveEndpoint("restaurants/" + url.PathEscape(id))
	if err != nil {
		return nil, WrapErr(KindNetwork, "failed to build restaurant endpoint", err)
	}

	resp, err := g.get(ctx, endpoint)
	if err != nil {
		return nil, WrapErr(KindNetwork, "restaurant fetch failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, WrapErr(KindNotFound, "restaurant "+id+" does not exist", nil)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, WrapErr(KindNetwork, "restaurant fetch returned "+resp.Status, nil)
	}

	var rec restaurantRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, WrapErr(KindNetwork, "failed to decode restaurant record", err)
	}
	r, err := rec.toDomain()
	if err != nil {
		return nil, WrapErr(KindNetwork, "upstream returned malformed restaurant record", err)
	}
	return r, nil
}

func (g *HTTPGateway) FetchReviewsByID(ctx context.Context, restaurantID string) ([]*review.Review, error) {
	endpoint, err := g.cfg.ResolveEndpoint("reviews/?restaurant_id=" + url.QueryEscape(restaurantID))
	if err != nil {
		return nil, WrapErr(KindNetwork, "failed to build reviews endpoint", err)
	}

	resp, err := g.get(ctx, endpoint)
	if err != nil {
		return nil, WrapErr(KindNetwork, "reviews fetch failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, WrapErr(KindNetwork, "reviews fetch returned "+resp.Status, nil)
	}

	var recs []reviewRecord
	if err := json.NewDecoder(resp.Body).Decode(&recs); err != nil {
		return nil, WrapErr(KindNetwork, "failed to decode review records", err)
	}

	reviews := make([]*review.Review, 0, len(recs))
	for _, rec := range recs {
		rv, err := rec.toDomain()
		if err != nil {
			return nil, WrapErr(KindNetwork, "upstream returned malformed review record", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, nil
}

func (g *HTTPGateway) CreateReview(ctx context.Context, payload ReviewPayload) (*review.Review, error) {
	endpoint, err := g.cfg.ResolveEndpoint("reviews/")
	if err != nil {
		return nil, WrapErr(KindNetwork, "failed to build reviews endpoint", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, WrapErr(KindValidation, "failed to encode review payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, WrapErr(KindNetwork, "failed to build create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, WrapErr(KindNetwork, "review create failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, WrapErr(KindValidation, "upstream rejected review: "+string(detail), nil)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, WrapErr(KindNetwork, "review create returned "+resp.Status, nil)
	}

	var rec reviewRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, WrapErr(KindNetwork, "failed to decode created review", err)
	}
	rv, err := rec.toDomain()
	if err != nil {
		return nil, WrapErr(KindNetwork, "upstream returned malformed created review", err)
	}
	return rv, nil
}

// Ping reports upstream reachability. Any HTTP response counts as reachable;
// only a transport-level failure means the link is down.
func (g *HTTPGateway) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.BaseURL, nil)
	if err != nil {
		return err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (g *HTTPGateway) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return g.client.Do(req)
}
