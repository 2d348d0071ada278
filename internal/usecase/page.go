package usecase

import (
	"context"
	"log/slog"

	"restaurant-page/internal/gateway"
	"restaurant-page/internal/pkg/errs"
)

var (
	ErrRestaurantNotFound = errs.New("restaurant not found")
	ErrUpstreamFailure    = errs.New("upstream fetch failed")
)

// PageService is the handler-facing surface of the page core.
type PageService interface {
	// GetPage loads the restaurant and its reviews through the session
	// cache. A review fetch failure degrades to an empty review section
	// rather than failing the page.
	GetPage(ctx context.Context, restaurantID string) (*PageView, error)

	// SubmitReview routes the submission through the restaurant's
	// submission queue; the result says whether the send was deferred.
	SubmitReview(ctx context.Context, req SubmitRequest) (*SubmitResult, error)
}

type pageServiceImpl struct {
	registry *Registry
	logger   *slog.Logger
}

func NewPageService(registry *Registry, logger *slog.Logger) PageService {
	return &pageServiceImpl{registry: registry, logger: logger}
}

func (s *pageServiceImpl) GetPage(ctx context.Context, restaurantID string) (*PageView, error) {
	if restaurantID == "" {
		return nil, errs.Mark(errs.New("missing restaurant id"), ErrRestaurantNotFound)
	}

	sess := s.registry.GetOrCreate(restaurantID)

	r, err := sess.Cache.GetOrFetchRestaurant(ctx)
	if err != nil {
		if gateway.IsKind(err, gateway.KindNotFound) {
			return nil, errs.Mark(err, ErrRestaurantNotFound)
		}
		return nil, errs.Mark(err, ErrUpstreamFailure)
	}

	view := PageView{Restaurant: NewRestaurantView(r)}

	reviews, err := sess.Cache.GetOrFetchReviews(ctx)
	if err != nil {
		// Degrade to the "no reviews yet" section; the restaurant slot in
		// the cache is unaffected by this failure.
		s.logger.Warn("review fetch failed, serving page without reviews",
			"restaurant_id", restaurantID, "error", err)
		view.Reviews = []ReviewView{}
		return &view, nil
	}

	view.Reviews = NewReviewViews(reviews)
	return &view, nil
}

func (s *pageServiceImpl) SubmitReview(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	if req.RestaurantID == "" {
		return nil, errs.Mark(errs.New("missing restaurant id"), ErrRestaurantNotFound)
	}
	sess := s.registry.GetOrCreate(req.RestaurantID)
	return sess.Queue.Submit(ctx, req)
}
