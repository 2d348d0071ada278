//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"restaurant-page/internal/connectivity"
	"restaurant-page/internal/domain/review"
	"restaurant-page/internal/gateway"
	"restaurant-page/internal/pkg/clock"
	"restaurant-page/internal/pkg/config"
	"restaurant-page/internal/usecase"
	"restaurant-page/tests/common/builder"
	gatewaymock "restaurant-page/tests/mock/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPageService(t *testing.T, online bool) (usecase.PageService, *gatewaymock.MockRemoteData) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := gatewaymock.NewMockRemoteData(ctrl)
	sig := connectivity.NewManualSignal(online)
	clk := clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	registry := usecase.NewRegistry(gw, sig, clk, usecase.NopRenderer{}, newTestLogger(), config.SubmissionConfig{MaxReconcileAttempts: 3})
	t.Cleanup(registry.CloseAll)
	return usecase.NewPageService(registry, newTestLogger()), gw
}

func TestGetPage(t *testing.T) {
	t.Run("serves restaurant and reviews", func(t *testing.T) {
		svc, gw := newPageService(t, true)

		r, err := builder.NewRestaurantBuilder().BuildDomain()
		require.NoError(t, err)
		rv, err := builder.NewReviewBuilder().BuildConfirmedDomain()
		require.NoError(t, err)
		gw.EXPECT().FetchRestaurantByID(gomock.Any(), "7").Return(r, nil).Times(1)
		gw.EXPECT().FetchReviewsByID(gomock.Any(), "7").Return([]*review.Review{rv}, nil).Times(1)

		page, err := svc.GetPage(context.Background(), "7")
		require.NoError(t, err)

		require.NotNil(t, page.Restaurant)
		assert.Equal(t, "Mission Chinese Food", page.Restaurant.Name)
		require.Len(t, page.Reviews, 1)
		assert.Equal(t, "991", page.Reviews[0].ID)

		// second page load hits the session cache only
		_, err = svc.GetPage(context.Background(), "7")
		require.NoError(t, err)
	})

	t.Run("missing id maps to not found", func(t *testing.T) {
		svc, _ := newPageService(t, true)

		_, err := svc.GetPage(context.Background(), "")
		require.ErrorIs(t, err, usecase.ErrRestaurantNotFound)
	})

	t.Run("unknown restaurant maps to not found", func(t *testing.T) {
		svc, gw := newPageService(t, true)

		gw.EXPECT().FetchRestaurantByID(gomock.Any(), "404").
			Return(nil, gateway.WrapErr(gateway.KindNotFound, "missing", nil)).Times(1)

		_, err := svc.GetPage(context.Background(), "404")
		require.ErrorIs(t, err, usecase.ErrRestaurantNotFound)
	})

	t.Run("restaurant fetch failure maps to upstream failure", func(t *testing.T) {
		svc, gw := newPageService(t, true)

		gw.EXPECT().FetchRestaurantByID(gomock.Any(), "7").
			Return(nil, gateway.WrapErr(gateway.KindNetwork, "down", nil)).Times(1)

		_, err := svc.GetPage(context.Background(), "7")
		require.ErrorIs(t, err, usecase.ErrUpstreamFailure)
	})

	t.Run("review fetch failure degrades to an empty review section", func(t *testing.T) {
		svc, gw := newPageService(t, true)

		r, err := builder.NewRestaurantBuilder().BuildDomain()
		require.NoError(t, err)
		gw.EXPECT().FetchRestaurantByID(gomock.Any(), "7").Return(r, nil).Times(1)
		gw.EXPECT().FetchReviewsByID(gomock.Any(), "7").
			Return(nil, gateway.WrapErr(gateway.KindNetwork, "down", nil)).Times(1)

		page, err := svc.GetPage(context.Background(), "7")
		require.NoError(t, err)

		require.NotNil(t, page.Restaurant)
		assert.Empty(t, page.Reviews)
	})
}

func TestSubmitReviewRouting(t *testing.T) {
	t.Run("online submission flows through the restaurant's queue", func(t *testing.T) {
		svc, gw := newPageService(t, true)

		confirmed, err := builder.NewReviewBuilder().BuildConfirmedDomain()
		require.NoError(t, err)
		gw.EXPECT().CreateReview(gomock.Any(), builder.NewReviewBuilder().BuildPayload()).
			Return(confirmed, nil).Times(1)

		result, err := svc.SubmitReview(context.Background(), builder.NewReviewBuilder().BuildSubmitRequest())
		require.NoError(t, err)
		assert.False(t, result.Deferred)
		assert.Equal(t, "991", result.Review.ID)
	})

	t.Run("missing restaurant id is rejected", func(t *testing.T) {
		svc, _ := newPageService(t, true)

		_, err := svc.SubmitReview(context.Background(), usecase.SubmitRequest{Name: "Ann", Rating: 5, Comments: "x"})
		require.ErrorIs(t, err, usecase.ErrRestaurantNotFound)
	})
}
