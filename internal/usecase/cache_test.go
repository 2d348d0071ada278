//go:build unit

package usecase_test

import (
	"context"
	"sync"
	"testing"

	"restaurant-page/internal/domain/review"
	"restaurant-page/internal/gateway"
	"restaurant-page/internal/usecase"
	"restaurant-page/tests/common/builder"
	gatewaymock "restaurant-page/tests/mock/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCache(t *testing.T) (*usecase.RecordCache, *gatewaymock.MockRemoteData, *renderSpy) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := gatewaymock.NewMockRemoteData(ctrl)
	spy := &renderSpy{}
	cache := usecase.NewRecordCache("7", gw, spy, newTestLogger())
	return cache, gw, spy
}

func TestRecordCacheRestaurantMemoization(t *testing.T) {
	t.Run("second call returns the cached record without a second fetch", func(t *testing.T) {
		cache, gw, spy := newCache(t)

		r, err := builder.NewRestaurantBuilder().BuildDomain()
		require.NoError(t, err)
		gw.EXPECT().FetchRestaurantByID(gomock.Any(), "7").Return(r, nil).Times(1)

		first, err := cache.GetOrFetchRestaurant(context.Background())
		require.NoError(t, err)
		second, err := cache.GetOrFetchRestaurant(context.Background())
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, spy.PageRenders())
	})

	t.Run("fetch failure leaves the slot unpopulated so a later call retries", func(t *testing.T) {
		cache, gw, _ := newCache(t)

		r, err := builder.NewRestaurantBuilder().BuildDomain()
		require.NoError(t, err)
		gomock.InOrder(
			gw.EXPECT().FetchRestaurantByID(gomock.Any(), "7").
				Return(nil, gateway.WrapErr(gateway.KindNetwork, "down", nil)),
			gw.EXPECT().FetchRestaurantByID(gomock.Any(), "7").Return(r, nil),
		)

		_, err = cache.GetOrFetchRestaurant(context.Background())
		require.Error(t, err)
		assert.Nil(t, cache.Restaurant())

		got, err := cache.GetOrFetchRestaurant(context.Background())
		require.NoError(t, err)
		assert.Same(t, r, got)
	})

	t.Run("not-found failure is not cached either", func(t *testing.T) {
		cache, gw, _ := newCache(t)

		gw.EXPECT().FetchRestaurantByID(gomock.Any(), "7").
			Return(nil, gateway.WrapErr(gateway.KindNotFound, "missing", nil)).Times(1)

		_, err := cache.GetOrFetchRestaurant(context.Background())
		require.Error(t, err)
		assert.True(t, gateway.IsKind(err, gateway.KindNotFound))
		assert.Nil(t, cache.Restaurant())
	})
}

func TestRecordCacheReviewMemoization(t *testing.T) {
	t.Run("second call returns the cached sequence without a second fetch", func(t *testing.T) {
		cache, gw, spy := newCache(t)

		rv, err := builder.NewReviewBuilder().BuildConfirmedDomain()
		require.NoError(t, err)
		gw.EXPECT().FetchReviewsByID(gomock.Any(), "7").
			Return([]*review.Review{rv}, nil).Times(1)

		first, err := cache.GetOrFetchReviews(context.Background())
		require.NoError(t, err)
		second, err := cache.GetOrFetchReviews(context.Background())
		require.NoError(t, err)

		require.Len(t, first, 1)
		require.Len(t, second, 1)
		assert.Same(t, first[0], second[0])
		assert.Equal(t, 1, spy.ReviewRenders())
	})

	t.Run("concurrent first calls share one in-flight fetch", func(t *testing.T) {
		cache, gw, _ := newCache(t)

		release := make(chan struct{})
		gw.EXPECT().FetchReviewsByID(gomock.Any(), "7").
			DoAndReturn(func(context.Context, string) ([]*review.Review, error) {
				<-release
				return []*review.Review{}, nil
			}).Times(1)

		var wg sync.WaitGroup
		for range 2 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := cache.GetOrFetchReviews(context.Background())
				assert.NoError(t, err)
			}()
		}
		close(release)
		wg.Wait()
	})

	t.Run("empty sequence is a valid memoized success", func(t *testing.T) {
		cache, gw, _ := newCache(t)

		gw.EXPECT().FetchReviewsByID(gomock.Any(), "7").
			Return([]*review.Review{}, nil).Times(1)

		first, err := cache.GetOrFetchReviews(context.Background())
		require.NoError(t, err)
		assert.Empty(t, first)

		second, err := cache.GetOrFetchReviews(context.Background())
		require.NoError(t, err)
		assert.Empty(t, second)
	})

	t.Run("review fetch failure does not invalidate the cached restaurant", func(t *testing.T) {
		cache, gw, _ := newCache(t)

		r, err := builder.NewRestaurantBuilder().BuildDomain()
		require.NoError(t, err)
		gw.EXPECT().FetchRestaurantByID(gomock.Any(), "7").Return(r, nil).Times(1)
		gw.EXPECT().FetchReviewsByID(gomock.Any(), "7").
			Return(nil, gateway.WrapErr(gateway.KindNetwork, "down", nil)).Times(1)

		_, err = cache.GetOrFetchRestaurant(context.Background())
		require.NoError(t, err)
		_, err = cache.GetOrFetchReviews(context.Background())
		require.Error(t, err)

		// still served from cache, no second fetch expectation
		got, err := cache.GetOrFetchRestaurant(context.Background())
		require.NoError(t, err)
		assert.Same(t, r, got)
	})
}

func TestRecordCacheMutations(t *testing.T) {
	t.Run("append pending renders the review list", func(t *testing.T) {
		cache, _, spy := newCache(t)

		pending, err := builder.NewReviewBuilder().BuildPendingDomain()
		require.NoError(t, err)
		cache.AppendPending(pending)

		require.Len(t, cache.Reviews(), 1)
		assert.Equal(t, 1, spy.ReviewRenders())
		require.Len(t, spy.LastReviews(), 1)
		assert.True(t, spy.LastReviews()[0].Pending)
	})

	t.Run("replace pending substitutes in place, preserving order", func(t *testing.T) {
		cache, gw, _ := newCache(t)

		first, err := builder.NewReviewBuilder().WithID("1").BuildConfirmedDomain()
		require.NoError(t, err)
		gw.EXPECT().FetchReviewsByID(gomock.Any(), "7").
			Return([]*review.Review{first}, nil).Times(1)
		_, err = cache.GetOrFetchReviews(context.Background())
		require.NoError(t, err)

		pending, err := builder.NewReviewBuilder().BuildPendingDomain()
		require.NoError(t, err)
		cache.AppendPending(pending)

		tail, err := builder.NewReviewBuilder().WithID("2").BuildConfirmedDomain()
		require.NoError(t, err)
		cache.AppendConfirmed(tail)

		confirmed, err := builder.NewReviewBuilder().WithID("srv-42").BuildConfirmedDomain()
		require.NoError(t, err)
		cache.ReplacePending(pending.ID(), confirmed)

		got := cache.Reviews()
		require.Len(t, got, 3)
		assert.Equal(t, "1", got[0].ID())
		assert.Equal(t, "srv-42", got[1].ID())
		assert.Equal(t, "2", got[2].ID())
	})

	t.Run("replace with absent placeholder is a logged no-op", func(t *testing.T) {
		cache, _, spy := newCache(t)

		confirmed, err := builder.NewReviewBuilder().BuildConfirmedDomain()
		require.NoError(t, err)
		cache.ReplacePending(review.NewPlaceholderID(), confirmed)

		assert.Empty(t, cache.Reviews())
		assert.Equal(t, 0, spy.ReviewRenders())
	})

	t.Run("pending appended before the fetch survives at the tail", func(t *testing.T) {
		cache, gw, _ := newCache(t)

		pending, err := builder.NewReviewBuilder().BuildPendingDomain()
		require.NoError(t, err)
		cache.AppendPending(pending)

		fetched, err := builder.NewReviewBuilder().WithID("1").BuildConfirmedDomain()
		require.NoError(t, err)
		gw.EXPECT().FetchReviewsByID(gomock.Any(), "7").
			Return([]*review.Review{fetched}, nil).Times(1)

		got, err := cache.GetOrFetchReviews(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID())
		assert.Equal(t, pending.ID(), got[1].ID())
	})
}
