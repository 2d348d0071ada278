//go:build unit

package usecase_test

import (
	"io"
	"log/slog"
	"sync"

	"restaurant-page/internal/usecase"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// renderSpy records what the core pushed after each mutation.
type renderSpy struct {
	mu            sync.Mutex
	pageRenders   int
	reviewRenders int
	lastReviews   []usecase.ReviewView
}

var _ usecase.Renderer = (*renderSpy)(nil)

func (r *renderSpy) RenderPage(_ string, _ usecase.PageView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pageRenders++
}

func (r *renderSpy) RenderReviews(_ string, reviews []usecase.ReviewView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviewRenders++
	r.lastReviews = reviews
}

func (r *renderSpy) ReviewRenders() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reviewRenders
}

func (r *renderSpy) PageRenders() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pageRenders
}

func (r *renderSpy) LastReviews() []usecase.ReviewView {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastReviews
}
