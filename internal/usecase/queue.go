package usecase

import (
	"context"
	"log/slog"
	"sync"

	"restaurant-page/internal/connectivity"
	"restaurant-page/internal/domain/review"
	"restaurant-page/internal/gateway"
	"restaurant-page/internal/pkg/clock"
)

// DeferredNotice is surfaced to the user when a submission is queued offline.
const DeferredNotice = "You are offline, your review will be sent to the server after you reconnect"

type SubmitRequest struct {
	RestaurantID string
	Name         string
	Rating       int
	Comments     string
}

type SubmitResult struct {
	Review ReviewView
	// Deferred marks the offline path: the review is a local placeholder
	// awaiting reconciliation.
	Deferred bool
	Notice   string
}

// pendingSubmission is one queued offline payload. It owns its own one-shot
// connectivity subscription; concurrent offline submissions reconcile
// independently.
type pendingSubmission struct {
	placeholderID string
	payload       gateway.ReviewPayload
	attempts      int
	cancel        func()
}

// SubmissionQueue accepts review submissions, sending immediately when the
// upstream link is up and otherwise parking them as pending placeholders in
// the cache until connectivity is restored.
type SubmissionQueue struct {
	cache       *RecordCache
	gateway     gateway.RemoteData
	signal      connectivity.Signal
	clock       clock.Clock
	logger      *slog.Logger
	maxAttempts int

	mu      sync.Mutex
	pending map[string]*pendingSubmission
	closed  bool
}

func NewSubmissionQueue(cache *RecordCache, gw gateway.RemoteData, sig connectivity.Signal, clk clock.Clock, logger *slog.Logger, maxAttempts int) *SubmissionQueue {
	return &SubmissionQueue{
		cache:       cache,
		gateway:     gw,
		signal:      sig,
		clock:       clk,
		logger:      logger,
		maxAttempts: maxAttempts,
		pending:     make(map[string]*pendingSubmission),
	}
}

// Submit sends the review now when online. When offline it appends an
// optimistic placeholder to the cache and defers the send to the next
// connectivity-restored event. An online-path gateway failure is returned to
// the caller without queueing, so the user may resubmit.
func (q *SubmissionQueue) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	payload := gateway.ReviewPayload{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Rating:       req.Rating,
		Comments:     req.Comments,
	}

	if q.signal.IsOnline() {
		confirmed, err := q.gateway.CreateReview(ctx, payload)
		if err != nil {
			return nil, err
		}
		q.cache.AppendConfirmed(confirmed)
		return &SubmitResult{Review: NewReviewView(confirmed)}, nil
	}

	rv, err := review.NewPending(req.RestaurantID, req.Name, req.Rating, req.Comments, q.clock.Now())
	if err != nil {
		return nil, err
	}

	q.cache.AppendPending(rv)
	q.enqueue(rv.ID(), payload)

	return &SubmitResult{
		Review:   NewReviewView(rv),
		Deferred: true,
		Notice:   DeferredNotice,
	}, nil
}

// PendingCount reports submissions still awaiting reconciliation.
func (q *SubmissionQueue) PendingCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Close cancels outstanding connectivity subscriptions. Queued payloads are
// lost with the session; they are not durable by design.
func (q *SubmissionQueue) Close() {
	q.mu.Lock()
	q.closed = true
	cancels := make([]func(), 0, len(q.pending))
	for _, sub := range q.pending {
		if sub.cancel != nil {
			cancels = append(cancels, sub.cancel)
		}
	}
	q.pending = make(map[string]*pendingSubmission)
	q.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

func (q *SubmissionQueue) enqueue(placeholderID string, payload gateway.ReviewPayload) {
	sub := &pendingSubmission{placeholderID: placeholderID, payload: payload}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.pending[placeholderID] = sub
	q.mu.Unlock()

	q.subscribe(sub)
	q.logger.Info("review submission deferred",
		"restaurant_id", payload.RestaurantID, "placeholder_id", placeholderID)
}

func (q *SubmissionQueue) subscribe(sub *pendingSubmission) {
	cancel := q.signal.OnRestored(func() {
		q.reconcile(sub.placeholderID)
	})

	q.mu.Lock()
	if _, ok := q.pending[sub.placeholderID]; !ok {
		// Lost a race with Close; drop the fresh subscription too.
		q.mu.Unlock()
		cancel()
		return
	}
	sub.cancel = cancel
	q.mu.Unlock()
}

// reconcile runs on a connectivity-restored event for one queued submission.
// The signal can fire spuriously before the link is truly usable, so the
// live state is re-checked first.
func (q *SubmissionQueue) reconcile(placeholderID string) {
	q.mu.Lock()
	sub, ok := q.pending[placeholderID]
	q.mu.Unlock()
	if !ok {
		return
	}

	if !q.signal.IsOnline() {
		q.logger.Warn("restored signal fired while still offline, re-subscribing",
			"placeholder_id", placeholderID)
		q.subscribe(sub)
		return
	}

	confirmed, err := q.gateway.CreateReview(context.Background(), sub.payload)
	if err != nil {
		sub.attempts++
		if sub.attempts >= q.maxAttempts {
			q.logger.Error("giving up on deferred review, leaving it pending",
				"placeholder_id", placeholderID, "attempts", sub.attempts, "error", err)
			q.mu.Lock()
			delete(q.pending, placeholderID)
			q.mu.Unlock()
			return
		}
		q.logger.Warn("deferred review send failed, awaiting next reconnect",
			"placeholder_id", placeholderID, "attempts", sub.attempts, "error", err)
		q.subscribe(sub)
		return
	}

	q.cache.ReplacePending(placeholderID, confirmed)

	q.mu.Lock()
	delete(q.pending, placeholderID)
	q.mu.Unlock()

	q.logger.Info("deferred review reconciled",
		"placeholder_id", placeholderID, "review_id", confirmed.ID())
}
