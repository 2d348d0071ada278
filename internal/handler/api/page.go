package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "restaurant-page/internal/handler/dto/request"
	resdto "restaurant-page/internal/handler/dto/response"
	"restaurant-page/internal/handler/httperr"
	"restaurant-page/internal/usecase"
	"restaurant-page/internal/view"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	svc         usecase.PageService
	broadcaster *view.Broadcaster
}

func NewPageHandler(svc usecase.PageService, broadcaster *view.Broadcaster) *PageHandler {
	return &PageHandler{svc: svc, broadcaster: broadcaster}
}

// GetPage serves the detail view of one restaurant: the record plus its
// review sequence, straight from the session cache.
func (h *PageHandler) GetPage(c *gin.Context) {
	id := c.Param("id")

	page, err := h.svc.GetPage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrRestaurantNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Restaurant not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Upstream fetch failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPageView(page))
}

// SubmitReview accepts a review for the restaurant. 201 means the upstream
// confirmed it; 202 means the upstream is unreachable and the review is
// queued as a pending placeholder until connectivity returns.
func (h *PageHandler) SubmitReview(c *gin.Context) {
	id := c.Param("id")

	var req reqdto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.svc.SubmitReview(c.Request.Context(), req.ToSubmit(id))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRestaurantNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Restaurant not found", nil)
		case isValidationErr(err):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Review rejected", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Review submission failed", nil)
		}
		return
	}

	if result.Deferred {
		c.JSON(http.StatusAccepted, resdto.FromSubmitResult(result))
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result))
}

// Events streams re-render events for one restaurant over SSE. Each event
// carries a full snapshot, so a late subscriber only needs the next one.
func (h *PageHandler) Events(c *gin.Context) {
	id := c.Param("id")

	ch, cancel := h.broadcaster.Subscribe(id)
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(_ io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(ev.Type, eventPayload(ev))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func eventPayload(ev view.Event) any {
	if ev.Type == view.EventPage && ev.Page != nil {
		return resdto.FromPageView(ev.Page)
	}
	return resdto.FromReviewViews(ev.Reviews)
}
