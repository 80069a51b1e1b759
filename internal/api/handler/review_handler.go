package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spaceshare/rental-api/internal/core/ports"
)

// ReviewHandler handles HTTP requests for space reviews.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// Create handles POST /api/reviews. Only guests with a confirmed booking for
// the space may review it, once each.
//
// @Summary      Create a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReviewRequest  true  "Review details"
// @Success      201   {object}  reviewResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), ports.CreateReviewInput{
		SpaceID: req.SpaceID,
		UserID:  actor.UserID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toReviewResponse(result))
}

// List handles GET /api/reviews?space_id=...
//
// @Summary      List reviews for a space
// @Tags         reviews
// @Produce      json
// @Param        space_id  query     string  true   "Space id"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Page size (max 100)"
// @Success      200       {object}  listReviewsResponse
// @Failure      422       {object}  errorResponse
// @Router       /api/reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), ports.ListReviewsInput{
		SpaceID: c.QueryParam("space_id"),
		Page:    queryInt(c, "page"),
		Limit:   queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListReviewsResponse(result))
}

func toReviewResponse(r *ports.ReviewResult) reviewResponse {
	return reviewResponse{
		ID:        r.ID,
		SpaceID:   r.SpaceID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func toListReviewsResponse(r *ports.ListReviewsResult) listReviewsResponse {
	items := make([]reviewResponse, len(r.Items))
	for i := range r.Items {
		items[i] = toReviewResponse(&r.Items[i])
	}
	return listReviewsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
