package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/spaceshare/rental-api/internal/core/ports"
)

// SpaceHandler handles HTTP requests for space CRUD.
type SpaceHandler struct {
	service ports.SpaceService
}

func NewSpaceHandler(service ports.SpaceService) *SpaceHandler {
	return &SpaceHandler{service: service}
}

// List handles GET /api/spaces.
//
// @Summary      List spaces
// @Tags         spaces
// @Produce      json
// @Param        location  query     string  false  "Partial match on location"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Page size (max 100)"
// @Success      200       {object}  listSpacesResponse
// @Failure      500       {object}  errorResponse
// @Router       /api/spaces [get]
func (h *SpaceHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), ports.ListSpacesInput{
		Location: c.QueryParam("location"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListSpacesResponse(result))
}

// Get handles GET /api/spaces/:id.
//
// @Summary      Get a space by id
// @Tags         spaces
// @Produce      json
// @Param        id   path      string  true  "Space id"
// @Success      200  {object}  spaceResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/spaces/{id} [get]
func (h *SpaceHandler) Get(c echo.Context) error {
	result, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSpaceResponse(result))
}

// Create handles POST /api/spaces.
//
// @Summary      Create a space
// @Tags         spaces
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      spaceRequest  true  "Space details"
// @Success      201   {object}  spaceResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/spaces [post]
func (h *SpaceHandler) Create(c echo.Context) error {
	var req spaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), toSpaceInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toSpaceResponse(result))
}

// Update handles PUT /api/spaces/:id.
//
// @Summary      Update a space
// @Tags         spaces
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Space id"
// @Param        body  body      spaceRequest  true  "Space details"
// @Success      200   {object}  spaceResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/spaces/{id} [put]
func (h *SpaceHandler) Update(c echo.Context) error {
	var req spaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Update(c.Request().Context(), c.Param("id"), toSpaceInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSpaceResponse(result))
}

// Delete handles DELETE /api/spaces/:id.
//
// @Summary      Delete a space
// @Tags         spaces
// @Security     BearerAuth
// @Param        id  path  string  true  "Space id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/spaces/{id} [delete]
func (h *SpaceHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// queryInt parses an integer query parameter; 0 means absent or malformed,
// which the service normalizes to its defaults.
func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return n
}
