package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spaceshare/rental-api/internal/core/ports"
)

// BookingHandler handles HTTP requests for the booking lifecycle.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /api/bookings.
//
// @Summary      Create a booking
// @Description  Creates a pending booking for the authenticated user. The
// @Description  total price is computed server-side from the space's nightly
// @Description  price and the number of nights.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		SpaceID:   req.SpaceID,
		UserID:    actor.UserID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Guests:    req.Guests,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toBookingResponse(result))
}

// Get handles GET /api/bookings/:id.
//
// @Summary      Get a booking by id
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  bookingResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	result, err := h.service.Get(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponse(result))
}

// List handles GET /api/bookings. Non-admin callers only ever see their own
// bookings regardless of filters.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        space_id  query     string  false  "Filter by space"
// @Param        status    query     string  false  "Filter by status (pending, confirmed, cancelled)"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Page size (max 100)"
// @Success      200       {object}  listBookingsResponse
// @Failure      500       {object}  errorResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), ports.ListBookingsInput{
		Actor:   actor,
		SpaceID: c.QueryParam("space_id"),
		Status:  c.QueryParam("status"),
		Page:    queryInt(c, "page"),
		Limit:   queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListBookingsResponse(result))
}

// Update handles PUT /api/bookings/:id. Only pending bookings can change.
//
// @Summary      Update a pending booking
// @Description  Changes the date range or guest count of a pending booking,
// @Description  recomputing the total price. Confirmed and cancelled bookings
// @Description  are immutable.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Booking id"
// @Param        body  body      updateBookingRequest  true  "New booking details"
// @Success      200   {object}  bookingResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/bookings/{id} [put]
func (h *BookingHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Update(c.Request().Context(), ports.UpdateBookingInput{
		BookingID: c.Param("id"),
		Actor:     actor,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Guests:    req.Guests,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponse(result))
}

// Pay handles POST /api/bookings/:id/pay.
//
// @Summary      Pay for a pending booking
// @Description  Confirms a pending booking and returns the simulated invoice.
// @Description  A booking can be paid at most once; paying a confirmed or
// @Description  cancelled booking is rejected.
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  invoiceResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/bookings/{id}/pay [post]
func (h *BookingHandler) Pay(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	invoice, err := h.service.Pay(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvoiceResponse(invoice))
}

// Cancel handles POST /api/bookings/:id/cancel.
//
// @Summary      Cancel a pending booking
// @Description  Cancels a pending booking. The record is kept for history;
// @Description  cancelled bookings cannot be paid or reactivated.
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  bookingResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	result, err := h.service.Cancel(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponse(result))
}
