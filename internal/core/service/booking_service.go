package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/spaceshare/rental-api/internal/api/metrics"
	"github.com/spaceshare/rental-api/internal/core/domain"
	"github.com/spaceshare/rental-api/internal/core/ports"
)

const maxPageLimit = 100

type bookingService struct {
	bookings ports.BookingRepository
	spaces   ports.SpaceRepository
	log      zerolog.Logger
}

// NewBookingService returns a BookingService implementation.
func NewBookingService(bookings ports.BookingRepository, spaces ports.SpaceRepository, log zerolog.Logger) ports.BookingService {
	return &bookingService{bookings: bookings, spaces: spaces, log: log}
}

// Create validates the booking request against the space and persists a new
// pending booking. Total price is nightly price × nights, fixed at creation.
func (s *bookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*ports.BookingResult, error) {
	if err := validateStay(input.StartDate, input.EndDate, input.Guests); err != nil {
		metrics.BookingRejectionsTotal.WithLabelValues("validation").Inc()
		return nil, err
	}

	space, err := s.spaces.FindByID(ctx, input.SpaceID)
	if err != nil {
		metrics.BookingRejectionsTotal.WithLabelValues("not_found").Inc()
		return nil, err
	}
	if input.Guests > space.Capacity {
		metrics.BookingRejectionsTotal.WithLabelValues("validation").Inc()
		return nil, fmt.Errorf("%w: guest count %d exceeds space capacity %d", domain.ErrValidation, input.Guests, space.Capacity)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:         uuid.NewString(),
		SpaceID:    space.ID,
		UserID:     input.UserID,
		StartDate:  input.StartDate.UTC(),
		EndDate:    input.EndDate.UTC(),
		Guests:     input.Guests,
		TotalPrice: domain.TotalPrice(space.NightlyPrice, domain.Nights(input.StartDate, input.EndDate)),
		Status:     domain.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		s.log.Error().Err(err).Str("space_id", space.ID).Msg("failed to create booking")
		return nil, err
	}

	metrics.BookingsCreatedTotal.Inc()
	s.log.Info().
		Str("booking_id", booking.ID).
		Str("space_id", space.ID).
		Str("user_id", input.UserID).
		Float64("total_price", booking.TotalPrice).
		Msg("booking created")

	return toBookingResult(booking), nil
}

// Get returns a single booking. Non-admin callers only see their own.
func (s *bookingService) Get(ctx context.Context, bookingID string, actor ports.Actor) (*ports.BookingResult, error) {
	booking, err := s.ownedBooking(ctx, bookingID, actor)
	if err != nil {
		return nil, err
	}
	return toBookingResult(booking), nil
}

// List returns a page of bookings. Non-admin callers are scoped to their own.
func (s *bookingService) List(ctx context.Context, input ports.ListBookingsInput) (*ports.ListBookingsResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	filter := ports.ListBookingsFilter{
		SpaceID: input.SpaceID,
		Status:  input.Status,
		Page:    page,
		Limit:   limit,
	}
	if !isAdmin(input.Actor.Role) {
		filter.UserID = input.Actor.UserID
	}

	items, total, err := s.bookings.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	results := make([]ports.BookingResult, len(items))
	for i, b := range items {
		results[i] = *toBookingResult(b)
	}
	return &ports.ListBookingsResult{
		Items:      results,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Update changes the date range or guest count of a pending booking. The same
// constraints as creation apply and the total price is recomputed. The write
// is conditional on the status still being pending, so an update racing a
// payment cannot land on a confirmed booking.
func (s *bookingService) Update(ctx context.Context, input ports.UpdateBookingInput) (*ports.BookingResult, error) {
	booking, err := s.ownedBooking(ctx, input.BookingID, input.Actor)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.StatusPending {
		metrics.BookingRejectionsTotal.WithLabelValues("invalid_state").Inc()
		return nil, fmt.Errorf("%w: cannot update a %s booking", domain.ErrInvalidState, booking.Status)
	}

	if err := validateStay(input.StartDate, input.EndDate, input.Guests); err != nil {
		metrics.BookingRejectionsTotal.WithLabelValues("validation").Inc()
		return nil, err
	}
	space, err := s.spaces.FindByID(ctx, booking.SpaceID)
	if err != nil {
		return nil, err
	}
	if input.Guests > space.Capacity {
		metrics.BookingRejectionsTotal.WithLabelValues("validation").Inc()
		return nil, fmt.Errorf("%w: guest count %d exceeds space capacity %d", domain.ErrValidation, input.Guests, space.Capacity)
	}

	now := time.Now().UTC()
	total := domain.TotalPrice(space.NightlyPrice, domain.Nights(input.StartDate, input.EndDate))
	ok, err := s.bookings.UpdateDetailsIfPending(ctx, booking.ID, input.StartDate.UTC(), input.EndDate.UTC(), input.Guests, total, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost a race against pay or cancel.
		metrics.BookingRejectionsTotal.WithLabelValues("invalid_state").Inc()
		return nil, fmt.Errorf("%w: booking is no longer pending", domain.ErrInvalidState)
	}

	booking.StartDate = input.StartDate.UTC()
	booking.EndDate = input.EndDate.UTC()
	booking.Guests = input.Guests
	booking.TotalPrice = total
	booking.UpdatedAt = now

	s.log.Info().Str("booking_id", booking.ID).Float64("total_price", total).Msg("booking updated")
	return toBookingResult(booking), nil
}

// Pay transitions a pending booking to confirmed and returns the simulated
// invoice. The transition is a compare-and-set on the status column: when two
// payment requests race, exactly one succeeds and the other observes
// ErrInvalidState. The total price never changes during the transition.
func (s *bookingService) Pay(ctx context.Context, bookingID string, actor ports.Actor) (*ports.InvoiceResult, error) {
	booking, err := s.ownedBooking(ctx, bookingID, actor)
	if err != nil {
		metrics.BookingRejectionsTotal.WithLabelValues("not_found").Inc()
		return nil, err
	}
	if !booking.Status.CanTransitionTo(domain.StatusConfirmed) {
		metrics.BookingRejectionsTotal.WithLabelValues("invalid_state").Inc()
		return nil, fmt.Errorf("%w: cannot pay a %s booking", domain.ErrInvalidState, booking.Status)
	}

	now := time.Now().UTC()
	if err := s.transition(ctx, booking.ID, domain.StatusConfirmed, now); err != nil {
		return nil, err
	}

	invoice := &domain.Invoice{
		ID:        uuid.NewString(),
		BookingID: booking.ID,
		Amount:    booking.TotalPrice,
		Status:    domain.InvoiceStatusPaid,
		IssuedAt:  now,
	}

	metrics.BookingTransitionsTotal.WithLabelValues(string(domain.StatusConfirmed)).Inc()
	metrics.InvoiceAmount.Observe(invoice.Amount)
	s.log.Info().
		Str("booking_id", booking.ID).
		Str("invoice_id", invoice.ID).
		Float64("amount", invoice.Amount).
		Msg("booking confirmed")

	return toInvoiceResult(invoice), nil
}

// Cancel transitions a pending booking to cancelled. The record is kept.
func (s *bookingService) Cancel(ctx context.Context, bookingID string, actor ports.Actor) (*ports.BookingResult, error) {
	booking, err := s.ownedBooking(ctx, bookingID, actor)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(domain.StatusCancelled) {
		metrics.BookingRejectionsTotal.WithLabelValues("invalid_state").Inc()
		return nil, fmt.Errorf("%w: cannot cancel a %s booking", domain.ErrInvalidState, booking.Status)
	}

	now := time.Now().UTC()
	if err := s.transition(ctx, booking.ID, domain.StatusCancelled, now); err != nil {
		return nil, err
	}

	metrics.BookingTransitionsTotal.WithLabelValues(string(domain.StatusCancelled)).Inc()
	s.log.Info().Str("booking_id", booking.ID).Msg("booking cancelled")

	booking.Status = domain.StatusCancelled
	booking.CancelledAt = &now
	booking.UpdatedAt = now
	return toBookingResult(booking), nil
}

// transition performs the conditional status write and translates a missed
// match into the precise failure: the booking either disappeared or already
// left pending.
func (s *bookingService) transition(ctx context.Context, id string, next domain.BookingStatus, at time.Time) error {
	ok, err := s.bookings.UpdateStatusIfPending(ctx, id, next, at)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	current, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return err
	}
	metrics.BookingRejectionsTotal.WithLabelValues("invalid_state").Inc()
	return fmt.Errorf("%w: booking is %s", domain.ErrInvalidState, current.Status)
}

// ownedBooking fetches the booking and enforces that non-admin actors only
// reach their own records. Foreign bookings are reported as not found so the
// API does not leak their existence.
func (s *bookingService) ownedBooking(ctx context.Context, id string, actor ports.Actor) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin(actor.Role) && booking.UserID != actor.UserID {
		return nil, domain.ErrBookingNotFound
	}
	return booking, nil
}

func validateStay(start, end time.Time, guests int) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", domain.ErrValidation)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end date must be after start date", domain.ErrValidation)
	}
	if guests < 1 {
		return fmt.Errorf("%w: guest count must be at least 1", domain.ErrValidation)
	}
	return nil
}

func isAdmin(role string) bool {
	return role == domain.RoleAdmin || role == domain.RoleSuperAdmin
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func toBookingResult(b *domain.Booking) *ports.BookingResult {
	return &ports.BookingResult{
		ID:          b.ID,
		SpaceID:     b.SpaceID,
		UserID:      b.UserID,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Guests:      b.Guests,
		TotalPrice:  b.TotalPrice,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		ConfirmedAt: b.ConfirmedAt,
		CancelledAt: b.CancelledAt,
	}
}

func toInvoiceResult(inv *domain.Invoice) *ports.InvoiceResult {
	return &ports.InvoiceResult{
		InvoiceID: inv.ID,
		BookingID: inv.BookingID,
		Amount:    inv.Amount,
		Status:    inv.Status,
		IssuedAt:  inv.IssuedAt,
	}
}
