package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ajit-max/event/internal/domain"
	"github.com/ajit-max/event/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const DefaultBookingTTL = 20 * time.Minute

type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	cache       ports.EventCache
	notifier    ports.EventNotifier
	ttl         time.Duration
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	cache ports.EventCache,
	notifier ports.EventNotifier,
	ttl time.Duration,
	logger logger.Logger,
) *BookingService {
	if ttl <= 0 {
		ttl = DefaultBookingTTL
	}
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		cache:       cache,
		notifier:    notifier,
		ttl:         ttl,
		logger:      logger,
	}
}

// Book резервирует билеты. Бесплатная бронь подтверждается сразу,
// платная остаётся pending до Confirm или истечения ttl.
func (s *BookingService) Book(ctx context.Context, identity *domain.Identity, eventID string, input domain.BookInput) (*domain.Booking, error) {
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if !event.IsPublished {
		return nil, domain.ErrEventNotPublished
	}

	ticket, ok := event.TicketType(input.TicketType)
	if !ok {
		return nil, domain.ErrTicketTypeNotFound
	}
	if ticket.Quantity < quantity {
		return nil, domain.ErrNoAvailableTickets
	}

	ticketType := ticket.Name
	if len(event.TicketTypes) == 0 {
		ticketType = ""
	}

	total := ticket.Price * float64(quantity)
	status := domain.BookingStatusPending
	if total == 0 {
		status = domain.BookingStatusConfirmed
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		EventID:    event.ID,
		UserID:     identity.ID,
		TicketType: ticketType,
		Quantity:   quantity,
		TotalPrice: total,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	s.invalidate(ctx)

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", event.ID),
		logger.String("user_id", identity.ID),
		logger.Int("quantity", quantity),
		logger.String("status", string(status)),
	)

	if status == domain.BookingStatusConfirmed {
		go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), booking, event)
	}

	return booking, nil
}

func (s *BookingService) Confirm(ctx context.Context, identity *domain.Identity, bookingID string) (*domain.Booking, error) {
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if !domain.CanManageBooking(identity, booking) {
		return nil, fmt.Errorf("%w: not authorized to confirm this booking", domain.ErrForbidden)
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, domain.ErrBookingNotPending
	}

	confirmed, err := s.bookingRepo.Confirm(ctx, bookingID, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", confirmed.ID),
		logger.String("event_id", confirmed.EventID),
		logger.String("user_id", confirmed.UserID),
	)

	// notify
	event, err := s.eventRepo.GetByID(ctx, confirmed.EventID)
	if err != nil {
		s.logger.Error("failed to get event for notification",
			logger.String("event_id", confirmed.EventID),
			logger.String("error", err.Error()),
		)
		return confirmed, nil
	}

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), confirmed, event)

	return confirmed, nil
}

func (s *BookingService) ListMine(ctx context.Context, identity *domain.Identity) ([]*domain.Booking, error) {
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}
	return s.bookingRepo.ListByUser(ctx, identity.ID)
}

func (s *BookingService) CancelExpired(ctx context.Context) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelExpired(ctx, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}

	if len(cancelled) > 0 {
		s.invalidate(ctx)
		s.logger.Info("expired bookings cancelled",
			logger.Int("count", len(cancelled)),
		)
	}

	return cancelled, nil
}

func (s *BookingService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
