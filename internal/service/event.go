package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ajit-max/event/internal/domain"
	"github.com/ajit-max/event/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	repo     ports.EventRepo
	cache    ports.EventCache
	notifier ports.EventNotifier
	logger   logger.Logger
}

// NewEventService: cache может быть nil, тогда список всегда читается из БД.
func NewEventService(
	repo ports.EventRepo,
	cache ports.EventCache,
	notifier ports.EventNotifier,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *EventService) Create(ctx context.Context, identity *domain.Identity, input domain.EventInput) (*domain.Event, error) {
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		OrganizerID: identity.ID,
	}
	if err := applyEventInput(event, input); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	s.invalidate(ctx)

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("organizer_id", event.OrganizerID),
	)

	if event.IsPublished {
		go s.notifier.NotifyEventPublished(context.WithoutCancel(ctx), event, identity)
	}

	return event, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) ListPublished(ctx context.Context) ([]*domain.Event, error) {
	if s.cache == nil {
		return s.listPublished(ctx)
	}

	// версия берётся до чтения из БД, иначе можно закэшировать список старше инвалидации
	events, version, ok := s.cache.GetPublished(ctx)
	if ok {
		return events, nil
	}

	events, err := s.listPublished(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetPublished(ctx, version, events)

	return events, nil
}

func (s *EventService) listPublished(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published: %w", err)
	}
	return events, nil
}

func (s *EventService) ListAll(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.ListAll(ctx)
}

// Update полностью заменяет изменяемые поля события. Организатор не меняется.
func (s *EventService) Update(ctx context.Context, identity *domain.Identity, id string, input domain.EventInput) (*domain.Event, error) {
	current, err := s.authorize(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	updated := &domain.Event{
		ID:          current.ID,
		OrganizerID: current.OrganizerID,
		CreatedAt:   current.CreatedAt,
	}
	if err = applyEventInput(updated, input); err != nil {
		return nil, err
	}

	if err = s.repo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	s.invalidate(ctx)

	s.logger.Info("event updated",
		logger.String("event_id", updated.ID),
		logger.String("actor_id", identity.ID),
	)

	if !current.IsPublished && updated.IsPublished {
		go s.notifier.NotifyEventPublished(context.WithoutCancel(ctx), updated, identity)
	}

	return updated, nil
}

// CheckEditable проверяет, что событие существует и identity может его менять.
func (s *EventService) CheckEditable(ctx context.Context, identity *domain.Identity, id string) error {
	_, err := s.authorize(ctx, identity, id)
	return err
}

func (s *EventService) Delete(ctx context.Context, identity *domain.Identity, id string) error {
	current, err := s.authorize(ctx, identity, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	s.invalidate(ctx)

	s.logger.Info("event deleted",
		logger.String("event_id", id),
		logger.String("actor_id", identity.ID),
	)

	go s.notifier.NotifyEventDeleted(context.WithoutCancel(ctx), current, identity)

	return nil
}

func (s *EventService) authorize(ctx context.Context, identity *domain.Identity, id string) (*domain.Event, error) {
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanMutate(identity, event) {
		return nil, fmt.Errorf("%w: not authorized to modify this event", domain.ErrForbidden)
	}

	return event, nil
}

func (s *EventService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func applyEventInput(e *domain.Event, input domain.EventInput) error {
	name := strings.TrimSpace(input.Name)
	location := strings.TrimSpace(input.Location)

	if name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if location == "" {
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if input.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return err
	}
	if input.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if input.AvailableTickets < 0 {
		return fmt.Errorf("%w: availableTickets must not be negative", domain.ErrValidation)
	}

	seen := make(map[string]struct{}, len(input.TicketTypes))
	ticketTypes := make([]domain.TicketType, 0, len(input.TicketTypes))
	for _, t := range input.TicketTypes {
		t.Name = strings.TrimSpace(t.Name)
		if t.Name == "" {
			return fmt.Errorf("%w: ticket type name is required", domain.ErrValidation)
		}
		if _, ok := seen[t.Name]; ok {
			return fmt.Errorf("%w: duplicate ticket type %q", domain.ErrValidation, t.Name)
		}
		if t.Price < 0 || t.Quantity < 0 {
			return fmt.Errorf("%w: ticket type %q must have non-negative price and quantity", domain.ErrValidation, t.Name)
		}
		seen[t.Name] = struct{}{}
		ticketTypes = append(ticketTypes, t)
	}

	imageURL := strings.TrimSpace(input.ImageURL)
	if imageURL == "" {
		imageURL = domain.DefaultImageURL
	}

	e.Name = name
	e.Description = input.Description
	e.Date = input.Date.UTC()
	e.Location = location
	e.Category = category
	e.ImageURL = imageURL
	e.Price = input.Price
	e.AvailableTickets = input.AvailableTickets
	e.IsPublished = input.IsPublished
	e.TicketTypes = ticketTypes

	return nil
}
