package ports

import (
	"context"

	"github.com/ajit-max/event/internal/domain"
)

type EventNotifier interface {
	NotifyEventPublished(ctx context.Context, event *domain.Event, actor *domain.Identity)
	NotifyEventDeleted(ctx context.Context, event *domain.Event, actor *domain.Identity)
	NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking, event *domain.Event)
}
