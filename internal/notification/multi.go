package notification

import (
	"context"

	"github.com/ajit-max/event/internal/domain"
	"github.com/ajit-max/event/internal/service/ports"
)

// Multi рассылает уведомление всем настроенным получателям по очереди.
type Multi []ports.EventNotifier

func (m Multi) NotifyEventPublished(ctx context.Context, event *domain.Event, actor *domain.Identity) {
	for _, n := range m {
		n.NotifyEventPublished(ctx, event, actor)
	}
}

func (m Multi) NotifyEventDeleted(ctx context.Context, event *domain.Event, actor *domain.Identity) {
	for _, n := range m {
		n.NotifyEventDeleted(ctx, event, actor)
	}
}

func (m Multi) NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking, event *domain.Event) {
	for _, n := range m {
		n.NotifyBookingConfirmed(ctx, booking, event)
	}
}
