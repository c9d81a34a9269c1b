package ports

import (
	"context"
	"time"

	"github.com/ajit-max/event/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	Confirm(ctx context.Context, id string, ttl time.Duration) (*domain.Booking, error)
	CancelExpired(ctx context.Context, ttl time.Duration) ([]*domain.Booking, error)
}
