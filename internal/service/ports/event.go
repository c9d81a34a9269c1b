package ports

import (
	"context"

	"github.com/ajit-max/event/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	ListPublished(ctx context.Context) ([]*domain.Event, error)
	ListAll(ctx context.Context) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
}

// EventCache хранит список опубликованных событий. Ошибки кэша не всплывают наружу.
type EventCache interface {
	// GetPublished при промахе возвращает версию, которую нужно передать в SetPublished.
	GetPublished(ctx context.Context) ([]*domain.Event, int64, bool)
	SetPublished(ctx context.Context, version int64, events []*domain.Event)
	Invalidate(ctx context.Context)
}
