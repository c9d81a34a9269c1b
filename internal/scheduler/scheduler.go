package scheduler

import (
	"context"
	"time"

	"github.com/ajit-max/event/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const DefaultInterval = 30 * time.Second

type bookingCanceller interface {
	CancelExpired(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler периодически отменяет просроченные неподтверждённые брони.
type Scheduler struct {
	bookings bookingCanceller
	interval time.Duration
	logger   logger.Logger
}

func New(bookings bookingCanceller, interval time.Duration, log logger.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		bookings: bookings,
		interval: interval,
		logger:   log,
	}
}

// Start блокируется до отмены ctx. Первый проход выполняется сразу,
// чтобы после рестарта не ждать целый интервал.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("expiry scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiry scheduler stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	cancelled, err := s.bookings.CancelExpired(ctx)
	if err != nil {
		s.logger.Error("failed to cancel expired bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range cancelled {
		s.logger.Info("booking expired, tickets released",
			logger.String("booking_id", b.ID),
			logger.String("event_id", b.EventID),
			logger.String("user_id", b.UserID),
			logger.Int("quantity", b.Quantity),
		)
	}
}
