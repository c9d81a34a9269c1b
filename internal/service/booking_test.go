package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ajit-max/event/internal/domain"
	"github.com/ajit-max/event/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingFixture struct {
	bookingRepo *mocks.MockBookingRepo
	eventRepo   *mocks.MockEventRepo
	notifier    *mocks.MockEventNotifier
	svc         *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		bookingRepo: mocks.NewMockBookingRepo(t),
		eventRepo:   mocks.NewMockEventRepo(t),
		notifier:    mocks.NewMockEventNotifier(t),
	}
	f.svc = NewBookingService(f.bookingRepo, f.eventRepo, nil, f.notifier, 20*time.Minute, newTestLogger(t))
	return f
}

func TestBookingService_Book_Paid(t *testing.T) {
	f := newBookingFixture(t)

	event := &domain.Event{ID: "e1", IsPublished: true, Price: 25, AvailableTickets: 10}
	f.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	booking, err := f.svc.Book(context.Background(), attendeeOne, "e1", domain.BookInput{Quantity: 2})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, 50.0, booking.TotalPrice)
	assert.Equal(t, "", booking.TicketType)
	assert.Equal(t, "att", booking.UserID)
	assert.NotEmpty(t, booking.ID)
}

func TestBookingService_Book_FreeConfirmedImmediately(t *testing.T) {
	f := newBookingFixture(t)

	event := &domain.Event{ID: "e1", IsPublished: true, Price: 0, AvailableTickets: 10}
	f.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	done := make(chan struct{})
	f.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything, event).
		Run(func(context.Context, *domain.Booking, *domain.Event) { close(done) }).
		Return()

	booking, err := f.svc.Book(context.Background(), attendeeOne, "e1", domain.BookInput{})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, 1, booking.Quantity)
	waitCalled(t, done)
}

func TestBookingService_Book_TicketType(t *testing.T) {
	f := newBookingFixture(t)

	event := &domain.Event{
		ID:          "e1",
		IsPublished: true,
		TicketTypes: []domain.TicketType{
			{Name: "Standard", Price: 10, Quantity: 100},
			{Name: "VIP", Price: 100, Quantity: 1},
		},
	}
	f.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.TicketType == "VIP" && b.Quantity == 1 && b.TotalPrice == 100
	})).Return(nil)

	_, err := f.svc.Book(context.Background(), attendeeOne, "e1", domain.BookInput{TicketType: "VIP", Quantity: 1})

	require.NoError(t, err)
}

func TestBookingService_Book_Errors(t *testing.T) {
	published := &domain.Event{ID: "e1", IsPublished: true, Price: 5, AvailableTickets: 1}

	tests := []struct {
		name    string
		event   *domain.Event
		getErr  error
		input   domain.BookInput
		wantErr error
	}{
		{"not found", nil, domain.ErrEventNotFound, domain.BookInput{}, domain.ErrEventNotFound},
		{"draft", &domain.Event{ID: "e1"}, nil, domain.BookInput{}, domain.ErrEventNotPublished},
		{"unknown ticket type", published, nil, domain.BookInput{TicketType: "VIP"}, domain.ErrTicketTypeNotFound},
		{"sold out", published, nil, domain.BookInput{Quantity: 2}, domain.ErrNoAvailableTickets},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)
			f.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(tt.event, tt.getErr)

			_, err := f.svc.Book(context.Background(), attendeeOne, "e1", tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBookingService_Book_NegativeQuantity(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Book(context.Background(), attendeeOne, "e1", domain.BookInput{Quantity: -1})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_Unauthenticated(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Book(context.Background(), nil, "e1", domain.BookInput{})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBookingService_Book_RaceLostInRepo(t *testing.T) {
	f := newBookingFixture(t)

	f.eventRepo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", IsPublished: true, Price: 5, AvailableTickets: 1}, nil)
	f.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrNoAvailableTickets)

	_, err := f.svc.Book(context.Background(), attendeeOne, "e1", domain.BookInput{})

	assert.ErrorIs(t, err, domain.ErrNoAvailableTickets)
}

func TestBookingService_Confirm_Success(t *testing.T) {
	f := newBookingFixture(t)

	pending := &domain.Booking{ID: "b1", EventID: "e1", UserID: "att", Status: domain.BookingStatusPending}
	confirmed := &domain.Booking{ID: "b1", EventID: "e1", UserID: "att", Status: domain.BookingStatusConfirmed}
	event := &domain.Event{ID: "e1"}

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(pending, nil)
	f.bookingRepo.EXPECT().Confirm(mock.Anything, "b1", 20*time.Minute).Return(confirmed, nil)
	f.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	done := make(chan struct{})
	f.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, confirmed, event).
		Run(func(context.Context, *domain.Booking, *domain.Event) { close(done) }).
		Return()

	res, err := f.svc.Confirm(context.Background(), attendeeOne, "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, res.Status)
	waitCalled(t, done)
}

func TestBookingService_Confirm_OtherUserForbidden(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", UserID: "someone-else", Status: domain.BookingStatusPending}, nil)

	_, err := f.svc.Confirm(context.Background(), attendeeOne, "b1")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Confirm_NotPending(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", UserID: "att", Status: domain.BookingStatusCancelled}, nil)

	_, err := f.svc.Confirm(context.Background(), attendeeOne, "b1")

	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
}

func TestBookingService_Confirm_Expired(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", UserID: "att", Status: domain.BookingStatusPending}, nil)
	f.bookingRepo.EXPECT().Confirm(mock.Anything, "b1", 20*time.Minute).Return(nil, domain.ErrBookingExpired)

	_, err := f.svc.Confirm(context.Background(), attendeeOne, "b1")

	assert.ErrorIs(t, err, domain.ErrBookingExpired)
}

func TestBookingService_Confirm_NotFound(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := f.svc.Confirm(context.Background(), adminUser, "missing")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_CancelExpired_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	cache := mocks.NewMockEventCache(t)
	svc := NewBookingService(bookingRepo, mocks.NewMockEventRepo(t), cache, mocks.NewMockEventNotifier(t), 0, newTestLogger(t))

	expired := []*domain.Booking{{ID: "b1"}, {ID: "b2"}}
	bookingRepo.EXPECT().CancelExpired(mock.Anything, DefaultBookingTTL).Return(expired, nil)
	cache.EXPECT().Invalidate(mock.Anything).Return()

	res, err := svc.CancelExpired(context.Background())

	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestBookingService_CancelExpired_NoneExpired(t *testing.T) {
	f := newBookingFixture(t)

	f.bookingRepo.EXPECT().CancelExpired(mock.Anything, 20*time.Minute).Return([]*domain.Booking{}, nil)

	res, err := f.svc.CancelExpired(context.Background())

	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestBookingService_CancelExpired_RepoError(t *testing.T) {
	f := newBookingFixture(t)

	repoErr := errors.New("db error")
	f.bookingRepo.EXPECT().CancelExpired(mock.Anything, 20*time.Minute).Return(nil, repoErr)

	_, err := f.svc.CancelExpired(context.Background())

	assert.ErrorIs(t, err, repoErr)
}

func TestBookingService_ListMine(t *testing.T) {
	f := newBookingFixture(t)

	mine := []*domain.Booking{{ID: "b1", UserID: "att"}}
	f.bookingRepo.EXPECT().ListByUser(mock.Anything, "att").Return(mine, nil)

	res, err := f.svc.ListMine(context.Background(), attendeeOne)

	require.NoError(t, err)
	assert.Equal(t, mine, res)
}
