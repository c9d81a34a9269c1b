package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ajit-max/event/internal/domain"
	"github.com/ajit-max/event/internal/service/ports/mocks"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

var testEvent = &domain.Event{
	ID:          "e1",
	Name:        "Go_Meetup",
	Category:    domain.CategoryTechnology,
	Location:    "Berlin",
	OrganizerID: "org-1",
	Date:        time.Date(2026, 3, 5, 18, 30, 0, 0, time.UTC),
}

func TestTelegramTexts(t *testing.T) {
	admin := &domain.Identity{ID: "a1", Email: "admin@example.com", Role: domain.RoleAdmin}

	published := publishedText(testEvent, admin)
	assert.Contains(t, published, "Event published")
	assert.Contains(t, published, `Go\_Meetup`)
	assert.Contains(t, published, "05.03.2026 18:30")
	assert.Contains(t, published, "(admin)")

	deleted := deletedText(testEvent, nil)
	assert.Contains(t, deleted, "Event deleted")
	assert.Contains(t, deleted, "By: system")

	confirmed := bookingConfirmedText(&domain.Booking{Quantity: 2, TotalPrice: 30}, testEvent)
	assert.Contains(t, confirmed, "2 x General")
	assert.Contains(t, confirmed, "30.00")
}

func TestTelegramNotifier_Disabled(t *testing.T) {
	n, err := NewTelegramNotifier("", 42, newTestLogger(t))
	require.NoError(t, err)

	n.NotifyEventPublished(context.Background(), testEvent, nil)
	n.NotifyEventDeleted(context.Background(), testEvent, nil)
	n.NotifyBookingConfirmed(context.Background(), &domain.Booking{Quantity: 1}, testEvent)
}

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	err       error
	closed    bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func newTestPublisher(t *testing.T, ch *fakeChannel) *RabbitPublisher {
	t.Helper()
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &RabbitPublisher{
		channel: ch,
		queue:   "event_moderation",
		logger:  newTestLogger(t),
		now:     func() time.Time { return at },
	}
}

func TestRabbitPublisher_Messages(t *testing.T) {
	ch := &fakeChannel{}
	p := newTestPublisher(t, ch)
	actor := &domain.Identity{ID: "u1"}

	p.NotifyEventPublished(context.Background(), testEvent, actor)
	p.NotifyEventDeleted(context.Background(), testEvent, actor)
	p.NotifyBookingConfirmed(context.Background(), &domain.Booking{ID: "b1", UserID: "u2"}, testEvent)

	require.Len(t, ch.published, 3)
	assert.Equal(t, []string{"event_moderation", "event_moderation", "event_moderation"}, ch.keys)

	var msgs []Message
	for _, pub := range ch.published {
		assert.Equal(t, "application/json", pub.ContentType)
		assert.Equal(t, amqp.Persistent, pub.DeliveryMode)

		var m Message
		require.NoError(t, json.Unmarshal(pub.Body, &m))
		msgs = append(msgs, m)
	}

	assert.Equal(t, MessageEventPublished, msgs[0].Type)
	assert.Equal(t, "u1", msgs[0].ActorID)
	assert.Equal(t, MessageEventDeleted, msgs[1].Type)
	assert.Equal(t, MessageBookingConfirmed, msgs[2].Type)
	assert.Equal(t, "b1", msgs[2].BookingID)
	assert.Equal(t, "u2", msgs[2].ActorID)
	assert.Equal(t, "e1", msgs[2].EventID)
	assert.Equal(t, 2026, msgs[0].At.Year())
}

func TestRabbitPublisher_PublishErrorIsSwallowed(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := newTestPublisher(t, ch)

	p.NotifyEventPublished(context.Background(), testEvent, nil)

	assert.Empty(t, ch.published)
}

func TestRabbitPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := newTestPublisher(t, ch)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestMulti_FansOut(t *testing.T) {
	a := mocks.NewMockEventNotifier(t)
	b := mocks.NewMockEventNotifier(t)
	actor := &domain.Identity{ID: "u1"}
	booking := &domain.Booking{ID: "b1"}

	a.EXPECT().NotifyEventPublished(context.Background(), testEvent, actor).Return()
	b.EXPECT().NotifyEventPublished(context.Background(), testEvent, actor).Return()
	a.EXPECT().NotifyEventDeleted(context.Background(), testEvent, actor).Return()
	b.EXPECT().NotifyEventDeleted(context.Background(), testEvent, actor).Return()
	a.EXPECT().NotifyBookingConfirmed(context.Background(), booking, testEvent).Return()
	b.EXPECT().NotifyBookingConfirmed(context.Background(), booking, testEvent).Return()

	m := Multi{a, b}
	m.NotifyEventPublished(context.Background(), testEvent, actor)
	m.NotifyEventDeleted(context.Background(), testEvent, actor)
	m.NotifyBookingConfirmed(context.Background(), booking, testEvent)
}

func TestMulti_Empty(t *testing.T) {
	var m Multi
	m.NotifyEventPublished(context.Background(), testEvent, nil)
}
