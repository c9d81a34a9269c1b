package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ajit-max/event/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

const publishTimeout = 5 * time.Second

const (
	MessageEventPublished   = "event.published"
	MessageEventDeleted     = "event.deleted"
	MessageBookingConfirmed = "booking.confirmed"
)

// Message публикуется в очередь модерации в формате JSON.
type Message struct {
	Type      string    `json:"type"`
	EventID   string    `json:"event_id"`
	EventName string    `json:"event_name"`
	ActorID   string    `json:"actor_id,omitempty"`
	BookingID string    `json:"booking_id,omitempty"`
	At        time.Time `json:"at"`
}

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type RabbitPublisher struct {
	conn    *amqp.Connection
	channel amqpChannel
	queue   string
	logger  logger.Logger
	now     func() time.Time
}

func NewRabbitPublisher(url, queue string, log logger.Logger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	// Объявление очереди идемпотентно
	q, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	log.Info("rabbitmq publisher ready", logger.String("queue", q.Name))

	return &RabbitPublisher{
		conn:    conn,
		channel: ch,
		queue:   q.Name,
		logger:  log,
		now:     time.Now,
	}, nil
}

func (p *RabbitPublisher) NotifyEventPublished(ctx context.Context, event *domain.Event, actor *domain.Identity) {
	p.publish(ctx, Message{
		Type:      MessageEventPublished,
		EventID:   event.ID,
		EventName: event.Name,
		ActorID:   actorID(actor),
	})
}

func (p *RabbitPublisher) NotifyEventDeleted(ctx context.Context, event *domain.Event, actor *domain.Identity) {
	p.publish(ctx, Message{
		Type:      MessageEventDeleted,
		EventID:   event.ID,
		EventName: event.Name,
		ActorID:   actorID(actor),
	})
}

func (p *RabbitPublisher) NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking, event *domain.Event) {
	p.publish(ctx, Message{
		Type:      MessageBookingConfirmed,
		EventID:   event.ID,
		EventName: event.Name,
		ActorID:   booking.UserID,
		BookingID: booking.ID,
	})
}

func actorID(actor *domain.Identity) string {
	if actor == nil {
		return ""
	}
	return actor.ID
}

func (p *RabbitPublisher) publish(ctx context.Context, msg Message) {
	msg.At = p.now().UTC()

	body, err := json.Marshal(msg)
	if err != nil {
		p.logger.Error("failed to marshal message", logger.String("error", err.Error()))
		return
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		publishCtx,
		"",      // exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    msg.At,
			Type:         msg.Type,
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Error("failed to publish message",
			logger.String("type", msg.Type),
			logger.String("event_id", msg.EventID),
			logger.String("error", err.Error()),
		)
		return
	}

	p.logger.Debug("message published",
		logger.String("queue", p.queue),
		logger.String("type", msg.Type),
	)
}

func (p *RabbitPublisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			return fmt.Errorf("close channel: %w", err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("close connection: %w", err)
		}
	}
	return nil
}
