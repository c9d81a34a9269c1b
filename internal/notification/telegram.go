package notification

import (
	"context"
	"fmt"

	"github.com/ajit-max/event/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006 15:04"

// TelegramNotifier отправляет уведомления модерации в админский чат.
type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(token string, adminChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, adminChatID: adminChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyEventPublished(ctx context.Context, event *domain.Event, actor *domain.Identity) {
	n.send(ctx, publishedText(event, actor))
}

func (n *TelegramNotifier) NotifyEventDeleted(ctx context.Context, event *domain.Event, actor *domain.Identity) {
	n.send(ctx, deletedText(event, actor))
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking, event *domain.Event) {
	n.send(ctx, bookingConfirmedText(booking, event))
}

func publishedText(event *domain.Event, actor *domain.Identity) string {
	return fmt.Sprintf(
		"*Event published*\n\n"+"Event: %s\n"+"Category: %s\n"+"Date (UTC): %s\n"+"Location: %s\n"+"By: %s",
		escape(event.Name), escape(string(event.Category)),
		event.Date.UTC().Format(dateLayout), escape(event.Location), actorName(actor),
	)
}

func deletedText(event *domain.Event, actor *domain.Identity) string {
	return fmt.Sprintf(
		"*Event deleted*\n\n"+"Event: %s\n"+"Organizer: %s\n"+"By: %s",
		escape(event.Name), escape(event.OrganizerID), actorName(actor),
	)
}

func bookingConfirmedText(booking *domain.Booking, event *domain.Event) string {
	ticket := booking.TicketType
	if ticket == "" {
		ticket = domain.GeneralTicket
	}
	return fmt.Sprintf(
		"*Booking confirmed*\n\n"+"Event: %s\n"+"Tickets: %d x %s\n"+"Total: %.2f",
		escape(event.Name), booking.Quantity, escape(ticket), booking.TotalPrice,
	)
}

func actorName(actor *domain.Identity) string {
	if actor == nil {
		return "system"
	}
	if actor.IsAdmin() {
		return escape(actor.Email) + " (admin)"
	}
	return escape(actor.Email)
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.adminChatID == 0 {
		n.logger.Debug("notification skipped (no admin chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.adminChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.adminChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.adminChatID),
			logger.String("error", err.Error()),
		)
	}
}
