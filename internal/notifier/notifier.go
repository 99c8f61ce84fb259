// Package notifier delivers storefront events to the shop owner's chat and
// mailbox.
//
// NotifyOrder and NotifyContact are best effort: they run after the store
// commit, are bounded by a timeout, and only log failures. SendTest and
// SendOrder back the notification endpoint and report every failure.
package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"storefront-backend/internal/mailer"
	"storefront-backend/internal/metrics"
	"storefront-backend/internal/models"
)

const (
	channelTelegram = "telegram"
	channelEmail    = "email"
)

var ErrNotConfigured = errors.New("telegram bot token or chat ID not configured")

type ChatSender interface {
	SendMessage(ctx context.Context, chatID, text string) (json.RawMessage, error)
}

type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

type Options struct {
	ChatID         string
	EmailRecipient string
	Timeout        time.Duration
}

type Notifier struct {
	chat      ChatSender
	chatID    string
	mail      Mailer
	recipient string
	timeout   time.Duration
	logger    zerolog.Logger
}

// New builds a notifier. chat is nil when no bot token is configured and mail
// is nil when email is disabled.
func New(chat ChatSender, mail Mailer, opts Options, logger zerolog.Logger) *Notifier {
	return &Notifier{
		chat:      chat,
		chatID:    opts.ChatID,
		mail:      mail,
		recipient: opts.EmailRecipient,
		timeout:   opts.Timeout,
		logger:    logger.With().Str("component", "notifier").Logger(),
	}
}

// Credentials reports which chat settings are present.
func (n *Notifier) Credentials() (token, chatID bool) {
	return n.chat != nil, n.chatID != ""
}

func (n *Notifier) ChatConfigured() bool {
	token, chatID := n.Credentials()
	return token && chatID
}

func (n *Notifier) NotifyOrder(ctx context.Context, order *models.Order) {
	n.bestEffort(ctx, func(ctx context.Context) {
		n.deliverChat(ctx, FormatOrder(order), "order_id", order.ID)
	})
}

func (n *Notifier) NotifyContact(ctx context.Context, msg *models.ContactMessage) {
	n.bestEffort(ctx, func(ctx context.Context) {
		n.deliverChat(ctx, FormatContact(msg), "message_id", msg.ID)

		if n.mail == nil || n.recipient == "" {
			metrics.RecordNotification(channelEmail, "skipped")
			return
		}
		if err := n.mail.Send(ctx, ContactEmail(n.recipient, msg)); err != nil {
			metrics.RecordNotification(channelEmail, "failed")
			n.logger.Warn().Err(err).Int64("message_id", msg.ID.Int64()).Msg("email notification failed")
			return
		}
		metrics.RecordNotification(channelEmail, "sent")
	})
}

func (n *Notifier) SendTest(ctx context.Context) (json.RawMessage, error) {
	return n.send(ctx, TestMessage)
}

// SendSetupCheck sends the setup confirmation naming the configured chat.
func (n *Notifier) SendSetupCheck(ctx context.Context) (json.RawMessage, error) {
	return n.send(ctx, SetupMessage(n.chatID))
}

func (n *Notifier) ChatID() string {
	return n.chatID
}

func (n *Notifier) SendOrder(ctx context.Context, order *models.Order) (json.RawMessage, error) {
	return n.send(ctx, FormatOrder(order))
}

func (n *Notifier) send(ctx context.Context, text string) (json.RawMessage, error) {
	if !n.ChatConfigured() {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	raw, err := n.chat.SendMessage(ctx, n.chatID, text)
	if err != nil {
		metrics.RecordNotification(channelTelegram, "failed")
		return nil, err
	}
	metrics.RecordNotification(channelTelegram, "sent")
	return raw, nil
}

func (n *Notifier) deliverChat(ctx context.Context, text, idField string, id models.ID) {
	if !n.ChatConfigured() {
		metrics.RecordNotification(channelTelegram, "skipped")
		return
	}

	if _, err := n.chat.SendMessage(ctx, n.chatID, text); err != nil {
		metrics.RecordNotification(channelTelegram, "failed")
		n.logger.Warn().Err(err).Int64(idField, id.Int64()).Msg("chat notification failed")
		return
	}
	metrics.RecordNotification(channelTelegram, "sent")
}

// bestEffort runs fn detached from the caller's cancellation but bounded by
// the notifier timeout. Panics are logged and dropped.
func (n *Notifier) bestEffort(ctx context.Context, fn func(context.Context)) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			n.logger.Error().Str("panic", fmt.Sprint(r)).Msg("notification aborted")
		}
	}()

	fn(ctx)
}
