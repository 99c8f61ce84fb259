package notifier

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"storefront-backend/internal/mailer"
	"storefront-backend/internal/models"
)

const TestMessage = "🧪 <b>Тестовое сообщение</b>\n\nБот успешно подключен и работает!"

// SetupMessage confirms to the operator which chat receives notifications.
func SetupMessage(chatID string) string {
	return "<b>✅ Тестовое сообщение</b>\n\n" +
		"🤖 Бот успешно настроен и работает!\n" +
		"💬 Chat ID: " + esc(chatID) + "\n" +
		"⏰ Уведомления о новых заказах и сообщениях будут приходить в этот чат."
}

// FormatOrder renders the new-order chat message. Customer supplied text is
// HTML escaped since the message is sent in HTML parse mode.
func FormatOrder(order *models.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<b>🛍️ Новый заказ #%d</b>\n\n", order.ID)
	fmt.Fprintf(&b, "👤 <b>Клиент:</b> %s\n", esc(order.Name))
	fmt.Fprintf(&b, "📱 <b>Телефон:</b> %s\n", esc(order.Phone))
	fmt.Fprintf(&b, "📧 <b>Email:</b> %s", esc(order.Email))
	if order.Telegram != "" {
		fmt.Fprintf(&b, "\n💬 <b>Telegram:</b> @%s", esc(strings.TrimPrefix(order.Telegram, "@")))
	}
	fmt.Fprintf(&b, "\n📍 <b>Адрес:</b> %s\n\n", esc(order.Address))

	b.WriteString("<b>Товары:</b>\n")
	lines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, formatItem(item))
	}
	b.WriteString(strings.Join(lines, "\n"))

	fmt.Fprintf(&b, "\n\n💰 <b>Итого:</b> %s₽", price(order.Total))
	return b.String()
}

func formatItem(item models.OrderItem) string {
	size := ""
	if item.Size != "" {
		size = " - " + esc(item.Size)
	}
	return fmt.Sprintf("  • %s%s (x%d) - %s₽", esc(item.Name), size, item.Quantity, price(item.Price))
}

func FormatContact(msg *models.ContactMessage) string {
	return fmt.Sprintf("<b>✉️ Новое сообщение #%d</b>\n\n👤 <b>Имя:</b> %s\n📧 <b>Email:</b> %s\n\n%s",
		msg.ID, esc(msg.Name), esc(msg.Email), esc(msg.Message))
}

// ContactEmail is the plain-text email sent to the shop owner.
func ContactEmail(to string, msg *models.ContactMessage) mailer.Message {
	return mailer.Message{
		To:      to,
		Subject: fmt.Sprintf("Новое сообщение от %s", msg.Name),
		Text: fmt.Sprintf("Новое сообщение от %s\n\nEmail: %s\n\nСообщение:\n%s\n",
			msg.Name, msg.Email, msg.Message),
	}
}

func price(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func esc(s string) string {
	return html.EscapeString(s)
}
