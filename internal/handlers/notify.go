package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"storefront-backend/internal/gateway"
	"storefront-backend/internal/models"
)

const notifyTypeOrder = "order"

// SendTelegram answers GET with a test message and POST with an order
// notification. Unlike order submission it fails loudly when the bot is not
// configured.
//
// @Summary     Send a chat notification
// @Tags        telegram
// @Accept      json
// @Produce     json
// @Param       notification body     models.NotifyRequest false "Order notification (POST)"
// @Success     200          {object} models.NotifyResponse
// @Failure     400          {object} models.ErrorResponse
// @Failure     500          {object} models.ErrorResponse
// @Router      /send-telegram [get]
// @Router      /send-telegram [post]
func (h *Handler) SendTelegram(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	if token, chatID := h.notifier.Credentials(); !token || !chatID {
		e := gateway.NotConfigured("Telegram bot token or chat ID not configured").WithSuccessFlag()
		e.Body.BotTokenExists = &token
		e.Body.ChatIDExists = &chatID
		return gateway.Response{}, e
	}

	var (
		raw json.RawMessage
		err error
	)

	if req.Method == http.MethodGet {
		raw, err = h.notifier.SendTest(ctx)
	} else {
		var body models.NotifyRequest
		if err := gateway.Bind(req, &body, "Missing order"); err != nil {
			return gateway.Response{}, withSuccessFlag(err)
		}
		if body.Type == "" {
			body.Type = notifyTypeOrder
		}
		if body.Type != notifyTypeOrder {
			return gateway.Response{}, gateway.BadRequest("Unknown message type").WithSuccessFlag()
		}
		if body.Order == nil {
			return gateway.Response{}, gateway.BadRequest("Missing order").WithSuccessFlag()
		}
		raw, err = h.notifier.SendOrder(ctx, body.Order)
	}

	if err != nil {
		h.logger.Error().Err(err).Str("method", req.Method).Msg("telegram notification failed")
		return gateway.Response{}, gateway.Internal(err.Error()).WithSuccessFlag()
	}

	return gateway.OK(models.NotifyResponse{
		Success:          true,
		Message:          "Telegram notification sent successfully",
		TelegramResponse: raw,
	}), nil
}

func withSuccessFlag(err error) error {
	if gerr, ok := err.(*gateway.Error); ok {
		return gerr.WithSuccessFlag()
	}
	return err
}
