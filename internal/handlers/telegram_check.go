package handlers

import (
	"context"

	"storefront-backend/internal/gateway"
	"storefront-backend/internal/models"
)

// TestTelegram sends the setup confirmation the admin panel uses to check the
// bot. Its error bodies differ from send-telegram: no success flag, and
// delivery failures echo the chat id.
//
// @Summary     Send the bot setup check
// @Tags        telegram
// @Produce     json
// @Success     200 {object} models.NotifyResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /test-telegram [get]
// @Router      /test-telegram [post]
func (h *Handler) TestTelegram(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	token, chatID := h.notifier.Credentials()
	if !token || !chatID {
		e := gateway.NotConfigured("Telegram credentials not configured")
		e.Body.BotTokenExists = &token
		e.Body.ChatIDExists = &chatID
		return gateway.Response{}, e
	}

	raw, err := h.notifier.SendSetupCheck(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("telegram setup check failed")
		e := gateway.Internal(err.Error())
		e.Body.ChatID = h.notifier.ChatID()
		return gateway.Response{}, e
	}

	return gateway.OK(models.NotifyResponse{
		Success:          true,
		Message:          "Test message sent successfully",
		TelegramResponse: raw,
	}), nil
}
