package handlers

import (
	"context"

	"storefront-backend/internal/gateway"
	"storefront-backend/internal/models"
)

// SubmitContact godoc
// @Summary     Submit a contact message
// @Tags        contact
// @Accept      json
// @Produce     json
// @Param       message body     models.CreateContactRequest true "Contact message"
// @Success     200     {object} models.MessageCreatedResponse
// @Failure     400     {object} models.ErrorResponse
// @Router      /submit-contact [post]
func (h *Handler) SubmitContact(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	var body models.CreateContactRequest
	if err := gateway.Bind(req, &body, "Missing required fields"); err != nil {
		return gateway.Response{}, err
	}

	msg := &models.ContactMessage{
		Name:    body.Name,
		Email:   body.Email,
		Message: body.Message,
	}

	id, err := h.store.CreateContactMessage(ctx, msg)
	if err != nil {
		return gateway.Response{}, err
	}
	msg.ID = id

	h.logger.Info().Int64("message_id", id.Int64()).Msg("contact message stored")
	h.notifier.NotifyContact(ctx, msg)

	return gateway.OK(models.MessageCreatedResponse{
		Success:   true,
		MessageID: id,
		Message:   "Message successfully sent",
	}), nil
}
