package handlers

import (
	"context"
	"errors"
	"net/http"

	"storefront-backend/internal/gateway"
	"storefront-backend/internal/models"
	"storefront-backend/internal/yookassa"
)

// CreatePayment godoc
// @Summary     Create a YuKassa payment
// @Tags        payments
// @Accept      json
// @Produce     json
// @Param       payment body     models.CreatePaymentRequest true "Payment"
// @Success     200     {object} models.PaymentResponse
// @Failure     400     {object} models.ErrorResponse
// @Failure     500     {object} models.ErrorResponse
// @Failure     502     {object} models.ErrorResponse
// @Router      /create-payment [post]
func (h *Handler) CreatePayment(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	var body models.CreatePaymentRequest
	if err := gateway.Bind(req, &body, "Missing order_id or amount"); err != nil {
		return gateway.Response{}, err
	}

	if !h.payments.Configured() {
		return gateway.Response{}, gateway.NotConfigured("YuKassa credentials not configured")
	}

	host := h.publicHost
	if host == "" {
		host = req.Header("Host")
	}

	payment, err := h.payments.CreatePayment(ctx,
		yookassa.NewPaymentRequest(body.OrderID.String(), body.Amount, body.Description, host))
	if err != nil {
		var apiErr *yookassa.APIError
		if errors.As(err, &apiErr) {
			h.logger.Warn().Int("status", apiErr.StatusCode).Int64("order_id", body.OrderID.Int64()).Msg("payment rejected by provider")
			return gateway.Response{}, gateway.Upstream(apiErr.StatusCode, "Payment creation failed", apiErr.Body)
		}
		h.logger.Error().Err(err).Int64("order_id", body.OrderID.Int64()).Msg("payment provider unreachable")
		return gateway.Response{}, gateway.Upstream(http.StatusBadGateway, "Payment provider unreachable", err.Error())
	}

	h.logger.Info().Str("payment_id", payment.ID).Int64("order_id", body.OrderID.Int64()).Msg("payment created")

	return gateway.OK(models.PaymentResponse{
		Success:         true,
		PaymentID:       payment.ID,
		ConfirmationURL: payment.Confirmation.ConfirmationURL,
		Status:          payment.Status,
	}), nil
}
