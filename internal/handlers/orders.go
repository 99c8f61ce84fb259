package handlers

import (
	"context"

	"storefront-backend/internal/gateway"
	"storefront-backend/internal/models"
)

// SubmitOrder godoc
// @Summary     Submit an order
// @Description Stores the order and notifies the shop chat. Items are stored exactly as sent.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       order body     models.CreateOrderRequest true "Order"
// @Success     200   {object} models.OrderCreatedResponse
// @Failure     400   {object} models.ErrorResponse
// @Router      /submit-order [post]
func (h *Handler) SubmitOrder(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	var body models.CreateOrderRequest
	if err := gateway.Bind(req, &body, "Missing required fields"); err != nil {
		return gateway.Response{}, err
	}

	order := &models.Order{
		Name:     body.Name,
		Phone:    body.Phone,
		Email:    body.Email,
		Telegram: body.Telegram,
		Address:  body.Address,
		Items:    body.Items,
		Total:    body.Total,
		Status:   models.OrderStatusNew,
	}

	id, err := h.store.CreateOrder(ctx, order)
	if err != nil {
		return gateway.Response{}, err
	}
	order.ID = id

	h.logger.Info().Int64("order_id", id.Int64()).Int("items", len(order.Items)).Msg("order created")
	h.notifier.NotifyOrder(ctx, order)

	return gateway.OK(models.OrderCreatedResponse{
		Success: true,
		OrderID: id,
		Message: "Order successfully created",
	}), nil
}
