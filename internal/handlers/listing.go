package handlers

import (
	"context"

	"storefront-backend/internal/gateway"
)

// GetOrders godoc
// @Summary     List orders, messages and products
// @Tags        admin
// @Produce     json
// @Success     200 {object} models.ListingResponse
// @Router      /get-orders [get]
func (h *Handler) GetOrders(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	listing, err := h.store.ListAll(ctx)
	if err != nil {
		return gateway.Response{}, err
	}
	return gateway.OK(listing), nil
}
