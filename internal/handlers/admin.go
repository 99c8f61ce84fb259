package handlers

import (
	"context"
	"net/http"

	"storefront-backend/internal/gateway"
	"storefront-backend/internal/models"
	"storefront-backend/internal/supabase"
)

const (
	targetOrder   = "order"
	targetMessage = "message"
)

// AdminActions godoc
// @Summary     Run an admin action
// @Description action is one of verify, delete, update_status, update_product.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       action body     object true "Action with its fields"
// @Success     200    {object} models.ActionResponse
// @Failure     400    {object} models.ErrorResponse
// @Router      /admin-actions [post]
func (h *Handler) AdminActions() gateway.Actions {
	return gateway.Actions{
		"verify":         h.VerifyAdmin,
		"delete":         h.deleteEntity,
		"update_status":  h.updateStatus,
		"update_product": h.updateProduct,
	}
}

func actionDone() gateway.Response {
	return gateway.OK(models.ActionResponse{
		Success: true,
		Message: "Action completed successfully",
	})
}

func (h *Handler) deleteEntity(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	var body models.AdminTargetRequest
	if err := gateway.Bind(req, &body, "Missing required fields"); err != nil {
		return gateway.Response{}, err
	}

	var err error
	switch body.Type {
	case targetOrder:
		err = h.store.DeleteOrder(ctx, body.ID)
	case targetMessage:
		err = h.store.DeleteContactMessage(ctx, body.ID)
	default:
		return gateway.Response{}, gateway.BadRequest("Invalid type")
	}
	if err != nil {
		return gateway.Response{}, err
	}

	h.logger.Info().Str("type", body.Type).Int64("id", body.ID.Int64()).Msg("entity deleted")
	return actionDone(), nil
}

// updateStatus always targets orders. The type field is required but not
// inspected, and a missing order is not reported.
func (h *Handler) updateStatus(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	var body models.AdminTargetRequest
	if err := gateway.Bind(req, &body, "Missing required fields"); err != nil {
		return gateway.Response{}, err
	}

	if body.Status == "" {
		return gateway.Response{}, gateway.BadRequest("Missing status")
	}

	if err := h.store.UpdateOrderStatus(ctx, body.ID, body.Status); err != nil {
		return gateway.Response{}, err
	}

	h.logger.Info().Int64("order_id", body.ID.Int64()).Str("status", body.Status).Msg("order status updated")
	return actionDone(), nil
}

func (h *Handler) updateProduct(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	var body models.UpdateProductRequest
	if err := gateway.Bind(req, &body, "Missing product id"); err != nil {
		return gateway.Response{}, err
	}

	patch := body.ProductPatch

	var previous *models.Product
	if h.images != nil && hasInlineImage(patch) {
		p, err := h.store.GetProduct(ctx, body.ID)
		if err != nil {
			return gateway.Response{}, err
		}
		previous = p
	}

	if err := h.storeImages(body.ID, &patch); err != nil {
		return gateway.Response{}, err
	}

	if err := h.store.UpdateProduct(ctx, body.ID, patch); err != nil {
		return gateway.Response{}, err
	}
	h.removeReplacedImages(previous, patch)

	h.logger.Info().Int64("product_id", body.ID.Int64()).Bool("timestamp_only", patch.Empty()).Msg("product updated")
	return actionDone(), nil
}

// storeImages replaces inline data URLs in the patch with uploaded links.
// Without an image store the values are written as sent.
func (h *Handler) storeImages(id models.ID, patch *models.ProductPatch) error {
	if h.images == nil {
		return nil
	}

	upload := func(value string) (string, error) {
		if !supabase.IsDataURL(value) {
			return value, nil
		}
		url, err := h.images.UploadDataURL(id, value)
		if err != nil {
			h.logger.Error().Err(err).Int64("product_id", id.Int64()).Msg("image upload failed")
			return "", gateway.Upstream(http.StatusBadGateway, "Image upload failed", err.Error())
		}
		return url, nil
	}

	if patch.Image != nil {
		url, err := upload(*patch.Image)
		if err != nil {
			return err
		}
		patch.Image = &url
	}

	if patch.Images != nil {
		images := make([]string, len(*patch.Images))
		for i, value := range *patch.Images {
			url, err := upload(value)
			if err != nil {
				return err
			}
			images[i] = url
		}
		patch.Images = &images
	}

	return nil
}

func hasInlineImage(patch models.ProductPatch) bool {
	if patch.Image != nil && supabase.IsDataURL(*patch.Image) {
		return true
	}
	if patch.Images != nil {
		for _, value := range *patch.Images {
			if supabase.IsDataURL(value) {
				return true
			}
		}
	}
	return false
}

// removeReplacedImages deletes the previous product images that the committed
// patch no longer references. Failures only leave orphaned files behind.
func (h *Handler) removeReplacedImages(previous *models.Product, patch models.ProductPatch) {
	if previous == nil {
		return
	}

	image, images := previous.Image, previous.Images
	if patch.Image != nil {
		image = *patch.Image
	}
	if patch.Images != nil {
		images = *patch.Images
	}

	kept := map[string]bool{image: true}
	for _, url := range images {
		kept[url] = true
	}

	for _, url := range append([]string{previous.Image}, previous.Images...) {
		if url == "" || kept[url] {
			continue
		}
		kept[url] = true
		if err := h.images.RemoveImage(url); err != nil {
			h.logger.Warn().Err(err).Int64("product_id", previous.ID.Int64()).Msg("failed to remove replaced image")
		}
	}
}
