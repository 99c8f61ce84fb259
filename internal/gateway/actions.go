package gateway

import (
	"context"

	"storefront-backend/internal/models"
)

// Actions maps the "action" field of a request body to its handler.
type Actions map[string]HandlerFunc

// Dispatch routes req by its action name.
func (a Actions) Dispatch(ctx context.Context, req *Request) (Response, error) {
	var ar models.ActionRequest
	if err := decode(req.Body, &ar); err != nil {
		return Response{}, err
	}

	if ar.Action == "" {
		return Response{}, BadRequest("Missing action")
	}

	handle, ok := a[ar.Action]
	if !ok {
		return Response{}, BadRequest("Invalid action")
	}
	return handle(ctx, req)
}
