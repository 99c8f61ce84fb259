package handlers

import (
	"context"

	"storefront-backend/internal/gateway"
	"storefront-backend/internal/models"
)

// VerifyAdmin is the standalone password check; the admin-actions "verify"
// action shares its logic.
//
// @Summary     Check the admin password
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       password body     models.VerifyPasswordRequest true "Password"
// @Success     200      {object} models.VerifyResponse
// @Failure     500      {object} models.ErrorResponse
// @Router      /verify-admin [post]
func (h *Handler) VerifyAdmin(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
	var body models.VerifyPasswordRequest
	if err := gateway.Bind(req, &body, "Missing password"); err != nil {
		return gateway.Response{}, err
	}

	if h.adminPassword == "" {
		return gateway.Response{}, gateway.NotConfigured("Admin password not configured")
	}

	// Plain equality, matching the deployed admin panel.
	valid := body.Password == h.adminPassword

	message := "Invalid password"
	if valid {
		message = "Password verified"
	}

	return gateway.OK(models.VerifyResponse{Valid: valid, Message: message}), nil
}
