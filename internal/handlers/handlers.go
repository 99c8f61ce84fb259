// Package handlers implements the storefront endpoints on top of the gateway.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"storefront-backend/internal/gateway"
	"storefront-backend/internal/models"
	"storefront-backend/internal/yookassa"
)

type Store interface {
	CreateOrder(ctx context.Context, order *models.Order) (models.ID, error)
	CreateContactMessage(ctx context.Context, msg *models.ContactMessage) (models.ID, error)
	DeleteOrder(ctx context.Context, id models.ID) error
	DeleteContactMessage(ctx context.Context, id models.ID) error
	UpdateOrderStatus(ctx context.Context, id models.ID, status string) error
	UpdateProduct(ctx context.Context, id models.ID, patch models.ProductPatch) error
	GetProduct(ctx context.Context, id models.ID) (*models.Product, error)
	ListAll(ctx context.Context) (*models.ListingResponse, error)
}

type Notifier interface {
	NotifyOrder(ctx context.Context, order *models.Order)
	NotifyContact(ctx context.Context, msg *models.ContactMessage)
	SendTest(ctx context.Context) (json.RawMessage, error)
	SendSetupCheck(ctx context.Context) (json.RawMessage, error)
	ChatID() string
	SendOrder(ctx context.Context, order *models.Order) (json.RawMessage, error)
	Credentials() (token, chatID bool)
}

type PaymentProvider interface {
	Configured() bool
	CreatePayment(ctx context.Context, payment yookassa.PaymentRequest) (*yookassa.Payment, error)
}

// ImageStore uploads inline product images and removes the ones they
// replace. Optional.
type ImageStore interface {
	UploadDataURL(productID models.ID, dataURL string) (string, error)
	RemoveImage(publicURL string) error
}

type Deps struct {
	Store         Store
	Notifier      Notifier
	Payments      PaymentProvider
	Images        ImageStore
	AdminPassword string
	PublicHost    string
	Logger        zerolog.Logger
}

type Handler struct {
	store         Store
	notifier      Notifier
	payments      PaymentProvider
	images        ImageStore
	adminPassword string
	publicHost    string
	logger        zerolog.Logger
}

func New(deps Deps) *Handler {
	return &Handler{
		store:         deps.Store,
		notifier:      deps.Notifier,
		payments:      deps.Payments,
		images:        deps.Images,
		adminPassword: deps.AdminPassword,
		publicHost:    deps.PublicHost,
		logger:        deps.Logger,
	}
}

// Endpoint names double as the mount path on the HTTP server and the
// FUNCTION value of the lambda host.
const (
	SubmitOrder   = "submit-order"
	SubmitContact = "submit-contact"
	AdminActions  = "admin-actions"
	GetOrders     = "get-orders"
	CreatePayment = "create-payment"
	SendTelegram  = "send-telegram"
	TestTelegram  = "test-telegram"
	VerifyAdmin   = "verify-admin"
)

func (h *Handler) Endpoints() []*gateway.Endpoint {
	return []*gateway.Endpoint{
		gateway.NewEndpoint(SubmitOrder, h.SubmitOrder, http.MethodPost),
		gateway.NewEndpoint(SubmitContact, h.SubmitContact, http.MethodPost),
		gateway.NewEndpoint(AdminActions, h.AdminActions().Dispatch, http.MethodPost),
		gateway.NewEndpoint(GetOrders, h.GetOrders, http.MethodGet),
		gateway.NewEndpoint(CreatePayment, h.CreatePayment, http.MethodPost),
		gateway.NewEndpoint(SendTelegram, h.SendTelegram, http.MethodGet, http.MethodPost),
		gateway.NewEndpoint(TestTelegram, h.TestTelegram, http.MethodGet, http.MethodPost),
		gateway.NewEndpoint(VerifyAdmin, h.VerifyAdmin, http.MethodPost),
	}
}

// Endpoint looks up an endpoint by name.
func (h *Handler) Endpoint(name string) (*gateway.Endpoint, bool) {
	for _, ep := range h.Endpoints() {
		if ep.Name == name {
			return ep, true
		}
	}
	return nil, false
}
