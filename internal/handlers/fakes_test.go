package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"storefront-backend/internal/models"
	"storefront-backend/internal/yookassa"
)

// memoryStore keeps entities in maps keyed by store-assigned ids.
type memoryStore struct {
	mu       sync.Mutex
	nextID   models.ID
	orders   map[models.ID]models.Order
	messages map[models.ID]models.ContactMessage
	products map[models.ID]models.Product
	patches  []models.ProductPatch
	calls    int
	err      error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		orders:   map[models.ID]models.Order{},
		messages: map[models.ID]models.ContactMessage{},
		products: map[models.ID]models.Product{},
	}
}

func (s *memoryStore) begin() error {
	s.calls++
	return s.err
}

func (s *memoryStore) CreateOrder(ctx context.Context, order *models.Order) (models.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return 0, err
	}
	s.nextID++
	stored := *order
	stored.ID = s.nextID
	stored.Status = models.OrderStatusNew
	s.orders[stored.ID] = stored
	return stored.ID, nil
}

func (s *memoryStore) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) (models.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return 0, err
	}
	s.nextID++
	stored := *msg
	stored.ID = s.nextID
	s.messages[stored.ID] = stored
	return stored.ID, nil
}

func (s *memoryStore) DeleteOrder(ctx context.Context, id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return err
	}
	delete(s.orders, id)
	return nil
}

func (s *memoryStore) DeleteContactMessage(ctx context.Context, id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return err
	}
	delete(s.messages, id)
	return nil
}

func (s *memoryStore) UpdateOrderStatus(ctx context.Context, id models.ID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return err
	}
	if order, ok := s.orders[id]; ok {
		order.Status = status
		s.orders[id] = order
	}
	return nil
}

func (s *memoryStore) UpdateProduct(ctx context.Context, id models.ID, patch models.ProductPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return err
	}
	s.patches = append(s.patches, patch)

	p, ok := s.products[id]
	if !ok {
		return nil
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Sizes != nil {
		p.Sizes = *patch.Sizes
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
	s.products[id] = p
	return nil
}

func (s *memoryStore) GetProduct(ctx context.Context, id models.ID) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *memoryStore) ListAll(ctx context.Context) (*models.ListingResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}
	listing := &models.ListingResponse{
		Orders:   []models.Order{},
		Messages: []models.ContactMessage{},
		Products: []models.Product{},
	}
	for _, o := range s.orders {
		listing.Orders = append(listing.Orders, o)
	}
	for _, m := range s.messages {
		listing.Messages = append(listing.Messages, m)
	}
	for _, p := range s.products {
		listing.Products = append(listing.Products, p)
	}
	return listing, nil
}

type fakeNotifier struct {
	token, chatID bool
	orders        []*models.Order
	contacts      []*models.ContactMessage
	tests         int
	setupChecks   int
	sendErr       error
}

func (f *fakeNotifier) NotifyOrder(ctx context.Context, order *models.Order) {
	f.orders = append(f.orders, order)
}

func (f *fakeNotifier) NotifyContact(ctx context.Context, msg *models.ContactMessage) {
	f.contacts = append(f.contacts, msg)
}

func (f *fakeNotifier) SendTest(ctx context.Context) (json.RawMessage, error) {
	f.tests++
	return json.RawMessage(`{"ok":true}`), f.sendErr
}

func (f *fakeNotifier) SendSetupCheck(ctx context.Context) (json.RawMessage, error) {
	f.setupChecks++
	return json.RawMessage(`{"ok":true}`), f.sendErr
}

func (f *fakeNotifier) ChatID() string {
	return "-100"
}

func (f *fakeNotifier) SendOrder(ctx context.Context, order *models.Order) (json.RawMessage, error) {
	f.orders = append(f.orders, order)
	return json.RawMessage(`{"ok":true}`), f.sendErr
}

func (f *fakeNotifier) Credentials() (bool, bool) {
	return f.token, f.chatID
}

type fakePayments struct {
	configured bool
	requests   []yookassa.PaymentRequest
	payment    *yookassa.Payment
	err        error
}

func (f *fakePayments) Configured() bool {
	return f.configured
}

func (f *fakePayments) CreatePayment(ctx context.Context, payment yookassa.PaymentRequest) (*yookassa.Payment, error) {
	f.requests = append(f.requests, payment)
	return f.payment, f.err
}

type fakeImages struct {
	uploads []string
	removed []string
	err     error
}

func (f *fakeImages) RemoveImage(publicURL string) error {
	f.removed = append(f.removed, publicURL)
	return nil
}

func (f *fakeImages) UploadDataURL(productID models.ID, dataURL string) (string, error) {
	f.uploads = append(f.uploads, dataURL)
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.example/products/uploaded.png", nil
}

var errStoreDown = errors.New("store down")
