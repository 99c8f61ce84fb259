// Package yookassa creates redirect payments through the YooKassa v3 API.
package yookassa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"storefront-backend/internal/metrics"
)

const (
	CurrencyRUB = "RUB"

	DefaultDescription = "Оплата заказа"
)

type Client struct {
	baseURL    string
	shopID     string
	secretKey  string
	httpClient *http.Client
}

type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type Confirmation struct {
	Type            string `json:"type"`
	ReturnURL       string `json:"return_url,omitempty"`
	ConfirmationURL string `json:"confirmation_url,omitempty"`
}

type PaymentRequest struct {
	Amount       Amount            `json:"amount"`
	Confirmation Confirmation      `json:"confirmation"`
	Capture      bool              `json:"capture"`
	Description  string            `json:"description"`
	Metadata     map[string]string `json:"metadata"`
}

type Payment struct {
	ID           string       `json:"id"`
	Status       string       `json:"status"`
	Paid         bool         `json:"paid"`
	Amount       Amount       `json:"amount"`
	Confirmation Confirmation `json:"confirmation"`
}

// APIError is a non-200 answer from the provider. Body is kept verbatim.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yookassa: status %d, body: %s", e.StatusCode, e.Body)
}

func NewClient(baseURL, shopID, secretKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		shopID:    shopID,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Configured() bool {
	return c.shopID != "" && c.secretKey != ""
}

// NewPaymentRequest builds a captured redirect payment for an order. The
// customer is sent back to https://{host}/order-success after paying.
func NewPaymentRequest(orderID string, amount float64, description, host string) PaymentRequest {
	if description == "" {
		description = DefaultDescription
	}

	return PaymentRequest{
		Amount: Amount{
			Value:    fmt.Sprintf("%.2f", amount),
			Currency: CurrencyRUB,
		},
		Confirmation: Confirmation{
			Type:      "redirect",
			ReturnURL: fmt.Sprintf("https://%s/order-success?order_id=%s", host, orderID),
		},
		Capture:     true,
		Description: fmt.Sprintf("%s #%s", description, orderID),
		Metadata:    map[string]string{"order_id": orderID},
	}
}

// CreatePayment submits the request with a fresh idempotence key, so a retry
// by the caller is a distinct payment.
func (c *Client) CreatePayment(ctx context.Context, payment PaymentRequest) (*Payment, error) {
	jsonData, err := json.Marshal(payment)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(c.shopID, c.secretKey)
	req.Header.Set("Idempotence-Key", uuid.NewString())
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObservePayment("error", start)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()
	metrics.ObservePayment(fmt.Sprint(resp.StatusCode), start)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result Payment
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}

	return &result, nil
}
