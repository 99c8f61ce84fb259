package models

import "encoding/json"

type ErrorResponse struct {
	// Success is only set by the notification endpoint, which has always
	// reported failures as success=false.
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`

	BotTokenExists *bool `json:"bot_token_exists,omitempty"`
	ChatIDExists   *bool `json:"chat_id_exists,omitempty"`

	ChatID string `json:"chat_id,omitempty"`
}

type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type OrderCreatedResponse struct {
	Success bool   `json:"success"`
	OrderID ID     `json:"order_id"`
	Message string `json:"message"`
}

type MessageCreatedResponse struct {
	Success   bool   `json:"success"`
	MessageID ID     `json:"message_id"`
	Message   string `json:"message"`
}

type VerifyResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

type ListingResponse struct {
	Orders   []Order          `json:"orders"`
	Messages []ContactMessage `json:"messages"`
	Products []Product        `json:"products"`
}

type PaymentResponse struct {
	Success         bool   `json:"success"`
	PaymentID       string `json:"payment_id"`
	ConfirmationURL string `json:"confirmation_url"`
	Status          string `json:"status"`
}

type NotifyResponse struct {
	Success          bool            `json:"success"`
	Message          string          `json:"message"`
	TelegramResponse json.RawMessage `json:"telegram_response,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
