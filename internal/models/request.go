package models

type CreateOrderRequest struct {
	Name     string      `json:"name" validate:"required"`
	Phone    string      `json:"phone" validate:"required"`
	Email    string      `json:"email"`
	Telegram string      `json:"telegram"`
	Address  string      `json:"address" validate:"required"`
	Items    []OrderItem `json:"items" validate:"required,min=1"`
	Total    float64     `json:"total"`
}

type CreateContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ActionRequest carries the discriminator of multi-action endpoints.
type ActionRequest struct {
	Action string `json:"action"`
}

type VerifyPasswordRequest struct {
	Password string `json:"password"`
}

// AdminTargetRequest addresses one stored entity for delete and
// update_status.
type AdminTargetRequest struct {
	Type   string `json:"type" validate:"required"`
	ID     ID     `json:"id" validate:"required"`
	Status string `json:"status"`
}

type UpdateProductRequest struct {
	ID ID `json:"id" validate:"required"`
	ProductPatch
}

type CreatePaymentRequest struct {
	OrderID     ID      `json:"order_id" validate:"required"`
	Amount      float64 `json:"amount" validate:"required"`
	Description string  `json:"description"`
}

type NotifyRequest struct {
	Type  string `json:"type"`
	Order *Order `json:"order"`
}
