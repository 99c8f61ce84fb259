package models

import (
	"encoding/json"
	"time"
)

// Order statuses used by the admin panel. The store does not enforce a
// transition graph between them.
const (
	OrderStatusNew        = "new"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
)

// OrderItem is the typed view of a cart line used for validation and the
// chat template. A decoded item re-encodes to the exact JSON it came from,
// so fields sent by the storefront (id, image, ...) survive storage.
type OrderItem struct {
	Name     string  `json:"name"`
	Size     string  `json:"size,omitempty"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`

	raw json.RawMessage
}

func (i *OrderItem) UnmarshalJSON(data []byte) error {
	type view OrderItem
	var v view
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*i = OrderItem(v)
	i.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (i OrderItem) MarshalJSON() ([]byte, error) {
	if len(i.raw) > 0 {
		return i.raw, nil
	}
	type view OrderItem
	return json.Marshal(view(i))
}

type Order struct {
	ID        ID          `json:"id"`
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	Email     string      `json:"email"`
	Telegram  string      `json:"telegram"`
	Address   string      `json:"address"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	CreatedAt *time.Time  `json:"created_at"`
}

type ContactMessage struct {
	ID        ID         `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Message   string     `json:"message"`
	CreatedAt *time.Time `json:"created_at"`
}
