package models

import "time"

type Product struct {
	ID          ID         `json:"id"`
	Name        string     `json:"name"`
	Price       float64    `json:"price"`
	Image       string     `json:"image"`
	Images      []string   `json:"images"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Sizes       []string   `json:"sizes"`
	InStock     bool       `json:"inStock"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// ProductPatch is a sparse product update. A nil field is left untouched.
type ProductPatch struct {
	Name        *string   `json:"name,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Description *string   `json:"description,omitempty"`
	Sizes       *[]string `json:"sizes,omitempty"`
	InStock     *bool     `json:"inStock,omitempty"`
}

// Empty reports whether no field is set.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Price == nil && p.Image == nil && p.Images == nil &&
		p.Category == nil && p.Description == nil && p.Sizes == nil && p.InStock == nil
}
