package database

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"storefront-backend/internal/models"
)

// buildProductUpdate renders the UPDATE for a sparse patch. The id is always
// the last placeholder. An empty patch still touches updated_at.
func buildProductUpdate(id models.ID, patch models.ProductPatch) (string, []any) {
	var (
		sets []string
		args []any
	)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Image != nil {
		add("image", *patch.Image)
	}
	if patch.Images != nil {
		add("images", pq.Array(*patch.Images))
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Sizes != nil {
		add("sizes", pq.Array(*patch.Sizes))
	}
	if patch.InStock != nil {
		add("in_stock", *patch.InStock)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id.Int64())

	query := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	return query, args
}
