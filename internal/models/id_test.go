package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"storefront-backend/internal/models"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want models.ID
	}{
		{"number", `{"id": 42}`, 42},
		{"numeric string", `{"id": "17"}`, 17},
		{"null", `{"id": null}`, 0},
		{"empty string", `{"id": ""}`, 0},
		{"absent", `{}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				ID models.ID `json:"id"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.in), &v))
			assert.Equal(t, tt.want, v.ID)
		})
	}
}

func TestID_UnmarshalJSON_Invalid(t *testing.T) {
	for _, in := range []string{`{"id": "abc"}`, `{"id": 1.5}`, `{"id": true}`} {
		var v struct {
			ID models.ID `json:"id"`
		}
		err := json.Unmarshal([]byte(in), &v)
		assert.ErrorIs(t, err, models.ErrInvalidID, in)
	}
}

func TestID_MarshalsAsNumber(t *testing.T) {
	out, err := json.Marshal(models.OrderCreatedResponse{Success: true, OrderID: 7, Message: "ok"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"order_id":7,"message":"ok"}`, string(out))
}

func TestProductPatch_Empty(t *testing.T) {
	assert.True(t, models.ProductPatch{}.Empty())

	inStock := false
	assert.False(t, models.ProductPatch{InStock: &inStock}.Empty())
}
