package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"storefront-backend/internal/handlers"
	"storefront-backend/internal/notifier"
)

type unreachableChat struct{ attempts int }

func (u *unreachableChat) SendMessage(ctx context.Context, chatID, text string) (json.RawMessage, error) {
	u.attempts++
	return nil, errors.New("dial tcp: connection refused")
}

func TestSubmitOrder_ChatFailureKeepsResponse(t *testing.T) {
	chat := &unreachableChat{}
	h := newHarness(t)
	h.handler = handlers.New(handlers.Deps{
		Store: h.store,
		Notifier: notifier.New(chat, nil, notifier.Options{
			ChatID:  "-100",
			Timeout: time.Second,
		}, zerolog.Nop()),
		Logger: zerolog.Nop(),
	})

	env, body := h.call(t, handlers.SubmitOrder, http.MethodPost, `{
		"name":"Ann","phone":"1","address":"Moscow",
		"items":[{"name":"Hoodie","quantity":2,"price":1500}],"total":3000}`)

	require.Equal(t, http.StatusOK, env.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["order_id"])
	assert.Equal(t, 1, chat.attempts)
}
