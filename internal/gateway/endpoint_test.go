package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"storefront-backend/internal/gateway"
)

func echoEndpoint(calls *int) *gateway.Endpoint {
	return gateway.NewEndpoint("echo", func(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
		*calls++
		return gateway.OK(map[string]any{"success": true}), nil
	}, http.MethodPost)
}

func TestServe_PreflightSkipsHandler(t *testing.T) {
	calls := 0
	ep := echoEndpoint(&calls)

	env, err := ep.Serve(context.Background(), &gateway.Request{Method: http.MethodOptions})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, env.StatusCode)
	assert.Empty(t, env.Body)
	assert.Equal(t, "*", env.Headers["Access-Control-Allow-Origin"])
	assert.Equal(t, "POST, OPTIONS", env.Headers["Access-Control-Allow-Methods"])
	assert.Equal(t, "Content-Type", env.Headers["Access-Control-Allow-Headers"])
	assert.Equal(t, "86400", env.Headers["Access-Control-Max-Age"])
	assert.NotContains(t, env.Headers, "Content-Type")
	assert.Zero(t, calls)
}

func TestServe_MethodNotAllowed(t *testing.T) {
	calls := 0
	ep := echoEndpoint(&calls)

	env, err := ep.Serve(context.Background(), &gateway.Request{Method: http.MethodDelete})
	require.NoError(t, err)

	assert.Equal(t, http.StatusMethodNotAllowed, env.StatusCode)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, env.Body)
	assert.Equal(t, "application/json", env.Headers["Content-Type"])
	assert.Equal(t, "*", env.Headers["Access-Control-Allow-Origin"])
	assert.Zero(t, calls)
}

func TestServe_Success(t *testing.T) {
	calls := 0
	ep := echoEndpoint(&calls)

	env, err := ep.Serve(context.Background(), &gateway.Request{Method: http.MethodPost})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, env.StatusCode)
	assert.JSONEq(t, `{"success":true}`, env.Body)
	assert.Equal(t, "application/json", env.Headers["Content-Type"])
	assert.Equal(t, 1, calls)
}

func TestServe_GatewayErrorBecomesEnvelope(t *testing.T) {
	ep := gateway.NewEndpoint("fail", func(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
		return gateway.Response{}, gateway.Upstream(http.StatusUnauthorized, "Payment creation failed", `{"type":"error"}`)
	}, http.MethodPost)

	env, err := ep.Serve(context.Background(), &gateway.Request{Method: http.MethodPost})
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, env.StatusCode)

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(env.Body), &body))
	assert.Equal(t, "Payment creation failed", body["error"])
	assert.Equal(t, `{"type":"error"}`, body["details"])
}

func TestServe_UnhandledFaultIsReturned(t *testing.T) {
	boom := errors.New("connection refused")
	ep := gateway.NewEndpoint("fault", func(ctx context.Context, req *gateway.Request) (gateway.Response, error) {
		return gateway.Response{}, boom
	}, http.MethodGet)

	_, err := ep.Serve(context.Background(), &gateway.Request{Method: http.MethodGet})
	assert.ErrorIs(t, err, boom)
}

func TestRequest_HeaderIsCaseInsensitive(t *testing.T) {
	req := &gateway.Request{Headers: map[string]string{"host": "shop.example"}}
	assert.Equal(t, "shop.example", req.Header("Host"))
	assert.Empty(t, req.Header("X-Missing"))
}
