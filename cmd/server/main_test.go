package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"storefront-backend/internal/handlers"
)

type okPinger struct{}

func (okPinger) Ping(ctx context.Context) error { return nil }

func TestRouter_MountsEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := handlers.New(handlers.Deps{Logger: zerolog.Nop()})
	router := newRouter(h, okPinger{}, zerolog.Nop())

	for _, ep := range h.Endpoints() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/"+ep.Name, nil))
		assert.Equal(t, http.StatusOK, w.Code, ep.Name)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), ep.Name)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/submit-order", strings.NewReader("{}")))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ServesAPIDocs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := handlers.New(handlers.Deps{Logger: zerolog.Nop()})
	router := newRouter(h, okPinger{}, zerolog.Nop())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	for _, ep := range h.Endpoints() {
		assert.Contains(t, doc.Paths, "/"+ep.Name)
	}
	assert.Contains(t, doc.Paths, "/health")
}
