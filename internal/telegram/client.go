// Package telegram is a minimal Bot API client covering sendMessage.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const ParseModeHTML = "HTML"

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type SendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// APIResponse is the envelope every Bot API method answers with.
type APIResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	Description string          `json:"description,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SendMessage posts an HTML formatted message to chatID and returns the raw
// API response body.
func (c *Client) SendMessage(ctx context.Context, chatID, text string) (json.RawMessage, error) {
	jsonData, err := json.Marshal(SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: ParseModeHTML,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The request URL carries the bot token; keep it out of the error text.
		return nil, fmt.Errorf("failed to execute request: %w", unwrapURLError(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result APIResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: status %d, body: %s", resp.StatusCode, string(body))
	}

	if resp.StatusCode != http.StatusOK || !result.OK {
		return nil, fmt.Errorf("telegram sendMessage failed: status %d, %s", resp.StatusCode, result.Description)
	}

	return body, nil
}
