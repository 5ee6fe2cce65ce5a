package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is a thin pass-through to the hosted chat endpoint. It performs
// no elicitation logic itself.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// NewClient creates a chat client.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// Turn is one prior conversation turn sent as context.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type chatRequest struct {
	History []Turn `json:"history"`
	Message string `json:"message"`
}

type chatResponse struct {
	OK    bool   `json:"ok"`
	Reply string `json:"reply"`
}

// Send posts one outgoing message with its history and returns the single
// reply text.
func (c *Client) Send(ctx context.Context, history []Turn, message string) (string, error) {
	body, _ := json.Marshal(chatRequest{History: history, Message: message})

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("X-API-Key", c.APIKey)
	}

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("chat send: %w", err)
	}
	defer resp.Body.Close()

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("chat decode: %w", err)
	}
	if resp.StatusCode >= 400 || !out.OK {
		return "", fmt.Errorf("chat error (status %d)", resp.StatusCode)
	}
	return out.Reply, nil
}
