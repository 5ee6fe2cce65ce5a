package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrSendFailed covers transport errors and non-2xx responses from the
// email service. No structured response is consumed beyond success.
var ErrSendFailed = errors.New("feedback send failed")

// Message is one piece of user feedback forwarded by email.
type Message struct {
	Text     string `json:"message"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Client posts feedback to the hosted email-sending service.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient creates a feedback client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// Send forwards one feedback message.
func (c *Client) Send(ctx context.Context, msg Message) error {
	body, _ := json.Marshal(msg)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/feedback", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrSendFailed, resp.StatusCode)
	}
	return nil
}
