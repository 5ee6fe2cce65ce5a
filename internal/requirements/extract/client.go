package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"
)

// Extractor turns a conversation transcript into a structured
// requirements model.
type Extractor interface {
	Extract(ctx context.Context, transcript []domain.Message) (*domain.Requirements, error)
}

// Client calls the hosted structured-generation service. The service is
// the sole source of the semantic content; the client only serializes the
// transcript and normalizes the response shape.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// NewClient creates an extraction client.
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

type transcriptTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type extractRequest struct {
	Transcript []transcriptTurn `json:"transcript"`
}

// requirementsPayload is the wire shape returned by the service. Field
// names follow the service's camelCase contract; everything is optional
// and normalized at this boundary.
type requirementsPayload struct {
	ProjectName        string        `json:"projectName"`
	ClientName         string        `json:"clientName"`
	Functional         []itemPayload `json:"functional"`
	NonFunctional      []itemPayload `json:"nonFunctional"`
	Domain             []itemPayload `json:"domain"`
	Risks              []string      `json:"risks"`
	TimelineSuggestion string        `json:"timelineSuggestion"`
	Notes              []string      `json:"notes"`
}

type itemPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// Extract sends the transcript to the structured-generation endpoint and
// parses the response into a requirements model. Every failure mode maps
// to domain.ErrExtractionFailed; no partial model is ever returned.
func (c *Client) Extract(ctx context.Context, transcript []domain.Message) (*domain.Requirements, error) {
	turns := make([]transcriptTurn, 0, len(transcript))
	for _, m := range transcript {
		turns = append(turns, transcriptTurn{Role: m.Role, Text: m.Text})
	}

	body, err := json.Marshal(extractRequest{Transcript: turns})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", domain.ErrExtractionFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/requirements:extract", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrExtractionFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("X-API-Key", c.APIKey)
	}

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: upstream status %d", domain.ErrExtractionFailed, resp.StatusCode)
	}

	var payload requirementsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrExtractionFailed, err)
	}

	model := normalize(payload)
	return &model, nil
}
