package extract

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqmaster-ai/reqmaster-backend/internal/requirements/domain"
)

func TestExtract_ParsesAndNormalizes(t *testing.T) {
	var gotPath, gotKey string
	var gotReq extractRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(`{
			"projectName": "Online Store",
			"clientName": "Acme",
			"functional": [
				{"id": "f1", "title": "Browse", "description": "List products", "priority": "High"},
				{"title": "Search", "description": "Find products", "priority": "urgent"}
			],
			"risks": ["tight deadline"]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", time.Second)
	transcript := []domain.Message{
		{Role: domain.RoleUser, Text: "I need a shop"},
		{Role: domain.RoleModel, Text: "What kind?"},
	}

	got, err := client.Extract(context.Background(), transcript)
	require.NoError(t, err)

	assert.Equal(t, "/v1/requirements:extract", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotReq.Transcript, 2)
	assert.Equal(t, "user", gotReq.Transcript[0].Role)
	assert.Equal(t, "I need a shop", gotReq.Transcript[0].Text)

	assert.Equal(t, "Online Store", got.ProjectName)
	assert.Equal(t, "Acme", got.ClientName)
	require.Len(t, got.Functional, 2)
	assert.Equal(t, "f1", got.Functional[0].ID)
	assert.Equal(t, domain.PriorityHigh, got.Functional[0].Priority)
	// missing id is filled in, unknown priority clamps to Medium
	assert.NotEmpty(t, got.Functional[1].ID)
	assert.Equal(t, domain.PriorityMedium, got.Functional[1].Priority)
	// absent arrays come back as empty slices, never nil
	assert.NotNil(t, got.NonFunctional)
	assert.Empty(t, got.NonFunctional)
	assert.NotNil(t, got.Notes)
	assert.Equal(t, []string{"tight deadline"}, got.Risks)
}

func TestExtract_UpstreamErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	_, err := client.Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtract_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	_, err := client.Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtract_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	_, err := client.Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}
