package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_ReturnsReply(t *testing.T) {
	var gotReq chatRequest
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(`{"ok": true, "reply": "What features do you need?"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", time.Second)
	history := []Turn{{Role: "user", Text: "I need a shop"}}

	reply, err := client.Send(context.Background(), history, "something online")
	require.NoError(t, err)
	assert.Equal(t, "What features do you need?", reply)

	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotReq.History, 1)
	assert.Equal(t, "I need a shop", gotReq.History[0].Text)
	assert.Equal(t, "something online", gotReq.Message)
}

func TestSend_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"ok": false}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	_, err := client.Send(context.Background(), nil, "hello")
	assert.Error(t, err)
}

func TestSend_NotOKResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok": false, "reply": ""}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	_, err := client.Send(context.Background(), nil, "hello")
	assert.Error(t, err)
}
