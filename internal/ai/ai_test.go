package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lalithkumar18-lk/Ai/internal/catalog"
	"github.com/Lalithkumar18-lk/Ai/internal/models"
)

func TestMockResponderKeywords(t *testing.T) {
	m := NewMockResponder(catalog.ForSchema("ai-ethics"))
	c := models.Case{ID: "CASE-1000"}

	reply, err := m.Reply(context.Background(), c, "Legal implications?")
	require.NoError(t, err)
	assert.Contains(t, reply, "regulatory complaint")
}

func TestMockResponderDeterministic(t *testing.T) {
	m := NewMockResponder(catalog.ForSchema("ai-ethics"))
	c := models.Case{ID: "CASE-1000"}

	a, err := m.Reply(context.Background(), c, "any thoughts?")
	require.NoError(t, err)
	b, err := m.Reply(context.Background(), c, "any thoughts?")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, m.Replies, a)
}

func TestMockResponderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMockResponder(catalog.ForSchema("ai-ethics")).Reply(ctx, models.Case{}, "hi")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildMessagesMapsRoles(t *testing.T) {
	c := models.Case{
		ID:    "CASE-1001",
		Title: "Healthcare AI Misdiagnosis",
		ChatHistory: []models.ChatTurn{
			{Sender: models.SenderUser, Message: "hi"},
			{Sender: models.SenderAI, Message: "hello"},
		},
	}
	msgs := BuildMessages(c, "next?")
	require.Len(t, msgs, 4)
	assert.Equal(t, "system", msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "Healthcare AI Misdiagnosis")
	assert.Equal(t, "user", msgs[1].Role)
	assert.Equal(t, "assistant", msgs[2].Role)
	assert.Equal(t, ChatMessage{Role: "user", Content: "next?"}, msgs[3])
}

func TestAssistantReply(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		var body struct {
			Model    string        `json:"model"`
			Messages []ChatMessage `json:"messages"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body.Model)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":" File a complaint. "}}]}`))
	}))
	defer srv.Close()

	a := NewAssistant(srv.URL+"/v1/", "test-model", "secret", 200)
	c := models.Case{ID: "CASE-1000"}

	reply, err := a.Reply(context.Background(), c, "what now?")
	require.NoError(t, err)
	assert.Equal(t, "File a complaint.", reply)

	_, err = a.Reply(context.Background(), c, "what now?")
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "second identical question is served from cache")
}

func TestAssistantRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"details":[{"@type":"type.googleapis.com/google.rpc.RetryInfo","retryDelay":"7s"}]}}`))
	}))
	defer srv.Close()

	a := NewAssistant(srv.URL, "m", "", 0)
	_, err := a.Reply(context.Background(), models.Case{ID: "x"}, "hi")
	var rl RateLimitError
	require.True(t, errors.As(err, &rl))
	assert.Equal(t, 7*time.Second, rl.RetryAfter)
}

func TestAssistantRequiresConfig(t *testing.T) {
	_, err := NewAssistant("", "m", "", 0).Reply(context.Background(), models.Case{}, "hi")
	assert.Error(t, err)
	_, err = NewAssistant("http://localhost", "", "", 0).Reply(context.Background(), models.Case{}, "hi")
	assert.Error(t, err)
}
