package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Lalithkumar18-lk/Ai/internal/models"
)

const systemPrompt = `You are an advocacy case assistant. Give short, practical next steps for the case below. Do not invent facts about the case.`

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Assistant talks to an OpenAI-compatible /chat/completions endpoint.
type Assistant struct {
	BaseURL   string
	Model     string
	APIKey    string
	MaxTokens int
	Client    *http.Client
	CacheTTL  time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	value string
	exp   time.Time
}

type RateLimitError struct {
	RetryAfter time.Duration
}

func (r RateLimitError) Error() string {
	if r.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s", r.RetryAfter)
	}
	return "rate limited"
}

func NewAssistant(baseURL, model, apiKey string, maxTokens int) *Assistant {
	return &Assistant{
		BaseURL:   baseURL,
		Model:     model,
		APIKey:    apiKey,
		MaxTokens: maxTokens,
		CacheTTL:  60 * time.Second,
	}
}

func (a *Assistant) Reply(ctx context.Context, c models.Case, message string) (string, error) {
	if strings.TrimSpace(a.BaseURL) == "" {
		return "", fmt.Errorf("ASSISTANT_BASE_URL is not set")
	}
	if strings.TrimSpace(a.Model) == "" {
		return "", fmt.Errorf("ASSISTANT_MODEL is not set")
	}

	key := fmt.Sprintf("%s/%d/%s", c.ID, len(c.ChatHistory), message)
	if v, ok := a.cacheGet(key); ok {
		return v, nil
	}

	payload := struct {
		Model     string        `json:"model"`
		MaxTokens int           `json:"max_tokens,omitempty"`
		Messages  []ChatMessage `json:"messages"`
	}{
		Model:     a.Model,
		MaxTokens: a.MaxTokens,
		Messages:  BuildMessages(c, message),
	}

	b, _ := json.Marshal(payload)
	url := strings.TrimRight(a.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if strings.TrimSpace(a.APIKey) != "" {
		req.Header.Set("Authorization", "Bearer "+a.APIKey)
	}

	resp, err := a.client(ctx).Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("assistant request timed out")
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return "", fmt.Errorf("assistant request timed out")
		}
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if resp.StatusCode == http.StatusTooManyRequests {
			return "", RateLimitError{RetryAfter: extractRetryAfter(errBody)}
		}
		return "", fmt.Errorf("assistant http error: %s: %v", resp.Status, errBody)
	}

	var res struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", err
	}
	if len(res.Choices) == 0 || strings.TrimSpace(res.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("empty assistant response")
	}
	answer := strings.TrimSpace(res.Choices[0].Message.Content)
	a.cacheSet(key, answer)
	return answer, nil
}

// BuildMessages renders the case as a system prompt followed by the chat
// history and the new user message.
func BuildMessages(c models.Case, message string) []ChatMessage {
	var sb strings.Builder
	sb.WriteString(systemPrompt)
	fmt.Fprintf(&sb, "\n\nCase %s: %s\nCategory: %s\nPlatform: %s\nPriority: %s\nStatus: %s\n", c.ID, c.Title, c.Category, c.Platform, c.Priority, c.Status)
	if c.Description != "" {
		fmt.Fprintf(&sb, "Description: %s\n", c.Description)
	}
	for _, act := range c.AdvocacyActions {
		fmt.Fprintf(&sb, "Action taken (%s): %s [%s]\n", act.Type, act.Action, act.Status)
	}

	msgs := make([]ChatMessage, 0, len(c.ChatHistory)+2)
	msgs = append(msgs, ChatMessage{Role: "system", Content: sb.String()})
	for _, turn := range c.ChatHistory {
		role := "user"
		if turn.Sender == models.SenderAI {
			role = "assistant"
		}
		msgs = append(msgs, ChatMessage{Role: role, Content: turn.Message})
	}
	return append(msgs, ChatMessage{Role: "user", Content: message})
}

func (a *Assistant) client(ctx context.Context) *http.Client {
	if a.Client != nil {
		return a.Client
	}
	timeout := 45 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}
	return &http.Client{Timeout: timeout}
}

func (a *Assistant) cacheGet(key string) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if e, ok := a.cache[key]; ok {
		if time.Now().Before(e.exp) {
			return e.value, true
		}
		delete(a.cache, key)
	}
	return "", false
}

func (a *Assistant) cacheSet(key, value string) {
	if a.CacheTTL <= 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cache == nil {
		a.cache = map[string]cacheEntry{}
	}
	a.cache[key] = cacheEntry{
		value: value,
		exp:   time.Now().Add(a.CacheTTL),
	}
}

func extractRetryAfter(errBody map[string]any) time.Duration {
	errObj, ok := errBody["error"].(map[string]any)
	if !ok {
		return 0
	}
	details, ok := errObj["details"].([]any)
	if !ok {
		return 0
	}
	for _, d := range details {
		m, ok := d.(map[string]any)
		if !ok {
			continue
		}
		if t, ok := m["@type"].(string); ok && strings.Contains(t, "RetryInfo") {
			if s, ok := m["retryDelay"].(string); ok {
				if dur, err := time.ParseDuration(s); err == nil {
					return dur
				}
			}
		}
	}
	return 0
}
