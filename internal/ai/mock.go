package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lalithkumar18-lk/Ai/internal/catalog"
	"github.com/Lalithkumar18-lk/Ai/internal/models"
	"github.com/Lalithkumar18-lk/Ai/internal/utils"
)

// MockResponder answers from the catalog: a keyword match wins, otherwise a
// canned reply is picked by hashing the case id, turn number and message.
type MockResponder struct {
	Replies  []string
	Keywords []catalog.KeywordReply
}

func NewMockResponder(c catalog.Catalog) MockResponder {
	return MockResponder{Replies: c.Replies, Keywords: c.KeywordReplies}
}

func (m MockResponder) Reply(ctx context.Context, c models.Case, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	lower := strings.ToLower(message)
	for _, k := range m.Keywords {
		if strings.Contains(lower, k.Keyword) {
			return k.Reply, nil
		}
	}
	if len(m.Replies) == 0 {
		return "", fmt.Errorf("mock responder has no replies")
	}
	idx := utils.PickIndex(fmt.Sprintf("%s/%d/%s", c.ID, len(c.ChatHistory), message), len(m.Replies))
	return m.Replies[idx], nil
}
