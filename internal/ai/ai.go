package ai

import (
	"context"

	"github.com/Lalithkumar18-lk/Ai/internal/models"
)

// Responder produces the assistant's side of a case chat. The case passed in
// carries the chat history so far, without message.
type Responder interface {
	Reply(ctx context.Context, c models.Case, message string) (string, error)
}
