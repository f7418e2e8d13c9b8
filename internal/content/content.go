// Package content provides health education content generation backed by
// an LLM, with deterministic static fallback so callers always receive a
// usable result.
package content

import (
	"context"

	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

// Message is one turn in an assistant conversation.
type Message struct {
	Role    string // system, user, assistant
	Content string
}

// Generator is the upstream content capability. Implementations may fail;
// the Service wrapper is what guarantees a result.
type Generator interface {
	GenerateHealthContent(ctx context.Context, req domain.HealthContentRequest) (*domain.HealthContent, error)
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
	ChatReply(ctx context.Context, messages []Message) (string, error)
}
