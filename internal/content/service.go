package content

import (
	"context"
	"log/slog"
	"time"

	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

// Service wraps a Generator and guarantees a result for every call: one
// attempt bounded by the configured timeout, then static fallback. A nil
// generator means the service runs on fallback content alone.
type Service struct {
	gen     Generator
	timeout time.Duration
}

func NewService(gen Generator, timeout time.Duration) *Service {
	return &Service{gen: gen, timeout: timeout}
}

// HealthContent never fails. On generator error or timeout the static
// content for the topic is returned verbatim.
func (s *Service) HealthContent(ctx context.Context, req domain.HealthContentRequest) *domain.HealthContent {
	if s.gen == nil {
		return Fallback(req.Topic)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	c, err := s.gen.GenerateHealthContent(ctx, req)
	if err != nil {
		slog.Warn("content generation failed, using fallback", "topic", req.Topic, "error", err)
		return Fallback(req.Topic)
	}
	return c
}

// Translate returns the original text unchanged when translation is
// unavailable.
func (s *Service) Translate(ctx context.Context, text, targetLanguage string) string {
	if s.gen == nil {
		return text
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.gen.Translate(ctx, text, targetLanguage)
	if err != nil {
		slog.Warn("translation failed, returning original", "language", targetLanguage, "error", err)
		return text
	}
	return out
}

// ChatReply answers free-text questions, degrading to keyword heuristics.
func (s *Service) ChatReply(ctx context.Context, messages []Message) string {
	last := ""
	if len(messages) > 0 {
		last = messages[len(messages)-1].Content
	}

	if s.gen == nil {
		return FallbackChatReply(last)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.gen.ChatReply(ctx, messages)
	if err != nil {
		slog.Warn("assistant reply failed, using fallback", "error", err)
		return FallbackChatReply(last)
	}
	return reply
}
