package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

// OpenAIGenerator produces education content and assistant replies with
// an OpenAI-compatible chat model.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerator(apiKey, baseURL, model string) *OpenAIGenerator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

const healthContentPrompt = `Generate maternal health education content for Sierra Leone.

Topic: %s
Language: %s
Caller: %s

Requirements:
- Culturally appropriate for Sierra Leone
- Accessible language level
- Practical action items
- Audio-friendly script for voice narration
- Address common concerns and myths

Respond with a single JSON object with keys: title, content, keyPoints (array of strings),
audioScript, culturalNotes, actionItems (array of strings). No other text.`

func (g *OpenAIGenerator) GenerateHealthContent(ctx context.Context, req domain.HealthContentRequest) (*domain.HealthContent, error) {
	prompt := fmt.Sprintf(healthContentPrompt, req.Topic, req.Language, req.Profile.PhoneNumber)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		MaxTokens: 2000,
	})
	if err != nil {
		return nil, fmt.Errorf("generate health content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("generate health content: empty response")
	}

	var out domain.HealthContent
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &out); err != nil {
		return nil, fmt.Errorf("parse health content: %w", err)
	}
	if out.Title == "" || len(out.KeyPoints) == 0 {
		return nil, fmt.Errorf("parse health content: incomplete object")
	}
	return &out, nil
}

func (g *OpenAIGenerator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "Translate the user's message to " + targetLanguage +
					". Reply with the translation only.",
			},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("translate: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

const assistantSystemPrompt = `You are a maternal health assistant for Sierra Leone serving
callers on SMS and WhatsApp. Keep replies short, practical and safe. Always include the
national emergency number 117 when symptoms could be serious. Never diagnose; direct
callers to a health facility for anything urgent.`

func (g *OpenAIGenerator) ChatReply(ctx context.Context, messages []Message) (string, error) {
	chat := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	chat = append(chat, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: assistantSystemPrompt,
	})
	for _, m := range messages {
		chat = append(chat, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     g.model,
		Messages:  chat,
		MaxTokens: 500,
	})
	if err != nil {
		return "", fmt.Errorf("chat reply: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat reply: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
