package domain

// CallerProfile is the minimal identity attached to a content request.
type CallerProfile struct {
	PhoneNumber string
	Language    string
	Location    string
}

type HealthContentRequest struct {
	Topic    string
	Language string
	Profile  CallerProfile
}

// HealthContent is the structured education payload returned by the
// content gateway. The same shape is produced by the LLM generator and
// by the static fallback tables, so callers never need to know which
// one answered.
type HealthContent struct {
	Title         string   `json:"title"`
	Body          string   `json:"content"`
	KeyPoints     []string `json:"keyPoints"`
	AudioScript   string   `json:"audioScript"`
	CulturalNotes string   `json:"culturalNotes"`
	ActionItems   []string `json:"actionItems"`
}
