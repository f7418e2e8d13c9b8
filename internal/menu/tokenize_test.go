package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

func TestTokenizeUSSD(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty shows root", "", nil},
		{"single digit", "1", []string{"1"}},
		{"accumulated path", "1*2", []string{"1", "2"}},
		{"deep path", "2*1*9", []string{"2", "1", "9"}},
		{"stray separators dropped", "*1**2*", []string{"1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(domain.ChannelUSSD, tt.raw)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizeVoice(t *testing.T) {
	assert.Empty(t, Tokenize(domain.ChannelVoice, ""))
	assert.Equal(t, []string{"1"}, Tokenize(domain.ChannelVoice, "1"))
	assert.Equal(t, []string{"1", "2"}, Tokenize(domain.ChannelVoice, "12"))
	// Non-digit noise from the gateway is ignored.
	assert.Equal(t, []string{"3", "1"}, Tokenize(domain.ChannelVoice, "3#1"))
}

func TestTokenizeSMS(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"bare keyword", "HEALTH", []string{"HEALTH"}},
		{"lowercase keyword", "book", []string{"BOOK"}},
		{"keyword with argument", "TEXT fever and headache", []string{"TEXT", "fever and headache"}},
		{"topic keyword", "malaria", []string{"MALARIA"}},
		{"free text", "my baby has a rash", []string{TokenFreeText, "my baby has a rash"}},
		{"keyword only as first word", "I want to BOOK", []string{TokenFreeText, "I want to BOOK"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(domain.ChannelSMS, tt.raw))
		})
	}

	assert.Empty(t, Tokenize(domain.ChannelSMS, "   "))
}

func TestTokenizeWhatsApp(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"greeting", "Hello there", []string{"HEALTH"}},
		{"short greeting", "hi", []string{"HEALTH"}},
		{"emergency synonym", "this is urgent", []string{"EMER"}},
		{"emergency beats book", "urgent, book me a doctor", []string{"EMER"}},
		{"booking phrase", "I want to book a consultation", []string{"BOOK"}},
		{"pregnancy phrase", "question about my pregnancy", []string{"MOM"}},
		{"free text", "what vaccines does a newborn need", []string{TokenFreeText, "what vaccines does a newborn need"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(domain.ChannelWhatsApp, tt.raw))
		})
	}
}
