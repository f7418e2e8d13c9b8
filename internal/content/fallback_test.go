package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackKnownTopics(t *testing.T) {
	for _, topic := range []string{TopicMalaria, TopicChildHealth, TopicMaternalHealth, TopicMentalHealth} {
		t.Run(topic, func(t *testing.T) {
			c := Fallback(topic)
			require.NotNil(t, c)
			assert.NotEmpty(t, c.Title)
			assert.NotEmpty(t, c.Body)
			assert.GreaterOrEqual(t, len(c.KeyPoints), 3)
			assert.NotEmpty(t, c.AudioScript)
			assert.True(t, KnownTopic(topic))
		})
	}
}

func TestFallbackUnknownTopic(t *testing.T) {
	c := Fallback("nutrition")
	require.NotNil(t, c)
	assert.NotEmpty(t, c.Title)
	assert.NotEmpty(t, c.KeyPoints)
	assert.False(t, KnownTopic("nutrition"))
}

func TestFallbackReturnsCopy(t *testing.T) {
	first := Fallback(TopicMalaria)
	first.Title = "mutated"

	second := Fallback(TopicMalaria)
	assert.Equal(t, "Malaria Prevention", second.Title)
}

func TestTopicAudioCode(t *testing.T) {
	assert.Equal(t, "1", TopicAudioCode(TopicMalaria))
	assert.Equal(t, "2", TopicAudioCode(TopicChildHealth))
	assert.Equal(t, "3", TopicAudioCode(TopicMaternalHealth))
	assert.Equal(t, "4", TopicAudioCode(TopicMentalHealth))
	assert.Equal(t, "0", TopicAudioCode("unknown"))
}

func TestFallbackChatReply(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"emergency", "there is heavy bleeding", "call 117 immediately"},
		{"symptoms", "I have a fever", "EMER"},
		{"pregnancy", "I am pregnant, what should I eat", "MOM"},
		{"help", "help", "HEALTH - main menu"},
		{"unrecognized", "xyzzy", "Reply HELP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := FallbackChatReply(tt.message)
			assert.Contains(t, reply, tt.want)
			// Every branch keeps the emergency number reachable.
			assert.Contains(t, reply, "117")
		})
	}
}
