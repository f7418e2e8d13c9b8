package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	DatabaseURL string `env:"DATABASE_URL,required"`
	Port        int    `env:"PORT" envDefault:"8080"`

	// Content generation. When the key is empty the service runs entirely
	// on static fallback content.
	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Carrier gateway (Africa's Talking style)
	CarrierAPIKey   string `env:"CARRIER_API_KEY"`
	CarrierUsername string `env:"CARRIER_USERNAME" envDefault:"sandbox"`
	CarrierBaseURL  string `env:"CARRIER_BASE_URL" envDefault:"https://api.africastalking.com/version1"`
	CarrierSenderID string `env:"CARRIER_SENDER_ID" envDefault:"HealthSL"`

	// WhatsApp outbound send endpoint
	WhatsAppSendURL string `env:"WHATSAPP_SEND_URL"`
	WhatsAppToken   string `env:"WHATSAPP_TOKEN"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
