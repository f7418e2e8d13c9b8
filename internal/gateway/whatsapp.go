package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/healthconnect-sl/healthconnect/internal/config"
)

// WhatsAppClient pushes outbound messages to the WhatsApp business
// gateway's send endpoint.
type WhatsAppClient struct {
	sendURL    string
	token      string
	httpClient *http.Client
}

func NewWhatsAppClient(sendURL, token string) *WhatsAppClient {
	return &WhatsAppClient{
		sendURL:    sendURL,
		token:      token,
		httpClient: &http.Client{Timeout: config.CarrierTimeout},
	}
}

type whatsAppMessage struct {
	To       string `json:"to"`
	Text     string `json:"text"`
	MediaURL string `json:"mediaUrl,omitempty"`
}

func (c *WhatsAppClient) SendWhatsApp(ctx context.Context, to, message, mediaURL string) error {
	payload, err := json.Marshal(whatsAppMessage{To: to, Text: message, MediaURL: mediaURL})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.sendURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send whatsapp: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("send whatsapp: gateway returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
