// Package gateway holds the outbound carrier clients. Inbound traffic
// arrives as webhooks handled by the channel adapters; these clients
// only push replies and alerts out.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/healthconnect-sl/healthconnect/internal/config"
)

// SMSClient sends messages through an Africa's Talking style messaging
// API.
type SMSClient struct {
	apiKey     string
	username   string
	senderID   string
	baseURL    string
	httpClient *http.Client
}

func NewSMSClient(apiKey, username, senderID, baseURL string) *SMSClient {
	return &SMSClient{
		apiKey:     apiKey,
		username:   username,
		senderID:   senderID,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: config.CarrierTimeout},
	}
}

type smsResponse struct {
	SMSMessageData struct {
		Message    string `json:"Message"`
		Recipients []struct {
			Number     string `json:"number"`
			Status     string `json:"status"`
			StatusCode int    `json:"statusCode"`
		} `json:"Recipients"`
	} `json:"SMSMessageData"`
}

func (c *SMSClient) SendSMS(ctx context.Context, to, message string) error {
	form := url.Values{}
	form.Set("username", c.username)
	form.Set("to", to)
	form.Set("message", message)
	if c.senderID != "" {
		form.Set("from", c.senderID)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/messaging",
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apiKey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("send sms: carrier returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed smsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("parse carrier response: %w", err)
	}
	for _, r := range parsed.SMSMessageData.Recipients {
		if r.StatusCode >= 400 {
			return fmt.Errorf("send sms to %s: %s", r.Number, r.Status)
		}
	}
	return nil
}
