package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMSClientSend(t *testing.T) {
	var gotForm map[string]string
	var gotAPIKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"username": r.FormValue("username"),
			"to":       r.FormValue("to"),
			"message":  r.FormValue("message"),
			"from":     r.FormValue("from"),
		}
		gotAPIKey = r.Header.Get("apiKey")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"SMSMessageData":{"Message":"Sent to 1/1","Recipients":[{"number":"+23276000001","status":"Success","statusCode":101}]}}`))
	}))
	defer srv.Close()

	client := NewSMSClient("key-1", "sandbox", "HealthSL", srv.URL)
	err := client.SendSMS(context.Background(), "+23276000001", "hello")
	require.NoError(t, err)

	assert.Equal(t, "key-1", gotAPIKey)
	assert.Equal(t, "sandbox", gotForm["username"])
	assert.Equal(t, "+23276000001", gotForm["to"])
	assert.Equal(t, "hello", gotForm["message"])
	assert.Equal(t, "HealthSL", gotForm["from"])
}

func TestSMSClientRecipientFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"SMSMessageData":{"Recipients":[{"number":"+23276000001","status":"InsufficientBalance","statusCode":405}]}}`))
	}))
	defer srv.Close()

	client := NewSMSClient("key-1", "sandbox", "", srv.URL)
	err := client.SendSMS(context.Background(), "+23276000001", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InsufficientBalance")
}

func TestSMSClientHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewSMSClient("bad-key", "sandbox", "", srv.URL)
	err := client.SendSMS(context.Background(), "+23276000001", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestWhatsAppClientSend(t *testing.T) {
	var got whatsAppMessage
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewWhatsAppClient(srv.URL, "token-1")
	err := client.SendWhatsApp(context.Background(), "+23276000001", "listen", "https://cdn.healthconnect.sl/audio/malaria-en.mp3")
	require.NoError(t, err)

	assert.Equal(t, "Bearer token-1", gotAuth)
	assert.Equal(t, "+23276000001", got.To)
	assert.Equal(t, "listen", got.Text)
	assert.Equal(t, "https://cdn.healthconnect.sl/audio/malaria-en.mp3", got.MediaURL)
}

func TestWhatsAppClientGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewWhatsAppClient(srv.URL, "")
	err := client.SendWhatsApp(context.Background(), "+23276000001", "hi", "")
	require.Error(t, err)
}
