package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

type fakeCommunicationStore struct {
	logged []domain.Communication
	err    error
}

func (f *fakeCommunicationStore) Log(ctx context.Context, c domain.Communication) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.logged = append(f.logged, c)
	return "comm-1", nil
}

func (f *fakeCommunicationStore) RecentByPhone(ctx context.Context, phone string, limit int) ([]domain.Communication, error) {
	return f.logged, f.err
}

type fakeSMSSender struct {
	sent []string
	err  error
}

func (f *fakeSMSSender) SendSMS(ctx context.Context, to, message string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, message)
	return nil
}

type fakeWhatsAppSender struct {
	sent  []string
	media []string
}

func (f *fakeWhatsAppSender) SendWhatsApp(ctx context.Context, to, message, mediaURL string) error {
	f.sent = append(f.sent, message)
	f.media = append(f.media, mediaURL)
	return nil
}

func TestSendSMSLogsOutbound(t *testing.T) {
	store := &fakeCommunicationStore{}
	sender := &fakeSMSSender{}
	svc := NewCommunicationService(store, sender, nil)

	require.NoError(t, svc.SendSMS(context.Background(), "+23276000001", "hello"))

	require.Len(t, store.logged, 1)
	assert.Equal(t, domain.DirectionOutbound, store.logged[0].Direction)
	assert.Equal(t, "sent", store.logged[0].Status)
	assert.Equal(t, []string{"hello"}, sender.sent)
}

func TestSendSMSFailureStillLogged(t *testing.T) {
	store := &fakeCommunicationStore{}
	sender := &fakeSMSSender{err: errors.New("gateway timeout")}
	svc := NewCommunicationService(store, sender, nil)

	err := svc.SendSMS(context.Background(), "+23276000001", "hello")
	require.Error(t, err)

	require.Len(t, store.logged, 1)
	assert.Equal(t, "failed", store.logged[0].Status)
}

func TestSendSMSWithoutCarrierOnlyLogs(t *testing.T) {
	store := &fakeCommunicationStore{}
	svc := NewCommunicationService(store, nil, nil)

	require.NoError(t, svc.SendSMS(context.Background(), "+23276000001", "hello"))
	require.Len(t, store.logged, 1)
	assert.Equal(t, "sent", store.logged[0].Status)
}

func TestSendWhatsAppCarriesMedia(t *testing.T) {
	store := &fakeCommunicationStore{}
	sender := &fakeWhatsAppSender{}
	svc := NewCommunicationService(store, nil, sender)

	require.NoError(t, svc.SendWhatsApp(context.Background(), "+23276000001", "listen", "https://cdn.healthconnect.sl/audio/malaria-en.mp3"))
	assert.Equal(t, []string{"https://cdn.healthconnect.sl/audio/malaria-en.mp3"}, sender.media)
}

func TestLogInboundSwallowsStoreErrors(t *testing.T) {
	store := &fakeCommunicationStore{err: errors.New("db down")}
	svc := NewCommunicationService(store, nil, nil)

	// Must not panic or surface the failure.
	svc.LogInbound(context.Background(), domain.ChannelSMS, "+23276000001", "HEALTH", "msg-1")
}
