package service

import (
	"context"
	"log/slog"

	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

type CommunicationStore interface {
	Log(ctx context.Context, c domain.Communication) (string, error)
	RecentByPhone(ctx context.Context, phone string, limit int) ([]domain.Communication, error)
}

// SMSSender delivers outbound text messages through the carrier gateway.
type SMSSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

// WhatsAppSender delivers outbound WhatsApp messages, optionally with a
// media attachment.
type WhatsAppSender interface {
	SendWhatsApp(ctx context.Context, to, message, mediaURL string) error
}

// CommunicationService records the message audit log and performs
// outbound sends. Logging failures are never surfaced to the caller:
// losing an audit row must not drop a health reply.
type CommunicationService struct {
	log      CommunicationStore
	sms      SMSSender
	whatsapp WhatsAppSender
}

func NewCommunicationService(log CommunicationStore, sms SMSSender, whatsapp WhatsAppSender) *CommunicationService {
	return &CommunicationService{log: log, sms: sms, whatsapp: whatsapp}
}

func (s *CommunicationService) LogInbound(ctx context.Context, channel domain.Channel, phone, content, externalID string) {
	_, err := s.log.Log(ctx, domain.Communication{
		PhoneNumber: phone,
		Channel:     channel,
		Direction:   domain.DirectionInbound,
		Content:     content,
		ExternalID:  externalID,
		Status:      "received",
	})
	if err != nil {
		slog.Error("log inbound communication", "channel", channel, "phone", phone, "error", err)
	}
}

// SendSMS delivers a reply and logs it outbound with the delivery
// status. A send failure is logged and reported so webhook handlers can
// decide whether the gateway should retry.
func (s *CommunicationService) SendSMS(ctx context.Context, to, message string) error {
	status := "sent"
	var sendErr error
	if s.sms != nil {
		if sendErr = s.sms.SendSMS(ctx, to, message); sendErr != nil {
			status = "failed"
			slog.Error("send sms", "to", to, "error", sendErr)
		}
	}

	_, err := s.log.Log(ctx, domain.Communication{
		PhoneNumber: to,
		Channel:     domain.ChannelSMS,
		Direction:   domain.DirectionOutbound,
		Content:     message,
		Status:      status,
	})
	if err != nil {
		slog.Error("log outbound sms", "to", to, "error", err)
	}
	return sendErr
}

func (s *CommunicationService) SendWhatsApp(ctx context.Context, to, message, mediaURL string) error {
	status := "sent"
	var sendErr error
	if s.whatsapp != nil {
		if sendErr = s.whatsapp.SendWhatsApp(ctx, to, message, mediaURL); sendErr != nil {
			status = "failed"
			slog.Error("send whatsapp", "to", to, "error", sendErr)
		}
	}

	_, err := s.log.Log(ctx, domain.Communication{
		PhoneNumber: to,
		Channel:     domain.ChannelWhatsApp,
		Direction:   domain.DirectionOutbound,
		Content:     message,
		Status:      status,
	})
	if err != nil {
		slog.Error("log outbound whatsapp", "to", to, "error", err)
	}
	return sendErr
}

// History returns a caller's recent messages across all channels, newest
// first.
func (s *CommunicationService) History(ctx context.Context, phone string, limit int) ([]domain.Communication, error) {
	return s.log.RecentByPhone(ctx, phone, limit)
}
