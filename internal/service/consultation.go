package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

// EmergencySpecialization is the provider pool emergencies are assigned
// from.
const EmergencySpecialization = "emergency"

type ConsultationStore interface {
	Create(ctx context.Context, req domain.ConsultationRequest, patientID *int64) (*domain.Consultation, error)
	AssignProvider(ctx context.Context, consultationID string, providerID int64) error
	RecentByPhone(ctx context.Context, phone string, limit int) ([]domain.Consultation, error)
	ListPending(ctx context.Context, limit int) ([]domain.Consultation, error)
	GetByID(ctx context.Context, id string) (*domain.Consultation, error)
}

type ProviderStore interface {
	Available(ctx context.Context, specialization string) ([]domain.Provider, error)
}

type ConsultationService struct {
	consultations ConsultationStore
	providers     ProviderStore
	users         UserStore
}

func NewConsultationService(consultations ConsultationStore, providers ProviderStore, users UserStore) *ConsultationService {
	return &ConsultationService{consultations: consultations, providers: providers, users: users}
}

// Book persists a routine consultation request. Provider assignment is
// not attempted here: routine requests are picked up by the first
// available provider out of band.
func (s *ConsultationService) Book(ctx context.Context, req domain.ConsultationRequest) (*domain.Consultation, error) {
	if req.Urgency == "" {
		req.Urgency = domain.UrgencyRoutine
	}
	if req.RequestedAt.IsZero() {
		req.RequestedAt = time.Now().UTC()
	}

	c, err := s.consultations.Create(ctx, req, s.patientID(ctx, req.PatientPhone))
	if err != nil {
		return nil, fmt.Errorf("book consultation: %w", err)
	}
	return c, nil
}

// Emergency persists an emergency consultation and synchronously tries
// to assign the first available emergency provider. Assignment is best
// effort: two concurrent emergencies may pick the same provider, which
// is accepted; the caller is always directed to 117 as the primary
// channel regardless of what happens here.
func (s *ConsultationService) Emergency(ctx context.Context, phone string, channel domain.Channel, symptoms string) (*domain.Consultation, *domain.Provider, error) {
	req := domain.ConsultationRequest{
		PatientPhone: phone,
		Channel:      channel,
		Type:         domain.ConsultationVoice,
		Urgency:      domain.UrgencyEmergency,
		Symptoms:     symptoms,
		RequestedAt:  time.Now().UTC(),
	}

	c, err := s.consultations.Create(ctx, req, s.patientID(ctx, phone))
	if err != nil {
		return nil, nil, fmt.Errorf("create emergency consultation: %w", err)
	}

	providers, err := s.providers.Available(ctx, EmergencySpecialization)
	if err != nil || len(providers) == 0 {
		slog.Warn("no emergency provider assigned", "consultation_id", c.ID, "error", err)
		return c, nil, nil
	}

	p := providers[0]
	if err := s.consultations.AssignProvider(ctx, c.ID, p.ID); err != nil {
		slog.Warn("emergency provider assignment failed", "consultation_id", c.ID, "provider_id", p.ID, "error", err)
		return c, nil, nil
	}
	return c, &p, nil
}

func (s *ConsultationService) Recent(ctx context.Context, phone string, limit int) ([]domain.Consultation, error) {
	return s.consultations.RecentByPhone(ctx, phone, limit)
}

func (s *ConsultationService) Pending(ctx context.Context, limit int) ([]domain.Consultation, error) {
	return s.consultations.ListPending(ctx, limit)
}

func (s *ConsultationService) Get(ctx context.Context, id string) (*domain.Consultation, error) {
	return s.consultations.GetByID(ctx, id)
}

// patientID resolves the caller to a user id when one exists. Lookup
// failures never block a consultation.
func (s *ConsultationService) patientID(ctx context.Context, phone string) *int64 {
	if s.users == nil {
		return nil
	}
	u, err := s.users.GetByPhone(ctx, phone)
	if err != nil {
		return nil
	}
	return &u.ID
}
