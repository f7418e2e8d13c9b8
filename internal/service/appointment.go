package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

type AppointmentStore interface {
	Create(ctx context.Context, a domain.Appointment) (*domain.Appointment, error)
	UpcomingByPhone(ctx context.Context, phone string, limit int) ([]domain.Appointment, error)
	List(ctx context.Context, limit int) ([]domain.Appointment, error)
}

type AppointmentService struct {
	appointments AppointmentStore
}

func NewAppointmentService(appointments AppointmentStore) *AppointmentService {
	return &AppointmentService{appointments: appointments}
}

func (s *AppointmentService) Create(ctx context.Context, a domain.Appointment) (*domain.Appointment, error) {
	if strings.TrimSpace(a.PatientName) == "" || strings.TrimSpace(a.PatientPhone) == "" {
		return nil, fmt.Errorf("patient name and phone are required")
	}
	if a.AppointmentDate.IsZero() {
		return nil, fmt.Errorf("appointment date is required")
	}
	return s.appointments.Create(ctx, a)
}

func (s *AppointmentService) UpcomingByPhone(ctx context.Context, phone string, limit int) ([]domain.Appointment, error) {
	return s.appointments.UpcomingByPhone(ctx, phone, limit)
}

func (s *AppointmentService) List(ctx context.Context, limit int) ([]domain.Appointment, error) {
	return s.appointments.List(ctx, limit)
}

// StatusSummary renders a caller's upcoming appointments as a short
// text suitable for SMS. No appointments is an answer, not an error.
func (s *AppointmentService) StatusSummary(ctx context.Context, phone string) (string, error) {
	appts, err := s.appointments.UpcomingByPhone(ctx, phone, 3)
	if err != nil {
		return "", fmt.Errorf("appointment status: %w", err)
	}
	if len(appts) == 0 {
		return "You have no upcoming appointments. Reply BOOK to request a consultation.", nil
	}

	var b strings.Builder
	b.WriteString("APPOINTMENTS:")
	for _, a := range appts {
		b.WriteString("\n- ")
		b.WriteString(a.AppointmentDate.Format("Mon 2 Jan"))
		if a.AppointmentTime != "" {
			b.WriteString(" " + a.AppointmentTime)
		}
		if a.DoctorName != "" {
			b.WriteString(" with " + a.DoctorName)
		}
	}
	return b.String(), nil
}
