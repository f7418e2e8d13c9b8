package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

type fakeAppointmentStore struct {
	upcoming []domain.Appointment
	created  []domain.Appointment
}

func (f *fakeAppointmentStore) Create(ctx context.Context, a domain.Appointment) (*domain.Appointment, error) {
	a.ID = "a-1"
	f.created = append(f.created, a)
	return &a, nil
}

func (f *fakeAppointmentStore) UpcomingByPhone(ctx context.Context, phone string, limit int) ([]domain.Appointment, error) {
	return f.upcoming, nil
}

func (f *fakeAppointmentStore) List(ctx context.Context, limit int) ([]domain.Appointment, error) {
	return f.upcoming, nil
}

func TestCreateAppointmentValidation(t *testing.T) {
	svc := NewAppointmentService(&fakeAppointmentStore{})

	_, err := svc.Create(context.Background(), domain.Appointment{PatientName: "Fatmata"})
	require.Error(t, err)

	_, err = svc.Create(context.Background(), domain.Appointment{
		PatientName:  "Fatmata Sesay",
		PatientPhone: "+23276000001",
	})
	require.Error(t, err)

	a, err := svc.Create(context.Background(), domain.Appointment{
		PatientName:     "Fatmata Sesay",
		PatientPhone:    "+23276000001",
		AppointmentDate: time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "a-1", a.ID)
}

func TestStatusSummary(t *testing.T) {
	store := &fakeAppointmentStore{}
	svc := NewAppointmentService(store)

	summary, err := svc.StatusSummary(context.Background(), "+23276000001")
	require.NoError(t, err)
	assert.Contains(t, summary, "no upcoming appointments")
	assert.Contains(t, summary, "BOOK")

	store.upcoming = []domain.Appointment{{
		AppointmentDate: time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "10:00",
		DoctorName:      "Dr. Kamara",
	}}
	summary, err = svc.StatusSummary(context.Background(), "+23276000001")
	require.NoError(t, err)
	assert.Contains(t, summary, "APPOINTMENTS:")
	assert.Contains(t, summary, "Wed 10 Sep")
	assert.Contains(t, summary, "10:00 with Dr. Kamara")
}
