package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthconnect-sl/healthconnect/internal/actions"
	"github.com/healthconnect-sl/healthconnect/internal/channel"
	"github.com/healthconnect-sl/healthconnect/internal/config"
	"github.com/healthconnect-sl/healthconnect/internal/content"
	"github.com/healthconnect-sl/healthconnect/internal/domain"
	"github.com/healthconnect-sl/healthconnect/internal/menu"
	"github.com/healthconnect-sl/healthconnect/internal/service"
)

// In-memory stores backing a fully wired server.

type memStores struct {
	users          map[string]*domain.User
	consultations  []domain.Consultation
	assigned       map[string]int64
	communications []domain.Communication
	appointments   []domain.Appointment
	clinics        []domain.Clinic
}

func newMemStores() *memStores {
	return &memStores{
		users:    make(map[string]*domain.User),
		assigned: make(map[string]int64),
		clinics: []domain.Clinic{
			{ID: 1, Name: "Freetown Community Clinic", District: "Western Area Urban"},
		},
	}
}

func (m *memStores) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if u, ok := m.users[phone]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *memStores) Create(ctx context.Context, phone, language string, role domain.Role) (*domain.User, error) {
	u := &domain.User{ID: int64(len(m.users) + 1), PhoneNumber: phone, PreferredLanguage: language, Role: role}
	m.users[phone] = u
	return u, nil
}

func (m *memStores) UpdateLanguage(ctx context.Context, id int64, language string) error {
	for _, u := range m.users {
		if u.ID == id {
			u.PreferredLanguage = language
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (m *memStores) CreateConsultation(ctx context.Context, req domain.ConsultationRequest, patientID *int64) (*domain.Consultation, error) {
	c := domain.Consultation{
		ID:           uuid.NewString(),
		PatientID:    patientID,
		PatientPhone: req.PatientPhone,
		Channel:      req.Channel,
		Type:         req.Type,
		Urgency:      req.Urgency,
		Status:       domain.ConsultationPending,
		Symptoms:     req.Symptoms,
		CreatedAt:    time.Now().UTC(),
	}
	m.consultations = append(m.consultations, c)
	return &c, nil
}

func (m *memStores) AssignProvider(ctx context.Context, consultationID string, providerID int64) error {
	m.assigned[consultationID] = providerID
	return nil
}

func (m *memStores) RecentByPhone(ctx context.Context, phone string, limit int) ([]domain.Consultation, error) {
	var out []domain.Consultation
	for _, c := range m.consultations {
		if c.PatientPhone == phone {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStores) ListPending(ctx context.Context, limit int) ([]domain.Consultation, error) {
	return append([]domain.Consultation(nil), m.consultations...), nil
}

func (m *memStores) GetByID(ctx context.Context, id string) (*domain.Consultation, error) {
	for _, c := range m.consultations {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, domain.ErrConsultationNotFound
}

func (m *memStores) Available(ctx context.Context, specialization string) ([]domain.Provider, error) {
	return []domain.Provider{{ID: 1, FullName: "Dr. Kamara", Specialization: specialization, IsAvailable: true}}, nil
}

func (m *memStores) Log(ctx context.Context, c domain.Communication) (string, error) {
	m.communications = append(m.communications, c)
	return uuid.NewString(), nil
}

func (m *memStores) CreateAppointment(ctx context.Context, a domain.Appointment) (*domain.Appointment, error) {
	a.ID = uuid.NewString()
	m.appointments = append(m.appointments, a)
	return &a, nil
}

func (m *memStores) UpcomingByPhone(ctx context.Context, phone string, limit int) ([]domain.Appointment, error) {
	return m.appointments, nil
}

func (m *memStores) List(ctx context.Context, limit int) ([]domain.Appointment, error) {
	return m.appointments, nil
}

func (m *memStores) ListClinics(ctx context.Context) ([]domain.Clinic, error) {
	return m.clinics, nil
}

// consultationStore/appointmentStore/clinicStore adapters resolve the
// method name collisions on memStores.
type consultationStore struct{ *memStores }

func (s consultationStore) Create(ctx context.Context, req domain.ConsultationRequest, patientID *int64) (*domain.Consultation, error) {
	return s.CreateConsultation(ctx, req, patientID)
}

type appointmentStore struct{ *memStores }

func (s appointmentStore) Create(ctx context.Context, a domain.Appointment) (*domain.Appointment, error) {
	return s.CreateAppointment(ctx, a)
}

type clinicStore struct{ *memStores }

func (s clinicStore) List(ctx context.Context) ([]domain.Clinic, error) {
	return s.ListClinics(ctx)
}

type communicationStore struct{ *memStores }

func (s communicationStore) RecentByPhone(ctx context.Context, phone string, limit int) ([]domain.Communication, error) {
	var out []domain.Communication
	for _, c := range s.communications {
		if c.PhoneNumber == phone {
			out = append(out, c)
		}
	}
	return out, nil
}

func newTestServer(t *testing.T) (*Server, *memStores) {
	t.Helper()
	stores := newMemStores()

	users := service.NewUserService(stores)
	consultations := service.NewConsultationService(consultationStore{stores}, stores, stores)
	communications := service.NewCommunicationService(communicationStore{stores}, nil, nil)
	appointments := service.NewAppointmentService(appointmentStore{stores})
	directory := service.NewDirectoryService(clinicStore{stores})
	contents := content.NewService(nil, config.ContentTimeout)

	handlers := actions.NewHandlers(consultations, contents, users, appointments)
	registry := handlers.Registry()
	tree, err := menu.NewHealthTree(registry.Known)
	require.NoError(t, err)

	srv := New(Deps{
		Pipeline:       channel.NewPipeline(tree, registry),
		Messenger:      communications,
		Consultations:  consultations,
		Appointments:   appointments,
		Directory:      directory,
		Users:          users,
		Contents:       contents,
		Communications: communications,
	})
	return srv, stores
}

func do(t *testing.T, srv *Server, method, path, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUSSDEndToEnd(t *testing.T) {
	srv, stores := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/ussd", "application/x-www-form-urlencoded",
		"sessionId=s-1&phoneNumber=%2B23276000001&text=")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "CON "))

	rec = do(t, srv, http.MethodPost, "/api/ussd", "application/x-www-form-urlencoded",
		"sessionId=s-1&phoneNumber=%2B23276000001&text=1*1")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "END "))
	assert.Len(t, stores.consultations, 1)
	assert.Equal(t, domain.ConsultationVoice, stores.consultations[0].Type)

	// Both round trips land in the communication log.
	var inbound []domain.Communication
	for _, c := range stores.communications {
		if c.Direction == domain.DirectionInbound {
			inbound = append(inbound, c)
		}
	}
	require.Len(t, inbound, 2)
	assert.Equal(t, domain.ChannelUSSD, inbound[1].Channel)
	assert.Equal(t, "1*1", inbound[1].Content)
}

func TestSMSEmergencyEndToEnd(t *testing.T) {
	srv, stores := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/sms", "application/x-www-form-urlencoded",
		"from=%2B23276000001&text=EMER+severe+bleeding&id=msg-1")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Consultation persisted with emergency urgency, provider assigned.
	require.Len(t, stores.consultations, 1)
	assert.Equal(t, domain.UrgencyEmergency, stores.consultations[0].Urgency)
	assert.Len(t, stores.assigned, 1)

	// The outbound reply was logged and mentions 117.
	var outbound []domain.Communication
	for _, c := range stores.communications {
		if c.Direction == domain.DirectionOutbound {
			outbound = append(outbound, c)
		}
	}
	require.NotEmpty(t, outbound)
	assert.Contains(t, outbound[0].Content, "117")

	// The audit log is readable over REST.
	rec = do(t, srv, http.MethodGet, "/api/communications?phone=%2B23276000001", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "severe bleeding")
}

func TestCreateConsultationREST(t *testing.T) {
	srv, stores := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/consultations", "application/json",
		`{"patientPhone":"+23276000001","consultationType":"text","symptoms":"fever"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, stores.consultations, 1)
	assert.Equal(t, domain.ChannelWeb, stores.consultations[0].Channel)

	rec = do(t, srv, http.MethodPost, "/api/consultations", "application/json", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAppointmentsREST(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/appointments", "application/json",
		`{"patientName":"Fatmata Sesay","patientPhone":"+23276000001","appointmentDate":"2025-09-10","appointmentTime":"10:00"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, srv, http.MethodPost, "/api/appointments", "application/json",
		`{"patientName":"Fatmata Sesay","patientPhone":"+23276000001","appointmentDate":"next week"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/appointments?phone=%2B23276000001", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClinicsAndVideos(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/clinics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Freetown Community Clinic")

	rec = do(t, srv, http.MethodGet, "/api/videos", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Prenatal Care Basics")
}

func TestHealthContentREST(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/ai/health-content", "application/json",
		`{"topic":"malaria","language":"English"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Malaria Prevention", body["title"])

	rec = do(t, srv, http.MethodPost, "/api/ai/health-content", "application/json", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatREST(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/chat", "application/json",
		`{"messages":[{"Role":"user","Content":"I have a fever"}]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "117")

	rec = do(t, srv, http.MethodPost, "/api/chat", "application/json", `{"messages":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
