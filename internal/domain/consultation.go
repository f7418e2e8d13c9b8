package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Channel identifies the conversational surface a request arrived on.
type Channel string

const (
	ChannelSMS      Channel = "sms"
	ChannelUSSD     Channel = "ussd"
	ChannelVoice    Channel = "voice"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelWeb      Channel = "web"
)

type Urgency string

const (
	UrgencyRoutine   Urgency = "routine"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"
)

type ConsultationStatus string

const (
	ConsultationPending    ConsultationStatus = "pending"
	ConsultationInProgress ConsultationStatus = "in_progress"
	ConsultationCompleted  ConsultationStatus = "completed"
	ConsultationCancelled  ConsultationStatus = "cancelled"
)

// ConsultationType is the delivery method requested by the patient.
type ConsultationType string

const (
	ConsultationVoice ConsultationType = "voice"
	ConsultationText  ConsultationType = "text"
	ConsultationVideo ConsultationType = "video"
	ConsultationWeb   ConsultationType = "web"
)

// ConsultationRequest carries what an action handler knows when a caller
// asks for care. The persistence layer turns it into a Consultation.
type ConsultationRequest struct {
	PatientPhone string
	Channel      Channel
	Type         ConsultationType
	Urgency      Urgency
	Symptoms     string
	RequestedAt  time.Time
}

type Consultation struct {
	ID            string
	PatientID     *int64
	PatientPhone  string
	ProviderID    *int64
	Channel       Channel
	Type          ConsultationType
	Urgency       Urgency
	Status        ConsultationStatus
	Symptoms      string
	Diagnosis     string
	TreatmentPlan string
	Fee           decimal.Decimal
	PaymentStatus string
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

type Provider struct {
	ID              int64
	FullName        string
	PhoneNumber     string
	Specialization  string
	YearsExperience int
	Fee             decimal.Decimal
	IsAvailable     bool
	CreatedAt       time.Time
}
