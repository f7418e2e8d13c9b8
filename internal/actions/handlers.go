package actions

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/healthconnect-sl/healthconnect/internal/config"
	"github.com/healthconnect-sl/healthconnect/internal/content"
	"github.com/healthconnect-sl/healthconnect/internal/domain"
	"github.com/healthconnect-sl/healthconnect/internal/menu"
)

// ConsultationBooker is the consultation side of the gateway.
type ConsultationBooker interface {
	Book(ctx context.Context, req domain.ConsultationRequest) (*domain.Consultation, error)
	Emergency(ctx context.Context, phone string, channel domain.Channel, symptoms string) (*domain.Consultation, *domain.Provider, error)
	Recent(ctx context.Context, phone string, limit int) ([]domain.Consultation, error)
}

// ContentProvider never fails; it falls back to static content.
type ContentProvider interface {
	HealthContent(ctx context.Context, req domain.HealthContentRequest) *domain.HealthContent
	ChatReply(ctx context.Context, messages []content.Message) string
}

type UserDirectory interface {
	FindOrCreateByPhone(ctx context.Context, phone string) (*domain.User, error)
	SetLanguage(ctx context.Context, phone, language string) error
	PreferredLanguage(ctx context.Context, phone string) string
}

type AppointmentReader interface {
	StatusSummary(ctx context.Context, phone string) (string, error)
}

// Handlers wires every menu action to its collaborators.
type Handlers struct {
	consultations ConsultationBooker
	contents      ContentProvider
	users         UserDirectory
	appointments  AppointmentReader
}

func NewHandlers(consultations ConsultationBooker, contents ContentProvider, users UserDirectory, appointments AppointmentReader) *Handlers {
	return &Handlers{
		consultations: consultations,
		contents:      contents,
		users:         users,
		appointments:  appointments,
	}
}

// Registry returns all handlers registered under their menu action ids.
func (h *Handlers) Registry() *Registry {
	r := NewRegistry()
	r.Register(menu.ActionEndSession, h.EndSession)
	r.Register(menu.ActionBookVoice, h.BookVoiceConsultation)
	r.Register(menu.ActionBookText, h.BookTextConsultation)
	r.Register(menu.ActionEmergency, h.TriggerEmergency)
	r.Register(menu.ActionEmergencyCall, h.EmergencyCall)
	r.Register(menu.ActionLocationSMS, h.LocationSMS)
	r.Register(menu.ActionMaternal, h.MaternalEmergency)
	r.Register(menu.ActionEducation, h.FetchHealthEducation)
	r.Register(menu.ActionStatus, h.CheckAppointmentStatus)
	r.Register(menu.ActionProfile, h.ViewProfile)
	r.Register(menu.ActionRecent, h.RecentConsultations)
	r.Register(menu.ActionSetLanguage, h.SetLanguage)
	r.Register(menu.ActionHelp, h.Help)
	r.Register(menu.ActionAssistant, h.Assistant)
	return r
}

func (h *Handlers) EndSession(ctx context.Context, req Request) (Result, error) {
	return Result{
		Text:       "Thank you for using HealthConnect. Stay healthy!",
		EndSession: true,
	}, nil
}

func (h *Handlers) BookVoiceConsultation(ctx context.Context, req Request) (Result, error) {
	_, err := h.consultations.Book(ctx, domain.ConsultationRequest{
		PatientPhone: req.CallerID,
		Channel:      req.Channel,
		Type:         domain.ConsultationVoice,
		Urgency:      domain.UrgencyRoutine,
	})
	if err != nil {
		slog.Error("book voice consultation", "phone", req.CallerID, "error", err)
		return Result{
			Text: "We could not record your request right now. Please try again shortly, " +
				"or call " + config.EmergencyNumber + " if this is urgent.",
			EndSession: true,
		}, nil
	}
	return Result{
		Text: "Voice consultation request received. A healthcare provider will call you " +
			"within 30 minutes.",
		EndSession: true,
	}, nil
}

func (h *Handlers) BookTextConsultation(ctx context.Context, req Request) (Result, error) {
	symptoms := strings.TrimSpace(strings.Join(req.Args, " "))
	if symptoms == "" {
		return Result{
			Text: "Please describe your symptoms. Send TEXT followed by your symptoms, " +
				"for example: TEXT fever and headache for 2 days.",
		}, nil
	}

	_, err := h.consultations.Book(ctx, domain.ConsultationRequest{
		PatientPhone: req.CallerID,
		Channel:      req.Channel,
		Type:         domain.ConsultationText,
		Urgency:      domain.UrgencyRoutine,
		Symptoms:     symptoms,
	})
	if err != nil {
		slog.Error("book text consultation", "phone", req.CallerID, "error", err)
		return Result{
			Text: "We could not record your request right now. Please try again shortly, " +
				"or call " + config.EmergencyNumber + " if this is urgent.",
			EndSession: true,
		}, nil
	}
	return Result{
		Text: "Thank you for your consultation request. A Community Health Worker will " +
			"respond via SMS within 1 hour.",
		EndSession: true,
	}, nil
}

// TriggerEmergency always directs the caller to 117. The automated flow
// is advisory; the phone call is the primary safety channel, so the
// number is included even when persistence or assignment fails.
func (h *Handlers) TriggerEmergency(ctx context.Context, req Request) (Result, error) {
	symptoms := strings.TrimSpace(strings.Join(req.Args, " "))

	var b strings.Builder
	c, p, err := h.consultations.Emergency(ctx, req.CallerID, req.Channel, symptoms)
	switch {
	case err != nil:
		slog.Error("trigger emergency", "phone", req.CallerID, "error", err)
		b.WriteString("EMERGENCY. We could not reach our providers automatically.")
	case p != nil:
		b.WriteString("EMERGENCY ACTIVATED. ")
		b.WriteString(p.FullName)
		b.WriteString(" has been notified and will contact you.")
	default:
		b.WriteString("EMERGENCY ACTIVATED. Your request has been sent to healthcare providers.")
	}
	if c != nil {
		slog.Info("emergency consultation created", "consultation_id", c.ID, "channel", req.Channel)
	}

	b.WriteString(" Call " + config.EmergencyNumber + " now for immediate help.")

	return Result{
		Text:       b.String(),
		DialNumber: config.EmergencyDialNumber,
		EndSession: true,
	}, nil
}

func (h *Handlers) EmergencyCall(ctx context.Context, req Request) (Result, error) {
	return Result{
		Text:       "Calling emergency services (" + config.EmergencyNumber + ")...",
		DialNumber: config.EmergencyDialNumber,
		EndSession: true,
	}, nil
}

func (h *Handlers) LocationSMS(ctx context.Context, req Request) (Result, error) {
	return Result{
		Text: "Emergency SMS with your location has been sent to emergency contacts. " +
			"If you can, also call " + config.EmergencyNumber + ".",
		EndSession: true,
	}, nil
}

func (h *Handlers) MaternalEmergency(ctx context.Context, req Request) (Result, error) {
	return Result{
		Text: "Connecting to the maternal emergency hotline (" + config.MaternalHotline + "). " +
			"For any emergency you can also call " + config.EmergencyNumber + ".",
		DialNumber: config.MaternalDialNumber,
		EndSession: true,
	}, nil
}

// FetchHealthEducation returns education content for a topic, formatted
// to the channel's length budget. The content service already guarantees
// a result.
func (h *Handlers) FetchHealthEducation(ctx context.Context, req Request) (Result, error) {
	if len(req.Args) == 0 {
		return Result{}, fmt.Errorf("education action resolved without a topic")
	}
	topic := req.Args[0]
	language := h.users.PreferredLanguage(ctx, req.CallerID)

	c := h.contents.HealthContent(ctx, domain.HealthContentRequest{
		Topic:    topic,
		Language: language,
		Profile:  domain.CallerProfile{PhoneNumber: req.CallerID, Language: language},
	})

	return formatEducation(req.Channel, topic, language, c), nil
}

// audioLanguageCode maps a preferred language to the recording suffix.
func audioLanguageCode(language string) string {
	if strings.EqualFold(language, "Krio") {
		return "kri"
	}
	return "en"
}

func formatEducation(channel domain.Channel, topic, language string, c *domain.HealthContent) Result {
	audioLine := "For audio: Call " + config.AudioLineNumber + ", press " + content.TopicAudioCode(topic)
	audioURL := "https://cdn.healthconnect.sl/audio/" + topic + "-" + audioLanguageCode(language) + ".mp3"

	switch channel {
	case domain.ChannelVoice:
		return Result{
			Text:       "Playing " + c.Title + " information.",
			AudioURL:   audioURL,
			EndSession: true,
		}
	case domain.ChannelWhatsApp:
		var b strings.Builder
		b.WriteString("*" + c.Title + "*\n\n")
		b.WriteString(c.Body)
		b.WriteString("\n\nKey Points:")
		for _, p := range c.KeyPoints {
			b.WriteString("\n- " + p)
		}
		if c.CulturalNotes != "" {
			b.WriteString("\n\n" + c.CulturalNotes)
		}
		b.WriteString("\n\nAudio guide attached. " + audioLine)
		return Result{Text: b.String(), AudioURL: audioURL, EndSession: true}
	default:
		// SMS and USSD get the key points only, within segment budget.
		points := c.KeyPoints
		if len(points) > 3 {
			points = points[:3]
		}
		text := strings.ToUpper(c.Title) + ":\n- " + strings.Join(points, "\n- ") +
			"\n\n" + audioLine
		return Result{Text: text, EndSession: true}
	}
}

func (h *Handlers) CheckAppointmentStatus(ctx context.Context, req Request) (Result, error) {
	summary, err := h.appointments.StatusSummary(ctx, req.CallerID)
	if err != nil {
		slog.Error("appointment status", "phone", req.CallerID, "error", err)
		return Result{
			Text:       "We could not check your appointments right now. Please try again later.",
			EndSession: true,
		}, nil
	}
	return Result{Text: summary, EndSession: true}, nil
}

func (h *Handlers) ViewProfile(ctx context.Context, req Request) (Result, error) {
	u, err := h.users.FindOrCreateByPhone(ctx, req.CallerID)
	if err != nil {
		slog.Error("view profile", "phone", req.CallerID, "error", err)
		return Result{
			Text:       "We could not load your profile right now. Please try again later.",
			EndSession: true,
		}, nil
	}

	name := u.FullName
	if name == "" {
		name = "Not set"
	}
	return Result{
		Text: "Your Profile\nPhone: " + u.PhoneNumber + "\nName: " + name +
			"\nLanguage: " + u.PreferredLanguage,
		EndSession: true,
	}, nil
}

func (h *Handlers) RecentConsultations(ctx context.Context, req Request) (Result, error) {
	consultations, err := h.consultations.Recent(ctx, req.CallerID, 3)
	if err != nil {
		slog.Error("recent consultations", "phone", req.CallerID, "error", err)
		return Result{
			Text:       "We could not load your consultations right now. Please try again later.",
			EndSession: true,
		}, nil
	}
	if len(consultations) == 0 {
		return Result{
			Text:       "No recent consultations. Reply BOOK to request one.",
			EndSession: true,
		}, nil
	}

	var b strings.Builder
	b.WriteString("Recent Consultations:")
	for _, c := range consultations {
		b.WriteString("\n- " + c.CreatedAt.Format("2 Jan") + " " + string(c.Type) +
			" (" + string(c.Status) + ")")
	}
	return Result{Text: b.String(), EndSession: true}, nil
}

func (h *Handlers) SetLanguage(ctx context.Context, req Request) (Result, error) {
	if len(req.Args) == 0 {
		return Result{}, fmt.Errorf("set language action resolved without a language")
	}
	language := req.Args[0]

	if err := h.users.SetLanguage(ctx, req.CallerID, language); err != nil {
		slog.Error("set language", "phone", req.CallerID, "error", err)
		return Result{
			Text:       "We could not update your language right now. Please try again later.",
			EndSession: true,
		}, nil
	}
	return Result{Text: "Language updated to " + language + ".", EndSession: true}, nil
}

func (h *Handlers) Help(ctx context.Context, req Request) (Result, error) {
	return Result{
		Text: "HealthConnect SMS Commands:\nHEALTH - Main menu\nBOOK - Consultations\n" +
			"EDUC - Education\nEMER - Emergency\nSTATUS - Check appointments\n" +
			"Operator: " + config.OperatorNumber,
	}, nil
}

// Assistant answers free text that matched no keyword. The content
// service degrades to keyword heuristics, so a reply always comes back
// and always keeps 117 reachable.
func (h *Handlers) Assistant(ctx context.Context, req Request) (Result, error) {
	message := strings.TrimSpace(strings.Join(req.Args, " "))
	if message == "" {
		return h.Help(ctx, req)
	}

	reply := h.contents.ChatReply(ctx, []content.Message{
		{Role: "user", Content: message},
	})
	return Result{Text: reply}, nil
}
