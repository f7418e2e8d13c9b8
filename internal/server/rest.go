package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/healthconnect-sl/healthconnect/internal/content"
	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

type createConsultationRequest struct {
	PatientPhone string `json:"patientPhone"`
	Type         string `json:"consultationType"`
	Urgency      string `json:"urgency"`
	Symptoms     string `json:"symptoms"`
}

func (s *Server) createConsultation(c echo.Context) error {
	var req createConsultationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.PatientPhone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patientPhone is required")
	}
	if req.Type == "" {
		req.Type = string(domain.ConsultationText)
	}

	consultation, err := s.consultations.Book(c.Request().Context(), domain.ConsultationRequest{
		PatientPhone: req.PatientPhone,
		Channel:      domain.ChannelWeb,
		Type:         domain.ConsultationType(req.Type),
		Urgency:      domain.Urgency(req.Urgency),
		Symptoms:     req.Symptoms,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create consultation")
	}
	return c.JSON(http.StatusCreated, consultation)
}

func (s *Server) listConsultations(c echo.Context) error {
	ctx := c.Request().Context()

	if phone := c.QueryParam("phone"); phone != "" {
		consultations, err := s.consultations.Recent(ctx, phone, 20)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "could not list consultations")
		}
		return c.JSON(http.StatusOK, consultations)
	}

	consultations, err := s.consultations.Pending(ctx, 50)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list consultations")
	}
	return c.JSON(http.StatusOK, consultations)
}

func (s *Server) getConsultation(c echo.Context) error {
	consultation, err := s.consultations.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrConsultationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "consultation not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load consultation")
	}
	return c.JSON(http.StatusOK, consultation)
}

type createAppointmentRequest struct {
	PatientName     string `json:"patientName"`
	PatientPhone    string `json:"patientPhone"`
	ClinicID        *int64 `json:"clinicId"`
	DoctorName      string `json:"doctorName"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Reason          string `json:"reason"`
}

func (s *Server) createAppointment(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "appointmentDate must be YYYY-MM-DD")
	}

	appointment, err := s.appointments.Create(c.Request().Context(), domain.Appointment{
		PatientName:     req.PatientName,
		PatientPhone:    req.PatientPhone,
		ClinicID:        req.ClinicID,
		DoctorName:      req.DoctorName,
		AppointmentDate: date,
		AppointmentTime: req.AppointmentTime,
		Reason:          req.Reason,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, appointment)
}

func (s *Server) listAppointments(c echo.Context) error {
	ctx := c.Request().Context()

	if phone := c.QueryParam("phone"); phone != "" {
		appointments, err := s.appointments.UpcomingByPhone(ctx, phone, 20)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "could not list appointments")
		}
		return c.JSON(http.StatusOK, appointments)
	}

	appointments, err := s.appointments.List(ctx, 50)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list appointments")
	}
	return c.JSON(http.StatusOK, appointments)
}

func (s *Server) listCommunications(c echo.Context) error {
	phone := c.QueryParam("phone")
	if phone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "phone is required")
	}

	history, err := s.communications.History(c.Request().Context(), phone, 50)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list communications")
	}
	return c.JSON(http.StatusOK, history)
}

func (s *Server) listClinics(c echo.Context) error {
	clinics, err := s.directory.Clinics(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list clinics")
	}
	return c.JSON(http.StatusOK, clinics)
}

func (s *Server) listVideos(c echo.Context) error {
	return c.JSON(http.StatusOK, s.directory.Videos())
}

type healthContentRequest struct {
	Topic    string `json:"topic"`
	Language string `json:"language"`
	Phone    string `json:"phone"`
}

func (s *Server) generateHealthContent(c echo.Context) error {
	var req healthContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Topic == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "topic is required")
	}
	if req.Language == "" {
		req.Language = "English"
	}

	result := s.contents.HealthContent(c.Request().Context(), domain.HealthContentRequest{
		Topic:    req.Topic,
		Language: req.Language,
		Profile:  domain.CallerProfile{PhoneNumber: req.Phone, Language: req.Language},
	})
	return c.JSON(http.StatusOK, result)
}

type translateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
}

func (s *Server) translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Text == "" || req.TargetLanguage == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text and targetLanguage are required")
	}

	translated := s.contents.Translate(c.Request().Context(), req.Text, req.TargetLanguage)
	return c.JSON(http.StatusOK, map[string]string{"translation": translated})
}

type chatRequest struct {
	Messages []content.Message `json:"messages"`
}

func (s *Server) chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(req.Messages) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "messages are required")
	}

	reply := s.contents.ChatReply(c.Request().Context(), req.Messages)
	return c.JSON(http.StatusOK, map[string]string{"reply": reply})
}
