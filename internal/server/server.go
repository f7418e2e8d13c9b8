// Package server wires the webhook adapters and the REST surface onto a
// single echo instance.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/healthconnect-sl/healthconnect/internal/channel"
	"github.com/healthconnect-sl/healthconnect/internal/content"
	"github.com/healthconnect-sl/healthconnect/internal/service"
)

type Server struct {
	echo *echo.Echo

	consultations  *service.ConsultationService
	appointments   *service.AppointmentService
	directory      *service.DirectoryService
	users          *service.UserService
	contents       *content.Service
	communications *service.CommunicationService
}

type Deps struct {
	Pipeline       *channel.Pipeline
	Messenger      channel.Messenger
	Consultations  *service.ConsultationService
	Appointments   *service.AppointmentService
	Directory      *service.DirectoryService
	Users          *service.UserService
	Contents       *content.Service
	Communications *service.CommunicationService
}

func New(deps Deps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(requestLogger())

	s := &Server{
		echo:           e,
		consultations:  deps.Consultations,
		appointments:   deps.Appointments,
		directory:      deps.Directory,
		users:          deps.Users,
		contents:       deps.Contents,
		communications: deps.Communications,
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Carrier webhooks.
	api := e.Group("/api")
	api.POST("/ussd", channel.NewUSSDHandler(deps.Pipeline, deps.Messenger).Handle)
	api.POST("/sms", channel.NewSMSHandler(deps.Pipeline, deps.Messenger).Handle)
	api.POST("/voice", channel.NewVoiceHandler(deps.Pipeline, deps.Messenger).Handle)
	api.POST("/whatsapp", channel.NewWhatsAppHandler(deps.Pipeline, deps.Messenger).Handle)

	// REST surface.
	api.POST("/consultations", s.createConsultation)
	api.GET("/consultations", s.listConsultations)
	api.GET("/consultations/:id", s.getConsultation)
	api.POST("/appointments", s.createAppointment)
	api.GET("/appointments", s.listAppointments)
	api.GET("/communications", s.listCommunications)
	api.GET("/clinics", s.listClinics)
	api.GET("/videos", s.listVideos)
	api.POST("/ai/health-content", s.generateHealthContent)
	api.POST("/ai/translate", s.translate)
	api.POST("/chat", s.chat)

	return s
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			slog.Info("http request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	})
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
