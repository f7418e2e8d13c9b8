package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	healthconnect "github.com/healthconnect-sl/healthconnect"
	"github.com/healthconnect-sl/healthconnect/internal/actions"
	"github.com/healthconnect-sl/healthconnect/internal/channel"
	"github.com/healthconnect-sl/healthconnect/internal/config"
	"github.com/healthconnect-sl/healthconnect/internal/content"
	"github.com/healthconnect-sl/healthconnect/internal/gateway"
	"github.com/healthconnect-sl/healthconnect/internal/menu"
	"github.com/healthconnect-sl/healthconnect/internal/repository"
	"github.com/healthconnect-sl/healthconnect/internal/server"
	"github.com/healthconnect-sl/healthconnect/internal/service"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(healthconnect.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepo(pool)
	consultationRepo := repository.NewConsultationRepo(pool)
	providerRepo := repository.NewProviderRepo(pool)
	communicationRepo := repository.NewCommunicationRepo(pool)
	appointmentRepo := repository.NewAppointmentRepo(pool)
	clinicRepo := repository.NewClinicRepo(pool)

	// Carrier clients. Missing credentials leave the sender nil; replies
	// are then logged but not delivered, which keeps webhook handling
	// alive in development.
	var smsSender service.SMSSender
	if cfg.CarrierAPIKey != "" {
		smsSender = gateway.NewSMSClient(cfg.CarrierAPIKey, cfg.CarrierUsername, cfg.CarrierSenderID, cfg.CarrierBaseURL)
	}
	var whatsAppSender service.WhatsAppSender
	if cfg.WhatsAppSendURL != "" {
		whatsAppSender = gateway.NewWhatsAppClient(cfg.WhatsAppSendURL, cfg.WhatsAppToken)
	}

	// Services
	userService := service.NewUserService(userRepo)
	consultationService := service.NewConsultationService(consultationRepo, providerRepo, userRepo)
	communicationService := service.NewCommunicationService(communicationRepo, smsSender, whatsAppSender)
	appointmentService := service.NewAppointmentService(appointmentRepo)
	directoryService := service.NewDirectoryService(clinicRepo)

	// Content gateway. Without an API key every request is served from
	// the static fallback tables.
	var generator content.Generator
	if cfg.OpenAIKey != "" {
		generator = content.NewOpenAIGenerator(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	} else {
		slog.Warn("no OpenAI key configured, serving static fallback content only")
	}
	contentService := content.NewService(generator, config.ContentTimeout)

	// Menu tree and action handlers. Tree validation at startup catches
	// dangling action ids and malformed transitions before any traffic.
	handlers := actions.NewHandlers(consultationService, contentService, userService, appointmentService)
	registry := handlers.Registry()
	tree, err := menu.NewHealthTree(registry.Known)
	if err != nil {
		slog.Error("invalid menu tree", "error", err)
		os.Exit(1)
	}
	pipeline := channel.NewPipeline(tree, registry)

	srv := server.New(server.Deps{
		Pipeline:       pipeline,
		Messenger:      communicationService,
		Consultations:  consultationService,
		Appointments:   appointmentService,
		Directory:      directoryService,
		Users:          userService,
		Contents:       contentService,
		Communications: communicationService,
	})

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		slog.Info("starting server", "addr", addr)
		if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
	slog.Info("server stopped gracefully")
}
