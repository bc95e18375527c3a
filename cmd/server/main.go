package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/veugravata/backend/internal/auth"
	"github.com/veugravata/backend/internal/config"
	"github.com/veugravata/backend/internal/mail"
	"github.com/veugravata/backend/internal/metrics"
	"github.com/veugravata/backend/internal/payments"
	"github.com/veugravata/backend/internal/secrets"
	"github.com/veugravata/backend/internal/server"
	"github.com/veugravata/backend/internal/service"
	"github.com/veugravata/backend/internal/storage/sqlite"
	"github.com/veugravata/backend/pkg/logging"
)

func main() {
	logging.Setup()

	cfg := config.Load()

	box, err := secrets.NewBox(cfg.BankingKey)
	if err != nil {
		slog.Error("Failed to load banking key", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath, box)
	if err != nil {
		slog.Error("Failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store)

	sender := mail.NewSMTPSender(cfg.SMTP)
	provider := &payments.Offline{}

	onboarding := service.NewOnboardingService(store)
	sections := service.NewSectionService(store)
	gifts := service.NewGiftService(store, provider)
	guests := service.NewGuestService(store)
	invitations := service.NewInvitationService(store, sender, cfg.PublicBaseURL)

	if cfg.MetricsAddr != "" {
		go metrics.Serve(cfg.MetricsAddr)
	}

	app := server.New(
		authenticator,
		jwtManager,
		onboarding,
		sections,
		gifts,
		guests,
		invitations,
		cfg.PublicBaseURL,
	)

	slog.Info("Server starting", "address", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
