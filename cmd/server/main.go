package main

import (
	"log"

	"github.com/ridwanfathin/whatsapp-billing/docs"
	"github.com/ridwanfathin/whatsapp-billing/internal/config"
	"github.com/ridwanfathin/whatsapp-billing/internal/domain"
	"github.com/ridwanfathin/whatsapp-billing/internal/editor"
	"github.com/ridwanfathin/whatsapp-billing/internal/handler"
	"github.com/ridwanfathin/whatsapp-billing/internal/logger"
	"github.com/ridwanfathin/whatsapp-billing/internal/logo"
	"github.com/ridwanfathin/whatsapp-billing/internal/server"
	"github.com/ridwanfathin/whatsapp-billing/internal/session"
	"github.com/ridwanfathin/whatsapp-billing/internal/view"
	"go.uber.org/zap"
)

// @title WhatsApp Billing API
// @version 1.0
// @description Edit an invoice per browser session, preview it and send it through a WhatsApp click-to-chat link.
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(logger.Config{Format: cfg.LogFormat, Level: cfg.LogLevel})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	docs.SwaggerInfo.Host = ""

	// Every session gets its own editor, seeded with the configured defaults
	defaults := domain.Defaults{
		BusinessName: cfg.DefaultBusinessName,
		DueDays:      cfg.DueDays,
	}
	store := session.NewStore(session.Config{
		TTL:         cfg.SessionTTL,
		MaxSessions: cfg.MaxSessions,
	}, func() *editor.Editor {
		return editor.New(editor.WithDefaults(defaults))
	}, appLogger.Named("session"))

	renderer, err := view.NewRenderer()
	if err != nil {
		appLogger.Fatal("failed to load templates", zap.Error(err))
	}

	prober := logo.NewProber(logo.Config{
		StaticDir:            cfg.StaticDir,
		Timeout:              cfg.LogoFetchTimeout,
		MaxBytes:             cfg.LogoMaxBytes,
		CacheTTL:             cfg.LogoCacheTTL,
		CacheEntries:         cfg.LogoCacheEntries,
		MaxConcurrentFetches: cfg.MaxWorkers,
		AllowPrivateNetworks: cfg.LogoAllowPrivate,
	})

	// Create handlers
	invoiceHandler := handler.NewInvoiceHandler(appLogger.Named("api"))
	pageHandler := handler.NewPageHandler(renderer, prober, appLogger.Named("page"))

	// Create and configure server
	appServer := server.NewServer(cfg, appLogger, store, invoiceHandler, pageHandler)

	// Start server (blocking call)
	if err := appServer.Start(); err != nil {
		appLogger.Fatal("server error", zap.Error(err))
	}

	appLogger.Info("server shutdown complete")
}
