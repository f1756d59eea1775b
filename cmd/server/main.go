package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lease_notification_service/internal/app"
	"lease_notification_service/internal/infra/auth"
	"lease_notification_service/internal/infra/config"
	idb "lease_notification_service/internal/infra/database"
	"lease_notification_service/internal/infra/email"
	"lease_notification_service/internal/infra/httpserver"
	"lease_notification_service/internal/infra/logger"
	"lease_notification_service/internal/infra/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load application configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel, cfg.Environment)
	log := logger.Get()
	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s", cfg.LogLevel, cfg.Environment)

	// Initialize Database Connection
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to database: %v", err)
	}
	defer db.Close()
	log.Info("Database connection established successfully.")

	// Initialize Repositories and Services
	tenantRepo := idb.NewPostgresTenantRepository(db)
	sender := email.NewSMTPSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
	emailService := app.NewEmailService(sender, log)
	reminderService := app.NewReminderServiceImpl(tenantRepo, emailService, log)
	log.Info("Email and reminder services initialized.")

	// Initialize ReminderScheduler
	reminderScheduler := scheduler.NewReminderScheduler(reminderService, log, cfg.ReminderCronSpec)
	if err := reminderScheduler.Start(); err != nil {
		log.Fatalf("FATAL: Could not start reminder scheduler: %v", err)
	}

	// Initialize HTTP server
	accessClient := auth.NewClient(cfg.AuthServiceURL, log)
	server := httpserver.NewServer(cfg.Port, emailService, accessClient, cfg.AllowedOrigins, log)

	go func() {
		log.Infof("HTTP server listening on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("FATAL: HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info("Shutting down application...")
	reminderScheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown error: %v", err)
	}
	// db.Close() is handled by defer
	log.Info("Application shut down gracefully.")
}
