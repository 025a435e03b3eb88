package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/parisstyle/PS-SalonService/internal/config"
	appointmentRepo "github.com/parisstyle/PS-SalonService/internal/infra/storage/appointment"
	notificationRepo "github.com/parisstyle/PS-SalonService/internal/infra/storage/notification"
	"github.com/parisstyle/PS-SalonService/internal/integrations/mailer"
	notificationsService "github.com/parisstyle/PS-SalonService/internal/service/notifications"
	"github.com/parisstyle/PS-SalonService/pkg/logger"
)

// The notifier is a polling worker: once a day it mails reminders for
// tomorrow's confirmed appointments, and on a short interval it mails
// confirmation notices for freshly created pending ones. Deduplication
// lives in the queries, so restarts are safe.
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting PS-SalonService notifier...")

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	mailClient := mailer.NewClient(
		cfg.Notifications.SMTPHost,
		cfg.Notifications.SMTPPort,
		fmt.Sprintf("%s <%s>", cfg.Notifications.SenderName, cfg.Notifications.SenderEmail),
		cfg.Notifications.SenderEmail,
		cfg.Notifications.SMTPPassword,
		log,
	)

	svc := notificationsService.NewService(
		appointmentRepo.NewRepository(db),
		notificationRepo.NewRepository(db),
		mailClient,
		log,
	)

	confirmationInterval := time.Duration(cfg.Notifications.ConfirmationIntervalMinutes) * time.Minute
	if confirmationInterval <= 0 {
		confirmationInterval = 15 * time.Minute
	}
	confirmationWindow := time.Duration(cfg.Notifications.ConfirmationWindowHours) * time.Hour
	if confirmationWindow <= 0 {
		confirmationWindow = 24 * time.Hour
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("Shutting down notifier...")
		cancel()
	}()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	var lastReminderDay string

	log.Info("Notifier running (reminder_hour=%d, confirmation_interval=%s)",
		cfg.Notifications.ReminderHour, confirmationInterval)

	lastConfirmationPass := time.Now().Add(-confirmationInterval)

	for {
		select {
		case <-ctx.Done():
			log.Info("Notifier stopped gracefully")
			return

		case now := <-ticker.C:
			// Reminders fire once per day at the configured hour
			day := now.Format("2006-01-02")
			if now.Hour() == cfg.Notifications.ReminderHour && day != lastReminderDay {
				if _, err := svc.SendReminders(ctx, now); err != nil {
					log.Error("Reminder pass failed: %v", err)
				} else {
					lastReminderDay = day
				}
			}

			// Confirmation mails fire on the poll interval
			if now.Sub(lastConfirmationPass) >= confirmationInterval {
				since := now.Add(-confirmationWindow)
				if _, err := svc.SendConfirmations(ctx, since, now); err != nil {
					log.Error("Confirmation pass failed: %v", err)
				}
				lastConfirmationPass = now
			}
		}
	}
}
