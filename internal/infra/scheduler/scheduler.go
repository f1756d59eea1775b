package scheduler

import (
	"context"
	"fmt"
	"time"

	"lease_notification_service/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// One run covers the tenant snapshot fetch plus every outbound send; a hung
// dispatch must not stall the scheduler past this.
const defaultRunTimeout = 10 * time.Minute

// ReminderScheduler drives the recurring daily reminder sweep.
type ReminderScheduler struct {
	cronEngine *cron.Cron
	reminders  app.ReminderService
	logger     *logrus.Logger
	cronSpec   string
	runTimeout time.Duration
}

func NewReminderScheduler(
	reminders app.ReminderService,
	logger *logrus.Logger,
	cronSpec string, // e.g. "@every 24h" or "0 8 * * *"
) *ReminderScheduler {
	return &ReminderScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		reminders:  reminders,
		logger:     logger,
		cronSpec:   cronSpec,
		runTimeout: defaultRunTimeout,
	}
}

// Start registers the daily job and launches the cron engine. The first
// sweep runs immediately so a freshly started instance never skips a day.
func (s *ReminderScheduler) Start() error {
	s.logger.Info("Starting reminder scheduler...")

	_, err := s.cronEngine.AddFunc(s.cronSpec, s.runOnce)
	if err != nil {
		return fmt.Errorf("could not add daily reminder cron job: %w", err)
	}

	s.cronEngine.Start()
	go s.runOnce()

	s.logger.Infof("Reminder scheduler started with spec %q.", s.cronSpec)
	return nil
}

func (s *ReminderScheduler) runOnce() {
	s.logger.Info("Reminder sweep triggered.")
	ctx, cancel := context.WithTimeout(context.Background(), s.runTimeout)
	defer cancel()
	if err := s.reminders.RunDailyCheck(ctx); err != nil {
		s.logger.Errorf("Error during daily reminder check: %v", err)
	}
}

// Stop halts the cron engine and waits for a running sweep to finish.
func (s *ReminderScheduler) Stop() {
	s.logger.Info("Stopping reminder scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()
	s.logger.Info("Reminder scheduler gracefully stopped.")
}
