package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"lease_notification_service/internal/domain/reminder"
	"lease_notification_service/internal/domain/tenant"

	"github.com/sirupsen/logrus"
)

// ReminderService runs the recurring reminder sweep over all tenants.
type ReminderService interface {
	// RunDailyCheck fetches a fresh tenant snapshot, collects the due
	// reminders for every tenant and hands them off for delivery.
	RunDailyCheck(ctx context.Context) error
}

// ReminderDispatcher delivers a batch of reminder messages to one tenant.
type ReminderDispatcher interface {
	SendReminders(ctx context.Context, messages []string, t *tenant.Tenant) error
}

// ReminderServiceImpl implements the ReminderService interface.
type ReminderServiceImpl struct {
	tenantRepo tenant.Repository
	dispatcher ReminderDispatcher
	logger     *logrus.Logger
	now        func() time.Time
}

func NewReminderServiceImpl(
	tr tenant.Repository,
	d ReminderDispatcher,
	logger *logrus.Logger,
) *ReminderServiceImpl {
	return &ReminderServiceImpl{
		tenantRepo: tr,
		dispatcher: d,
		logger:     logger,
		now:        time.Now,
	}
}

// CollectTenantReminders evaluates the date-bearing facts of every lease of
// the tenant: the payment date first, then the lease end date, preserving
// lease order. Only due occasions contribute a message.
func (s *ReminderServiceImpl) CollectTenantReminders(t *tenant.Tenant) []string {
	now := s.now()
	results := make([]string, 0)
	for _, lease := range t.Leases {
		s.appendIfDue(&results, fmt.Sprintf("Payment reminder for %s", t.ContactEmail()), lease.PaymentDate, now)
		s.appendIfDue(&results, fmt.Sprintf("Lease end reminder for %s", t.ContactEmail()), lease.EndDate, now)
	}
	return results
}

// CollectEventReminders evaluates the start date of every event of the
// tenant, in order.
func (s *ReminderServiceImpl) CollectEventReminders(t *tenant.Tenant) []string {
	now := s.now()
	results := make([]string, 0)
	for _, event := range t.Events {
		label := ""
		if event.Label.Valid {
			label = event.Label.String
		}
		s.appendIfDue(&results, fmt.Sprintf("Event %s for %s", label, t.ContactEmail()), event.StartDate, now)
	}
	return results
}

func (s *ReminderServiceImpl) appendIfDue(results *[]string, label string, target sql.NullTime, now time.Time) {
	decision := reminder.EvaluateAt(label, nullableTime(target), now)
	switch decision.Outcome {
	case reminder.OutcomeDue:
		*results = append(*results, decision.Message)
	case reminder.OutcomeNotDue:
		s.logger.Debugf("Reminder not due for %q (scheduled in %d days).", label, decision.DaysRemaining)
	}
}

// RunDailyCheck processes one full reminder cycle. A failed snapshot fetch is
// logged and treated as an empty tenant list; a dispatch failure for one
// tenant never aborts the remaining tenants.
func (s *ReminderServiceImpl) RunDailyCheck(ctx context.Context) error {
	s.logger.Info("Starting daily reminder check...")

	tenants, err := s.tenantRepo.ListTenants(ctx)
	if err != nil {
		s.logger.Errorf("Failed to fetch tenant snapshot, proceeding with empty list: %v", err)
		tenants = nil
	}

	dispatchFailures := 0
	for _, t := range tenants {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("daily reminder check aborted: %w", err)
		}

		if leaseReminders := s.CollectTenantReminders(t); len(leaseReminders) > 0 {
			if err := s.dispatcher.SendReminders(ctx, leaseReminders, t); err != nil {
				dispatchFailures++
				s.logger.Errorf("Failed to dispatch lease reminders for tenant %d: %v", t.ID, err)
			}
		}
		if eventReminders := s.CollectEventReminders(t); len(eventReminders) > 0 {
			if err := s.dispatcher.SendReminders(ctx, eventReminders, t); err != nil {
				dispatchFailures++
				s.logger.Errorf("Failed to dispatch event reminders for tenant %d: %v", t.ID, err)
			}
		}
	}

	s.logger.Infof("Daily reminder check complete: %d tenants processed, %d dispatch failures.", len(tenants), dispatchFailures)
	if dispatchFailures > 0 {
		return fmt.Errorf("daily reminder check finished with %d dispatch failure(s)", dispatchFailures)
	}
	return nil
}

func nullableTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
