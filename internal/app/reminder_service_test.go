package app

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"lease_notification_service/internal/domain/tenant"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checkNow = time.Date(2025, time.June, 10, 9, 30, 0, 0, time.Local)

type fakeTenantRepo struct {
	tenants []*tenant.Tenant
	err     error
	calls   int
}

func (f *fakeTenantRepo) ListTenants(ctx context.Context) ([]*tenant.Tenant, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.tenants, nil
}

type dispatchedBatch struct {
	messages []string
	tenantID int64
}

type fakeDispatcher struct {
	batches []dispatchedBatch
	failFor map[int64]error
}

func (f *fakeDispatcher) SendReminders(ctx context.Context, messages []string, t *tenant.Tenant) error {
	if err, ok := f.failFor[t.ID]; ok {
		return err
	}
	f.batches = append(f.batches, dispatchedBatch{messages: messages, tenantID: t.ID})
	return nil
}

func newTestReminderService(repo *fakeTenantRepo, dispatcher *fakeDispatcher) *ReminderServiceImpl {
	log, _ := test.NewNullLogger()
	svc := NewReminderServiceImpl(repo, dispatcher, log)
	svc.now = func() time.Time { return checkNow }
	return svc
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func nullDate(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: true}
}

func TestCollectTenantReminders_PaymentDueLeaseEndNot(t *testing.T) {
	tn := &tenant.Tenant{
		ID:    1,
		Email: nullStr("tenant@example.com"),
		Leases: []tenant.Lease{{
			PaymentDate: nullDate(checkNow.AddDate(0, 0, 5)),
			EndDate:     nullDate(checkNow.AddDate(0, 0, 45)),
		}},
	}

	svc := newTestReminderService(&fakeTenantRepo{}, &fakeDispatcher{})
	messages := svc.CollectTenantReminders(tn)

	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "Payment reminder for tenant@example.com")
	assert.Contains(t, messages[0], "5 days")
}

func TestCollectTenantReminders_PaymentBeforeEndDatePerLease(t *testing.T) {
	tn := &tenant.Tenant{
		ID:    1,
		Email: nullStr("tenant@example.com"),
		Leases: []tenant.Lease{{
			PaymentDate: nullDate(checkNow.AddDate(0, 0, 5)),
			EndDate:     nullDate(checkNow.AddDate(0, 0, 5)),
		}},
	}

	svc := newTestReminderService(&fakeTenantRepo{}, &fakeDispatcher{})
	messages := svc.CollectTenantReminders(tn)

	require.Len(t, messages, 2)
	assert.Contains(t, messages[0], "Payment reminder for tenant@example.com")
	assert.Contains(t, messages[1], "Lease end reminder for tenant@example.com")
}

func TestCollectTenantReminders_MissingDatesYieldNothing(t *testing.T) {
	tn := &tenant.Tenant{
		ID:     1,
		Email:  nullStr("tenant@example.com"),
		Leases: []tenant.Lease{{}},
	}

	svc := newTestReminderService(&fakeTenantRepo{}, &fakeDispatcher{})

	assert.Empty(t, svc.CollectTenantReminders(tn))
}

func TestCollectTenantReminders_NoLeases(t *testing.T) {
	svc := newTestReminderService(&fakeTenantRepo{}, &fakeDispatcher{})

	assert.Empty(t, svc.CollectTenantReminders(&tenant.Tenant{ID: 1}))
}

func TestCollectEventReminders_EventInFiveDays(t *testing.T) {
	tn := &tenant.Tenant{
		ID:    7,
		Email: nullStr("tenant@example.com"),
		Events: []tenant.Event{{
			Label:     nullStr("Building inspection"),
			StartDate: nullDate(checkNow.AddDate(0, 0, 5)),
		}},
	}

	svc := newTestReminderService(&fakeTenantRepo{}, &fakeDispatcher{})
	messages := svc.CollectEventReminders(tn)

	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "Event Building inspection for tenant@example.com")
}

func TestCollectEventReminders_NoEvents(t *testing.T) {
	svc := newTestReminderService(&fakeTenantRepo{}, &fakeDispatcher{})

	assert.Empty(t, svc.CollectEventReminders(&tenant.Tenant{ID: 7}))
}

func TestRunDailyCheck_EmptySnapshot(t *testing.T) {
	repo := &fakeTenantRepo{}
	dispatcher := &fakeDispatcher{}
	svc := newTestReminderService(repo, dispatcher)

	err := svc.RunDailyCheck(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	assert.Empty(t, dispatcher.batches)
}

func TestRunDailyCheck_FetchFailureProceedsEmpty(t *testing.T) {
	repo := &fakeTenantRepo{err: fmt.Errorf("connection refused")}
	dispatcher := &fakeDispatcher{}
	svc := newTestReminderService(repo, dispatcher)

	err := svc.RunDailyCheck(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, dispatcher.batches)
}

func TestRunDailyCheck_DispatchesLeaseAndEventBatches(t *testing.T) {
	repo := &fakeTenantRepo{tenants: []*tenant.Tenant{{
		ID:    1,
		Email: nullStr("tenant@example.com"),
		Leases: []tenant.Lease{{
			PaymentDate: nullDate(checkNow.AddDate(0, 0, 5)),
		}},
		Events: []tenant.Event{{
			Label:     nullStr("Move-out walkthrough"),
			StartDate: nullDate(checkNow.AddDate(0, 0, 5)),
		}},
	}}}
	dispatcher := &fakeDispatcher{}
	svc := newTestReminderService(repo, dispatcher)

	err := svc.RunDailyCheck(context.Background())

	require.NoError(t, err)
	require.Len(t, dispatcher.batches, 2)
	assert.Contains(t, dispatcher.batches[0].messages[0], "Payment reminder")
	assert.Contains(t, dispatcher.batches[1].messages[0], "Event Move-out walkthrough")
}

func TestRunDailyCheck_DispatchFailureDoesNotAbortOtherTenants(t *testing.T) {
	due := nullDate(checkNow.AddDate(0, 0, 5))
	repo := &fakeTenantRepo{tenants: []*tenant.Tenant{
		{ID: 1, Email: nullStr("first@example.com"), Leases: []tenant.Lease{{PaymentDate: due}}},
		{ID: 2, Email: nullStr("second@example.com"), Leases: []tenant.Lease{{PaymentDate: due}}},
	}}
	dispatcher := &fakeDispatcher{failFor: map[int64]error{1: fmt.Errorf("smtp unavailable")}}
	svc := newTestReminderService(repo, dispatcher)

	err := svc.RunDailyCheck(context.Background())

	assert.Error(t, err)
	require.Len(t, dispatcher.batches, 1)
	assert.Equal(t, int64(2), dispatcher.batches[0].tenantID)
}

func TestRunDailyCheck_NotDueTenantsProduceNoDispatch(t *testing.T) {
	repo := &fakeTenantRepo{tenants: []*tenant.Tenant{{
		ID:    3,
		Email: nullStr("tenant@example.com"),
		Leases: []tenant.Lease{{
			PaymentDate: nullDate(checkNow.AddDate(0, 0, 2)),
			EndDate:     nullDate(checkNow.AddDate(0, 0, -10)),
		}},
	}}}
	dispatcher := &fakeDispatcher{}
	svc := newTestReminderService(repo, dispatcher)

	err := svc.RunDailyCheck(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, dispatcher.batches)
}
