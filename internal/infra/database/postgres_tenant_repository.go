package database

import (
	"context"
	"database/sql"
	"fmt"

	"lease_notification_service/internal/domain/tenant"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Tenant users live in the platform's shared schema; only rows of this type
// receive reminders.
const tenantUserType = "TENANT"

type PostgresTenantRepository struct {
	db *sql.DB
}

func NewPostgresTenantRepository(db *sql.DB) *PostgresTenantRepository {
	return &PostgresTenantRepository{db: db}
}

// ListTenants returns a full fresh snapshot of all tenant users together
// with their leases and events. The snapshot is read-only; no tenant state
// is ever written back.
func (r *PostgresTenantRepository) ListTenants(ctx context.Context) ([]*tenant.Tenant, error) {
	query := `SELECT "USEN_ID", "USEC_FNAME", "USEC_LNAME", "USEC_MAIL"
               FROM users WHERE "USEC_TYPE" = $1 ORDER BY "USEN_ID"`

	rows, err := r.db.QueryContext(ctx, query, tenantUserType)
	if err != nil {
		return nil, fmt.Errorf("error listing tenants: %w", err)
	}
	defer rows.Close()

	tenants := make([]*tenant.Tenant, 0)
	byID := make(map[int64]*tenant.Tenant)
	for rows.Next() {
		t := &tenant.Tenant{
			Leases: make([]tenant.Lease, 0),
			Events: make([]tenant.Event, 0),
		}
		if err := rows.Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email); err != nil {
			return nil, fmt.Errorf("error scanning tenant: %w", err)
		}
		tenants = append(tenants, t)
		byID[t.ID] = t
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenants: %w", err)
	}

	if err := r.loadLeases(ctx, byID); err != nil {
		return nil, err
	}
	if err := r.loadEvents(ctx, byID); err != nil {
		return nil, err
	}
	return tenants, nil
}

func (r *PostgresTenantRepository) loadLeases(ctx context.Context, byID map[int64]*tenant.Tenant) error {
	query := `SELECT "USEN_ID", "LEAD_START", "LEAD_END", "LEAD_PAYMENT"
               FROM leases
               WHERE "USEN_ID" IN (SELECT "USEN_ID" FROM users WHERE "USEC_TYPE" = $1)
               ORDER BY "USEN_ID", "LEAD_START"`

	rows, err := r.db.QueryContext(ctx, query, tenantUserType)
	if err != nil {
		return fmt.Errorf("error listing leases: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ownerID int64
		var lease tenant.Lease
		if err := rows.Scan(&ownerID, &lease.StartDate, &lease.EndDate, &lease.PaymentDate); err != nil {
			return fmt.Errorf("error scanning lease: %w", err)
		}
		if t, ok := byID[ownerID]; ok {
			t.Leases = append(t.Leases, lease)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating leases: %w", err)
	}
	return nil
}

func (r *PostgresTenantRepository) loadEvents(ctx context.Context, byID map[int64]*tenant.Tenant) error {
	query := `SELECT "USEN_ID", "EVEC_LIB", "EVED_START", "EVED_END"
               FROM events
               WHERE "USEN_ID" IN (SELECT "USEN_ID" FROM users WHERE "USEC_TYPE" = $1)
               ORDER BY "USEN_ID", "EVED_START"`

	rows, err := r.db.QueryContext(ctx, query, tenantUserType)
	if err != nil {
		return fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ownerID int64
		var event tenant.Event
		if err := rows.Scan(&ownerID, &event.Label, &event.StartDate, &event.EndDate); err != nil {
			return fmt.Errorf("error scanning event: %w", err)
		}
		if t, ok := byID[ownerID]; ok {
			t.Events = append(t.Events, event)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating events: %w", err)
	}
	return nil
}
