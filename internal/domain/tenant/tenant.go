package tenant

import (
	"database/sql"
	"strings"
)

// Tenant is a read-only snapshot of one tenant user together with the leases
// and events attached to them. The reminder core never mutates tenants; the
// backing store owns their lifecycle.
type Tenant struct {
	ID        int64
	FirstName sql.NullString
	LastName  sql.NullString
	Email     sql.NullString
	Leases    []Lease
	Events    []Event
}

// Lease holds the date-bearing facts of one lease. All dates are nullable:
// a missing date simply never produces a reminder.
type Lease struct {
	StartDate   sql.NullTime
	EndDate     sql.NullTime
	PaymentDate sql.NullTime
}

// Event is a scheduled event associated with exactly one tenant.
type Event struct {
	Label     sql.NullString
	StartDate sql.NullTime
	EndDate   sql.NullTime
}

// DisplayName builds the recipient name from the optional name parts.
func (t *Tenant) DisplayName() string {
	parts := make([]string, 0, 2)
	if t.FirstName.Valid && t.FirstName.String != "" {
		parts = append(parts, t.FirstName.String)
	}
	if t.LastName.Valid && t.LastName.String != "" {
		parts = append(parts, t.LastName.String)
	}
	return strings.Join(parts, " ")
}

// ContactEmail returns the tenant's email, or "" when none is on record.
func (t *Tenant) ContactEmail() string {
	if !t.Email.Valid {
		return ""
	}
	return t.Email.String
}
