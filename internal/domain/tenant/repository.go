package tenant

import (
	"context"
)

// Repository supplies tenant snapshots for the reminder run. Each call
// returns a full fresh snapshot; the caller never sees partial updates.
type Repository interface {
	ListTenants(ctx context.Context) ([]*Tenant, error)
}
