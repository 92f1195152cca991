package ports

import (
	"context"

	"github.com/wastemap/collection-api/internal/core/domain"
)

// ListRequestsFilter carries the query parameters for listing requests.
// OwnerID is always enforced by the service layer: non-admin callers are
// scoped to their own records at the store, not per-record.
type ListRequestsFilter struct {
	OwnerID string // empty = no filter (admin); non-empty = scoped to owner
}

// RequestStats are the global per-status counts. Cancelled requests count
// toward Total but into none of the three named buckets, so
// Pending+InProgress+Completed <= Total always holds.
type RequestStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
}

// RequestRepository defines persistence operations for pickup requests.
// Each call is atomic on its own; no cross-record transaction is assumed.
type RequestRepository interface {
	Create(ctx context.Context, r *domain.Request) error
	FindByID(ctx context.Context, id string) (*domain.Request, error)
	// List returns requests matching filter, newest first.
	List(ctx context.Context, filter ListRequestsFilter) ([]*domain.Request, error)
	// Save replaces the stored record; domain.ErrRequestNotFound when absent.
	Save(ctx context.Context, r *domain.Request) error
	// DeleteByID removes the record permanently; domain.ErrRequestNotFound when absent.
	DeleteByID(ctx context.Context, id string) error
	// Stats counts all records globally, grouped by status. The counts are a
	// best-effort snapshot, not a serializable read.
	Stats(ctx context.Context) (*RequestStats, error)
}
