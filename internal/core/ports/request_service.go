package ports

import (
	"context"
	"time"

	"github.com/wastemap/collection-api/internal/core/domain"
)

// LocationInput holds the geographic point of a create payload.
type LocationInput struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// Location is the geographic point on a returned record. It is a distinct
// type from LocationInput so the input and output DTOs do not alias.
type Location struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// CreateRequestInput carries all data needed to create a pickup request.
type CreateRequestInput struct {
	WasteType   string
	Description string
	Location    LocationInput
}

// UpdateRequestInput is a partial update: nil fields retain their prior
// values. Status is deliberately absent; all status changes go through
// TransitionStatus, which is admin-only.
type UpdateRequestInput struct {
	WasteType   *string
	Description *string
	Latitude    *float64
	Longitude   *float64
	Address     *string
}

// RequestRecord is the service-level view of a request. OwnerName and
// OwnerEmail are populated only on admin-visible reads.
type RequestRecord struct {
	ID          string
	OwnerID     string
	WasteType   string
	Description string
	Location    Location
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	OwnerName   string
	OwnerEmail  string
}

// RequestService defines the lifecycle operations on pickup requests. Every
// operation takes the acting principal explicitly.
type RequestService interface {
	Create(ctx context.Context, p domain.Principal, in CreateRequestInput) (*RequestRecord, error)
	Get(ctx context.Context, p domain.Principal, id string) (*RequestRecord, error)
	List(ctx context.Context, p domain.Principal) ([]RequestRecord, error)
	Update(ctx context.Context, p domain.Principal, id string, in UpdateRequestInput) (*RequestRecord, error)
	TransitionStatus(ctx context.Context, p domain.Principal, id string, newStatus string) (*RequestRecord, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
	Stats(ctx context.Context, p domain.Principal) (*RequestStats, error)
}
