package ports

import (
	"context"

	"github.com/wastemap/collection-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts. It serves both the
// auth flow (email lookup at login) and the request flow (attaching owner
// identity to admin-visible reads).
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs returns the users for the given IDs keyed by ID. Missing IDs
	// are simply absent from the result, not an error.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
}
