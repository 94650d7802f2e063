package ports

import (
	"context"

	"cargotrack/internal/core/domain/model/account"
	"cargotrack/internal/core/domain/model/kernel"
)

// ProfileRepository defines the persistence contract for user profiles.
type ProfileRepository interface {
	// Add persists a new profile aggregate.
	Add(ctx context.Context, aggregate *account.Profile) error

	// Update persists changes to an existing profile aggregate.
	Update(ctx context.Context, aggregate *account.Profile) error

	// Get retrieves a profile aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Profile, error)

	// GetByEmail retrieves a profile by its login email. The email is
	// matched against the stored lowercased value.
	GetByEmail(ctx context.Context, email string) (*account.Profile, error)
}
