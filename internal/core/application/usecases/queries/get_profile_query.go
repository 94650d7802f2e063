package queries

import (
	"errors"
	"time"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

// GetProfileQuery requests one profile's account view.
type GetProfileQuery struct {
	profileID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a query for a profile's account view.
func NewGetProfileQuery(profileID kernel.UUID) (GetProfileQuery, error) {
	if err := profileID.Validate(); err != nil {
		return GetProfileQuery{}, err
	}

	return GetProfileQuery{
		profileID: profileID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// ProfileID returns the requested profile identifier.
func (q GetProfileQuery) ProfileID() kernel.UUID { return q.profileID }

// GetProfileQueryResponse is the account view of a profile. The password hash
// never leaves the database.
type GetProfileQueryResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"fullName"`
	Phone       string    `json:"phone,omitempty"`
	CompanyName string    `json:"companyName,omitempty"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}
