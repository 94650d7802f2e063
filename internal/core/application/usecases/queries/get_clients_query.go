package queries

import (
	"errors"
	"time"

	"cargotrack/internal/core/domain/model/account"
	"cargotrack/internal/pkg/guard"
)

var ErrGetClientsQueryIsNotConstructed = errors.New(
	"GetClientsQuery must be created via NewGetClientsQuery constructor",
)

// GetClientsQuery lists profiles for the management dashboard, newest first.
// Role narrows the listing; the clients page passes RoleClient.
type GetClientsQuery struct {
	role   *account.Role
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetClientsQuery creates a profile listing query.
// A nil role lists every profile. limit is clamped to [1, MaxPageSize],
// non-positive values fall back to DefaultPageSize. Negative offsets are
// treated as zero.
func NewGetClientsQuery(role *account.Role, limit, offset int) (GetClientsQuery, error) {
	if role != nil {
		if err := role.Validate(); err != nil {
			return GetClientsQuery{}, err
		}
	}

	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return GetClientsQuery{
		role:   role,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientsQuery) Validate() error {
	return q.guard.Validate(ErrGetClientsQueryIsNotConstructed)
}

// Role returns the optional role filter.
func (q GetClientsQuery) Role() *account.Role { return q.role }

// Limit returns the clamped page size.
func (q GetClientsQuery) Limit() int { return q.limit }

// Offset returns the listing offset.
func (q GetClientsQuery) Offset() int { return q.offset }

// ProfileSummary is one row of the profile listing.
type ProfileSummary struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"fullName"`
	Phone       string    `json:"phone,omitempty"`
	CompanyName string    `json:"companyName,omitempty"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GetClientsQueryResponse is a page of the profile listing.
type GetClientsQueryResponse struct {
	Profiles []ProfileSummary `json:"profiles"`
	Total    int64            `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}
