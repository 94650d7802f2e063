package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"cargotrack/internal/pkg/errs"
)

// GetProfileQueryHandler loads one profile's account view.
type GetProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetProfileQueryHandler creates a handler for profile lookups.
func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

// Handle fetches the profile row, or an ObjectNotFoundError when absent.
func (h GetProfileQueryHandler) Handle(ctx context.Context,
	query GetProfileQuery) (GetProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProfileQueryResponse{}, err
	}

	var resp GetProfileQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			full_name,
			phone,
			company_name,
			role,
			is_active,
			created_at
		FROM profiles
		WHERE id = ?
	`, query.ProfileID().String()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.Email,
		&resp.FullName,
		&resp.Phone,
		&resp.CompanyName,
		&resp.Role,
		&resp.IsActive,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetProfileQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
				"profile", query.ProfileID().String(), err)
		}
		return GetProfileQueryResponse{}, err
	}

	return resp, nil
}
