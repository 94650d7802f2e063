package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetClientsQueryHandler lists profiles from the database, newest first.
type GetClientsQueryHandler struct {
	db *gorm.DB
}

// NewGetClientsQueryHandler creates a handler for profile listings.
func NewGetClientsQueryHandler(db *gorm.DB) GetClientsQueryHandler {
	return GetClientsQueryHandler{db: db}
}

// Handle executes the listing with the query's role filter and pagination.
func (h GetClientsQueryHandler) Handle(ctx context.Context,
	query GetClientsQuery) (GetClientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetClientsQueryResponse{}, err
	}

	where := "1=1"
	args := make([]any, 0, 1)
	if role := query.Role(); role != nil {
		where += " AND role = ?"
		args = append(args, role.String())
	}

	resp := GetClientsQueryResponse{
		Profiles: make([]ProfileSummary, 0),
		Limit:    query.Limit(),
		Offset:   query.Offset(),
	}

	countRow := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM profiles WHERE "+where, args...).Row()
	if err := countRow.Scan(&resp.Total); err != nil {
		return GetClientsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), query.Offset())...).Rows()
	if err != nil {
		return GetClientsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var s ProfileSummary
		err = rows.Scan(
			&s.ID,
			&s.Email,
			&s.FullName,
			&s.Phone,
			&s.CompanyName,
			&s.Role,
			&s.IsActive,
			&s.CreatedAt,
		)
		if err != nil {
			return GetClientsQueryResponse{}, err
		}
		resp.Profiles = append(resp.Profiles, s)
	}
	if err = rows.Err(); err != nil {
		return GetClientsQueryResponse{}, err
	}

	return resp, nil
}
