package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"cargotrack/internal/core/application/usecases/commands"
	"cargotrack/internal/core/application/usecases/queries"
	"cargotrack/internal/core/domain/model/account"
)

// UpdateProfileRequest is the contact-detail edit form. Email, role, and
// password are not editable through this endpoint.
type UpdateProfileRequest struct {
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	CompanyName string `json:"companyName"`
}

// GetProfile handles GET /api/v1/profile - the authenticated user's account view.
func (s *Server) GetProfile(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c, "Authentication required")
	}

	query, err := queries.NewGetProfileQuery(principal.ProfileID)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.getProfileHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(nethttp.StatusOK, resp)
}

// UpdateProfile handles PUT /api/v1/profile - updates the authenticated user's
// contact details and returns the refreshed account view.
func (s *Server) UpdateProfile(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return unauthorized(c, "Authentication required")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProfileCommand(
		principal.ProfileID, req.FullName, req.Phone, req.CompanyName)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.updateProfileHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetProfileQuery(principal.ProfileID)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.getProfileHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(nethttp.StatusOK, resp)
}

// GetClients handles GET /api/v1/admin/clients - pages through profiles,
// newest first. Lists client accounts unless another role is requested.
func (s *Server) GetClients(c echo.Context) error {
	role := account.RoleClient
	if raw := c.QueryParam("role"); raw != "" {
		parsed, err := account.RoleFromString(raw)
		if err != nil {
			return writeError(c, err)
		}
		role = parsed
	}

	limit := intQueryParam(c, "limit", 0)
	offset := intQueryParam(c, "offset", 0)

	query, err := queries.NewGetClientsQuery(&role, limit, offset)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.getClientsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(nethttp.StatusOK, resp)
}
