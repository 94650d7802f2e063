package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"cargotrack/internal/core/application/usecases/commands"
)

// RegisterRequest is the client sign-up form.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	CompanyName string `json:"companyName"`
}

// RegisterResponse returns the created profile identifier.
type RegisterResponse struct {
	ID string `json:"id"`
}

// LoginRequest is the sign-in form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileResponse is the signed-in profile view.
type ProfileResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	Phone       string `json:"phone,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Role        string `json:"role"`
}

// LoginResponse carries the access token and the authenticated profile.
type LoginResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

// Register handles POST /api/v1/auth/register - creates a client profile.
func (s *Server) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewRegisterClientCommand(
		req.Email, req.Password, req.FullName, req.Phone, req.CompanyName)
	if err != nil {
		return writeError(c, err)
	}

	profileID, err := s.registerClientHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(nethttp.StatusCreated, RegisterResponse{ID: profileID.String()})
}

// Login handles POST /api/v1/auth/login - verifies credentials and issues a token.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewAuthenticateCommand(req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.authenticateHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(nethttp.StatusOK, LoginResponse{
		Token: result.Token,
		Profile: ProfileResponse{
			ID:          result.Profile.ID().String(),
			Email:       result.Profile.Email(),
			FullName:    result.Profile.FullName(),
			Phone:       result.Profile.Phone(),
			CompanyName: result.Profile.CompanyName(),
			Role:        result.Profile.Role().String(),
		},
	})
}
