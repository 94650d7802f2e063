package commands

import (
	"errors"
	"strings"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"
	"cargotrack/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand represents a signed-in user's request to change their
// display name and contact details. Email, role, and password are managed
// through dedicated flows and cannot be changed here.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	profileID   kernel.UUID
	fullName    string
	phone       string
	companyName string

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a command to update a profile's contact details.
func NewUpdateProfileCommand(profileID kernel.UUID,
	fullName, phone, companyName string) (UpdateProfileCommand, error) {
	if err := profileID.Validate(); err != nil {
		return UpdateProfileCommand{}, err
	}
	if strings.TrimSpace(fullName) == "" {
		return UpdateProfileCommand{}, errs.NewValueIsRequiredError("fullName")
	}

	return UpdateProfileCommand{
		profileID:   profileID,
		fullName:    fullName,
		phone:       phone,
		companyName: companyName,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// ProfileID returns the identifier of the profile to update.
func (c UpdateProfileCommand) ProfileID() kernel.UUID { return c.profileID }

// FullName returns the replacement display name.
func (c UpdateProfileCommand) FullName() string { return c.fullName }

// Phone returns the replacement contact phone.
func (c UpdateProfileCommand) Phone() string { return c.phone }

// CompanyName returns the replacement company name.
func (c UpdateProfileCommand) CompanyName() string { return c.companyName }
