package commands

import (
	"errors"

	"cargotrack/internal/pkg/errs"
	"cargotrack/internal/pkg/guard"
)

// PasswordMinLength is the minimum accepted password length.
const PasswordMinLength = 8

var ErrRegisterClientCommandIsNotConstructed = errors.New(
	"RegisterClientCommand must be created via NewRegisterClientCommand constructor",
)

// RegisterClientCommand represents a sign-up request. The plaintext password
// lives only inside the command; the handler hashes it before anything is
// persisted.
type RegisterClientCommand struct { //nolint:recvcheck //using for validation
	email       string
	password    string
	fullName    string
	phone       string
	companyName string

	guard guard.ConstructorGuard
}

// NewRegisterClientCommand creates a sign-up command.
// Email format is validated by the profile aggregate; this constructor checks
// presence and the password length floor.
func NewRegisterClientCommand(email, password, fullName, phone,
	companyName string) (RegisterClientCommand, error) {
	if email == "" {
		return RegisterClientCommand{}, errs.NewValueIsRequiredError("email")
	}
	if len(password) < PasswordMinLength {
		return RegisterClientCommand{}, errs.NewValueIsOutOfRangeError(
			"password", len(password), PasswordMinLength, 72)
	}
	if fullName == "" {
		return RegisterClientCommand{}, errs.NewValueIsRequiredError("fullName")
	}

	return RegisterClientCommand{
		email:       email,
		password:    password,
		fullName:    fullName,
		phone:       phone,
		companyName: companyName,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterClientCommand) Validate() error {
	return c.guard.Validate(ErrRegisterClientCommandIsNotConstructed)
}

// Email returns the requested login email.
func (c RegisterClientCommand) Email() string { return c.email }

// Password returns the plaintext password to hash.
func (c RegisterClientCommand) Password() string { return c.password }

// FullName returns the user's display name.
func (c RegisterClientCommand) FullName() string { return c.fullName }

// Phone returns the optional contact phone.
func (c RegisterClientCommand) Phone() string { return c.phone }

// CompanyName returns the optional company name.
func (c RegisterClientCommand) CompanyName() string { return c.companyName }
