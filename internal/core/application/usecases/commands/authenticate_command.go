package commands

import (
	"errors"

	"cargotrack/internal/pkg/errs"
	"cargotrack/internal/pkg/guard"
)

var ErrAuthenticateCommandIsNotConstructed = errors.New(
	"AuthenticateCommand must be created via NewAuthenticateCommand constructor",
)

// AuthenticateCommand represents a sign-in request.
type AuthenticateCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateCommand creates a sign-in command.
func NewAuthenticateCommand(email, password string) (AuthenticateCommand, error) {
	if email == "" {
		return AuthenticateCommand{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return AuthenticateCommand{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateCommand{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AuthenticateCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateCommandIsNotConstructed)
}

// Email returns the login email.
func (c AuthenticateCommand) Email() string { return c.email }

// Password returns the plaintext password to verify.
func (c AuthenticateCommand) Password() string { return c.password }
