package commands

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"cargotrack/internal/core/domain/model/account"
	"cargotrack/internal/pkg/errs"
)

// ErrInvalidCredentials is returned on any sign-in failure: unknown email,
// wrong password, or a deactivated profile. The cases are deliberately
// indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// TokenIssuer signs access tokens for authenticated profiles.
type TokenIssuer interface {
	Issue(profileID, email, role string) (string, error)
}

// AuthenticateResult carries the signed token and the profile it identifies.
type AuthenticateResult struct {
	Token   string
	Profile *account.Profile
}

// AuthenticateCommandHandler verifies credentials against the stored bcrypt
// hash and issues a signed access token.
type AuthenticateCommandHandler struct {
	uowFactory ProfileUoWFactory
	tokens     TokenIssuer
}

// NewAuthenticateCommandHandler creates a handler for sign-in.
func NewAuthenticateCommandHandler(uowFactory ProfileUoWFactory,
	tokens TokenIssuer) AuthenticateCommandHandler {
	return AuthenticateCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
	}
}

// Handle verifies the credentials and returns a signed token.
// Fails with ErrInvalidCredentials on any mismatch.
func (h *AuthenticateCommandHandler) Handle(ctx context.Context,
	cmd AuthenticateCommand) (AuthenticateResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuthenticateResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AuthenticateResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	email := strings.ToLower(strings.TrimSpace(cmd.Email()))
	profile, err := uow.ProfileRepository().GetByEmail(ctx, email)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return AuthenticateResult{}, ErrInvalidCredentials
	case err != nil:
		return AuthenticateResult{}, err
	}

	if !profile.IsActive() {
		return AuthenticateResult{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword(
		[]byte(profile.PasswordHash()), []byte(cmd.Password())) != nil {
		return AuthenticateResult{}, ErrInvalidCredentials
	}

	token, err := h.tokens.Issue(profile.ID().String(), profile.Email(), profile.Role().String())
	if err != nil {
		return AuthenticateResult{}, err
	}

	return AuthenticateResult{Token: token, Profile: profile}, nil
}
