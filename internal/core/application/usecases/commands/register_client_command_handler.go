package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"cargotrack/internal/core/domain/model/account"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when the email is taken.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// RegisterClientCommandHandler creates client profiles with bcrypt-hashed
// passwords. Registration through the public API always produces the client
// role; staff profiles are provisioned separately.
type RegisterClientCommandHandler struct {
	uowFactory ProfileUoWFactory
}

// NewRegisterClientCommandHandler creates a handler for client sign-up.
func NewRegisterClientCommandHandler(uowFactory ProfileUoWFactory) RegisterClientCommandHandler {
	return RegisterClientCommandHandler{uowFactory: uowFactory}
}

// Handle hashes the password, checks email uniqueness, and persists the new
// profile. Returns the generated profile ID.
func (h *RegisterClientCommandHandler) Handle(ctx context.Context,
	cmd RegisterClientCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profileRepo := uow.ProfileRepository()

	email := strings.ToLower(strings.TrimSpace(cmd.Email()))
	_, err = profileRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return kernel.UUID{}, ErrEmailAlreadyRegistered
	case errors.Is(err, errs.ErrObjectNotFound):
		// email is free
	default:
		return kernel.UUID{}, err
	}

	profile, err := account.NewProfile(account.NewProfileParams{
		ID:           kernel.NewUUID(),
		Email:        email,
		FullName:     cmd.FullName(),
		Phone:        cmd.Phone(),
		CompanyName:  cmd.CompanyName(),
		Role:         account.RoleClient,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = profileRepo.Add(ctx, profile); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return profile.ID(), nil
}
