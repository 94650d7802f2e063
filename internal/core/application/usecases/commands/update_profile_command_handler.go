package commands

import "context"

// UpdateProfileCommandHandler applies contact-detail changes to a profile.
type UpdateProfileCommandHandler struct {
	uowFactory ProfileUoWFactory
}

// NewUpdateProfileCommandHandler creates a handler for profile updates.
func NewUpdateProfileCommandHandler(uowFactory ProfileUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{uowFactory: uowFactory}
}

// Handle loads the profile, replaces its contact details, and persists it.
func (h *UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profileRepo := uow.ProfileRepository()
	profile, err := profileRepo.Get(ctx, cmd.ProfileID())
	if err != nil {
		return err
	}

	if err = profile.UpdateContact(cmd.FullName(), cmd.Phone(), cmd.CompanyName()); err != nil {
		return err
	}

	if err = profileRepo.Update(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
