package commands

import (
	"context"
	"time"

	"cargotrack/internal/core/ports"
)

// ChangeOrderStatusCommandHandler moves an order through its lifecycle.
//
// The status change and the appended history row are committed in the same
// transaction; a failed transition leaves both untouched. After a successful
// commit the tracking cache entry for the order is invalidated so public
// lookups see the new status immediately.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      ports.TrackingCache
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
// cache may be nil when tracking caching is disabled.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory,
	cache ports.TrackingCache) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle applies the requested status transition.
// Returns order.ErrInvalidTransition (wrapped) when the state machine forbids
// the move.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context,
	cmd ChangeOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	actorID := cmd.ActorID()
	if err = o.TransitionTo(cmd.NewStatus(), cmd.Location(), cmd.Notes(), &actorID, time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.cache != nil {
		h.cache.Invalidate(ctx, o.TrackingCode().String())
	}

	return nil
}
