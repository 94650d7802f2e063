package order

import (
	"errors"
	"time"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/guard"
)

// ErrHistoryEntryIsNotConstructed is returned when validating a zero-value HistoryEntry.
var ErrHistoryEntryIsNotConstructed = errors.New(
	"HistoryEntry must be created via NewHistoryEntry or RestoreHistoryEntry")

// HistoryEntry is one row of the order's append-only status audit trail.
// Entries are created exactly once per status transition (plus the initial
// pending entry at order creation) and are never mutated or deleted.
type HistoryEntry struct {
	status    Status
	location  string
	notes     string
	createdBy *kernel.UUID
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewHistoryEntry records a status change. createdBy identifies the acting
// principal and is nil for system-generated entries.
func NewHistoryEntry(status Status, location, notes string, createdBy *kernel.UUID, createdAt time.Time) (HistoryEntry, error) {
	if err := status.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if createdBy != nil {
		if err := createdBy.Validate(); err != nil {
			return HistoryEntry{}, err
		}
	}

	return HistoryEntry{
		status:    status,
		location:  location,
		notes:     notes,
		createdBy: createdBy,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreHistoryEntry rebuilds an entry from persistence.
func RestoreHistoryEntry(status Status, location, notes string, createdBy *kernel.UUID, createdAt time.Time) (HistoryEntry, error) {
	return NewHistoryEntry(status, location, notes, createdBy, createdAt)
}

// Validate ensures the entry was created through a constructor.
func (h HistoryEntry) Validate() error {
	return h.guard.Validate(ErrHistoryEntryIsNotConstructed)
}

// Status returns the status the order entered with this entry.
func (h HistoryEntry) Status() Status { return h.status }

// Location returns the reported location at the time of the transition.
func (h HistoryEntry) Location() string { return h.location }

// Notes returns the free-form note attached to the transition.
func (h HistoryEntry) Notes() string { return h.notes }

// CreatedBy returns the acting principal's ID, or nil for system entries.
func (h HistoryEntry) CreatedBy() *kernel.UUID { return h.createdBy }

// CreatedAt returns when the transition happened.
func (h HistoryEntry) CreatedAt() time.Time { return h.createdAt }
