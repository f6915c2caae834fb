package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/polyglot-api/internal/domain"
)

// HistoryStore persists completed translations.
type HistoryStore interface {
	// Create saves a new entry. Returns a wrapped ErrInvalidEntity when the
	// entry fails domain validation.
	Create(ctx context.Context, entry *domain.HistoryEntry) error

	// GetByID retrieves one entry. Returns ErrHistoryEntryNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.HistoryEntry, error)

	// List returns the most recent entries, newest first. An empty store
	// yields an empty slice.
	List(ctx context.Context, limit int) ([]*domain.HistoryEntry, error)

	// Stats aggregates the whole history.
	Stats(ctx context.Context) (domain.HistoryStats, error)
}
