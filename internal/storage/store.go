// Package storage persists journal entries. Two backends implement EntryStore:
// the Supabase REST gateway and a direct PostgreSQL pool.
package storage

import (
	"context"

	"journal_backend/internal/models"
)

// EntryStore inserts and lists journal entries. Implementations wrap every
// remote failure with models.ErrStorage.
type EntryStore interface {
	Save(ctx context.Context, entry models.NewJournalEntry) (models.JournalEntry, error)
	// List returns the user's entries newest first, or an empty slice.
	List(ctx context.Context, userID string) ([]models.JournalEntry, error)
	Ping(ctx context.Context) error
}
