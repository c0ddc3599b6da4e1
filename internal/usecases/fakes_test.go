package usecases

import (
	"context"
	"sync"

	"journal_backend/internal/ai"
	"journal_backend/internal/models"
)

type fakeStore struct {
	mu      sync.Mutex
	entries []models.JournalEntry
	saveErr error
	listErr error
	lists   int
}

func (s *fakeStore) Save(_ context.Context, e models.NewJournalEntry) (models.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return models.JournalEntry{}, s.saveErr
	}
	saved := models.JournalEntry{ID: int64(len(s.entries) + 1), UserID: e.UserID, Entry: e.Entry, Sentiment: e.Sentiment}
	s.entries = append(s.entries, saved)
	return saved, nil
}

func (s *fakeStore) List(_ context.Context, userID string) ([]models.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists++
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := []models.JournalEntry{}
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].UserID == userID {
			out = append(out, s.entries[i])
		}
	}
	return out, nil
}

func (s *fakeStore) Ping(context.Context) error { return nil }

type fakeCompleter struct {
	reply    string
	err      error
	requests []ai.CompletionRequest
}

func (c *fakeCompleter) Complete(_ context.Context, req ai.CompletionRequest) (string, error) {
	c.requests = append(c.requests, req)
	return c.reply, c.err
}
