package usecases

import (
	"context"

	"journal_backend/internal/models"
	"journal_backend/internal/sentiment"
	"journal_backend/internal/storage"
)

type Scorer interface {
	Score(text string) sentiment.Result
}

type Journal struct {
	store  storage.EntryStore
	scorer Scorer
}

func NewJournal(store storage.EntryStore, scorer Scorer) *Journal {
	return &Journal{
		store:  store,
		scorer: scorer,
	}
}

// Create scores the text and stores it for the user.
func (j *Journal) Create(ctx context.Context, userID, text string) (models.JournalEntry, sentiment.Result, error) {
	result := j.scorer.Score(text)

	saved, err := j.store.Save(ctx, models.NewJournalEntry{
		UserID:    userID,
		Entry:     text,
		Sentiment: result.Compound,
	})
	if err != nil {
		return models.JournalEntry{}, sentiment.Result{}, err
	}

	return saved, result, nil
}

func (j *Journal) List(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	return j.store.List(ctx, userID)
}
