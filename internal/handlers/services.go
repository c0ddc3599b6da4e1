package handlers

import (
	"context"

	"journal_backend/internal/models"
	"journal_backend/internal/sentiment"
)

type JournalService interface {
	Create(ctx context.Context, userID, text string) (models.JournalEntry, sentiment.Result, error)
	List(ctx context.Context, userID string) ([]models.JournalEntry, error)
}

type InsightsService interface {
	Build(ctx context.Context, userID string) (models.Insights, error)
}

type PromptService interface {
	Generate(ctx context.Context) (string, error)
}

type CounselorService interface {
	Analyze(ctx context.Context, userID string) (string, error)
	Chat(ctx context.Context, turn models.ChatTurn) (string, error)
}
