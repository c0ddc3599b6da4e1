package usecases

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"journal_backend/internal/ai"
	"journal_backend/internal/models"
	"journal_backend/internal/storage"
)

const (
	NoEntriesMessage = "No journal entries found for this user."

	CounselorPersona = "You are a helpful AI counselor."
	ChatPersona      = "You are an empathetic AI counselor who provides thoughtful psychological insights " +
		"and practical coping strategies based on a user's journal entries and ongoing conversation. " +
		"Keep your responses helpful, supportive, and concise (around 2-3 paragraphs)."

	analysisPreamble = "Based on the following journal entries, provide personalized psychological insights and self-care recommendations:\n\n"

	analyzeMaxTokens = 200
	chatMaxTokens    = 250
	chatTemperature  = 0.7
)

type Counselor struct {
	store    storage.EntryStore
	aiClient ai.Completer
}

func NewCounselor(store storage.EntryStore, aiClient ai.Completer) *Counselor {
	return &Counselor{
		store:    store,
		aiClient: aiClient,
	}
}

// Analyze summarises every entry of the user into one counseling answer.
// Users without entries get NoEntriesMessage and the model is not called.
func (c *Counselor) Analyze(ctx context.Context, userID string) (string, error) {
	op := "usecases.Counselor.Analyze"

	entries, err := c.store.List(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return NoEntriesMessage, nil
	}

	response, err := c.aiClient.Complete(ctx, ai.CompletionRequest{
		Messages: []ai.Message{
			{Role: ai.RoleSystem, Content: CounselorPersona},
			{Role: ai.RoleUser, Content: BuildAnalysisPrompt(entries)},
		},
		MaxTokens:   analyzeMaxTokens,
		Temperature: chatTemperature,
	})
	if err != nil {
		return "", models.GenerationError(op, err)
	}

	return strings.TrimSpace(response), nil
}

// Chat answers one user message. History is whatever the caller passes in
// turn.Context; nothing is kept between calls.
func (c *Counselor) Chat(ctx context.Context, turn models.ChatTurn) (string, error) {
	op := "usecases.Counselor.Chat"

	response, err := c.aiClient.Complete(ctx, ai.CompletionRequest{
		Messages:    BuildChatMessages(turn),
		MaxTokens:   chatMaxTokens,
		Temperature: chatTemperature,
	})
	if err != nil {
		return "", models.GenerationError(op, err)
	}

	return strings.TrimSpace(response), nil
}

// BuildAnalysisPrompt renders entries in the order given, one per line.
func BuildAnalysisPrompt(entries []models.JournalEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("- %s (sentiment: %s)", e.Entry, formatScore(e.Sentiment)))
	}
	return analysisPreamble + strings.Join(lines, "\n")
}

// formatScore renders a score the way the prompt has always shown it:
// shortest round-trip digits, a trailing ".0" for whole numbers, and
// exponent form below 1e-4.
func formatScore(v float64) string {
	if abs := math.Abs(v); abs != 0 && abs < 1e-4 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// BuildChatMessages orders the conversation as persona, prior analysis,
// conversation context, user message. Empty optional parts are skipped.
func BuildChatMessages(turn models.ChatTurn) []ai.Message {
	messages := []ai.Message{
		{Role: ai.RoleSystem, Content: ChatPersona},
	}

	if turn.InitialAnalysis != "" {
		messages = append(messages, ai.Message{
			Role:    ai.RoleSystem,
			Content: "Initial analysis of the user's journal entries: " + turn.InitialAnalysis,
		})
	}

	if turn.Context != "" {
		messages = append(messages, ai.Message{
			Role:    ai.RoleSystem,
			Content: "Recent conversation context:\n" + turn.Context,
		})
	}

	return append(messages, ai.Message{Role: ai.RoleUser, Content: turn.Message})
}
