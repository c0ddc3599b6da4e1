package usecases

import (
	"context"

	"journal_backend/internal/ai"
	"journal_backend/internal/models"
)

const (
	PromptInstruction = "Generate a creative journaling prompt for self-reflection:"
	promptMaxTokens   = 50
	promptTemperature = 0.7
)

type PromptGenerator struct {
	aiClient ai.Completer
}

func NewPromptGenerator(aiClient ai.Completer) *PromptGenerator {
	return &PromptGenerator{aiClient: aiClient}
}

// Generate asks the model for one journaling prompt. There is no retry or
// caching, so bursts of calls go straight to the provider.
func (g *PromptGenerator) Generate(ctx context.Context) (string, error) {
	op := "usecases.PromptGenerator.Generate"

	response, err := g.aiClient.Complete(ctx, ai.CompletionRequest{
		Messages:    []ai.Message{{Role: ai.RoleUser, Content: PromptInstruction}},
		MaxTokens:   promptMaxTokens,
		Temperature: promptTemperature,
	})
	if err != nil {
		return "", models.GenerationError(op, err)
	}

	prompt, err := ParsePrompt(response)
	if err != nil {
		return "", models.GenerationError(op, err)
	}
	return prompt, nil
}
