package handlers

import (
	"net/http"

	"github.com/rs/zerolog"
)

type PromptHandler struct {
	prompts PromptService
	log     zerolog.Logger
}

func NewPromptHandler(prompts PromptService, log zerolog.Logger) *PromptHandler {
	return &PromptHandler{prompts: prompts, log: log}
}

func (ph *PromptHandler) HandlePrompt(w http.ResponseWriter, r *http.Request) {
	op := "handlers.PromptHandler.HandlePrompt"

	prompt, err := ph.prompts.Generate(r.Context())
	if err != nil {
		writeFailure(w, r, ph.log, op, "Error generating prompt: ", err)
		return
	}

	writeJSON(w, ph.log, http.StatusOK, map[string]string{"prompt": prompt})
}
