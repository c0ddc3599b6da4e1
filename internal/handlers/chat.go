package handlers

import (
	"net/http"

	"github.com/rs/zerolog"
)

// ChatHandler serves the counselor endpoints. Conversation history lives on
// the client and arrives with every chat request.
type ChatHandler struct {
	counselor CounselorService
	log       zerolog.Logger
}

func NewChatHandler(counselor CounselorService, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{counselor: counselor, log: log}
}

func (ch *ChatHandler) HandleCounselor(w http.ResponseWriter, r *http.Request) {
	op := "handlers.ChatHandler.HandleCounselor"

	var req counselorRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeValidationError(w, ch.log, err)
		return
	}

	analysis, err := ch.counselor.Analyze(r.Context(), *req.UserID)
	if err != nil {
		writeFailure(w, r, ch.log, op, "Error generating counseling: ", err)
		return
	}

	writeJSON(w, ch.log, http.StatusOK, map[string]string{"analysis": analysis})
}

func (ch *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	op := "handlers.ChatHandler.HandleChat"

	var req chatRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeValidationError(w, ch.log, err)
		return
	}

	response, err := ch.counselor.Chat(r.Context(), req.turn())
	if err != nil {
		writeFailure(w, r, ch.log, op, "Error generating response: ", err)
		return
	}

	writeJSON(w, ch.log, http.StatusOK, map[string]string{"response": response})
}
