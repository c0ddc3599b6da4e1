package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"journal_backend/internal/models"
)

type JournalHandler struct {
	journal  JournalService
	insights InsightsService
	log      zerolog.Logger
}

func NewJournalHandler(journal JournalService, insights InsightsService, log zerolog.Logger) *JournalHandler {
	return &JournalHandler{
		journal:  journal,
		insights: insights,
		log:      log,
	}
}

type createEntryResponse struct {
	Message          string  `json:"message"`
	Sentiment        float64 `json:"sentiment"`
	SentimentSummary string  `json:"sentiment_summary"`
}

func (jh *JournalHandler) HandleCreateEntry(w http.ResponseWriter, r *http.Request) {
	op := "handlers.JournalHandler.HandleCreateEntry"

	var req createEntryRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeValidationError(w, jh.log, err)
		return
	}

	_, result, err := jh.journal.Create(r.Context(), *req.UserID, *req.Entry)
	if err != nil {
		writeFailure(w, r, jh.log, op, "Error saving journal entry: ", err)
		return
	}

	writeJSON(w, jh.log, http.StatusOK, createEntryResponse{
		Message:          "Journal entry saved!",
		Sentiment:        result.Compound,
		SentimentSummary: result.Label.Summary(),
	})
}

func (jh *JournalHandler) HandleListEntries(w http.ResponseWriter, r *http.Request) {
	op := "handlers.JournalHandler.HandleListEntries"

	entries, err := jh.journal.List(r.Context(), mux.Vars(r)["user_id"])
	if err != nil {
		writeFailure(w, r, jh.log, op, "Error fetching journals: ", err)
		return
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}

	writeJSON(w, jh.log, http.StatusOK, entries)
}

func (jh *JournalHandler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	op := "handlers.JournalHandler.HandleInsights"

	insights, err := jh.insights.Build(r.Context(), mux.Vars(r)["user_id"])
	if err != nil {
		writeFailure(w, r, jh.log, op, "Error building insights: ", err)
		return
	}

	writeJSON(w, jh.log, http.StatusOK, insights)
}

func writeValidationError(w http.ResponseWriter, log zerolog.Logger, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, models.ErrValidation) {
		status = http.StatusUnprocessableEntity
	}
	writeError(w, log, status, err.Error())
}
