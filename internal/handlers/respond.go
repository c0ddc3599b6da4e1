package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, log zerolog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, log zerolog.Logger, status int, detail string) {
	writeJSON(w, log, status, errorResponse{Detail: detail})
}

// writeFailure logs a failed use case and answers 500 with prefix followed by
// the underlying error text.
func writeFailure(w http.ResponseWriter, r *http.Request, log zerolog.Logger, op, prefix string, err error) {
	log.Error().
		Err(err).
		Str("op", op).
		Str("request_id", RequestIDFromContext(r.Context())).
		Msg("request failed")
	writeError(w, log, http.StatusInternalServerError, prefix+err.Error())
}
