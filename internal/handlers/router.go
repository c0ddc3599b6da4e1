package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type Services struct {
	Journal   JournalService
	Insights  InsightsService
	Prompts   PromptService
	Counselor CounselorService
}

// NewRouter registers every endpoint and wraps the router in the middleware
// chain. The chain sits outside mux so preflight and 404/405 responses get
// CORS headers too.
func NewRouter(svc Services, allowedOrigins []string, log zerolog.Logger) http.Handler {
	journalHandler := NewJournalHandler(svc.Journal, svc.Insights, log)
	promptHandler := NewPromptHandler(svc.Prompts, log)
	chatHandler := NewChatHandler(svc.Counselor, log)

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, log, http.StatusNotFound, "Not Found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, log, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	router.Use(Metrics)

	router.HandleFunc("/", handleRoot(log)).Methods(http.MethodGet)
	router.HandleFunc("/journal", journalHandler.HandleCreateEntry).Methods(http.MethodPost)
	router.HandleFunc("/journals/{user_id}", journalHandler.HandleListEntries).Methods(http.MethodGet)
	router.HandleFunc("/journals/{user_id}/insights", journalHandler.HandleInsights).Methods(http.MethodGet)
	router.HandleFunc("/prompt", promptHandler.HandlePrompt).Methods(http.MethodGet)
	router.HandleFunc("/counselor", chatHandler.HandleCounselor).Methods(http.MethodPost)
	router.HandleFunc("/chat", chatHandler.HandleChat).Methods(http.MethodPost)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return Chain(
		RequestID,
		AccessLog(log),
		Recovery(log),
		CORS(allowedOrigins),
	)(router)
}

func handleRoot(log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log, http.StatusOK, messageResponse{Message: "API is running"})
	}
}
