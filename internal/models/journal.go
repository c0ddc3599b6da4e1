package models

import (
	"time"
)

type JournalEntry struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Entry     string    `json:"entry" db:"entry"`
	Sentiment float64   `json:"sentiment" db:"sentiment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewJournalEntry is the insert payload; id and created_at are assigned by the store.
type NewJournalEntry struct {
	UserID    string  `json:"user_id"`
	Entry     string  `json:"entry"`
	Sentiment float64 `json:"sentiment"`
}

type MoodDay struct {
	Day     string  `json:"day"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type Insights struct {
	UserID   string    `json:"user_id"`
	Total    int       `json:"total"`
	Average  float64   `json:"average"`
	Positive int       `json:"positive"`
	Negative int       `json:"negative"`
	Neutral  int       `json:"neutral"`
	Trend    []MoodDay `json:"trend"`
}
