package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"journal_backend/internal/models"
)

// SupabaseStorage talks to the PostgREST endpoint exposed by Supabase.
type SupabaseStorage struct {
	client *resty.Client
	table  string
}

func NewSupabaseStorage(baseURL, apiKey, table string) *SupabaseStorage {
	if table == "" {
		table = "journal_entries"
	}

	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")+"/rest/v1").
		SetHeader("apikey", apiKey).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)

	return &SupabaseStorage{client: c, table: table}
}

// postgrestError is the error body returned by PostgREST.
type postgrestError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (s *SupabaseStorage) Save(ctx context.Context, entry models.NewJournalEntry) (models.JournalEntry, error) {
	op := "storage.SupabaseStorage.Save"

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetBody(&entry).
		Post("/" + s.table)
	if err != nil {
		return models.JournalEntry{}, models.StorageError(op, fmt.Errorf("supabase request: %w", err))
	}
	if resp.IsError() {
		return models.JournalEntry{}, models.StorageError(op, responseError(resp))
	}

	var rows []models.JournalEntry
	if err := json.Unmarshal(resp.Body(), &rows); err != nil {
		return models.JournalEntry{}, models.StorageError(op, fmt.Errorf("decode response: %w", err))
	}
	if len(rows) == 0 {
		return models.JournalEntry{}, models.StorageError(op, fmt.Errorf("insert returned no rows"))
	}

	return rows[0], nil
}

func (s *SupabaseStorage) List(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	op := "storage.SupabaseStorage.List"

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"select":  "*",
			"user_id": "eq." + userID,
			"order":   "created_at.desc,id.desc",
		}).
		Get("/" + s.table)
	if err != nil {
		return nil, models.StorageError(op, fmt.Errorf("supabase request: %w", err))
	}
	if resp.IsError() {
		return nil, models.StorageError(op, responseError(resp))
	}

	entries := []models.JournalEntry{}
	if err := json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, models.StorageError(op, fmt.Errorf("decode response: %w", err))
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}

	return entries, nil
}

// Ping issues a HEAD on the table; any non-5xx answer means the gateway is reachable.
func (s *SupabaseStorage) Ping(ctx context.Context) error {
	op := "storage.SupabaseStorage.Ping"

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("limit", "1").
		Head("/" + s.table)
	if err != nil {
		return models.StorageError(op, err)
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return models.StorageError(op, fmt.Errorf("supabase status %d", resp.StatusCode()))
	}
	return nil
}

func responseError(resp *resty.Response) error {
	var pe postgrestError
	if err := json.Unmarshal(resp.Body(), &pe); err == nil && pe.Message != "" {
		if pe.Code != "" {
			return fmt.Errorf("supabase status %d (%s): %s", resp.StatusCode(), pe.Code, pe.Message)
		}
		return fmt.Errorf("supabase status %d: %s", resp.StatusCode(), pe.Message)
	}
	return fmt.Errorf("supabase status %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
}
