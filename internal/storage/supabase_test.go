package storage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal_backend/internal/models"
)

func TestSupabaseStorage_Save(t *testing.T) {
	var gotBody models.NewJournalEntry
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/journal_entries", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":11,"user_id":"u1","entry":"walked the dog","sentiment":0.34,"created_at":"2025-03-01T10:00:00.123456+00:00"}]`))
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL+"/", "anon-key", "")
	got, err := s.Save(context.Background(), models.NewJournalEntry{UserID: "u1", Entry: "walked the dog", Sentiment: 0.34})
	require.NoError(t, err)

	assert.Equal(t, models.NewJournalEntry{UserID: "u1", Entry: "walked the dog", Sentiment: 0.34}, gotBody)
	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, "walked the dog", got.Entry)
	assert.Equal(t, 0.34, got.Sentiment)
	assert.True(t, got.CreatedAt.Equal(time.Date(2025, 3, 1, 10, 0, 0, 123456000, time.UTC)))
}

func TestSupabaseStorage_SaveError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"PGRST301","message":"JWT expired","details":null,"hint":null}`))
	}))
	defer srv.Close()

	_, err := NewSupabaseStorage(srv.URL, "expired", "").Save(context.Background(), models.NewJournalEntry{UserID: "u1", Entry: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrStorage)
	assert.Contains(t, err.Error(), "JWT expired")
	assert.Contains(t, err.Error(), "401")
}

func TestSupabaseStorage_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/journal_entries", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "*", q.Get("select"))
		assert.Equal(t, "created_at.desc,id.desc", q.Get("order"))

		w.Header().Set("Content-Type", "application/json")
		if q.Get("user_id") != "eq.u1" {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`[
			{"id":3,"user_id":"u1","entry":"third","sentiment":0.5,"created_at":"2025-03-03T00:00:00+00:00"},
			{"id":2,"user_id":"u1","entry":"second","sentiment":-0.2,"created_at":"2025-03-02T00:00:00+00:00"},
			{"id":1,"user_id":"u1","entry":"first","sentiment":0,"created_at":"2025-03-01T00:00:00+00:00"}
		]`))
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL, "anon-key", "journal_entries")

	got, err := s.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{got[0].Entry, got[1].Entry, got[2].Entry})

	empty, err := s.List(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestSupabaseStorage_ListServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	_, err := NewSupabaseStorage(srv.URL, "k", "").List(context.Background(), "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrStorage)
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestSupabaseStorage_Ping(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(int(status.Load()))
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL, "k", "")
	assert.NoError(t, s.Ping(context.Background()))

	status.Store(http.StatusServiceUnavailable)
	assert.ErrorIs(t, s.Ping(context.Background()), models.ErrStorage)
}
