package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"journal_backend/internal/config"
)

// New builds the EntryStore selected by cfg.StoreBackend without contacting
// it; use WaitUntilReady to probe reachability. The returned close function
// releases the backend's resources and is never nil.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (EntryStore, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendSupabase:
		log.Info().Str("backend", cfg.StoreBackend).Str("table", cfg.JournalTable).Msg("using supabase entry store")
		return NewSupabaseStorage(cfg.SupabaseURL, cfg.SupabaseKey, cfg.JournalTable), func() {}, nil

	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, func() {}, fmt.Errorf("unable to configure db pool: %w", err)
		}
		log.Info().Str("backend", cfg.StoreBackend).Str("table", cfg.JournalTable).Msg("using postgres entry store")
		return NewJournalStorage(pool, cfg.JournalTable), pool.Close, nil

	default:
		return nil, func() {}, fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
	}
}

// NewPool opens a pgx pool and pings it, for callers that need a live connection up front.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to db: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping db: %w", err)
	}

	return pool, nil
}
