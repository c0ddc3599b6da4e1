package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"journal_backend/internal/models"
)

// Querier is the subset of *pgxpool.Pool used by JournalStorage.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

var journalColumns = []string{"id", "user_id", "entry", "sentiment", "created_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type JournalStorage struct {
	db    Querier
	table string
}

func NewJournalStorage(db Querier, table string) *JournalStorage {
	if table == "" {
		table = "journal_entries"
	}
	return &JournalStorage{
		db:    db,
		table: table,
	}
}

func (db_js *JournalStorage) Save(ctx context.Context, entry models.NewJournalEntry) (models.JournalEntry, error) {
	op := "storage.JournalStorage.Save"

	sql_query, args, err := psql.
		Insert(db_js.table).
		Columns("user_id", "entry", "sentiment").
		Values(entry.UserID, entry.Entry, entry.Sentiment).
		Suffix("RETURNING id, user_id, entry, sentiment, created_at").
		ToSql()
	if err != nil {
		return models.JournalEntry{}, models.StorageError(op, fmt.Errorf("build insert: %w", err))
	}

	var saved models.JournalEntry
	err = db_js.db.QueryRow(ctx, sql_query, args...).Scan(
		&saved.ID,
		&saved.UserID,
		&saved.Entry,
		&saved.Sentiment,
		&saved.CreatedAt,
	)
	if err != nil {
		return models.JournalEntry{}, models.StorageError(op, err)
	}

	return saved, nil
}

func (db_js *JournalStorage) List(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	op := "storage.JournalStorage.List"

	sql_query, args, err := psql.
		Select(journalColumns...).
		From(db_js.table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, models.StorageError(op, fmt.Errorf("build select: %w", err))
	}

	rows, err := db_js.db.Query(ctx, sql_query, args...)
	if err != nil {
		return nil, models.StorageError(op, err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		entry := models.JournalEntry{}

		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Entry,
			&entry.Sentiment,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, models.StorageError(op, fmt.Errorf("scan: %w", err))
		}

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, models.StorageError(op, err)
	}

	return entries, nil
}

func (db_js *JournalStorage) Ping(ctx context.Context) error {
	if err := db_js.db.Ping(ctx); err != nil {
		return models.StorageError("storage.JournalStorage.Ping", err)
	}
	return nil
}
