package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/polyglot-api/internal/domain"
	"github.com/phrazzld/polyglot-api/internal/platform/logger"
	"github.com/phrazzld/polyglot-api/internal/store"
)

const historyEntity = "history_entry"

// Fixed-width so that lexical order matches chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// HistoryStore implements store.HistoryStore on SQLite.
type HistoryStore struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ store.HistoryStore = (*HistoryStore)(nil)

// NewHistoryStore wraps an open, migrated database. If logger is nil, the
// default logger is used.
func NewHistoryStore(db *sql.DB, log *slog.Logger) *HistoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &HistoryStore{
		db:     db,
		logger: log.With(slog.String("component", "history_store")),
	}
}

func (s *HistoryStore) log(ctx context.Context) *slog.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l.With(slog.String("component", "history_store"))
	}
	return s.logger
}

// Create implements store.HistoryStore.
func (s *HistoryStore) Create(ctx context.Context, entry *domain.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		s.log(ctx).Warn("history entry validation failed", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO translation_history (id, kind, source_text, source_lang, target_lang, translation, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID.String(),
		string(entry.Kind),
		entry.SourceText,
		entry.SourceLang,
		entry.TargetLang,
		entry.Translation,
		entry.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		s.log(ctx).Error("failed to insert history entry",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()))
		return store.NewStoreError(historyEntity, "create", "insert failed", mapError(err))
	}

	s.log(ctx).Debug("history entry saved", slog.String("entry_id", entry.ID.String()))
	return nil
}

// GetByID implements store.HistoryStore.
func (s *HistoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.HistoryEntry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, kind, source_text, source_lang, target_lang, translation, created_at
		FROM translation_history WHERE id = ?`, id.String())

	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrHistoryEntryNotFound
	}
	if err != nil {
		return nil, store.NewStoreError(historyEntity, "get", "query failed", mapError(err))
	}
	return entry, nil
}

// List implements store.HistoryStore.
func (s *HistoryStore) List(ctx context.Context, limit int) ([]*domain.HistoryEntry, error) {
	if limit <= 0 {
		return []*domain.HistoryEntry{}, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, source_text, source_lang, target_lang, translation, created_at
		FROM translation_history
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, store.NewStoreError(historyEntity, "list", "query failed", mapError(err))
	}
	defer func() { _ = rows.Close() }()

	entries := make([]*domain.HistoryEntry, 0, limit)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, store.NewStoreError(historyEntity, "list", "scan failed", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError(historyEntity, "list", "iteration failed", mapError(err))
	}
	return entries, nil
}

// Stats implements store.HistoryStore. The counts are read in one
// transaction so they describe the same snapshot.
func (s *HistoryStore) Stats(ctx context.Context) (domain.HistoryStats, error) {
	var stats domain.HistoryStats

	err := store.RunInTransaction(ctx, s.db,
		func(ctx context.Context, tx *sql.Tx) error {
			var err error
			if stats, err = countTotals(ctx, tx); err != nil {
				return err
			}
			stats.Languages, err = targetLanguages(ctx, tx)
			return err
		})
	if err != nil {
		return domain.HistoryStats{}, store.NewStoreError(historyEntity, "stats", "aggregation failed", mapError(err))
	}
	return stats, nil
}

func countTotals(ctx context.Context, q store.DBTX) (domain.HistoryStats, error) {
	var stats domain.HistoryStats
	err := q.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN kind = 'voice' THEN 1 ELSE 0 END), 0)
		FROM translation_history`).Scan(&stats.Total, &stats.Voice)
	return stats, err
}

// targetLanguages returns the distinct target languages, sorted.
func targetLanguages(ctx context.Context, q store.DBTX) ([]string, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT DISTINCT target_lang FROM translation_history ORDER BY target_lang`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	langs := []string{}
	for rows.Next() {
		var lang string
		if err := rows.Scan(&lang); err != nil {
			return nil, err
		}
		langs = append(langs, lang)
	}
	return langs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*domain.HistoryEntry, error) {
	var (
		entry     domain.HistoryEntry
		id        string
		kind      string
		createdAt string
	)
	if err := row.Scan(&id, &kind, &entry.SourceText, &entry.SourceLang,
		&entry.TargetLang, &entry.Translation, &createdAt); err != nil {
		return nil, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: bad id %q: %w", store.ErrInvalidEntity, id, err)
	}
	ts, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: bad created_at %q: %w", store.ErrInvalidEntity, createdAt, err)
	}

	entry.ID = parsedID
	entry.Kind = domain.HistoryKind(kind)
	entry.CreatedAt = ts
	return &entry, nil
}
