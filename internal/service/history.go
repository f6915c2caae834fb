package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/polyglot-api/internal/domain"
	"github.com/phrazzld/polyglot-api/internal/redact"
	"github.com/phrazzld/polyglot-api/internal/store"
)

// History listing bounds.
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// HistoryService records translations and reports progress.
type HistoryService interface {
	HistoryRecorder

	// List returns the most recent entries. limit is clamped to
	// [1, MaxHistoryLimit]; zero or negative means DefaultHistoryLimit.
	List(ctx context.Context, limit int) ([]*domain.HistoryEntry, error)

	// Achievements summarises the history and the badges it unlocks.
	Achievements(ctx context.Context) (domain.AchievementSummary, error)
}

type historyService struct {
	store  store.HistoryStore
	logger *slog.Logger
}

// NewHistoryService creates a HistoryService. A nil store disables history:
// Record becomes a no-op and reads return ErrHistoryDisabled.
func NewHistoryService(historyStore store.HistoryStore, log *slog.Logger) HistoryService {
	if log == nil {
		log = slog.Default()
	}
	return &historyService{store: historyStore, logger: log.With("component", "history_service")}
}

func (s *historyService) Record(
	ctx context.Context,
	kind domain.HistoryKind,
	sourceText, sourceLang, targetLang, translation string,
) error {
	if s.store == nil {
		return nil
	}
	entry, err := domain.NewHistoryEntry(kind, sourceText, sourceLang, targetLang, translation)
	if err != nil {
		return newServiceError("history", "record", "invalid entry", err)
	}
	if err := s.store.Create(ctx, entry); err != nil {
		return newServiceError("history", "record", "failed to save entry", err)
	}
	return nil
}

// ClampHistoryLimit applies the listing bounds.
func ClampHistoryLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	default:
		return limit
	}
}

func (s *historyService) List(ctx context.Context, limit int) ([]*domain.HistoryEntry, error) {
	if s.store == nil {
		return nil, ErrHistoryDisabled
	}
	entries, err := s.store.List(ctx, ClampHistoryLimit(limit))
	if err != nil {
		s.logger.Error("failed to list history", "error", redact.Error(err))
		return nil, newServiceError("history", "list", "failed to load entries", err)
	}
	return entries, nil
}

func (s *historyService) Achievements(ctx context.Context) (domain.AchievementSummary, error) {
	if s.store == nil {
		return domain.AchievementSummary{}, ErrHistoryDisabled
	}
	stats, err := s.store.Stats(ctx)
	if err != nil {
		s.logger.Error("failed to aggregate history", "error", redact.Error(err))
		return domain.AchievementSummary{}, newServiceError("history", "achievements", "failed to aggregate history", err)
	}
	return domain.EvaluateAchievements(stats), nil
}
