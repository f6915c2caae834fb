package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/polyglot-api/internal/domain"
)

// RecordCall captures the arguments of one Record call.
type RecordCall struct {
	Kind        domain.HistoryKind
	SourceText  string
	SourceLang  string
	TargetLang  string
	Translation string
}

// MockHistoryService implements service.HistoryService for testing
type MockHistoryService struct {
	RecordFn       func(ctx context.Context, kind domain.HistoryKind, sourceText, sourceLang, targetLang, translation string) error
	ListFn         func(ctx context.Context, limit int) ([]*domain.HistoryEntry, error)
	AchievementsFn func(ctx context.Context) (domain.AchievementSummary, error)

	// Default response values
	Entries []*domain.HistoryEntry
	Summary domain.AchievementSummary
	Err     error

	mu          sync.Mutex
	RecordCalls []RecordCall
	ListLimits  []int
}

// Record implements the service.HistoryRecorder interface
func (m *MockHistoryService) Record(
	ctx context.Context,
	kind domain.HistoryKind,
	sourceText, sourceLang, targetLang, translation string,
) error {
	m.mu.Lock()
	m.RecordCalls = append(m.RecordCalls, RecordCall{
		Kind:        kind,
		SourceText:  sourceText,
		SourceLang:  sourceLang,
		TargetLang:  targetLang,
		Translation: translation,
	})
	m.mu.Unlock()

	if m.RecordFn != nil {
		return m.RecordFn(ctx, kind, sourceText, sourceLang, targetLang, translation)
	}
	return m.Err
}

// List implements the service.HistoryService interface
func (m *MockHistoryService) List(ctx context.Context, limit int) ([]*domain.HistoryEntry, error) {
	m.mu.Lock()
	m.ListLimits = append(m.ListLimits, limit)
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx, limit)
	}
	return m.Entries, m.Err
}

// Achievements implements the service.HistoryService interface
func (m *MockHistoryService) Achievements(ctx context.Context) (domain.AchievementSummary, error) {
	if m.AchievementsFn != nil {
		return m.AchievementsFn(ctx)
	}
	return m.Summary, m.Err
}
