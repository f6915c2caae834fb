package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HistoryKind distinguishes typed from spoken translations.
type HistoryKind string

// Possible history kinds.
const (
	HistoryKindText  HistoryKind = "text"
	HistoryKindVoice HistoryKind = "voice"
)

// HistoryEntry records one completed translation.
type HistoryEntry struct {
	ID          uuid.UUID   `json:"id"`
	Kind        HistoryKind `json:"kind"`
	SourceText  string      `json:"source_text"`
	SourceLang  string      `json:"source_lang"`
	TargetLang  string      `json:"target_lang"`
	Translation string      `json:"translation"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NewHistoryEntry builds a validated entry with a fresh id and timestamp.
func NewHistoryEntry(kind HistoryKind, sourceText, sourceLang, targetLang, translation string) (*HistoryEntry, error) {
	entry := &HistoryEntry{
		ID:          uuid.New(),
		Kind:        kind,
		SourceText:  sourceText,
		SourceLang:  sourceLang,
		TargetLang:  targetLang,
		Translation: translation,
		CreatedAt:   time.Now().UTC(),
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

// Validate checks the entry's required fields.
func (e *HistoryEntry) Validate() error {
	if e.ID == uuid.Nil {
		return fmt.Errorf("%w: history entry id is empty", ErrValidation)
	}
	if e.Kind != HistoryKindText && e.Kind != HistoryKindVoice {
		return fmt.Errorf("%w: %q", ErrInvalidHistoryKind, e.Kind)
	}
	if strings.TrimSpace(e.SourceText) == "" {
		return fmt.Errorf("%w: source text", ErrEmptyContent)
	}
	if e.TargetLang == "" {
		return fmt.Errorf("%w: target language is empty", ErrValidation)
	}
	return nil
}

// HistoryStats aggregates the history table for achievement evaluation.
type HistoryStats struct {
	Total     int      `json:"total_translations"`
	Voice     int      `json:"voice_translations"`
	Languages []string `json:"languages"`
}

// Achievement is a badge with its unlock state.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}

// AchievementSummary is the payload of the achievements endpoint.
type AchievementSummary struct {
	Stats  HistoryStats  `json:"stats"`
	Badges []Achievement `json:"badges"`
}

type badgeRule struct {
	id          string
	title       string
	description string
	earned      func(HistoryStats) bool
}

var badgeRules = []badgeRule{
	{"first-translation", "First Steps", "Complete your first translation",
		func(s HistoryStats) bool { return s.Total >= 1 }},
	{"ten-translations", "Word Collector", "Complete 10 translations",
		func(s HistoryStats) bool { return s.Total >= 10 }},
	{"fifty-translations", "Dedicated Learner", "Complete 50 translations",
		func(s HistoryStats) bool { return s.Total >= 50 }},
	{"three-languages", "Polyglot", "Translate into 3 different languages",
		func(s HistoryStats) bool { return len(s.Languages) >= 3 }},
	{"first-voice", "Speak Up", "Complete your first voice translation",
		func(s HistoryStats) bool { return s.Voice >= 1 }},
}

// EvaluateAchievements lists every badge, marking those the stats unlock.
func EvaluateAchievements(stats HistoryStats) AchievementSummary {
	if stats.Languages == nil {
		stats.Languages = []string{}
	}
	badges := make([]Achievement, 0, len(badgeRules))
	for _, r := range badgeRules {
		badges = append(badges, Achievement{
			ID:          r.id,
			Title:       r.title,
			Description: r.description,
			Earned:      r.earned(stats),
		})
	}
	return AchievementSummary{Stats: stats, Badges: badges}
}
