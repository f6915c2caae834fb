package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/phrazzld/polyglot-api/internal/catalog"
	"github.com/phrazzld/polyglot-api/internal/domain"
	"github.com/phrazzld/polyglot-api/internal/generation"
	"github.com/phrazzld/polyglot-api/internal/platform/logger"
	"github.com/phrazzld/polyglot-api/internal/redact"
)

const (
	practiceSystemPrompt = "You are an expert language teacher creating interactive exercises. Always answer with a single valid JSON object."
	defaultRoundQuestion = "Match the following"
	defaultRoundPoints   = 10
)

var practiceSchema = generation.NewSchema("practice", map[string]any{
	"type":     "object",
	"required": []any{"content"},
	"properties": map[string]any{
		"content": map[string]any{
			"type":     "object",
			"required": []any{"rounds"},
			"properties": map[string]any{
				"rounds": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "object"},
				},
			},
		},
	},
})

// PracticeInput selects the game to generate.
type PracticeInput struct {
	Language string
	Level    string
	Type     string
}

// PracticeService produces interactive practice sets.
type PracticeService interface {
	// Generate validates the level and exercise type, then returns a
	// practice set. Unusable model output yields canned content, never an
	// error. Invalid input returns an error wrapping domain.ErrValidation.
	Generate(ctx context.Context, in PracticeInput) (domain.PracticeSet, error)
}

type practiceService struct {
	completer generation.Completer
	logger    *slog.Logger
}

// NewPracticeService creates a PracticeService.
func NewPracticeService(completer generation.Completer, log *slog.Logger) (PracticeService, error) {
	if completer == nil {
		return nil, &ServiceError{Service: "practice", Operation: "create_service", Message: "completer cannot be nil"}
	}
	if log == nil {
		log = slog.Default()
	}
	return &practiceService{completer: completer, logger: log.With("component", "practice_service")}, nil
}

func (s *practiceService) log(ctx context.Context) *slog.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l.With("component", "practice_service")
	}
	return s.logger
}

func (s *practiceService) Generate(ctx context.Context, in PracticeInput) (domain.PracticeSet, error) {
	typ, err := domain.ParseExerciseType(in.Type)
	if err != nil {
		return domain.PracticeSet{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	level, err := domain.ParseLevel(in.Level)
	if err != nil {
		return domain.PracticeSet{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	code := catalog.ResolveLanguage(in.Language)

	set, err := s.generate(ctx, code, typ, level)
	if err != nil {
		s.log(ctx).Warn("practice generation failed, serving canned set",
			"error", redact.Error(err),
			"language", code,
			"type", typ,
			"level", level)
		return catalog.CannedPractice(code, typ, level), nil
	}
	return set, nil
}

func (s *practiceService) generate(
	ctx context.Context,
	code string,
	typ domain.ExerciseType,
	level domain.Level,
) (domain.PracticeSet, error) {
	prompt, err := renderPrompt(promptPractice, map[string]string{
		"Language": catalog.LanguageName(code),
		"Level":    string(level),
		"Type":     string(typ),
	})
	if err != nil {
		return domain.PracticeSet{}, err
	}

	req := generation.UserPrompt(practiceSystemPrompt, prompt)
	req.Temperature = 0.7
	req.MaxTokens = 2000
	req.JSON = true

	resp, err := s.completer.Complete(ctx, req)
	if err != nil {
		return domain.PracticeSet{}, err
	}
	obj, err := generation.ParseObject(resp.Content)
	if err != nil {
		return domain.PracticeSet{}, err
	}
	if err := practiceSchema.Validate(obj); err != nil {
		return domain.PracticeSet{}, err
	}

	var game practiceGame
	if err := generation.Decode(obj, &game); err != nil {
		return domain.PracticeSet{}, err
	}
	set := transformGame(game, typ)
	if set.Empty() {
		return domain.PracticeSet{}, fmt.Errorf("%w: game has no playable rounds", generation.ErrInvalidResponse)
	}
	return set, nil
}

type practiceRound struct {
	Items          []string          `json:"items"`
	CorrectMatches map[string]string `json:"correct_matches"`
	Hints          []string          `json:"hints"`
	Points         float64           `json:"points"`
	Context        string            `json:"context"`
	Explanation    string            `json:"explanation"`
	Difficulty     string            `json:"difficulty"`
}

type practiceGame struct {
	Content struct {
		Rounds []practiceRound `json:"rounds"`
	} `json:"content"`
}

// transformGame flattens the round-based game into exercises and a
// vocabulary list. Rounds with neither items nor matches are dropped.
func transformGame(game practiceGame, typ domain.ExerciseType) domain.PracticeSet {
	set := domain.PracticeSet{
		Exercises:  []domain.Exercise{},
		Vocabulary: []domain.VocabularyItem{},
	}

	for _, r := range game.Content.Rounds {
		if len(r.Items) == 0 && len(r.CorrectMatches) == 0 {
			continue
		}

		question := strings.TrimSpace(r.Context)
		if question == "" {
			question = defaultRoundQuestion
		}
		difficulty := r.Difficulty
		if _, err := domain.ParseLevel(difficulty); err != nil {
			difficulty = string(domain.LevelA1)
		}
		points := int(math.Round(r.Points))
		if points <= 0 {
			points = defaultRoundPoints
		}
		options := r.Items
		if options == nil {
			options = []string{}
		}

		set.Exercises = append(set.Exercises, domain.Exercise{
			Type:          typ,
			Question:      question,
			Options:       options,
			CorrectAnswer: firstMatch(r.Items, r.CorrectMatches),
			Explanation:   r.Explanation,
			Difficulty:    difficulty,
			Points:        points,
			Pairs:         r.CorrectMatches,
			Hints:         r.Hints,
		})

		for _, item := range r.Items {
			set.Vocabulary = append(set.Vocabulary, domain.VocabularyItem{
				Word:        item,
				Translation: r.CorrectMatches[item],
				Usage:       r.Context,
			})
		}
	}
	return set
}

// firstMatch returns the match of the first item that has one. JSON object
// order is not preserved by decoding, so items define the order; when no
// item is a key, the lexically first key is used.
func firstMatch(items []string, matches map[string]string) string {
	for _, item := range items {
		if v, ok := matches[item]; ok {
			return v
		}
	}
	if len(matches) == 0 {
		return ""
	}
	keys := make([]string, 0, len(matches))
	for k := range matches {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return matches[keys[0]]
}
