package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/phrazzld/polyglot-api/internal/catalog"
	"github.com/phrazzld/polyglot-api/internal/domain"
	"github.com/phrazzld/polyglot-api/internal/generation"
	"github.com/phrazzld/polyglot-api/internal/platform/logger"
	"github.com/phrazzld/polyglot-api/internal/redact"
)

const lessonSystemPrompt = "You are an experienced language teacher who writes clear, structured lessons. Always answer with a single valid JSON object."

var lessonSchema = generation.NewSchema("lesson", map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title": map[string]any{"type": "string", "minLength": 1},
		"sections": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"title"},
			},
		},
		"quiz": map[string]any{"type": "array"},
	},
})

// LessonInput identifies the lesson to produce.
type LessonInput struct {
	Lesson   string
	Language string
	Level    string
}

// LearningService serves lesson content and the course catalog.
type LearningService interface {
	// Lesson returns lesson content. It never fails on bad model output:
	// canned or placeholder content is substituted instead.
	Lesson(ctx context.Context, in LessonInput) (generation.Object, error)

	// Courses returns the course catalog for a language name or code.
	// Returns ErrLanguageNotFound when no course exists.
	Courses(ctx context.Context, language string) (domain.Course, error)
}

// LessonCacheConfig sizes the generated lesson cache.
type LessonCacheConfig struct {
	Size int
	TTL  time.Duration
}

type learningService struct {
	completer generation.Completer
	cache     *expirable.LRU[string, generation.Object]
	logger    *slog.Logger
}

// NewLearningService creates a LearningService with an expiring LRU cache of
// generated lessons.
func NewLearningService(completer generation.Completer, cacheCfg LessonCacheConfig, log *slog.Logger) (LearningService, error) {
	if completer == nil {
		return nil, &ServiceError{Service: "learning", Operation: "create_service", Message: "completer cannot be nil"}
	}
	if cacheCfg.Size <= 0 {
		return nil, &ServiceError{Service: "learning", Operation: "create_service", Message: "cache size must be positive"}
	}
	if log == nil {
		log = slog.Default()
	}
	return &learningService{
		completer: completer,
		cache:     expirable.NewLRU[string, generation.Object](cacheCfg.Size, nil, cacheCfg.TTL),
		logger:    log.With("component", "learning_service"),
	}, nil
}

func (s *learningService) log(ctx context.Context) *slog.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l.With("component", "learning_service")
	}
	return s.logger
}

func lessonDefaults(title string) generation.Defaults {
	return generation.Defaults{
		"title":        generation.Text(title),
		"introduction": generation.Text("Welcome to this lesson!"),
		"sections":     generation.EmptyList,
		"quiz":         generation.EmptyList,
		"summary":      generation.Text("Review the sections above and try the quiz."),
	}
}

func lessonCacheKey(code, lesson string) string {
	return code + "_" + lesson
}

func (s *learningService) Lesson(ctx context.Context, in LessonInput) (generation.Object, error) {
	log := s.log(ctx)
	code := catalog.ResolveLanguage(in.Language)
	title := strings.TrimSpace(in.Lesson)
	level, err := domain.ParseLevel(in.Level)
	if err != nil {
		level = domain.LevelA1
	}

	key := lessonCacheKey(code, title)
	if cached, ok := s.cache.Get(key); ok {
		log.Debug("lesson served from cache", "key", key)
		return cached, nil
	}

	obj, err := s.generateLesson(ctx, title, code, level)
	if err != nil {
		log.Warn("lesson generation failed, serving canned content",
			"error", redact.Error(err),
			"lesson", title,
			"language", code)
		return catalog.CannedLesson(code, title), nil
	}

	s.cache.Add(key, obj)
	return obj, nil
}

func (s *learningService) generateLesson(
	ctx context.Context,
	title, code string,
	level domain.Level,
) (generation.Object, error) {
	prompt, err := renderPrompt(promptLesson, map[string]string{
		"Lesson":   title,
		"Language": catalog.LanguageName(code),
		"Level":    string(level),
	})
	if err != nil {
		return nil, err
	}

	req := generation.UserPrompt(lessonSystemPrompt, prompt)
	req.Temperature = 0.7
	req.MaxTokens = 2000
	req.JSON = true

	resp, err := s.completer.Complete(ctx, req)
	if err != nil {
		return nil, err
	}
	obj, err := generation.ParseObject(resp.Content)
	if err != nil {
		return nil, err
	}
	// Fields that are present must be well formed; absent ones are
	// back-filled.
	if err := lessonSchema.Validate(obj); err != nil {
		return nil, err
	}
	return generation.Backfill(obj, lessonDefaults(title)), nil
}

func (s *learningService) Courses(_ context.Context, language string) (domain.Course, error) {
	course, ok := catalog.Courses(language)
	if !ok {
		return domain.Course{}, ErrLanguageNotFound
	}
	return course, nil
}
