package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/polyglot-api/internal/api/shared"
	"github.com/phrazzld/polyglot-api/internal/catalog"
	"github.com/phrazzld/polyglot-api/internal/service"
)

// LearningHandler serves lesson content and course catalogs.
type LearningHandler struct {
	learningService service.LearningService
	logger          *slog.Logger
}

// NewLearningHandler creates a new LearningHandler
func NewLearningHandler(learningService service.LearningService, logger *slog.Logger) *LearningHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for LearningHandler")
	}

	return &LearningHandler{
		learningService: learningService,
		logger:          logger.With(slog.String("component", "learning_handler")),
	}
}

// Lesson handles POST /learning/lesson requests.
//
//	@Summary		Lesson content
//	@Description	Returns structured lesson content. Generation failures fall back to canned content.
//	@Tags			learning
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LessonRequest	true	"Lesson title, language and level"
//	@Success		200		{object}	map[string]any
//	@Failure		400		{object}	shared.ErrorResponse
//	@Router			/learning/lesson [post]
func (h *LearningHandler) Lesson(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)

	var req LessonRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	log.Debug("fetching lesson",
		slog.String("lesson", req.Lesson),
		slog.String("language", req.Language),
		slog.String("level", req.Level))

	lesson, err := h.learningService.Lesson(r.Context(), service.LessonInput{
		Lesson:   req.Lesson,
		Language: req.Language,
		Level:    req.Level,
	})
	if err != nil {
		respondServiceError(w, r, err, "Failed to load lesson")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lesson)
}

// Courses handles GET /lessons?language= requests.
//
//	@Summary		Course catalog
//	@Description	Returns the chapters and lessons for a language name or code.
//	@Tags			learning
//	@Produce		json
//	@Param			language	query		string	false	"Language name or code (default en)"
//	@Success		200			{object}	domain.Course
//	@Failure		404			{object}	shared.ErrorResponse
//	@Router			/lessons [get]
func (h *LearningHandler) Courses(w http.ResponseWriter, r *http.Request) {
	language := strings.TrimSpace(r.URL.Query().Get("language"))
	if language == "" {
		language = catalog.DefaultLanguage
	}

	course, err := h.learningService.Courses(r.Context(), language)
	if err != nil {
		respondServiceError(w, r, err, "Failed to load courses")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, course)
}
