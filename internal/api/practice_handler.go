package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/polyglot-api/internal/api/shared"
	"github.com/phrazzld/polyglot-api/internal/service"
)

// PracticeHandler handles practice exercise requests.
type PracticeHandler struct {
	practiceService service.PracticeService
	logger          *slog.Logger
}

// NewPracticeHandler creates a new PracticeHandler
func NewPracticeHandler(practiceService service.PracticeService, logger *slog.Logger) *PracticeHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PracticeHandler")
	}

	return &PracticeHandler{
		practiceService: practiceService,
		logger:          logger.With(slog.String("component", "practice_handler")),
	}
}

// Generate handles POST /practice/generate requests.
//
//	@Summary		Generate practice
//	@Description	Returns exercises and vocabulary for a language, CEFR level and exercise type.
//	@Tags			practice
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PracticeRequest	true	"Language, level (A1-C2) and exercise type"
//	@Success		200		{object}	domain.PracticeSet
//	@Failure		400		{object}	shared.ErrorResponse
//	@Router			/practice/generate [post]
func (h *PracticeHandler) Generate(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)

	var req PracticeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	log.Debug("generating practice",
		slog.String("language", req.Language),
		slog.String("level", req.Level),
		slog.String("type", req.Type))

	set, err := h.practiceService.Generate(r.Context(), service.PracticeInput{
		Language: req.Language,
		Level:    req.Level,
		Type:     req.Type,
	})
	if err != nil {
		respondServiceError(w, r, err, "Failed to generate practice")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, set)
}
