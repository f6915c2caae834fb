package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/polyglot-api/internal/api/shared"
	"github.com/phrazzld/polyglot-api/internal/domain"
	"github.com/phrazzld/polyglot-api/internal/service"
)

// HistoryHandler exposes translation history and achievements.
type HistoryHandler struct {
	historyService service.HistoryService
	logger         *slog.Logger
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(historyService service.HistoryService, logger *slog.Logger) *HistoryHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for HistoryHandler")
	}

	return &HistoryHandler{
		historyService: historyService,
		logger:         logger.With(slog.String("component", "history_handler")),
	}
}

// List handles GET /history?limit= requests.
//
//	@Summary		Translation history
//	@Description	Returns the most recent translations, newest first.
//	@Tags			history
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 20, max 100)"
//	@Success		200		{object}	HistoryResponse
//	@Failure		400		{object}	shared.ErrorResponse
//	@Failure		503		{object}	shared.ErrorResponse
//	@Router			/history [get]
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", service.DefaultHistoryLimit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid limit", err,
			shared.WithDetails(map[string]any{
				"received": map[string]any{"limit": r.URL.Query().Get("limit")},
			}))
		return
	}
	limit = service.ClampHistoryLimit(limit)

	entries, err := h.historyService.List(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, err, "Failed to load history")
		return
	}

	if entries == nil {
		entries = []*domain.HistoryEntry{}
	}

	requestLogger(r, h.logger).Debug("history listed", slog.Int("count", len(entries)))

	shared.RespondWithJSON(w, r, http.StatusOK, HistoryResponse{Entries: entries, Limit: limit})
}

// Achievements handles GET /achievements requests.
//
//	@Summary		Achievements
//	@Description	Returns translation totals and the badges they unlock.
//	@Tags			history
//	@Produce		json
//	@Success		200	{object}	domain.AchievementSummary
//	@Failure		503	{object}	shared.ErrorResponse
//	@Router			/achievements [get]
func (h *HistoryHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	summary, err := h.historyService.Achievements(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "Failed to load achievements")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}
