package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/polyglot-api/internal/api/shared"
	"github.com/phrazzld/polyglot-api/internal/catalog"
	"github.com/phrazzld/polyglot-api/internal/service"
)

// CaptionHandler serves video caption tracks.
type CaptionHandler struct {
	captionService service.CaptionService
	logger         *slog.Logger
}

// NewCaptionHandler creates a new CaptionHandler
func NewCaptionHandler(captionService service.CaptionService, logger *slog.Logger) *CaptionHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CaptionHandler")
	}

	return &CaptionHandler{
		captionService: captionService,
		logger:         logger.With(slog.String("component", "caption_handler")),
	}
}

// Captions handles GET /youtube/captions?videoId=&language= requests.
//
//	@Summary		Video captions
//	@Description	Returns the timed caption track of a video in the requested language.
//	@Tags			captions
//	@Produce		json
//	@Param			videoId		query		string	true	"Video id"
//	@Param			language	query		string	false	"Caption language code (default en)"
//	@Success		200			{object}	service.Captions
//	@Failure		400			{object}	shared.ErrorResponse
//	@Failure		404			{object}	shared.ErrorResponse
//	@Router			/youtube/captions [get]
func (h *CaptionHandler) Captions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	videoID := strings.TrimSpace(query.Get("videoId"))
	language := strings.TrimSpace(query.Get("language"))
	if language == "" {
		language = catalog.DefaultLanguage
	}

	if videoID == "" {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Missing required parameters", nil,
			shared.WithDetails(map[string]any{
				"received": map[string]any{"videoId": videoID, "language": language},
			}))
		return
	}

	requestLogger(r, h.logger).Debug("fetching captions",
		slog.String("video_id", videoID),
		slog.String("language", language))

	captions, err := h.captionService.Captions(r.Context(), videoID, language)
	if err != nil {
		respondServiceError(w, r, err, "Failed to fetch captions")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, captions)
}
