package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/polyglot-api/internal/api/shared"
	"github.com/phrazzld/polyglot-api/internal/service"
)

// DefaultMaxUploadBytes caps voice uploads when no limit is configured.
const DefaultMaxUploadBytes int64 = 25 << 20

// TranslationHandler handles translation HTTP requests.
type TranslationHandler struct {
	translationService service.TranslationService
	maxUploadBytes     int64
	logger             *slog.Logger
}

// NewTranslationHandler creates a new TranslationHandler. maxUploadBytes <= 0
// selects DefaultMaxUploadBytes.
func NewTranslationHandler(
	translationService service.TranslationService,
	maxUploadBytes int64,
	logger *slog.Logger,
) *TranslationHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TranslationHandler")
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}

	return &TranslationHandler{
		translationService: translationService,
		maxUploadBytes:     maxUploadBytes,
		logger:             logger.With(slog.String("component", "translation_handler")),
	}
}

// TranslateText handles POST /translate/text requests.
//
//	@Summary		Translate text
//	@Description	Translates text and explains it for a learner. sourceLang may be "auto".
//	@Tags			translation
//	@Accept			json
//	@Produce		json
//	@Param			request	body		TranslateRequest	true	"Text to translate"
//	@Success		200		{object}	map[string]any
//	@Failure		400		{object}	shared.ErrorResponse
//	@Failure		500		{object}	shared.ErrorResponse
//	@Router			/translate/text [post]
func (h *TranslationHandler) TranslateText(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)

	var req TranslateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	log.Debug("translating text",
		slog.String("source_lang", req.SourceLang),
		slog.String("target_lang", req.TargetLang),
		slog.Int("text_length", len(req.Text)))

	result, err := h.translationService.Translate(r.Context(), service.TranslateInput{
		Text:       req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	})
	if err != nil {
		respondServiceError(w, r, err, "Translation failed")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// TranslateVoice handles POST /translate/voice multipart requests.
//
//	@Summary		Translate speech
//	@Description	Transcribes an uploaded audio file and translates the transcript.
//	@Tags			translation
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			audio		formData	file	true	"Audio recording"
//	@Param			sourceLang	formData	string	false	"Spoken language code or auto"
//	@Param			targetLang	formData	string	true	"Target language code"
//	@Success		200			{object}	service.VoiceTranslation
//	@Failure		400			{object}	shared.ErrorResponse
//	@Failure		413			{object}	shared.ErrorResponse
//	@Failure		422			{object}	shared.ErrorResponse
//	@Failure		503			{object}	shared.ErrorResponse
//	@Router			/translate/voice [post]
func (h *TranslationHandler) TranslateVoice(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)

	if r.ContentLength > h.maxUploadBytes {
		shared.RespondWithError(w, r, http.StatusRequestEntityTooLarge, "Audio file too large")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge, "Audio file too large", err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid multipart form", err)
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "No audio file provided", err)
		return
	}
	defer func() { _ = file.Close() }()

	audio, err := io.ReadAll(file)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Could not read audio file", err)
		return
	}
	if len(audio) == 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "No audio file provided")
		return
	}

	sourceLang := strings.TrimSpace(r.FormValue("sourceLang"))
	if sourceLang == "" {
		sourceLang = service.AutoDetect
	}
	targetLang := strings.TrimSpace(r.FormValue("targetLang"))
	if targetLang == "" {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Missing required parameters", nil,
			shared.WithDetails(map[string]any{
				"received": map[string]any{
					"audio":      header.Filename,
					"sourceLang": sourceLang,
					"targetLang": targetLang,
				},
			}))
		return
	}

	log.Debug("translating voice",
		slog.String("filename", header.Filename),
		slog.Int("audio_bytes", len(audio)),
		slog.String("source_lang", sourceLang),
		slog.String("target_lang", targetLang))

	result, err := h.translationService.TranslateVoice(r.Context(), service.VoiceInput{
		Audio:      audio,
		Filename:   header.Filename,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	})
	if err != nil {
		respondServiceError(w, r, err, "Voice translation failed")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Examples handles POST /translate/examples requests.
//
//	@Summary		Example sentences
//	@Description	Returns example sentences using the text, each with a translation.
//	@Tags			translation
//	@Accept			json
//	@Produce		json
//	@Param			request	body		TranslateRequest	true	"Text and languages"
//	@Success		200		{object}	map[string]any
//	@Failure		400		{object}	shared.ErrorResponse
//	@Failure		500		{object}	shared.ErrorResponse
//	@Router			/translate/examples [post]
func (h *TranslationHandler) Examples(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.translationService.GenerateExamples(r.Context(), service.TranslateInput{
		Text:       req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	})
	if err != nil {
		respondServiceError(w, r, err, "Failed to generate examples")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
