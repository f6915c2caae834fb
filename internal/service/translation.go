package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"github.com/phrazzld/polyglot-api/internal/catalog"
	"github.com/phrazzld/polyglot-api/internal/domain"
	"github.com/phrazzld/polyglot-api/internal/generation"
	"github.com/phrazzld/polyglot-api/internal/langdetect"
	"github.com/phrazzld/polyglot-api/internal/platform/logger"
	"github.com/phrazzld/polyglot-api/internal/redact"
)

// AutoDetect is the source language value that requests detection.
const AutoDetect = "auto"

const (
	translatorSystemPrompt = "You are an expert translator and language teacher. Always answer with a single valid JSON object."
	notProvided            = "Not provided"
)

// TranslateInput is a text translation request.
type TranslateInput struct {
	Text       string
	SourceLang string
	TargetLang string
}

// VoiceInput is a spoken translation request.
type VoiceInput struct {
	Audio      []byte
	Filename   string
	SourceLang string
	TargetLang string
}

// VoiceTranslation is the result of a spoken translation.
type VoiceTranslation struct {
	Translation  string            `json:"translation"`
	Details      generation.Object `json:"translationDetails"`
	Audio        string            `json:"audio"`
	OriginalText string            `json:"original_text"`
}

// HistoryRecorder receives completed translations. Recording is best effort.
type HistoryRecorder interface {
	Record(ctx context.Context, kind domain.HistoryKind, sourceText, sourceLang, targetLang, translation string) error
}

// TranslationService translates text and speech with learner-oriented
// explanations.
type TranslationService interface {
	// Translate returns the translation object, always carrying every
	// documented field.
	Translate(ctx context.Context, in TranslateInput) (generation.Object, error)

	// TranslateVoice transcribes the audio and translates the transcript.
	TranslateVoice(ctx context.Context, in VoiceInput) (*VoiceTranslation, error)

	// GenerateExamples returns {"examples": [...]}.
	GenerateExamples(ctx context.Context, in TranslateInput) (generation.Object, error)
}

func translationDefaults() generation.Defaults {
	return generation.Defaults{
		"translation":      generation.Text(notProvided),
		"literal":          generation.Text(notProvided),
		"cultural_context": generation.Text(notProvided),
		"grammar":          generation.Text(notProvided),
		"conversation":     generation.Text(notProvided),
		"examples":         generation.EmptyList,
		"idioms":           generation.EmptyList,
		"practice_tips":    generation.EmptyList,
		"related_topics":   generation.EmptyList,
		"vocabulary":       generation.EmptyList,
		"learning_level":   generation.Text(notProvided),
		"pronunciation": func() any {
			return map[string]any{
				"ipa":               notProvided,
				"tips":              []any{},
				"common_challenges": notProvided,
			}
		},
	}
}

// fallbackTranslation is returned when the model's output cannot be parsed.
func fallbackTranslation(text string) generation.Object {
	return generation.Object{
		"translation":      text,
		"literal":          "Translation parsing failed",
		"cultural_context": "Not available",
		"grammar":          "Not available",
		"examples":         []any{},
		"idioms":           []any{},
		"conversation":     "Sorry, a detailed explanation could not be produced this time. Please try again.",
	}
}

type translationService struct {
	completer   generation.Completer
	transcriber generation.Transcriber
	history     HistoryRecorder
	logger      *slog.Logger
}

// NewTranslationService creates a TranslationService. transcriber and
// history are optional: without a transcriber voice translation reports
// generation.ErrTranscriptionUnavailable, and without history nothing is
// recorded.
func NewTranslationService(
	completer generation.Completer,
	transcriber generation.Transcriber,
	history HistoryRecorder,
	log *slog.Logger,
) (TranslationService, error) {
	if completer == nil {
		return nil, &ServiceError{Service: "translation", Operation: "create_service", Message: "completer cannot be nil"}
	}
	if log == nil {
		log = slog.Default()
	}
	return &translationService{
		completer:   completer,
		transcriber: transcriber,
		history:     history,
		logger:      log.With("component", "translation_service"),
	}, nil
}

func (s *translationService) log(ctx context.Context) *slog.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l.With("component", "translation_service")
	}
	return s.logger
}

// resolveSource returns the code to translate from. The detection result is
// nil unless the source was auto-detected.
func resolveSource(text, source string) (string, *langdetect.Result) {
	if strings.EqualFold(strings.TrimSpace(source), AutoDetect) {
		res := langdetect.Detect(text)
		return res.Code, &res
	}
	return catalog.ResolveLanguage(source), nil
}

func (s *translationService) Translate(ctx context.Context, in TranslateInput) (generation.Object, error) {
	return s.translate(ctx, in, domain.HistoryKindText)
}

func (s *translationService) translate(
	ctx context.Context,
	in TranslateInput,
	kind domain.HistoryKind,
) (generation.Object, error) {
	log := s.log(ctx)
	source, detection := resolveSource(in.Text, in.SourceLang)
	target := catalog.ResolveLanguage(in.TargetLang)
	if detection != nil && !detection.Reliable {
		log.Debug("source language detection is uncertain",
			"detected", detection.Code,
			"confidence", detection.Confidence)
	}

	prompt, err := renderPrompt(promptTranslate, map[string]string{
		"Text":   in.Text,
		"Source": catalog.LanguageName(source),
		"Target": catalog.LanguageName(target),
	})
	if err != nil {
		return nil, newServiceError("translation", "translate", "failed to build prompt", err)
	}

	req := generation.UserPrompt(translatorSystemPrompt, prompt)
	req.Temperature = 0.3
	req.MaxTokens = 2000
	req.JSON = true

	resp, err := s.completer.Complete(ctx, req)
	if err != nil {
		return nil, newServiceError("translation", "translate", "completion failed", err)
	}

	obj, parseErr := generation.ParseObject(resp.Content)
	if parseErr != nil {
		log.Warn("translation output was not valid JSON, using fallback",
			"error", redact.Error(parseErr),
			"source_lang", source,
			"target_lang", target)
		obj = fallbackTranslation(in.Text)
	}
	generation.Backfill(obj, translationDefaults())
	if detection != nil {
		obj["detected_language"] = source
	}

	if parseErr == nil {
		s.record(ctx, kind, in.Text, source, target, obj)
	}
	return obj, nil
}

func (s *translationService) record(
	ctx context.Context,
	kind domain.HistoryKind,
	text, source, target string,
	obj generation.Object,
) {
	if s.history == nil {
		return
	}
	translation, _ := obj["translation"].(string)
	if err := s.history.Record(ctx, kind, text, source, target, translation); err != nil {
		s.log(ctx).Warn("failed to record translation history", "error", redact.Error(err))
	}
}

func (s *translationService) TranslateVoice(ctx context.Context, in VoiceInput) (*VoiceTranslation, error) {
	if s.transcriber == nil {
		return nil, generation.ErrTranscriptionUnavailable
	}

	treq := generation.TranscriptionRequest{
		Audio:    bytes.NewReader(in.Audio),
		Filename: in.Filename,
	}
	if !strings.EqualFold(strings.TrimSpace(in.SourceLang), AutoDetect) {
		// Whisper only accepts ISO 639-1 hints.
		treq.Language, _ = catalog.ISO6391(in.SourceLang)
	}

	transcript, err := s.transcriber.Transcribe(ctx, treq)
	if err != nil {
		return nil, newServiceError("translation", "transcribe", "transcription failed", err)
	}
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return nil, ErrEmptyTranscription
	}
	s.log(ctx).Debug("audio transcribed", "chars", len(transcript), "audio_bytes", len(in.Audio))

	details, err := s.translate(ctx, TranslateInput{
		Text:       transcript,
		SourceLang: in.SourceLang,
		TargetLang: in.TargetLang,
	}, domain.HistoryKindVoice)
	if err != nil {
		return nil, err
	}

	translation, _ := details["translation"].(string)
	return &VoiceTranslation{
		Translation:  translation,
		Details:      details,
		Audio:        base64.StdEncoding.EncodeToString(in.Audio),
		OriginalText: transcript,
	}, nil
}

func (s *translationService) GenerateExamples(ctx context.Context, in TranslateInput) (generation.Object, error) {
	source, _ := resolveSource(in.Text, in.SourceLang)
	target := catalog.ResolveLanguage(in.TargetLang)

	prompt, err := renderPrompt(promptExamples, map[string]string{
		"Text":   in.Text,
		"Source": catalog.LanguageName(source),
		"Target": catalog.LanguageName(target),
	})
	if err != nil {
		return nil, newServiceError("translation", "examples", "failed to build prompt", err)
	}

	req := generation.UserPrompt(translatorSystemPrompt, prompt)
	req.Temperature = 0.5
	req.MaxTokens = 1000
	req.JSON = true

	defaults := generation.Defaults{"examples": generation.EmptyList}
	obj, err := generation.GenerateObject(ctx, s.completer, req, defaults)
	if err != nil {
		if isSoftFailure(err) {
			s.log(ctx).Warn("examples output was not valid JSON", "error", redact.Error(err))
			return generation.Backfill(nil, defaults), nil
		}
		return nil, newServiceError("translation", "examples", "completion failed", err)
	}
	if _, ok := obj["examples"].([]any); !ok {
		s.log(ctx).Warn("examples output has no example list")
		return generation.Backfill(nil, defaults), nil
	}
	return obj, nil
}
