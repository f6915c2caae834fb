package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/polyglot-api/internal/generation"
	"github.com/phrazzld/polyglot-api/internal/mocks"
	"github.com/phrazzld/polyglot-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(payload))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestTranslateText(t *testing.T) {
	tests := []struct {
		name           string
		payload        any
		result         generation.Object
		err            error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "success",
			payload:        TranslateRequest{Text: "hello", SourceLang: "en", TargetLang: "es"},
			result:         generation.Object{"translation": "hola"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing target language",
			payload:        map[string]string{"text": "hello", "sourceLang": "en"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required parameters",
		},
		{
			name:           "empty body",
			payload:        nil,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "No JSON data received",
		},
		{
			name:           "retries exhausted",
			payload:        TranslateRequest{Text: "hello", SourceLang: "en", TargetLang: "es"},
			err:            fmt.Errorf("translate: %w", generation.ErrRetriesExhausted),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "max retries exceeded, please try again later",
		},
		{
			name:           "upstream failure",
			payload:        TranslateRequest{Text: "hello", SourceLang: "en", TargetLang: "es"},
			err:            generation.ErrUpstream,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Translation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.MockTranslationService{Result: tt.result, Err: tt.err}
			handler := NewTranslationHandler(svc, 0, slog.Default())

			rec := httptest.NewRecorder()
			handler.TranslateText(rec, jsonRequest(t, http.MethodPost, "/api/translate/text", tt.payload))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			body := decodeBody(t, rec)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
				return
			}
			assert.Equal(t, "hola", body["translation"])
			require.Len(t, svc.TranslateCalls, 1)
			assert.Equal(t, "es", svc.TranslateCalls[0].TargetLang)
		})
	}
}

func TestTranslateTextReportsReceivedValues(t *testing.T) {
	svc := &mocks.MockTranslationService{}
	handler := NewTranslationHandler(svc, 0, slog.Default())

	rec := httptest.NewRecorder()
	handler.TranslateText(rec, jsonRequest(t, http.MethodPost, "/api/translate/text",
		map[string]string{"text": "hello"}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	details, ok := body["details"].(map[string]any)
	require.True(t, ok, "details should be present")

	received, ok := details["received"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hello", received["text"])
	assert.Equal(t, "", received["targetLang"])

	fields, ok := details["fields"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "sourceLang")
	assert.Contains(t, fields, "targetLang")
	assert.Zero(t, svc.CallCount())
}

func TestExamples(t *testing.T) {
	svc := &mocks.MockTranslationService{
		GenerateExamplesFn: func(_ context.Context, in service.TranslateInput) (generation.Object, error) {
			return generation.Object{"examples": []any{map[string]any{"sentence": in.Text}}}, nil
		},
	}
	handler := NewTranslationHandler(svc, 0, slog.Default())

	rec := httptest.NewRecorder()
	handler.Examples(rec, jsonRequest(t, http.MethodPost, "/api/translate/examples",
		TranslateRequest{Text: "gato", SourceLang: "es", TargetLang: "en"}))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	examples, ok := body["examples"].([]any)
	require.True(t, ok)
	assert.Len(t, examples, 1)
}

func voiceRequest(t *testing.T, audio []byte, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if audio != nil {
		part, err := mw.CreateFormFile("audio", "clip.webm")
		require.NoError(t, err)
		_, err = part.Write(audio)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/translate/voice", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestTranslateVoice(t *testing.T) {
	t.Run("success defaults source to auto", func(t *testing.T) {
		svc := &mocks.MockTranslationService{
			Voice: &service.VoiceTranslation{Translation: "hola", OriginalText: "hello"},
		}
		handler := NewTranslationHandler(svc, 0, slog.Default())

		rec := httptest.NewRecorder()
		handler.TranslateVoice(rec, voiceRequest(t, []byte("RIFF"), map[string]string{"targetLang": "es"}))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "hola", body["translation"])
		assert.Equal(t, "hello", body["original_text"])

		require.Len(t, svc.VoiceCalls, 1)
		assert.Equal(t, service.AutoDetect, svc.VoiceCalls[0].SourceLang)
		assert.Equal(t, "clip.webm", svc.VoiceCalls[0].Filename)
		assert.Equal(t, []byte("RIFF"), svc.VoiceCalls[0].Audio)
	})

	t.Run("missing audio", func(t *testing.T) {
		svc := &mocks.MockTranslationService{}
		handler := NewTranslationHandler(svc, 0, slog.Default())

		rec := httptest.NewRecorder()
		handler.TranslateVoice(rec, voiceRequest(t, nil, map[string]string{"targetLang": "es"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No audio file provided", decodeBody(t, rec)["error"])
	})

	t.Run("missing target language", func(t *testing.T) {
		svc := &mocks.MockTranslationService{}
		handler := NewTranslationHandler(svc, 0, slog.Default())

		rec := httptest.NewRecorder()
		handler.TranslateVoice(rec, voiceRequest(t, []byte("RIFF"), nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing required parameters", decodeBody(t, rec)["error"])
		assert.Zero(t, svc.CallCount())
	})

	t.Run("upload too large", func(t *testing.T) {
		svc := &mocks.MockTranslationService{}
		handler := NewTranslationHandler(svc, 64, slog.Default())

		rec := httptest.NewRecorder()
		handler.TranslateVoice(rec, voiceRequest(t, []byte(strings.Repeat("a", 1024)),
			map[string]string{"targetLang": "es"}))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("empty transcription", func(t *testing.T) {
		svc := &mocks.MockTranslationService{Err: service.ErrEmptyTranscription}
		handler := NewTranslationHandler(svc, 0, slog.Default())

		rec := httptest.NewRecorder()
		handler.TranslateVoice(rec, voiceRequest(t, []byte("RIFF"), map[string]string{"targetLang": "es"}))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("transcription unavailable", func(t *testing.T) {
		svc := &mocks.MockTranslationService{Err: generation.ErrTranscriptionUnavailable}
		handler := NewTranslationHandler(svc, 0, slog.Default())

		rec := httptest.NewRecorder()
		handler.TranslateVoice(rec, voiceRequest(t, []byte("RIFF"), map[string]string{"targetLang": "es"}))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestNewTranslationHandlerPanicsWithoutLogger(t *testing.T) {
	assert.Panics(t, func() {
		NewTranslationHandler(&mocks.MockTranslationService{}, 0, nil)
	})
}
