package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/polyglot-api/internal/domain"
	"github.com/phrazzld/polyglot-api/internal/generation"
	"github.com/phrazzld/polyglot-api/internal/mocks"
	"github.com/phrazzld/polyglot-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mocks.MockLearningService{
			LessonResult: generation.Object{"title": "Basic Greetings", "sections": []any{}},
		}
		handler := NewLearningHandler(svc, slog.Default())

		rec := httptest.NewRecorder()
		handler.Lesson(rec, jsonRequest(t, http.MethodPost, "/api/learning/lesson",
			LessonRequest{Lesson: "Basic Greetings", Language: "es", Level: "A1"}))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Basic Greetings", decodeBody(t, rec)["title"])
		require.Len(t, svc.LessonCalls, 1)
		assert.Equal(t, service.LessonInput{Lesson: "Basic Greetings", Language: "es", Level: "A1"}, svc.LessonCalls[0])
	})

	t.Run("missing lesson", func(t *testing.T) {
		svc := &mocks.MockLearningService{}
		handler := NewLearningHandler(svc, slog.Default())

		rec := httptest.NewRecorder()
		handler.Lesson(rec, jsonRequest(t, http.MethodPost, "/api/learning/lesson",
			map[string]string{"language": "es"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Missing required parameters", body["error"])
		assert.Empty(t, svc.LessonCalls)
	})

	t.Run("empty body", func(t *testing.T) {
		handler := NewLearningHandler(&mocks.MockLearningService{}, slog.Default())

		req := httptest.NewRequest(http.MethodPost, "/api/learning/lesson", nil)
		req.Body = http.NoBody
		rec := httptest.NewRecorder()
		handler.Lesson(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCoursesHandler(t *testing.T) {
	t.Run("defaults to english", func(t *testing.T) {
		svc := &mocks.MockLearningService{Course: domain.Course{Language: "English", Code: "en"}}
		handler := NewLearningHandler(svc, slog.Default())

		rec := httptest.NewRecorder()
		handler.Courses(rec, httptest.NewRequest(http.MethodGet, "/api/lessons", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"en"}, svc.CoursesCalls)
		assert.Equal(t, "en", decodeBody(t, rec)["code"])
	})

	t.Run("unknown language", func(t *testing.T) {
		svc := &mocks.MockLearningService{Err: fmt.Errorf("courses: %w", service.ErrLanguageNotFound)}
		handler := NewLearningHandler(svc, slog.Default())

		rec := httptest.NewRecorder()
		handler.Courses(rec, httptest.NewRequest(http.MethodGet, "/api/lessons?language=klingon", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Language not found", decodeBody(t, rec)["error"])
		assert.Equal(t, []string{"klingon"}, svc.CoursesCalls)
	})
}

func TestPracticeHandler(t *testing.T) {
	tests := []struct {
		name           string
		payload        any
		err            error
		expectedStatus int
	}{
		{
			name:           "success",
			payload:        PracticeRequest{Language: "es", Level: "A1", Type: "vocabulary-match"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing type",
			payload:        map[string]string{"language": "es", "level": "A1"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid level",
			payload:        PracticeRequest{Language: "es", Level: "Z9", Type: "vocabulary-match"},
			err:            fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrInvalidLevel),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.MockPracticeService{
				Set: domain.PracticeSet{
					Exercises:  []domain.Exercise{{Type: "vocabulary-match", Question: "Match"}},
					Vocabulary: []domain.VocabularyItem{{Word: "hola", Translation: "hello"}},
				},
				Err: tt.err,
			}
			handler := NewPracticeHandler(svc, slog.Default())

			rec := httptest.NewRecorder()
			handler.Generate(rec, jsonRequest(t, http.MethodPost, "/api/practice/generate", tt.payload))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			body := decodeBody(t, rec)
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, body, "exercises")
				assert.Contains(t, body, "vocabulary")
			} else {
				assert.Contains(t, body, "error")
			}
		})
	}
}

func TestChatbotHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mocks.MockChatbotService{
			Response: domain.ChatReply{Response: "¡Hola!", Options: []string{"a", "b", "c"}},
		}
		handler := NewChatbotHandler(svc, slog.Default())

		rec := httptest.NewRecorder()
		handler.Chat(rec, jsonRequest(t, http.MethodPost, "/api/chatbot", ChatRequest{
			Messages: []ChatMessageRequest{{Role: "user", Content: "hi"}},
			Language: "es",
		}))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "¡Hola!", body["response"])
		assert.Len(t, body["options"], 3)

		require.Len(t, svc.Calls, 1)
		assert.Equal(t, []domain.ChatMessage{{Role: "user", Content: "hi"}}, svc.Calls[0].Messages)
	})

	t.Run("no messages", func(t *testing.T) {
		svc := &mocks.MockChatbotService{}
		handler := NewChatbotHandler(svc, slog.Default())

		rec := httptest.NewRecorder()
		handler.Chat(rec, jsonRequest(t, http.MethodPost, "/api/chatbot", ChatRequest{Language: "es"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing required parameters", decodeBody(t, rec)["error"])
		assert.Empty(t, svc.Calls)
	})

	t.Run("only blank messages", func(t *testing.T) {
		svc := &mocks.MockChatbotService{Err: fmt.Errorf("%w: no messages", domain.ErrValidation)}
		handler := NewChatbotHandler(svc, slog.Default())

		rec := httptest.NewRecorder()
		handler.Chat(rec, jsonRequest(t, http.MethodPost, "/api/chatbot", ChatRequest{
			Messages: []ChatMessageRequest{{Role: "user", Content: "  "}},
			Language: "es",
		}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCaptionHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mocks.MockCaptionService{
			CaptionsFn: func(_ context.Context, videoID, language string) (*service.Captions, error) {
				return &service.Captions{
					VideoID:  videoID,
					Language: language,
					Captions: []service.Caption{{Start: 0, Duration: 1.5, Text: "Hola"}},
				}, nil
			},
		}
		handler := NewCaptionHandler(svc, slog.Default())

		rec := httptest.NewRecorder()
		handler.Captions(rec, httptest.NewRequest(http.MethodGet,
			"/api/youtube/captions?videoId=dQw4w9WgXcQ&language=es", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "dQw4w9WgXcQ", body["video_id"])
		assert.Equal(t, "es", body["language"])
	})

	t.Run("missing video id", func(t *testing.T) {
		svc := &mocks.MockCaptionService{}
		handler := NewCaptionHandler(svc, slog.Default())

		rec := httptest.NewRecorder()
		handler.Captions(rec, httptest.NewRequest(http.MethodGet, "/api/youtube/captions", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, svc.VideoIDs)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &mocks.MockCaptionService{Err: service.ErrCaptionsNotFound}
		handler := NewCaptionHandler(svc, slog.Default())

		rec := httptest.NewRecorder()
		handler.Captions(rec, httptest.NewRequest(http.MethodGet, "/api/youtube/captions?videoId=dQw4w9WgXcQ", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHistoryHandler(t *testing.T) {
	t.Run("clamps limit", func(t *testing.T) {
		entry := &domain.HistoryEntry{ID: uuid.New(), Kind: domain.HistoryKindText, SourceText: "hi", TargetLang: "es"}
		svc := &mocks.MockHistoryService{Entries: []*domain.HistoryEntry{entry}}
		handler := NewHistoryHandler(svc, slog.Default())

		rec := httptest.NewRecorder()
		handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/history?limit=500", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []int{service.MaxHistoryLimit}, svc.ListLimits)
		body := decodeBody(t, rec)
		assert.Len(t, body["entries"], 1)
	})

	t.Run("empty history is an empty list", func(t *testing.T) {
		svc := &mocks.MockHistoryService{}
		handler := NewHistoryHandler(svc, slog.Default())

		rec := httptest.NewRecorder()
		handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/history", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []int{service.DefaultHistoryLimit}, svc.ListLimits)
		assert.Equal(t, []any{}, decodeBody(t, rec)["entries"])
	})

	t.Run("invalid limit", func(t *testing.T) {
		handler := NewHistoryHandler(&mocks.MockHistoryService{}, slog.Default())

		rec := httptest.NewRecorder()
		handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/history?limit=ten", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("disabled", func(t *testing.T) {
		handler := NewHistoryHandler(&mocks.MockHistoryService{Err: service.ErrHistoryDisabled}, slog.Default())

		rec := httptest.NewRecorder()
		handler.Achievements(rec, httptest.NewRequest(http.MethodGet, "/api/achievements", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("achievements", func(t *testing.T) {
		summary := domain.EvaluateAchievements(domain.HistoryStats{Total: 12, Voice: 1, Languages: []string{"es"}})
		handler := NewHistoryHandler(&mocks.MockHistoryService{Summary: summary}, slog.Default())

		rec := httptest.NewRecorder()
		handler.Achievements(rec, httptest.NewRequest(http.MethodGet, "/api/achievements", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Contains(t, body, "stats")
		assert.Contains(t, body, "badges")
	})
}

func TestLanguagesAndHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Languages(rec, httptest.NewRequest(http.MethodGet, "/api/languages", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "en", body["default"])
	langs, ok := body["languages"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, langs)

	rec = httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}
