package api

import (
	"github.com/phrazzld/polyglot-api/internal/catalog"
	"github.com/phrazzld/polyglot-api/internal/domain"
)

// Common request/response structures

// TranslateRequest defines the payload for the text translation and
// example sentence endpoints. SourceLang may be "auto".
type TranslateRequest struct {
	Text       string `json:"text"       validate:"required"`
	SourceLang string `json:"sourceLang" validate:"required"`
	TargetLang string `json:"targetLang" validate:"required"`
}

// LessonRequest defines the payload for the lesson content endpoint.
type LessonRequest struct {
	Lesson   string `json:"lesson"   validate:"required"`
	Language string `json:"language" validate:"required"`
	Level    string `json:"level"`
}

// PracticeRequest defines the payload for the practice generation endpoint.
// Level and type are checked against their closed sets by the service so
// that unknown values and missing values produce distinct messages.
type PracticeRequest struct {
	Language string `json:"language" validate:"required"`
	Level    string `json:"level"    validate:"required"`
	Type     string `json:"type"     validate:"required"`
}

// ChatMessageRequest is one turn of a chatbot conversation.
type ChatMessageRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest defines the payload for the chatbot endpoint.
type ChatRequest struct {
	Messages []ChatMessageRequest `json:"messages" validate:"required,min=1"`
	Language string               `json:"language" validate:"required"`
}

// LanguagesResponse lists the supported languages.
type LanguagesResponse struct {
	Languages []catalog.Language `json:"languages"`
	Default   string             `json:"default"`
}

// HistoryResponse wraps a page of translation history.
type HistoryResponse struct {
	Entries []*domain.HistoryEntry `json:"entries"`
	Limit   int                    `json:"limit"`
}

// HealthResponse is returned by the liveness probe.
type HealthResponse struct {
	Status string `json:"status"`
}

// toDomainMessages converts chat request turns to domain messages.
func toDomainMessages(in []ChatMessageRequest) []domain.ChatMessage {
	out := make([]domain.ChatMessage, 0, len(in))
	for _, m := range in {
		out = append(out, domain.ChatMessage{Role: m.Role, Content: m.Content})
	}
	return out
}
