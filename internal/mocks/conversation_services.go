package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/polyglot-api/internal/domain"
	"github.com/phrazzld/polyglot-api/internal/service"
)

// MockPracticeService implements service.PracticeService for testing
type MockPracticeService struct {
	GenerateFn func(ctx context.Context, in service.PracticeInput) (domain.PracticeSet, error)

	Set domain.PracticeSet
	Err error

	mu    sync.Mutex
	Calls []service.PracticeInput
}

// Generate implements the service.PracticeService interface
func (m *MockPracticeService) Generate(ctx context.Context, in service.PracticeInput) (domain.PracticeSet, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, in)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, in)
	}
	return m.Set, m.Err
}

// MockChatbotService implements service.ChatbotService for testing
type MockChatbotService struct {
	ReplyFn func(ctx context.Context, in service.ChatInput) (domain.ChatReply, error)

	Response domain.ChatReply
	Err      error

	mu    sync.Mutex
	Calls []service.ChatInput
}

// Reply implements the service.ChatbotService interface
func (m *MockChatbotService) Reply(ctx context.Context, in service.ChatInput) (domain.ChatReply, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, in)
	m.mu.Unlock()

	if m.ReplyFn != nil {
		return m.ReplyFn(ctx, in)
	}
	return m.Response, m.Err
}

// MockCaptionService implements service.CaptionService for testing
type MockCaptionService struct {
	CaptionsFn func(ctx context.Context, videoID, language string) (*service.Captions, error)

	Result *service.Captions
	Err    error

	mu       sync.Mutex
	VideoIDs []string
}

// Captions implements the service.CaptionService interface
func (m *MockCaptionService) Captions(ctx context.Context, videoID, language string) (*service.Captions, error) {
	m.mu.Lock()
	m.VideoIDs = append(m.VideoIDs, videoID)
	m.mu.Unlock()

	if m.CaptionsFn != nil {
		return m.CaptionsFn(ctx, videoID, language)
	}
	return m.Result, m.Err
}
