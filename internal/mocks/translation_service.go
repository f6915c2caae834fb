package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/polyglot-api/internal/generation"
	"github.com/phrazzld/polyglot-api/internal/service"
)

// MockTranslationService implements service.TranslationService for testing
type MockTranslationService struct {
	// Custom behavior functions
	TranslateFn        func(ctx context.Context, in service.TranslateInput) (generation.Object, error)
	TranslateVoiceFn   func(ctx context.Context, in service.VoiceInput) (*service.VoiceTranslation, error)
	GenerateExamplesFn func(ctx context.Context, in service.TranslateInput) (generation.Object, error)

	// Default response values
	Result generation.Object
	Voice  *service.VoiceTranslation
	Err    error

	// Call tracking for verification
	mu             sync.Mutex
	TranslateCalls []service.TranslateInput
	VoiceCalls     []service.VoiceInput
	ExamplesCalls  []service.TranslateInput
}

// Translate implements the service.TranslationService interface
func (m *MockTranslationService) Translate(ctx context.Context, in service.TranslateInput) (generation.Object, error) {
	m.mu.Lock()
	m.TranslateCalls = append(m.TranslateCalls, in)
	m.mu.Unlock()

	if m.TranslateFn != nil {
		return m.TranslateFn(ctx, in)
	}
	return m.Result, m.Err
}

// TranslateVoice implements the service.TranslationService interface
func (m *MockTranslationService) TranslateVoice(
	ctx context.Context,
	in service.VoiceInput,
) (*service.VoiceTranslation, error) {
	m.mu.Lock()
	m.VoiceCalls = append(m.VoiceCalls, in)
	m.mu.Unlock()

	if m.TranslateVoiceFn != nil {
		return m.TranslateVoiceFn(ctx, in)
	}
	return m.Voice, m.Err
}

// GenerateExamples implements the service.TranslationService interface
func (m *MockTranslationService) GenerateExamples(
	ctx context.Context,
	in service.TranslateInput,
) (generation.Object, error) {
	m.mu.Lock()
	m.ExamplesCalls = append(m.ExamplesCalls, in)
	m.mu.Unlock()

	if m.GenerateExamplesFn != nil {
		return m.GenerateExamplesFn(ctx, in)
	}
	return m.Result, m.Err
}

// CallCount returns the total number of calls across all methods.
func (m *MockTranslationService) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.TranslateCalls) + len(m.VoiceCalls) + len(m.ExamplesCalls)
}
