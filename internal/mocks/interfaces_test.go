package mocks

import "github.com/phrazzld/polyglot-api/internal/service"

var (
	_ service.TranslationService = (*MockTranslationService)(nil)
	_ service.LearningService    = (*MockLearningService)(nil)
	_ service.PracticeService    = (*MockPracticeService)(nil)
	_ service.ChatbotService     = (*MockChatbotService)(nil)
	_ service.CaptionService     = (*MockCaptionService)(nil)
	_ service.HistoryService     = (*MockHistoryService)(nil)
)
