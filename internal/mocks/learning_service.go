package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/polyglot-api/internal/domain"
	"github.com/phrazzld/polyglot-api/internal/generation"
	"github.com/phrazzld/polyglot-api/internal/service"
)

// MockLearningService implements service.LearningService for testing
type MockLearningService struct {
	LessonFn  func(ctx context.Context, in service.LessonInput) (generation.Object, error)
	CoursesFn func(ctx context.Context, language string) (domain.Course, error)

	// Default response values
	LessonResult generation.Object
	Course       domain.Course
	Err          error

	mu           sync.Mutex
	LessonCalls  []service.LessonInput
	CoursesCalls []string
}

// Lesson implements the service.LearningService interface
func (m *MockLearningService) Lesson(ctx context.Context, in service.LessonInput) (generation.Object, error) {
	m.mu.Lock()
	m.LessonCalls = append(m.LessonCalls, in)
	m.mu.Unlock()

	if m.LessonFn != nil {
		return m.LessonFn(ctx, in)
	}
	return m.LessonResult, m.Err
}

// Courses implements the service.LearningService interface
func (m *MockLearningService) Courses(ctx context.Context, language string) (domain.Course, error) {
	m.mu.Lock()
	m.CoursesCalls = append(m.CoursesCalls, language)
	m.mu.Unlock()

	if m.CoursesFn != nil {
		return m.CoursesFn(ctx, language)
	}
	return m.Course, m.Err
}
