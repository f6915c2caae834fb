package service

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/polyglot-api/internal/domain"
	"github.com/phrazzld/polyglot-api/internal/generation"
	"github.com/stretchr/testify/mock"
)

// MockHistoryStore mocks store.HistoryStore.
type MockHistoryStore struct {
	mock.Mock
}

func (m *MockHistoryStore) Create(ctx context.Context, entry *domain.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.HistoryEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryEntry), args.Error(1)
}

func (m *MockHistoryStore) List(ctx context.Context, limit int) ([]*domain.HistoryEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.HistoryEntry), args.Error(1)
}

func (m *MockHistoryStore) Stats(ctx context.Context) (domain.HistoryStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.HistoryStats), args.Error(1)
}

type recordedTranslation struct {
	kind                              domain.HistoryKind
	text, source, target, translation string
}

// fakeRecorder captures Record calls.
type fakeRecorder struct {
	mu    sync.Mutex
	calls []recordedTranslation
	err   error
}

func (f *fakeRecorder) Record(_ context.Context, kind domain.HistoryKind, text, source, target, translation string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedTranslation{kind, text, source, target, translation})
	return f.err
}

// fakeTranscriber returns a fixed transcript and remembers the request.
type fakeTranscriber struct {
	text  string
	err   error
	req   generation.TranscriptionRequest
	audio []byte
}

func (f *fakeTranscriber) Transcribe(_ context.Context, req generation.TranscriptionRequest) (string, error) {
	f.req = req
	if req.Audio != nil {
		f.audio, _ = io.ReadAll(req.Audio)
	}
	return f.text, f.err
}
