package service

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/polyglot-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHistoryService_Record(t *testing.T) {
	ctx := context.Background()
	st := new(MockHistoryStore)
	st.On("Create", ctx, mock.MatchedBy(func(e *domain.HistoryEntry) bool {
		return e.Kind == domain.HistoryKindText && e.SourceText == "hello" && e.TargetLang == "es"
	})).Return(nil).Once()
	svc := NewHistoryService(st, nil)

	require.NoError(t, svc.Record(ctx, domain.HistoryKindText, "hello", "en", "es", "hola"))
	st.AssertExpectations(t)
}

func TestHistoryService_RecordErrors(t *testing.T) {
	ctx := context.Background()

	st := new(MockHistoryStore)
	svc := NewHistoryService(st, nil)
	err := svc.Record(ctx, domain.HistoryKindText, "", "en", "es", "")
	assert.ErrorIs(t, err, domain.ErrEmptyContent)
	st.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	failing := new(MockHistoryStore)
	failing.On("Create", ctx, mock.Anything).Return(errors.New("disk full"))
	err = NewHistoryService(failing, nil).Record(ctx, domain.HistoryKindVoice, "hi", "en", "fr", "salut")
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "record", svcErr.Operation)
}

func TestHistoryService_List(t *testing.T) {
	ctx := context.Background()
	entries := []*domain.HistoryEntry{{SourceText: "hello"}}

	tests := []struct {
		name      string
		requested int
		wantLimit int
	}{
		{"default", 0, DefaultHistoryLimit},
		{"negative", -3, DefaultHistoryLimit},
		{"in range", 5, 5},
		{"clamped", 500, MaxHistoryLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := new(MockHistoryStore)
			st.On("List", ctx, tt.wantLimit).Return(entries, nil).Once()

			got, err := NewHistoryService(st, nil).List(ctx, tt.requested)

			require.NoError(t, err)
			assert.Equal(t, entries, got)
			st.AssertExpectations(t)
		})
	}
}

func TestHistoryService_Achievements(t *testing.T) {
	ctx := context.Background()
	st := new(MockHistoryStore)
	st.On("Stats", ctx).Return(domain.HistoryStats{Total: 1, Languages: []string{"es"}}, nil)

	summary, err := NewHistoryService(st, nil).Achievements(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Stats.Total)
	require.NotEmpty(t, summary.Badges)
	assert.Equal(t, "first-translation", summary.Badges[0].ID)
	assert.True(t, summary.Badges[0].Earned)

	failing := new(MockHistoryStore)
	failing.On("Stats", ctx).Return(domain.HistoryStats{}, errors.New("locked"))
	_, err = NewHistoryService(failing, nil).Achievements(ctx)
	assert.Error(t, err)
}

func TestHistoryService_Disabled(t *testing.T) {
	ctx := context.Background()
	svc := NewHistoryService(nil, nil)

	assert.NoError(t, svc.Record(ctx, domain.HistoryKindText, "hello", "en", "es", "hola"))

	_, err := svc.List(ctx, 10)
	assert.ErrorIs(t, err, ErrHistoryDisabled)

	_, err = svc.Achievements(ctx)
	assert.ErrorIs(t, err, ErrHistoryDisabled)
}

func TestNewServiceError_PassesSentinelsThrough(t *testing.T) {
	assert.Nil(t, newServiceError("x", "op", "msg", nil))
	assert.Equal(t, ErrCaptionsNotFound, newServiceError("x", "op", "msg", ErrCaptionsNotFound))

	err := newServiceError("learning", "lesson", "boom", errors.New("inner"))
	assert.Equal(t, "learning service lesson failed: boom: inner", err.Error())
}
