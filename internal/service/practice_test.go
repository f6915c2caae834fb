package service

import (
	"context"
	"testing"

	"github.com/phrazzld/polyglot-api/internal/domain"
	"github.com/phrazzld/polyglot-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validGame = `{
  "type": "vocabulary-match",
  "setup": {"instructions": "Match them", "time_limit": 60},
  "content": {
    "rounds": [
      {
        "items": ["el perro", "el gato"],
        "correct_matches": {"el gato": "cat", "el perro": "dog"},
        "hints": ["animals"],
        "points": 20,
        "context": "Pets at home",
        "explanation": "Common pets",
        "difficulty": "A2"
      },
      {
        "items": ["la casa"],
        "correct_matches": {"la casa": "house"}
      },
      {"items": [], "correct_matches": {}}
    ]
  }
}`

func newPracticeService(t *testing.T, c generation.Completer) PracticeService {
	t.Helper()
	svc, err := NewPracticeService(c, nil)
	require.NoError(t, err)
	return svc
}

func TestPracticeGenerate_Validation(t *testing.T) {
	svc := newPracticeService(t, generation.NewMockCompleter())

	_, err := svc.Generate(context.Background(), PracticeInput{Language: "es", Level: "A1", Type: "crossword"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, err, domain.ErrInvalidExerciseType)

	_, err = svc.Generate(context.Background(), PracticeInput{Language: "es", Level: "Z9", Type: "fill-blanks"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)
}

func TestPracticeGenerate_TransformsRounds(t *testing.T) {
	mc := generation.NewMockCompleter(generation.MockResponse{Content: validGame})
	svc := newPracticeService(t, mc)

	set, err := svc.Generate(context.Background(), PracticeInput{Language: "Spanish", Level: "B1", Type: "vocabulary-match"})

	require.NoError(t, err)
	require.Len(t, set.Exercises, 2)

	first := set.Exercises[0]
	assert.Equal(t, domain.ExerciseVocabularyMatch, first.Type)
	assert.Equal(t, "Pets at home", first.Question)
	assert.Equal(t, []string{"el perro", "el gato"}, first.Options)
	assert.Equal(t, "dog", first.CorrectAnswer)
	assert.Equal(t, "A2", first.Difficulty)
	assert.Equal(t, 20, first.Points)
	assert.Equal(t, []string{"animals"}, first.Hints)

	second := set.Exercises[1]
	assert.Equal(t, "Match the following", second.Question)
	assert.Equal(t, "house", second.CorrectAnswer)
	assert.Equal(t, "A1", second.Difficulty)
	assert.Equal(t, 10, second.Points)

	assert.Equal(t, []domain.VocabularyItem{
		{Word: "el perro", Translation: "dog", Usage: "Pets at home"},
		{Word: "el gato", Translation: "cat", Usage: "Pets at home"},
		{Word: "la casa", Translation: "house", Usage: ""},
	}, set.Vocabulary)

	req := mc.LastRequest()
	assert.True(t, req.JSON)
	assert.Contains(t, req.Messages[0].Content, "vocabulary-match game for a B1 learner of Spanish")
}

func TestPracticeGenerate_Fallbacks(t *testing.T) {
	tests := []struct {
		name     string
		response generation.MockResponse
		language string
		typ      string
		question string
	}{
		{"malformed json", generation.MockResponse{Content: "{broken"}, "es", "vocabulary-match", "Match the words with their meanings"},
		{"missing rounds", generation.MockResponse{Content: `{"content": {}}`}, "fr", "vocabulary-match", "Match the words with their meanings"},
		{"rounds not a list", generation.MockResponse{Content: `{"content": {"rounds": "x"}}`}, "en", "sentence-builder", "Arrange the words to form a complete sentence"},
		{"zero playable rounds", generation.MockResponse{Content: `{"content": {"rounds": [{}]}}`}, "de", "memory-cards", "Practice German memory-cards"},
		{"upstream error", generation.MockResponse{Err: generation.ErrRetriesExhausted}, "ja", "word-puzzle", "Practice Japanese word-puzzle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newPracticeService(t, generation.NewMockCompleter(tt.response))

			set, err := svc.Generate(context.Background(), PracticeInput{Language: tt.language, Level: "A1", Type: tt.typ})

			require.NoError(t, err)
			require.NotEmpty(t, set.Exercises)
			assert.Equal(t, tt.question, set.Exercises[0].Question)
			assert.NotEmpty(t, set.Vocabulary)
		})
	}
}

func TestFirstMatch(t *testing.T) {
	assert.Equal(t, "b", firstMatch([]string{"x", "y"}, map[string]string{"y": "b", "x2": "a"}))
	assert.Equal(t, "a", firstMatch(nil, map[string]string{"k2": "z", "k1": "a"}))
	assert.Equal(t, "", firstMatch([]string{"x"}, nil))
}
