package domain

import (
	"fmt"
	"strings"
)

// ExerciseType names one of the interactive practice games.
type ExerciseType string

// Supported exercise types.
const (
	ExerciseVocabularyMatch    ExerciseType = "vocabulary-match"
	ExerciseSentenceBuilder    ExerciseType = "sentence-builder"
	ExerciseListeningChallenge ExerciseType = "listening-challenge"
	ExercisePronunciationGame  ExerciseType = "pronunciation-game"
	ExerciseWordPuzzle         ExerciseType = "word-puzzle"
	ExerciseConversationSim    ExerciseType = "conversation-sim"
	ExerciseMemoryCards        ExerciseType = "memory-cards"
	ExerciseFillBlanks         ExerciseType = "fill-blanks"
)

// ExerciseTypes returns every supported exercise type.
func ExerciseTypes() []ExerciseType {
	return []ExerciseType{
		ExerciseVocabularyMatch,
		ExerciseSentenceBuilder,
		ExerciseListeningChallenge,
		ExercisePronunciationGame,
		ExerciseWordPuzzle,
		ExerciseConversationSim,
		ExerciseMemoryCards,
		ExerciseFillBlanks,
	}
}

// Valid reports whether t is a supported exercise type.
func (t ExerciseType) Valid() bool {
	for _, known := range ExerciseTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// ParseExerciseType normalises s into an ExerciseType.
func ParseExerciseType(s string) (ExerciseType, error) {
	t := ExerciseType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidExerciseType, s)
	}
	return t, nil
}

// Exercise is a single round of a practice game.
type Exercise struct {
	Type          ExerciseType      `json:"type"`
	Question      string            `json:"question"`
	Options       []string          `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
	Difficulty    string            `json:"difficulty"`
	Points        int               `json:"points"`
	Pairs         map[string]string `json:"pairs,omitempty"`
	Hints         []string          `json:"hints,omitempty"`
}

// VocabularyItem is a word met during practice, with its meaning and usage.
type VocabularyItem struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
	Usage       string `json:"usage"`
}

// PracticeSet is the payload returned for a practice request.
type PracticeSet struct {
	Exercises  []Exercise       `json:"exercises"`
	Vocabulary []VocabularyItem `json:"vocabulary"`
}

// Empty reports whether the set holds no exercises.
func (p PracticeSet) Empty() bool {
	return len(p.Exercises) == 0
}
