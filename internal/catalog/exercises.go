package catalog

import (
	"fmt"

	"github.com/phrazzld/polyglot-api/internal/domain"
)

type practiceKey struct {
	code string
	typ  domain.ExerciseType
}

type matchWord struct{ word, meaning, usage string }

// matchSet builds a vocabulary-match round from ordered word pairs.
func matchSet(otherLanguage string, words []matchWord, hints ...string) func(domain.Level) domain.PracticeSet {
	return func(domain.Level) domain.PracticeSet {
		options := make([]string, 0, len(words)*2)
		pairs := make(map[string]string, len(words))
		vocab := make([]domain.VocabularyItem, 0, len(words))
		for _, w := range words {
			options = append(options, w.word)
			pairs[w.word] = w.meaning
			vocab = append(vocab, domain.VocabularyItem{Word: w.word, Translation: w.meaning, Usage: w.usage})
		}
		for _, w := range words {
			options = append(options, w.meaning)
		}
		return domain.PracticeSet{
			Exercises: []domain.Exercise{{
				Type:          domain.ExerciseVocabularyMatch,
				Question:      "Match the words with their meanings",
				Options:       options,
				Pairs:         pairs,
				CorrectAnswer: words[0].word + " - " + words[0].meaning,
				Explanation:   "Match each word with its " + otherLanguage + " translation",
				Difficulty:    string(domain.LevelA1),
				Points:        10,
				Hints:         hints,
			}},
			Vocabulary: vocab,
		}
	}
}

var practiceSets = map[practiceKey]func(domain.Level) domain.PracticeSet{
	{"es", domain.ExerciseVocabularyMatch}: matchSet("English", []matchWord{
		{"la familia", "family", "Mi familia es grande"},
		{"la escuela", "school", "Voy a la escuela"},
		{"el trabajo", "work", "El trabajo es importante"},
		{"el restaurante", "restaurant", "Cenamos en el restaurante"},
	}, "Remember that 'el' and 'la' are articles"),
	{"fr", domain.ExerciseVocabularyMatch}: matchSet("English", []matchWord{
		{"la famille", "family", "Ma famille est grande"},
		{"l'école", "school", "Je vais à l'école"},
		{"le travail", "work", "Le travail est important"},
		{"le restaurant", "restaurant", "On dîne au restaurant"},
	}),
	{"en", domain.ExerciseVocabularyMatch}: matchSet("Spanish", []matchWord{
		{"family", "la familia", "My family is big"},
		{"school", "la escuela", "I go to school"},
		{"work", "el trabajo", "Work is important"},
		{"restaurant", "el restaurante", "We dine at the restaurant"},
	}, "Remember the context of each word"),
	{"en", domain.ExerciseSentenceBuilder}: func(level domain.Level) domain.PracticeSet {
		return domain.PracticeSet{
			Exercises: []domain.Exercise{{
				Type:          domain.ExerciseSentenceBuilder,
				Question:      "Arrange the words to form a complete sentence",
				Options:       []string{"I", "would", "like", "to", "learn", "more"},
				CorrectAnswer: "I would like to learn more",
				Explanation:   "This is a polite way to express desire using 'would like to'",
				Difficulty:    string(level),
				Points:        10,
			}},
			Vocabulary: []domain.VocabularyItem{
				{Word: "would like", Translation: "want (polite)", Usage: "I would like to learn more"},
			},
		}
	},
}

// CannedPractice returns a stored practice set for the language and
// exercise type, or a generic placeholder set when none exists.
func CannedPractice(language string, typ domain.ExerciseType, level domain.Level) domain.PracticeSet {
	if !level.Valid() {
		level = domain.LevelA1
	}
	if build, ok := practiceSets[practiceKey{ResolveLanguage(language), typ}]; ok {
		return build(level)
	}
	return FallbackPractice(language, typ)
}

// FallbackPractice is the placeholder set used when nothing better is known.
func FallbackPractice(language string, typ domain.ExerciseType) domain.PracticeSet {
	name := LanguageName(language)
	return domain.PracticeSet{
		Exercises: []domain.Exercise{{
			Type:          typ,
			Question:      fmt.Sprintf("Practice %s %s", name, typ),
			Options:       []string{"Option 1", "Option 2", "Option 3", "Option 4"},
			CorrectAnswer: "Option 1",
			Explanation:   fmt.Sprintf("Basic %s exercise", name),
			Difficulty:    string(domain.LevelA1),
			Points:        10,
		}},
		Vocabulary: []domain.VocabularyItem{
			{Word: "Example", Translation: "Translation", Usage: "Usage example"},
		},
	}
}
