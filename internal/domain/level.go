package domain

import (
	"fmt"
	"strings"
)

// Level is a CEFR proficiency level.
type Level string

// Supported proficiency levels, ordered from beginner to mastery.
const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Levels returns every supported level in ascending order.
func Levels() []Level {
	return []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}
}

// Valid reports whether l is one of the supported levels.
func (l Level) Valid() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return true
	default:
		return false
	}
}

// ParseLevel normalises s (case-insensitive, surrounding space ignored)
// into a Level.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return l, nil
}
