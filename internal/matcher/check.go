package matcher

import (
	"errors"
	"fmt"

	"codeberg.org/snonux/learner/internal/phrase"
)

// ErrInvalidDirection is returned for a direction other than "to" or "from"
var ErrInvalidDirection = errors.New("invalid direction")

// Direction selects which side of a phrase an answer is checked against
type Direction string

const (
	// To checks the answer against the original text
	To Direction = "to"
	// From checks the answer against the translated text
	From Direction = "from"
)

// Valid reports whether d is To or From
func (d Direction) Valid() bool {
	return d == To || d == From
}

// ParseDirection validates a direction given as text
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q (use %q or %q)", ErrInvalidDirection, s, To, From)
	}
	return d, nil
}

// Expected returns the side of p an answer in direction d must match
func (d Direction) Expected(p phrase.Phrase) string {
	if d == To {
		return p.OriginalText
	}
	return p.TranslatedText
}

// Prompt returns the side of p shown to the learner in direction d
func (d Direction) Prompt(p phrase.Phrase) string {
	if d == To {
		return p.TranslatedText
	}
	return p.OriginalText
}

// CheckTranslation checks translation against p with the default matcher
func CheckTranslation(p phrase.Phrase, translation string, direction Direction) (bool, error) {
	return DefaultMatcher.Check(p, translation, direction)
}

// Check normalizes both sides and compares them section by section.
// p is received by value and never modified.
func (m Matcher) Check(p phrase.Phrase, translation string, direction Direction) (bool, error) {
	if !direction.Valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidDirection, string(direction))
	}

	candidate := Normalize(translation)
	reference := Normalize(direction.Expected(p))
	return m.Match(candidate, reference), nil
}
