package quiz

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"codeberg.org/snonux/learner/internal/matcher"
	"codeberg.org/snonux/learner/internal/phrase"
	"codeberg.org/snonux/learner/internal/store"
)

// AnyGroup disables group filtering
const AnyGroup = -2

// QuitCommand ends a session early
const QuitCommand = ":q"

// Session holds the settings of one drill
type Session struct {
	Repo      store.Repository
	Rand      *rand.Rand
	Direction matcher.Direction
	Matcher   matcher.Matcher
	Group     int // AnyGroup, phrase.Ungrouped or a group tag
	Rounds    int // 0 means until input ends or QuitCommand
	In        io.Reader
	Out       io.Writer
}

// Result counts the answers of a session
type Result struct {
	Asked   int
	Correct int
}

// Score returns the share of correct answers in percent
func (r Result) Score() float64 {
	if r.Asked == 0 {
		return 0
	}
	return float64(r.Correct) * 100 / float64(r.Asked)
}

// Run asks questions until Rounds is reached, the input ends or the
// learner types QuitCommand
func (s *Session) Run(ctx context.Context) (Result, error) {
	var result Result

	if !s.Direction.Valid() {
		return result, fmt.Errorf("%w: %q", matcher.ErrInvalidDirection, string(s.Direction))
	}

	phrases, err := s.candidates(ctx)
	if err != nil {
		return result, err
	}

	scanner := bufio.NewScanner(s.In)
	for s.Rounds == 0 || result.Asked < s.Rounds {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		p, err := store.Pick(phrases, s.Rand)
		if err != nil {
			return result, err
		}

		fmt.Fprintf(s.Out, "[%d] %s: ", result.Asked+1, s.Direction.Prompt(p))
		if !scanner.Scan() {
			fmt.Fprintln(s.Out)
			break
		}
		answer := scanner.Text()
		if strings.TrimSpace(answer) == QuitCommand {
			break
		}

		ok, err := s.Matcher.Check(p, answer, s.Direction)
		if err != nil {
			return result, err
		}

		result.Asked++
		if ok {
			result.Correct++
			fmt.Fprintln(s.Out, "  ✓ Correct")
		} else {
			fmt.Fprintf(s.Out, "  ✗ Wrong, expected: %s\n", s.Direction.Expected(p))
		}
	}

	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("failed to read answer: %w", err)
	}

	fmt.Fprintf(s.Out, "\n=== Quiz Summary ===\n")
	fmt.Fprintf(s.Out, "Answered: %d\n", result.Asked)
	fmt.Fprintf(s.Out, "Correct: %d (%.0f%%)\n", result.Correct, result.Score())
	fmt.Fprintf(s.Out, "====================\n")

	return result, nil
}

func (s *Session) candidates(ctx context.Context) ([]phrase.Phrase, error) {
	phrases, err := s.Repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if s.Group != AnyGroup {
		phrases = store.FilterGroup(phrases, s.Group)
	}
	if len(phrases) == 0 {
		return nil, store.ErrEmpty
	}
	return phrases, nil
}
