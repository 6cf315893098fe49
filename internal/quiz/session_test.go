package quiz

import (
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/learner/internal/matcher"
	"codeberg.org/snonux/learner/internal/phrase"
	"codeberg.org/snonux/learner/internal/store"
)

func newRepo(t *testing.T, phrases ...phrase.Phrase) store.Repository {
	t.Helper()

	repo := store.New(store.NewMemoryBlob())
	for _, p := range phrases {
		require.NoError(t, repo.Upsert(context.Background(), p))
	}
	return repo
}

func newSession(repo store.Repository, input string, out *bytes.Buffer) *Session {
	return &Session{
		Repo:      repo,
		Rand:      rand.New(rand.NewSource(1)),
		Direction: matcher.From,
		Matcher:   matcher.DefaultMatcher,
		Group:     AnyGroup,
		In:        strings.NewReader(input),
		Out:       out,
	}
}

func TestSession_CountsAnswers(t *testing.T) {
	repo := newRepo(t, phrase.New("dom", "house", "p1"))
	var out bytes.Buffer

	s := newSession(repo, "House\nhome\nhouse.\n", &out)
	result, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Result{Asked: 3, Correct: 2}, result)
	assert.Contains(t, out.String(), "[1] dom: ")
	assert.Contains(t, out.String(), "expected: house")
	assert.Contains(t, out.String(), "Correct: 2 (67%)")
}

func TestSession_DirectionTo(t *testing.T) {
	repo := newRepo(t, phrase.New("Łódź", "Lodz", "p1"))
	var out bytes.Buffer

	s := newSession(repo, "lodz\n", &out)
	s.Direction = matcher.To
	result, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Correct)
	assert.Contains(t, out.String(), "[1] Lodz: ")
}

func TestSession_Rounds(t *testing.T) {
	repo := newRepo(t, phrase.New("dom", "house", "p1"))
	var out bytes.Buffer

	s := newSession(repo, "house\nhouse\nhouse\n", &out)
	s.Rounds = 2
	result, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Asked)
}

func TestSession_Quit(t *testing.T) {
	repo := newRepo(t, phrase.New("dom", "house", "p1"))
	var out bytes.Buffer

	s := newSession(repo, "house\n:q\nhouse\n", &out)
	result, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Asked)
}

func TestSession_GroupFilter(t *testing.T) {
	repo := newRepo(t,
		phrase.New("dom", "house", "p1"),
		phrase.New("kot", "cat", "p2").WithGroup(1),
	)
	var out bytes.Buffer

	s := newSession(repo, "cat\ncat\ncat\n", &out)
	s.Group = 1
	result, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{Asked: 3, Correct: 3}, result)

	s = newSession(repo, "x\n", &out)
	s.Group = 7
	_, err = s.Run(context.Background())
	assert.ErrorIs(t, err, store.ErrEmpty)
}

func TestSession_DeterministicOrder(t *testing.T) {
	repo := newRepo(t,
		phrase.New("a", "1", "p1"),
		phrase.New("b", "2", "p2"),
		phrase.New("c", "3", "p3"),
	)

	run := func() string {
		var out bytes.Buffer
		s := newSession(repo, strings.Repeat("x\n", 8), &out)
		_, err := s.Run(context.Background())
		require.NoError(t, err)
		return out.String()
	}

	assert.Equal(t, run(), run())
}

func TestSession_InvalidDirection(t *testing.T) {
	repo := newRepo(t, phrase.New("dom", "house", "p1"))
	var out bytes.Buffer

	s := newSession(repo, "", &out)
	s.Direction = "sideways"
	_, err := s.Run(context.Background())
	assert.ErrorIs(t, err, matcher.ErrInvalidDirection)
}

func TestSession_EmptyStore(t *testing.T) {
	var out bytes.Buffer
	_, err := newSession(newRepo(t), "", &out).Run(context.Background())
	assert.ErrorIs(t, err, store.ErrEmpty)
}

func TestResult_Score(t *testing.T) {
	assert.Equal(t, 0.0, Result{}.Score())
	assert.Equal(t, 50.0, Result{Asked: 4, Correct: 2}.Score())
}
