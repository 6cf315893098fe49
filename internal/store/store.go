package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"

	"codeberg.org/snonux/learner/internal/phrase"
)

// StorageKey is the key the phrase list is stored under
const StorageKey = "learner_data"

// Repository is the phrase collection seen by the rest of the application
type Repository interface {
	Load(ctx context.Context) ([]phrase.Phrase, error)
	Get(ctx context.Context, id string) (phrase.Phrase, error)
	Upsert(ctx context.Context, p phrase.Phrase) error
	RemoveByID(ctx context.Context, id string) error
	Random(ctx context.Context, rng *rand.Rand) (phrase.Phrase, error)
}

// PhraseStore implements Repository on top of a Blob
type PhraseStore struct {
	blob Blob
	key  string
}

// New creates a phrase store using the default storage key
func New(blob Blob) *PhraseStore {
	return &PhraseStore{blob: blob, key: StorageKey}
}

// Close closes the underlying blob
func (s *PhraseStore) Close() error {
	return s.blob.Close()
}

// Load returns all stored phrases in insertion order
func (s *PhraseStore) Load(ctx context.Context) ([]phrase.Phrase, error) {
	data, found, err := s.blob.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimSpace(data)
	if !found || len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []phrase.Phrase{}, nil
	}
	if data[0] != '[' {
		return nil, ErrCorruptData
	}

	var phrases []phrase.Phrase
	if err := json.Unmarshal(data, &phrases); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if phrases == nil {
		phrases = []phrase.Phrase{}
	}
	return phrases, nil
}

// Get returns the phrase with the given ID
func (s *PhraseStore) Get(ctx context.Context, id string) (phrase.Phrase, error) {
	phrases, err := s.Load(ctx)
	if err != nil {
		return phrase.Phrase{}, err
	}

	if i := indexOf(phrases, id); i >= 0 {
		return phrases[i], nil
	}
	return phrase.Phrase{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Upsert replaces the phrase with the same ID in place or appends it
func (s *PhraseStore) Upsert(ctx context.Context, p phrase.Phrase) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPhrase, err)
	}

	phrases, err := s.Load(ctx)
	if err != nil {
		return err
	}

	if i := indexOf(phrases, p.ID); i >= 0 {
		phrases[i] = p
	} else {
		phrases = append(phrases, p)
	}

	return s.save(ctx, phrases)
}

// RemoveByID deletes the phrase with the given ID
func (s *PhraseStore) RemoveByID(ctx context.Context, id string) error {
	phrases, err := s.Load(ctx)
	if err != nil {
		return err
	}

	i := indexOf(phrases, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	phrases = append(phrases[:i], phrases[i+1:]...)

	return s.save(ctx, phrases)
}

// Random picks one stored phrase using rng
func (s *PhraseStore) Random(ctx context.Context, rng *rand.Rand) (phrase.Phrase, error) {
	phrases, err := s.Load(ctx)
	if err != nil {
		return phrase.Phrase{}, err
	}
	return Pick(phrases, rng)
}

func (s *PhraseStore) save(ctx context.Context, phrases []phrase.Phrase) error {
	data, err := json.Marshal(phrases)
	if err != nil {
		return fmt.Errorf("failed to encode phrases: %w", err)
	}
	return s.blob.Set(ctx, s.key, data)
}

func indexOf(phrases []phrase.Phrase, id string) int {
	for i, p := range phrases {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Pick returns a uniformly chosen phrase. A nil rng uses the global source.
func Pick(phrases []phrase.Phrase, rng *rand.Rand) (phrase.Phrase, error) {
	if len(phrases) == 0 {
		return phrase.Phrase{}, ErrEmpty
	}

	var i int
	if rng != nil {
		i = rng.Intn(len(phrases))
	} else {
		i = rand.Intn(len(phrases))
	}
	return phrases[i], nil
}

// FilterGroup returns the phrases tagged with group. phrase.Ungrouped
// selects phrases without a group.
func FilterGroup(phrases []phrase.Phrase, group int) []phrase.Phrase {
	result := make([]phrase.Phrase, 0, len(phrases))
	for _, p := range phrases {
		if p.Group == group {
			result = append(result, p)
		}
	}
	return result
}
