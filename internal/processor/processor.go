package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"codeberg.org/snonux/learner/internal"
	"codeberg.org/snonux/learner/internal/matcher"
	"codeberg.org/snonux/learner/internal/phrase"
	"codeberg.org/snonux/learner/internal/store"
	"codeberg.org/snonux/learner/internal/translation"
)

// ErrNoTranslator is returned when a phrase side is missing and no
// translation provider is configured
var ErrNoTranslator = errors.New("translation needed but no translator configured")

// KeepGroup passed to AddPhrase keeps the group of an updated phrase.
// New phrases end up ungrouped.
const KeepGroup = -2

// maxIDAttempts bounds the retries when a generated id is already taken
const maxIDAttempts = 100

// Config holds everything the processor needs from flags and config file
type Config struct {
	Backend    string // store backend: file, sqlite or memory
	DataDir    string // directory holding the phrase data
	Translator string // translation provider: openai, gemini or none
	OpenAIKey  string
	GeminiKey  string
	SourceLang string // language of the original text
	TargetLang string // language of the translated text
	Policy     matcher.Policy

	Out    io.Writer
	ErrOut io.Writer
}

// Processor handles the phrase commands
type Processor struct {
	cfg        Config
	repo       *store.PhraseStore
	translator translation.Translator
	matcher    matcher.Matcher
	out        io.Writer
	errOut     io.Writer
	newID      func() string
}

// NewProcessor opens the store and sets up the translator
func NewProcessor(cfg Config) (*Processor, error) {
	blob, err := store.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		return nil, err
	}

	apiKey := cfg.OpenAIKey
	if cfg.Translator == translation.ProviderGemini {
		apiKey = cfg.GeminiKey
	}
	translator, err := translation.New(cfg.Translator, apiKey)
	if err != nil {
		blob.Close()
		return nil, err
	}

	p := &Processor{
		cfg:        cfg,
		repo:       store.New(blob),
		translator: translator,
		matcher:    matcher.Matcher{Policy: cfg.Policy, Separator: matcher.DefaultSeparator},
		out:        cfg.Out,
		errOut:     cfg.ErrOut,
		newID:      internal.GenerateID,
	}
	if p.out == nil {
		p.out = os.Stdout
	}
	if p.errOut == nil {
		p.errOut = os.Stderr
	}
	return p, nil
}

// Close releases the store
func (p *Processor) Close() error {
	return p.repo.Close()
}

// Repository exposes the phrase store
func (p *Processor) Repository() store.Repository {
	return p.repo
}

// SetTranslator replaces the translation provider
func (p *Processor) SetTranslator(t translation.Translator) {
	p.translator = t
}

// AddPhrase saves a phrase, translating a missing side first. An empty id
// creates a new phrase with an id not yet in use; an existing id updates the
// texts of that phrase. group KeepGroup leaves the stored group alone.
func (p *Processor) AddPhrase(ctx context.Context, original, translated, id string, group int) (phrase.Phrase, error) {
	original, translated, err := p.completePair(ctx, original, translated)
	if err != nil {
		return phrase.Phrase{}, err
	}

	phrases, err := p.repo.Load(ctx)
	if err != nil {
		return phrase.Phrase{}, err
	}

	if id == "" {
		if id, err = p.freshID(usedIDs(phrases)); err != nil {
			return phrase.Phrase{}, err
		}
	}

	if group == KeepGroup {
		group = phrase.Ungrouped
		for _, existing := range phrases {
			if existing.ID == id {
				group = existing.Group
				break
			}
		}
	}

	ph := phrase.New(original, translated, id).WithGroup(group)
	if err := p.repo.Upsert(ctx, ph); err != nil {
		return phrase.Phrase{}, err
	}
	return ph, nil
}

// freshID returns a generated id that is not in used
func (p *Processor) freshID(used map[string]bool) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		if id := p.newID(); !used[id] {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate an unused phrase id after %d attempts", maxIDAttempts)
}

func usedIDs(phrases []phrase.Phrase) map[string]bool {
	used := make(map[string]bool, len(phrases))
	for _, ph := range phrases {
		used[ph.ID] = true
	}
	return used
}

// RemovePhrase deletes the phrase with id
func (p *Processor) RemovePhrase(ctx context.Context, id string) error {
	return p.repo.RemoveByID(ctx, id)
}

// ListPhrases prints stored phrases, optionally only one group
func (p *Processor) ListPhrases(ctx context.Context, group int, filter bool) error {
	phrases, err := p.repo.Load(ctx)
	if err != nil {
		return err
	}
	if filter {
		phrases = store.FilterGroup(phrases, group)
	}

	if len(phrases) == 0 {
		fmt.Fprintln(p.out, "No phrases stored")
		return nil
	}

	for _, ph := range phrases {
		groupLabel := "-"
		if ph.IsGrouped() {
			groupLabel = fmt.Sprintf("%d", ph.Group)
		}
		fmt.Fprintf(p.out, "%-6s %3s  %s\n", ph.ID, groupLabel, ph)
	}
	fmt.Fprintf(p.out, "\n%d phrase(s)\n", len(phrases))
	return nil
}

// CheckAnswer checks answer against the stored phrase with id
func (p *Processor) CheckAnswer(ctx context.Context, id, answer string, direction matcher.Direction) (bool, error) {
	ph, err := p.repo.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return p.matcher.Check(ph, answer, direction)
}

// completePair fills in an empty side of the pair by machine translation
func (p *Processor) completePair(ctx context.Context, original, translated string) (string, string, error) {
	if original != "" && translated != "" {
		return original, translated, nil
	}
	if original == "" && translated == "" {
		return "", "", fmt.Errorf("%w: both texts are empty", store.ErrInvalidPhrase)
	}
	if p.translator == nil {
		return "", "", ErrNoTranslator
	}

	var err error
	if translated == "" {
		debugf("translating %q from %s to %s", original, p.cfg.SourceLang, p.cfg.TargetLang)
		translated, err = p.translator.Translate(ctx, original, p.cfg.SourceLang, p.cfg.TargetLang)
	} else {
		debugf("translating %q from %s to %s", translated, p.cfg.TargetLang, p.cfg.SourceLang)
		original, err = p.translator.Translate(ctx, translated, p.cfg.TargetLang, p.cfg.SourceLang)
	}
	if err != nil {
		return "", "", fmt.Errorf("translation failed: %w", err)
	}
	return original, translated, nil
}

func debugf(format string, args ...interface{}) {
	if os.Getenv("LEARNER_DEBUG") != "" {
		fmt.Fprintf(os.Stderr, "  [DEBUG] "+format+"\n", args...)
	}
}
