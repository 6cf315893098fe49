package cli

import (
	"os"
	"path/filepath"

	"codeberg.org/snonux/learner/internal/matcher"
	"codeberg.org/snonux/learner/internal/phrase"
	"codeberg.org/snonux/learner/internal/processor"
	"codeberg.org/snonux/learner/internal/store"
	"codeberg.org/snonux/learner/internal/translation"
)

// Flags holds all command-line flag values
type Flags struct {
	// Global flags
	CfgFile    string
	Backend    string
	DataDir    string
	Translator string
	SourceLang string
	TargetLang string
	Policy     string

	// add
	ID    string
	Group int

	// check and quiz
	Direction string
	Rounds    int
	Seed      int64

	// export
	DeckName   string
	OutputPath string
	Format     string
	CSV        bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Backend:    store.BackendFile,
		DataDir:    DefaultDataDir(),
		Translator: translation.ProviderNone,
		SourceLang: "Polish",
		TargetLang: "German",
		Policy:     matcher.AllSections.String(),
		Group:      phrase.Ungrouped,
		Direction:  string(matcher.To),
		Rounds:     10,
		DeckName:   "Learner Phrases",
		Format:     processor.FormatAPKG,
	}
}

// DefaultDataDir returns the directory phrases are stored in by default
func DefaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "learner", "data")
}
