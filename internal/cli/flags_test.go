package cli

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Backend", flags.Backend, "file"},
		{"Translator", flags.Translator, "none"},
		{"SourceLang", flags.SourceLang, "Polish"},
		{"TargetLang", flags.TargetLang, "German"},
		{"Policy", flags.Policy, "all"},
		{"Group", flags.Group, -1},
		{"Direction", flags.Direction, "to"},
		{"Rounds", flags.Rounds, 10},
		{"DeckName", flags.DeckName, "Learner Phrases"},
		{"Format", flags.Format, "apkg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	if flags.CSV {
		t.Error("CSV should default to false")
	}
	if flags.CfgFile != "" || flags.ID != "" || flags.OutputPath != "" {
		t.Error("Expected empty string defaults for CfgFile, ID and OutputPath")
	}
}

func TestDefaultDataDir(t *testing.T) {
	dir := DefaultDataDir()

	if !strings.HasSuffix(dir, filepath.Join(".local", "state", "learner", "data")) {
		t.Errorf("Unexpected default data dir: %s", dir)
	}
}
