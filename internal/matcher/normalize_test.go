package matcher

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"polish city with period", "Łódź.", "lodz"},
		{"german umlaut", "Müller", "mueller"},
		{"sharp s", "  Straße  ", "strasse"},
		{"all polish letters", "ZAŻÓŁĆ GĘŚLĄ JAŹŃ", "zazolc gesla jazn"},
		{"german vowels", "Äpfel, Öl, Übung", "aepfel, oel, uebung"},
		{"every period removed", "Dr. Who...", "dr who"},
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"period exposes trailing space", "a .", "a"},
		{"decomposed z with dot above", "z\u0307olw", "zolw"},
		{"decomposed o with acute", "Go\u0301ra", "gora"},
		{"unrelated diacritics kept", "Café", "café"},
		{"inner whitespace kept", "dzień  dobry", "dzien  dobry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Łódź.",
		"Müller",
		" a . ",
		"o.\u0301",
		"\u0105\u0301",
		"Straße, STRASSE",
		"...",
		"İstanbul",
		"",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func FuzzNormalize(f *testing.F) {
	for _, seed := range []string{"Łódź.", "Müller", "a .", "abc, def", "ß"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		once := Normalize(s)
		if twice := Normalize(once); once != twice {
			t.Errorf("Normalize(%q) = %q, Normalize of that = %q", s, once, twice)
		}
	})
}
