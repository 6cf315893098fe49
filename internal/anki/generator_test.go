package anki

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"codeberg.org/snonux/learner/internal/phrase"
)

func testPhrases() []phrase.Phrase {
	return []phrase.Phrase{
		phrase.New("dom", "house", "p1"),
		phrase.New("Łódź", "Lodz, Lodsch", "p2").WithGroup(3),
	}
}

func TestDefaultGeneratorOptions(t *testing.T) {
	opts := DefaultGeneratorOptions()

	if opts.OutputPath != "anki_import.csv" {
		t.Errorf("Expected output path 'anki_import.csv', got '%s'", opts.OutputPath)
	}
	if !opts.IncludeHeaders {
		t.Error("Expected IncludeHeaders to be true")
	}
}

func TestNewGenerator(t *testing.T) {
	gen := NewGenerator(nil)
	if gen.options == nil {
		t.Fatal("Generator options should not be nil")
	}

	gen = NewGenerator(&GeneratorOptions{OutputPath: "custom.csv"})
	if gen.options.OutputPath != "custom.csv" {
		t.Errorf("Expected custom output path, got '%s'", gen.options.OutputPath)
	}
}

func TestCardFromPhrase(t *testing.T) {
	card := CardFromPhrase(phrase.New("dom", "house", "p1").WithGroup(2))

	want := Card{ID: "p1", Original: "dom", Translated: "house", Group: 2}
	if card != want {
		t.Errorf("CardFromPhrase = %+v, want %+v", card, want)
	}
	if !reflect.DeepEqual(card.Tags(), []string{"group_2"}) {
		t.Errorf("Tags() = %v", card.Tags())
	}

	if tags := CardFromPhrase(phrase.New("a", "b", "c")).Tags(); tags != nil {
		t.Errorf("Expected no tags for ungrouped card, got %v", tags)
	}
}

func TestWriteCSV(t *testing.T) {
	gen := NewGenerator(nil)
	gen.AddPhrases(testPhrases())

	var buf bytes.Buffer
	if err := gen.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	want := [][]string{
		{"Original", "Translated", "ID", "Group"},
		{"dom", "house", "p1", "-1"},
		{"Łódź", "Lodz, Lodsch", "p2", "3"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("CSV records = %v, want %v", records, want)
	}
}

func TestWriteCSV_NoHeaders(t *testing.T) {
	gen := NewGenerator(&GeneratorOptions{IncludeHeaders: false})
	gen.AddCard(Card{ID: "x", Original: "a", Translated: "b", Group: -1})

	var buf bytes.Buffer
	if err := gen.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if buf.String() != "a,b,x,-1\n" {
		t.Errorf("Unexpected CSV: %q", buf.String())
	}
}

func TestGenerateCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	gen := NewGenerator(&GeneratorOptions{OutputPath: path, IncludeHeaders: true})
	gen.AddPhrases(testPhrases())

	if err := gen.GenerateCSV(); err != nil {
		t.Fatalf("GenerateCSV failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("Original,Translated,ID,Group\n")) {
		t.Errorf("Unexpected CSV content: %q", content)
	}
}

func TestGenerateCSV_InvalidPath(t *testing.T) {
	gen := NewGenerator(&GeneratorOptions{OutputPath: "/nonexistent/dir/out.csv"})
	if err := gen.GenerateCSV(); err == nil {
		t.Error("Expected error for invalid path")
	}
}

func TestStats(t *testing.T) {
	gen := NewGenerator(nil)
	gen.AddPhrases(testPhrases())

	total, grouped := gen.Stats()
	if total != 2 || grouped != 1 {
		t.Errorf("Stats() = %d, %d; want 2, 1", total, grouped)
	}
	if len(gen.GetCards()) != 2 {
		t.Errorf("Expected 2 cards, got %d", len(gen.GetCards()))
	}
}
