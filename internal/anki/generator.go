package anki

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"codeberg.org/snonux/learner/internal/phrase"
)

// Card represents a single Anki note built from a phrase
type Card struct {
	ID         string // Phrase ID, used for a stable note GUID
	Original   string // Source-language text
	Translated string // Target-language text
	Group      int    // Phrase group, phrase.Ungrouped for none
}

// CardFromPhrase converts a phrase into a card
func CardFromPhrase(p phrase.Phrase) Card {
	return Card{
		ID:         p.ID,
		Original:   p.OriginalText,
		Translated: p.TranslatedText,
		Group:      p.Group,
	}
}

// Tags returns the Anki tags for the card
func (c Card) Tags() []string {
	if c.Group == phrase.Ungrouped {
		return nil
	}
	return []string{fmt.Sprintf("group_%d", c.Group)}
}

// GeneratorOptions configures the Anki export
type GeneratorOptions struct {
	OutputPath     string // Output file path
	IncludeHeaders bool   // Include CSV headers
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		IncludeHeaders: true,
	}
}

// Generator creates Anki-compatible import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// AddPhrases adds one card per phrase
func (g *Generator) AddPhrases(phrases []phrase.Phrase) {
	for _, p := range phrases {
		g.AddCard(CardFromPhrase(p))
	}
}

// GetCards returns the collected cards
func (g *Generator) GetCards() []Card {
	return g.cards
}

// GenerateCSV creates a CSV file for Anki import at the configured path
func (g *Generator) GenerateCSV() error {
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	if err := g.WriteCSV(file); err != nil {
		return err
	}
	return file.Close()
}

// WriteCSV writes the cards as CSV to w
func (g *Generator) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	if g.options.IncludeHeaders {
		headers := []string{"Original", "Translated", "ID", "Group"}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range g.cards {
		record := []string{
			card.Original,
			card.Translated,
			card.ID,
			strconv.Itoa(card.Group),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// GenerateAPKG creates an .apkg file for Anki import
func (g *Generator) GenerateAPKG(outputPath, deckName string) error {
	apkgGen := NewAPKGGenerator(deckName)
	for _, card := range g.cards {
		apkgGen.AddCard(card)
	}
	return apkgGen.GenerateAPKG(outputPath)
}

// Stats returns the number of cards and how many of them are grouped
func (g *Generator) Stats() (totalCards, grouped int) {
	totalCards = len(g.cards)
	for _, card := range g.cards {
		if card.Group != phrase.Ungrouped {
			grouped++
		}
	}
	return
}
