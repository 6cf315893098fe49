package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/snonux/learner/internal"
	"codeberg.org/snonux/learner/internal/anki"
	"codeberg.org/snonux/learner/internal/archive"
	"codeberg.org/snonux/learner/internal/batch"
	"codeberg.org/snonux/learner/internal/models"
	"codeberg.org/snonux/learner/internal/store"
)

// Export formats
const (
	FormatAPKG = "apkg"
	FormatCSV  = "csv"
	FormatText = "txt"
)

// ExportOptions configures Export
type ExportOptions struct {
	Format     string
	OutputPath string // empty derives a name from DeckName in the current directory
	DeckName   string
	Group      int
	FilterBy   bool // only export Group
}

// Export writes the phrase collection in the requested format and returns
// the output path
func (p *Processor) Export(ctx context.Context, opts ExportOptions) (string, error) {
	phrases, err := p.repo.Load(ctx)
	if err != nil {
		return "", err
	}
	if opts.FilterBy {
		phrases = store.FilterGroup(phrases, opts.Group)
	}
	if len(phrases) == 0 {
		return "", store.ErrEmpty
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = fmt.Sprintf("%s.%s", internal.SanitizeFilename(opts.DeckName), opts.Format)
	}

	switch opts.Format {
	case FormatAPKG, FormatCSV:
		gen := anki.NewGenerator(&anki.GeneratorOptions{
			OutputPath:     outputPath,
			IncludeHeaders: true,
		})
		gen.AddPhrases(phrases)

		if opts.Format == FormatCSV {
			err = gen.GenerateCSV()
		} else {
			err = gen.GenerateAPKG(outputPath, opts.DeckName)
		}
		if err != nil {
			return "", fmt.Errorf("failed to generate %s: %w", opts.Format, err)
		}

		total, grouped := gen.Stats()
		fmt.Fprintf(p.out, "  Exported %d cards (%d grouped)\n", total, grouped)

	case FormatText:
		file, err := os.Create(outputPath)
		if err != nil {
			return "", fmt.Errorf("failed to create export file: %w", err)
		}
		if err := batch.Write(file, phrases); err != nil {
			file.Close()
			return "", err
		}
		if err := file.Close(); err != nil {
			return "", fmt.Errorf("failed to write export file: %w", err)
		}
		fmt.Fprintf(p.out, "  Exported %d phrases\n", len(phrases))

	default:
		return "", fmt.Errorf("unknown export format: %s", opts.Format)
	}

	return outputPath, nil
}

// Archive closes the store and moves the data directory aside
func (p *Processor) Archive() (string, error) {
	if p.cfg.Backend == store.BackendMemory {
		return "", fmt.Errorf("nothing to archive for the memory backend")
	}
	if err := p.Close(); err != nil {
		return "", fmt.Errorf("failed to close store: %w", err)
	}
	return archive.ArchiveData(filepath.Clean(p.cfg.DataDir))
}

// ListModels prints the OpenAI chat models usable for translation
func (p *Processor) ListModels(ctx context.Context) error {
	return models.NewLister(p.cfg.OpenAIKey).ListTranslationModels(ctx, p.out)
}
