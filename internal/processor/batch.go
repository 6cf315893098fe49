package processor

import (
	"context"
	"fmt"

	"codeberg.org/snonux/learner/internal/batch"
	"codeberg.org/snonux/learner/internal/matcher"
	"codeberg.org/snonux/learner/internal/phrase"
)

// ImportStats summarises a batch import
type ImportStats struct {
	Total    int
	Imported int
	Skipped  int
	Errors   int
}

// ImportBatch adds the phrases listed in a batch file. Pairs already
// stored (compared after normalization) are skipped; failing lines are
// reported and do not stop the import.
func (p *Processor) ImportBatch(ctx context.Context, filename string, group int) (ImportStats, error) {
	var stats ImportStats

	entries, err := batch.ReadBatchFile(filename)
	if err != nil {
		return stats, err
	}
	stats.Total = len(entries)

	existing, err := p.repo.Load(ctx)
	if err != nil {
		return stats, err
	}
	known := make(map[string]bool, len(existing))
	for _, ph := range existing {
		known[pairKey(ph.OriginalText, ph.TranslatedText)] = true
	}
	used := usedIDs(existing)

	for i, entry := range entries {
		fmt.Fprintf(p.out, "Importing %d/%d: %s\n", i+1, len(entries), entryLabel(entry))

		original, translated, err := p.completePair(ctx, entry.Original, entry.Translated)
		if err != nil {
			fmt.Fprintf(p.errOut, "Error on line %d: %v\n", entry.Line, err)
			stats.Errors++
			continue
		}

		key := pairKey(original, translated)
		if known[key] {
			fmt.Fprintf(p.out, "  ✓ Skipping - already stored\n")
			stats.Skipped++
			continue
		}

		id, err := p.freshID(used)
		if err != nil {
			return stats, err
		}

		ph := phrase.New(original, translated, id).WithGroup(group)
		if err := p.repo.Upsert(ctx, ph); err != nil {
			fmt.Fprintf(p.errOut, "Error on line %d: %v\n", entry.Line, err)
			stats.Errors++
			continue
		}
		if entry.NeedsTranslation() {
			fmt.Fprintf(p.out, "  Translated: %s\n", ph)
		}
		known[key] = true
		used[id] = true
		stats.Imported++
	}

	fmt.Fprintf(p.out, "\n=== Import Summary ===\n")
	fmt.Fprintf(p.out, "Total lines: %d\n", stats.Total)
	fmt.Fprintf(p.out, "Imported: %d\n", stats.Imported)
	fmt.Fprintf(p.out, "Skipped (already stored): %d\n", stats.Skipped)
	if stats.Errors > 0 {
		fmt.Fprintf(p.out, "Errors: %d\n", stats.Errors)
	}
	fmt.Fprintf(p.out, "======================\n")

	return stats, nil
}

func pairKey(original, translated string) string {
	return matcher.Normalize(original) + "\x00" + matcher.Normalize(translated)
}

func entryLabel(e batch.Entry) string {
	switch {
	case e.Original == "":
		return "= " + e.Translated
	case e.Translated == "":
		return e.Original
	default:
		return e.Original + " = " + e.Translated
	}
}
