package matcher

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// foldReplacer applies the folding table in a single pass. Patterns are
// disjoint single runes so the order of the table does not change the result.
var foldReplacer = strings.NewReplacer(
	// Polish letters
	"ą", "a",
	"ę", "e",
	"ź", "z",
	"ż", "z",
	"ć", "c",
	"ń", "n",
	"ł", "l",
	"ó", "o",
	"ś", "s",
	// German letters
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
	// Other characters
	".", "",
)

// maxPasses bounds the fixed point iteration in Normalize
const maxPasses = 8

// Normalize returns the canonical comparable form of text.
//
// A single pass composes (NFC), lowercases, trims and folds. Deleting a
// period can expose trailing whitespace ("a .") or join a letter with a
// combining mark, so passes repeat until the text stops changing. This
// keeps Normalize idempotent.
func Normalize(text string) string {
	for i := 0; i < maxPasses; i++ {
		next := normalizeOnce(text)
		if next == text {
			break
		}
		text = next
	}
	return text
}

func normalizeOnce(text string) string {
	text = norm.NFC.String(text)
	text = strings.ToLower(text)
	text = strings.TrimSpace(text)
	return foldReplacer.Replace(text)
}
