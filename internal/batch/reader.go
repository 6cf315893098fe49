package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/learner/internal/phrase"
)

// Entry is one line of a batch file
type Entry struct {
	Line       int
	Original   string
	Translated string
}

// NeedsTranslation reports whether one side must be machine translated
func (e Entry) NeedsTranslation() bool {
	return e.Original == "" || e.Translated == ""
}

// ReadBatchFile reads phrases from a file.
// Supported line formats:
//   - "dom = house"  both sides given
//   - "dom"          original only, translated text is looked up
//   - "= house"      translated only, original text is looked up
//
// Blank lines and lines starting with '#' are skipped. A backslash makes
// the next character literal, so "a \= b = c" has the original "a = b"
// and "\#1" is the phrase "#1" rather than a comment.
func ReadBatchFile(filename string) ([]Entry, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads batch entries from r
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// "dom =" is treated like "dom"; a lone "=" carries nothing
		original, translated := splitLine(line)
		original = unescape(strings.TrimSpace(original))
		translated = unescape(strings.TrimSpace(translated))
		if original == "" && translated == "" {
			continue
		}

		entries = append(entries, Entry{
			Line:       lineNo,
			Original:   original,
			Translated: translated,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}
	return entries, nil
}

// Write writes phrases in the batch file format accepted by Parse.
// Backslashes, '=' in the original text and a leading '#' are escaped so
// every phrase reads back unchanged (apart from surrounding whitespace).
func Write(w io.Writer, phrases []phrase.Phrase) error {
	bw := bufio.NewWriter(w)
	for _, p := range phrases {
		line := escapeOriginal(p.OriginalText) + " = " + escapeTranslated(p.TranslatedText)
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("failed to write batch line: %w", err)
		}
	}
	return bw.Flush()
}

// splitLine cuts line at the first '=' not preceded by a backslash
func splitLine(line string) (string, string) {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '=':
			return line[:i], line[i+1:]
		}
	}
	return line, ""
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

var (
	originalEscaper   = strings.NewReplacer(`\`, `\\`, "=", `\=`)
	translatedEscaper = strings.NewReplacer(`\`, `\\`)
)

func escapeOriginal(s string) string {
	s = originalEscaper.Replace(s)
	if strings.HasPrefix(s, "#") {
		s = `\` + s
	}
	return s
}

func escapeTranslated(s string) string {
	return translatedEscaper.Replace(s)
}
