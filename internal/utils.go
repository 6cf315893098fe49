package internal

import (
	"strings"

	"github.com/google/uuid"
)

// Version is the application version reported by the CLI
const Version = "0.3.0"

// idLength is how many characters of a UUID make up a phrase ID
const idLength = 5

// GenerateID creates a short random identifier for a phrase.
// Format: first five characters of a random UUID
func GenerateID() string {
	return uuid.NewString()[:idLength]
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// isAlphaNumeric checks if a rune is an ASCII letter or digit
func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
