package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrMissingAPIKey is returned when a provider has no API key configured
var ErrMissingAPIKey = errors.New("API key not found")

// ErrUnknownProvider is returned by New for an unsupported provider name
var ErrUnknownProvider = errors.New("unknown translation provider")

// Provider names accepted by New
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

// Translator translates text between two languages
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// New creates the translator for provider wrapped with a cache and a
// circuit breaker. ProviderNone returns a nil Translator.
func New(provider, apiKey string) (Translator, error) {
	var base Translator
	switch provider {
	case ProviderOpenAI:
		base = NewOpenAITranslator(apiKey)
	case ProviderGemini:
		base = NewGeminiTranslator(apiKey)
	case ProviderNone, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}

	return NewCachingTranslator(NewBreakerTranslator(provider, base)), nil
}

// buildPrompt asks for a bare translation, several variants comma separated
func buildPrompt(text, from, to string) string {
	return fmt.Sprintf("Translate the %s phrase '%s' to %s. "+
		"If several translations are equally common, separate them with commas. "+
		"Respond with only the translation, nothing else.", from, text, to)
}

// cleanResponse strips whitespace and quotes models like to add
func cleanResponse(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}
