package translation

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiTranslator translates with the Gemini API. The client is created
// on first use because construction needs a context.
type GeminiTranslator struct {
	apiKey string
	model  string
	client *genai.Client
}

// NewGeminiTranslator creates a new Gemini translator
func NewGeminiTranslator(apiKey string) *GeminiTranslator {
	return &GeminiTranslator{
		apiKey: apiKey,
		model:  DefaultGeminiModel,
	}
}

// Translate translates text from one language to another
func (t *GeminiTranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("Gemini %w", ErrMissingAPIKey)
	}

	if t.client == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  t.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return "", fmt.Errorf("failed to create Gemini client: %w", err)
		}
		t.client = client
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.3),
	}

	resp, err := t.client.Models.GenerateContent(ctx, t.model, genai.Text(buildPrompt(text, from, to)), config)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translation := cleanResponse(resp.Text())
	if translation == "" {
		return "", fmt.Errorf("no translation returned")
	}
	return translation, nil
}
