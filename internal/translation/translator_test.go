package translation

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

// fakeTranslator counts calls and fails while err is set
type fakeTranslator struct {
	calls int
	err   error
}

func (f *fakeTranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "translated " + text, nil
}

func TestNew(t *testing.T) {
	tests := []struct {
		provider string
		wantNil  bool
		wantErr  bool
	}{
		{ProviderOpenAI, false, false},
		{ProviderGemini, false, false},
		{ProviderNone, true, false},
		{"", true, false},
		{"deepl", true, true},
	}

	for _, tt := range tests {
		t.Run("provider_"+tt.provider, func(t *testing.T) {
			tr, err := New(tt.provider, "key")
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", tt.provider, err, tt.wantErr)
			}
			if (tr == nil) != tt.wantNil {
				t.Errorf("New(%q) returned %v, wantNil %v", tt.provider, tr, tt.wantNil)
			}
		})
	}

	if _, err := New("deepl", ""); !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("Expected ErrUnknownProvider, got %v", err)
	}
}

func TestNewOpenAITranslator(t *testing.T) {
	translator := NewOpenAITranslator("test-api-key")

	if translator.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", translator.apiKey)
	}
	if translator.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestTranslate_NoAPIKey(t *testing.T) {
	translators := map[string]Translator{
		"openai": NewOpenAITranslator(""),
		"gemini": NewGeminiTranslator(""),
	}

	for name, tr := range translators {
		t.Run(name, func(t *testing.T) {
			_, err := tr.Translate(context.Background(), "dom", "Polish", "English")
			if !errors.Is(err, ErrMissingAPIKey) {
				t.Errorf("Expected ErrMissingAPIKey, got: %v", err)
			}
		})
	}
}

func TestOpenAITranslate_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	translation, err := NewOpenAITranslator(apiKey).Translate(context.Background(), "dom", "Polish", "English")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	t.Logf("Translation of 'dom': %s", translation)
}

func TestGeminiTranslate_Integration(t *testing.T) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: GEMINI_API_KEY not set")
	}

	translation, err := NewGeminiTranslator(apiKey).Translate(context.Background(), "dom", "Polish", "English")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	t.Logf("Translation of 'dom': %s", translation)
}

func TestCleanResponse(t *testing.T) {
	tests := map[string]string{
		"  house\n":     "house",
		`"house"`:       "house",
		`'home, house'`: "home, house",
		"":              "",
	}

	for input, want := range tests {
		if got := cleanResponse(input); got != want {
			t.Errorf("cleanResponse(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTranslationCache(t *testing.T) {
	cache := NewTranslationCache()

	if _, found := cache.Get("dom", "pl", "en"); found {
		t.Error("Expected not found in empty cache")
	}

	cache.Add("dom", "pl", "en", "house")
	cache.Add("dom", "en", "pl", "dom?")

	translation, found := cache.Get("dom", "pl", "en")
	if !found || translation != "house" {
		t.Errorf("Expected 'house', got %q (found=%v)", translation, found)
	}

	// Direction is part of the key
	translation, _ = cache.Get("dom", "en", "pl")
	if translation != "dom?" {
		t.Errorf("Expected 'dom?', got %q", translation)
	}

	if cache.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", cache.Len())
	}
}

func TestCachingTranslator(t *testing.T) {
	fake := &fakeTranslator{}
	tr := NewCachingTranslator(fake)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := tr.Translate(ctx, "dom", "pl", "en")
		if err != nil {
			t.Fatalf("Translate failed: %v", err)
		}
		if got != "translated dom" {
			t.Errorf("Translate = %q", got)
		}
	}
	if fake.calls != 1 {
		t.Errorf("Expected 1 call to inner translator, got %d", fake.calls)
	}

	// Errors are not cached
	fake.err = errors.New("boom")
	if _, err := tr.Translate(ctx, "kot", "pl", "en"); err == nil {
		t.Error("Expected error")
	}
	fake.err = nil
	if _, err := tr.Translate(ctx, "kot", "pl", "en"); err != nil {
		t.Errorf("Expected success after error cleared, got %v", err)
	}
}

func TestBreakerTranslator_Opens(t *testing.T) {
	fake := &fakeTranslator{err: errors.New("provider down")}
	tr := newBreakerTranslator("test", fake, 2, time.Hour)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := tr.Translate(ctx, "dom", "pl", "en"); err == nil {
			t.Fatal("Expected provider error")
		}
	}

	if tr.State() != gobreaker.StateOpen {
		t.Fatalf("Expected open circuit, got %s", tr.State())
	}

	_, err := tr.Translate(ctx, "dom", "pl", "en")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Expected ErrOpenState, got %v", err)
	}
	if fake.calls != 2 {
		t.Errorf("Expected open circuit to skip provider, got %d calls", fake.calls)
	}
}

func TestBreakerTranslator_PassesThrough(t *testing.T) {
	tr := NewBreakerTranslator("test", &fakeTranslator{})

	got, err := tr.Translate(context.Background(), "dom", "pl", "en")
	if err != nil || got != "translated dom" {
		t.Errorf("Translate = %q, %v", got, err)
	}
}
