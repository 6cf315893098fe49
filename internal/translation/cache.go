package translation

import (
	"context"
	"strings"
	"sync"
)

// TranslationCache stores translations in memory for batch operations
type TranslationCache struct {
	mu           sync.RWMutex
	translations map[string]string
}

// NewTranslationCache creates a new translation cache
func NewTranslationCache() *TranslationCache {
	return &TranslationCache{
		translations: make(map[string]string),
	}
}

func cacheKey(text, from, to string) string {
	return strings.Join([]string{from, to, text}, "\x1f")
}

// Add adds a translation to the cache
func (tc *TranslationCache) Add(text, from, to, translation string) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.translations[cacheKey(text, from, to)] = translation
}

// Get retrieves a translation from the cache
func (tc *TranslationCache) Get(text, from, to string) (string, bool) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	translation, ok := tc.translations[cacheKey(text, from, to)]
	return translation, ok
}

// Len returns the number of cached translations
func (tc *TranslationCache) Len() int {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return len(tc.translations)
}

// CachingTranslator answers repeated requests from a TranslationCache
type CachingTranslator struct {
	inner Translator
	cache *TranslationCache
}

// NewCachingTranslator wraps inner with an empty cache
func NewCachingTranslator(inner Translator) *CachingTranslator {
	return &CachingTranslator{
		inner: inner,
		cache: NewTranslationCache(),
	}
}

// Translate returns a cached translation or asks the wrapped translator.
// Failures are not cached.
func (c *CachingTranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	if translation, ok := c.cache.Get(text, from, to); ok {
		return translation, nil
	}

	translation, err := c.inner.Translate(ctx, text, from, to)
	if err != nil {
		return "", err
	}

	c.cache.Add(text, from, to, translation)
	return translation, nil
}
