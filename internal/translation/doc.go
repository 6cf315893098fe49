// Package translation fills in a missing side of a phrase with machine
// translation. Providers are OpenAI chat completions and Google Gemini;
// either can be wrapped with a memory cache and a circuit breaker.
package translation
