package translation

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerTranslator stops calling a failing provider for a while
type BreakerTranslator struct {
	inner Translator
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerTranslator wraps inner. Three consecutive failures open the
// circuit for 30 seconds.
func NewBreakerTranslator(name string, inner Translator) *BreakerTranslator {
	return newBreakerTranslator(name, inner, 3, 30*time.Second)
}

func newBreakerTranslator(name string, inner Translator, maxFailures uint32, timeout time.Duration) *BreakerTranslator {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if os.Getenv("LEARNER_DEBUG") != "" {
				fmt.Fprintf(os.Stderr, "[DEBUG] translator %s: %s -> %s\n", name, from, to)
			}
		},
	}

	return &BreakerTranslator{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate calls the wrapped translator unless the circuit is open
func (b *BreakerTranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.Translate(ctx, text, from, to)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// State returns the current circuit state
func (b *BreakerTranslator) State() gobreaker.State {
	return b.cb.State()
}
