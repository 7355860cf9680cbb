package llm

import (
	"context"
	"errors"
	"time"

	"project-finder-be/internal/pkg/apperrors"

	"github.com/sony/gobreaker/v2"
)

// BreakerProvider wraps an LLMProvider with a circuit breaker so a
// misbehaving model backend sheds load fast instead of queueing requests
// behind long timeouts.
type BreakerProvider struct {
	inner   LLMProvider
	breaker *gobreaker.CircuitBreaker[string]
}

var _ LLMProvider = &BreakerProvider{}

func NewBreakerProvider(inner LLMProvider) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:    "llm",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
	return &BreakerProvider{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[string](settings),
	}
}

func (p *BreakerProvider) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	result, err := p.breaker.Execute(func() (string, error) {
		return p.inner.Chat(ctx, history, options...)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", apperrors.Unavailable("model backend is unavailable", err)
		}
		return "", err
	}
	return result, nil
}

func (p *BreakerProvider) Generate(ctx context.Context, prompt string, options ...Option) (string, error) {
	return p.Chat(ctx, []Message{{Role: "user", Content: prompt}}, options...)
}
