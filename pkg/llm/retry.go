package llm

import (
	"context"
	"time"
)

// DefaultMaxAttempts is the fixed client-level retry ceiling. The pipeline
// never retries on top of this.
const DefaultMaxAttempts = 3

// retryProvider wraps an LLMProvider with a fixed retry ceiling.
// Only transient failures (rate limit, timeout) are retried; there is
// no exponential backoff, just a flat pause between attempts.
type retryProvider struct {
	underlying  LLMProvider
	maxAttempts int
	pause       time.Duration
}

var _ LLMProvider = &retryProvider{}

// NewRetryProvider wraps a provider with retry logic. maxAttempts <= 0
// falls back to DefaultMaxAttempts.
func NewRetryProvider(underlying LLMProvider, maxAttempts int) LLMProvider {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &retryProvider{
		underlying:  underlying,
		maxAttempts: maxAttempts,
		pause:       500 * time.Millisecond,
	}
}

func (r *retryProvider) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		reply, err := r.underlying.Chat(ctx, history, options...)
		if err == nil {
			return reply, nil
		}
		lastErr = err
		if !IsRetryable(err) {
			return "", err
		}
		if attempt == r.maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", NewGenerationError(KindTimeout, ctx.Err())
		case <-time.After(r.pause):
		}
	}
	return "", lastErr
}

func (r *retryProvider) Generate(ctx context.Context, prompt string, options ...Option) (string, error) {
	return r.Chat(ctx, []Message{{Role: "user", Content: prompt}}, options...)
}
