package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyProvider fails a set number of times before succeeding.
type flakyProvider struct {
	failures int
	failWith error
	calls    int
}

func (f *flakyProvider) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", f.failWith
	}
	return "ok", nil
}

func (f *flakyProvider) Generate(ctx context.Context, prompt string, options ...Option) (string, error) {
	return f.Chat(ctx, []Message{{Role: "user", Content: prompt}}, options...)
}

func newFastRetry(underlying LLMProvider, maxAttempts int) *retryProvider {
	r := NewRetryProvider(underlying, maxAttempts).(*retryProvider)
	r.pause = 0
	return r
}

func TestRetryRecoversFromTransientFailure(t *testing.T) {
	underlying := &flakyProvider{failures: 2, failWith: NewGenerationError(KindRateLimit, errors.New("429"))}
	provider := newFastRetry(underlying, 3)

	reply, err := provider.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
	assert.Equal(t, 3, underlying.calls)
}

func TestRetryGivesUpAtCeiling(t *testing.T) {
	underlying := &flakyProvider{failures: 10, failWith: NewGenerationError(KindTimeout, errors.New("deadline"))}
	provider := newFastRetry(underlying, 3)

	_, err := provider.Generate(context.Background(), "hello")
	require.Error(t, err)
	assert.Equal(t, 3, underlying.calls)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, KindTimeout, genErr.Kind)
}

func TestRetryDoesNotRetryPermanentFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"auth", NewGenerationError(KindAuth, errors.New("401"))},
		{"bad response", NewGenerationError(KindBadResponse, errors.New("no choices"))},
		{"untagged", errors.New("plain failure")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			underlying := &flakyProvider{failures: 10, failWith: tt.err}
			provider := newFastRetry(underlying, 3)

			_, err := provider.Generate(context.Background(), "hello")
			require.Error(t, err)
			assert.Equal(t, 1, underlying.calls, "permanent failures must not be retried")
		})
	}
}

func TestRetryStopsOnCancelledContext(t *testing.T) {
	underlying := &flakyProvider{failures: 10, failWith: NewGenerationError(KindRateLimit, errors.New("429"))}
	provider := NewRetryProvider(underlying, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.Generate(ctx, "hello")
	require.Error(t, err)
	assert.Equal(t, 1, underlying.calls)
}

func TestRetryDefaultsMaxAttempts(t *testing.T) {
	underlying := &flakyProvider{failures: 10, failWith: NewGenerationError(KindRateLimit, errors.New("429"))}
	provider := newFastRetry(underlying, 0)

	_, err := provider.Generate(context.Background(), "hello")
	require.Error(t, err)
	assert.Equal(t, DefaultMaxAttempts, underlying.calls)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(NewGenerationError(KindRateLimit, errors.New("x"))))
	assert.True(t, IsRetryable(NewGenerationError(KindTimeout, errors.New("x"))))
	assert.False(t, IsRetryable(NewGenerationError(KindAuth, errors.New("x"))))
	assert.False(t, IsRetryable(NewGenerationError(KindBadResponse, errors.New("x"))))
	assert.False(t, IsRetryable(errors.New("untagged")))
}

func TestClassifyHTTPStatus(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorKind
	}{
		{401, KindAuth},
		{403, KindAuth},
		{429, KindRateLimit},
		{408, KindTimeout},
		{504, KindTimeout},
		{500, KindBadResponse},
		{400, KindBadResponse},
	}

	for _, tt := range tests {
		if got := ClassifyHTTPStatus(tt.status); got != tt.want {
			t.Errorf("ClassifyHTTPStatus(%d) = %s, want %s", tt.status, got, tt.want)
		}
	}
}
