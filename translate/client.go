// Package translate implements the translation client. It wraps a
// generation collaborator with input normalization, prompt
// construction, and bounded exponential-backoff retry over the
// application's retryable error codes.
package translate

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mwielbut/noveltrans"
)

const (
	// DefaultMaxRetries is the number of retries after the first
	// attempt when none is configured.
	DefaultMaxRetries = 3

	// DefaultInitialDelay seeds the backoff. The delay doubles after
	// every retry.
	DefaultInitialDelay = 2 * time.Second
)

// Ensure Client implements noveltrans.Translator at compile time.
var _ noveltrans.Translator = (*Client)(nil)

// Client translates text through a Generator, retrying retryable
// failures with exponential backoff. Terminal failures return
// immediately.
type Client struct {
	Generator    noveltrans.Generator
	MaxRetries   int
	InitialDelay time.Duration
}

// NewClient creates a Client with the default retry schedule.
func NewClient(g noveltrans.Generator) *Client {
	return &Client{
		Generator:    g,
		MaxRetries:   DefaultMaxRetries,
		InitialDelay: DefaultInitialDelay,
	}
}

// Translate sends the request through the generator. Each retryable
// failure emits one RetryEvent to progress before the backoff wait;
// the wait honors ctx cancellation. When the attempt budget is
// exhausted the last failure is returned wrapped under EEXHAUSTED,
// which is terminal: the client has already given up, so outer retry
// layers must not try again.
func (c *Client) Translate(ctx context.Context, req noveltrans.TranslationRequest, progress noveltrans.RetryFunc) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	req.Text = NormalizeText(req.Text)
	if strings.TrimSpace(req.Text) == "" {
		return "", noveltrans.Errorf(noveltrans.EINVALID, "translation text required")
	}
	prompt := BuildPrompt(req)

	maxAttempts := c.MaxRetries + 1
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	delay := c.InitialDelay
	callID := uuid.NewString()

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		out, err := c.Generator.Generate(ctx, prompt)
		if err == nil {
			return strings.TrimSpace(out), nil
		}
		lastErr = err

		if !noveltrans.IsRetryable(err) {
			return "", err
		}
		if attempt == maxAttempts {
			break
		}

		if progress != nil {
			progress(noveltrans.RetryEvent{
				CallID:      callID,
				Attempt:     attempt,
				MaxAttempts: maxAttempts,
				Delay:       delay,
				Err:         err,
			})
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return "", noveltrans.WrapErrorf(lastErr, noveltrans.EEXHAUSTED, "max retries exceeded after %d attempts", maxAttempts)
}
