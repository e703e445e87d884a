package noveltrans

import (
	"context"
	"time"
)

// TranslationRequest describes a single translation call.
type TranslationRequest struct {
	// Text is the source text. Line endings are normalized and
	// control characters stripped before the text reaches the model.
	Text string

	// SourceLang and TargetLang are human-readable language labels
	// embedded in the instruction prompt (e.g. "Chinese", "English").
	SourceLang string
	TargetLang string
}

// Validate returns an error if the request cannot be translated.
func (r *TranslationRequest) Validate() error {
	if r.Text == "" {
		return Errorf(EINVALID, "translation text required")
	}
	if r.TargetLang == "" {
		return Errorf(EINVALID, "target language required")
	}
	return nil
}

// RetryEvent reports one retry decision during a translation call.
// Events are emitted before the backoff wait begins.
type RetryEvent struct {
	// CallID identifies the translation call the event belongs to,
	// so observers can follow concurrent calls.
	CallID string

	// Attempt is the number of the attempt that just failed,
	// starting at 1.
	Attempt int

	// MaxAttempts is the total attempt budget for the call.
	MaxAttempts int

	// Delay is the backoff wait before the next attempt.
	Delay time.Duration

	// Err is the retryable failure that triggered the retry.
	Err error
}

// RetryFunc observes retry events. May be nil.
type RetryFunc func(RetryEvent)

// Translator translates text through a remote generation call.
// Implementations are stateless across calls; per-call retry state is
// exposed only through the progress observer.
type Translator interface {
	Translate(ctx context.Context, req TranslationRequest, progress RetryFunc) (string, error)
}

// Generator is the remote generation collaborator a Translator wraps.
// Failures carry structured codes so retryability is decided by
// IsRetryable, never by inspecting error text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
