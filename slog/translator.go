package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwielbut/noveltrans"
)

// Ensure LoggingTranslator implements noveltrans.Translator.
var _ noveltrans.Translator = (*LoggingTranslator)(nil)

// LoggingTranslator wraps a Translator with per-call and per-retry
// logging. Retry events are logged and then forwarded to the caller's
// observer.
type LoggingTranslator struct {
	next   noveltrans.Translator
	logger *slog.Logger
}

// NewLoggingTranslator creates a new LoggingTranslator.
func NewLoggingTranslator(next noveltrans.Translator, logger *slog.Logger) *LoggingTranslator {
	return &LoggingTranslator{next: next, logger: logger}
}

// Translate delegates to the wrapped translator and logs the call.
func (t *LoggingTranslator) Translate(ctx context.Context, req noveltrans.TranslationRequest, progress noveltrans.RetryFunc) (out string, err error) {
	defer func(begin time.Time) {
		t.logger.Info("translate",
			"source", req.SourceLang,
			"target", req.TargetLang,
			"words", noveltrans.CountWords(req.Text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	observe := func(e noveltrans.RetryEvent) {
		t.logger.Warn("translate retry",
			"call", e.CallID,
			"attempt", e.Attempt,
			"max_attempts", e.MaxAttempts,
			"delay", e.Delay,
			"err", e.Err,
		)
		if progress != nil {
			progress(e)
		}
	}

	return t.next.Translate(ctx, req, observe)
}
