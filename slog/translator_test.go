package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mwielbut/noveltrans"
	"github.com/mwielbut/noveltrans/mock"
	ntransslog "github.com/mwielbut/noveltrans/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingTranslator_Translate(t *testing.T) {
	t.Parallel()

	t.Run("logs call with word count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Translator{
			TranslateFn: func(_ context.Context, _ noveltrans.TranslationRequest, _ noveltrans.RetryFunc) (string, error) {
				return "translated", nil
			},
		}

		tr := ntransslog.NewLoggingTranslator(inner, logger)
		out, err := tr.Translate(context.Background(), noveltrans.TranslationRequest{
			Text:       "three little words",
			SourceLang: "Chinese",
			TargetLang: "English",
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, "translated", out)
		output := buf.String()
		assert.Contains(t, output, "translate")
		assert.Contains(t, output, "source=Chinese")
		assert.Contains(t, output, "target=English")
		assert.Contains(t, output, "words=3")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs retry events and forwards them", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Translator{
			TranslateFn: func(_ context.Context, _ noveltrans.TranslationRequest, retry noveltrans.RetryFunc) (string, error) {
				retry(noveltrans.RetryEvent{
					CallID:      "call-1",
					Attempt:     1,
					MaxAttempts: 4,
					Delay:       2 * time.Second,
					Err:         noveltrans.Errorf(noveltrans.ERATELIMITED, "quota"),
				})
				return "translated", nil
			},
		}

		var forwarded []noveltrans.RetryEvent
		tr := ntransslog.NewLoggingTranslator(inner, logger)
		_, err := tr.Translate(context.Background(), noveltrans.TranslationRequest{
			Text:       "text",
			TargetLang: "English",
		}, func(e noveltrans.RetryEvent) { forwarded = append(forwarded, e) })

		require.NoError(t, err)
		require.Len(t, forwarded, 1)
		assert.Equal(t, "call-1", forwarded[0].CallID)
		output := buf.String()
		assert.Contains(t, output, "translate retry")
		assert.Contains(t, output, "attempt=1")
		assert.Contains(t, output, "call=call-1")
	})
}
