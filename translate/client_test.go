package translate_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mwielbut/noveltrans"
	"github.com/mwielbut/noveltrans/mock"
	"github.com/mwielbut/noveltrans/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Translate_SucceedsOnFirstAttempt(t *testing.T) {
	t.Parallel()

	gen := &mock.Generator{
		GenerateFn: func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "Hello world")
			assert.Contains(t, prompt, "English")
			return "  Bonjour le monde  ", nil
		},
	}
	client := &translate.Client{Generator: gen, MaxRetries: 3}

	var events []noveltrans.RetryEvent
	out, err := client.Translate(context.Background(), noveltrans.TranslationRequest{
		Text:       "Hello world",
		SourceLang: "English",
		TargetLang: "French",
	}, func(e noveltrans.RetryEvent) { events = append(events, e) })

	require.NoError(t, err)
	assert.Equal(t, "Bonjour le monde", out)
	assert.Empty(t, events)
}

func TestClient_Translate_RetriesRetryableFailures(t *testing.T) {
	t.Parallel()

	initial := 10 * time.Millisecond
	calls := 0
	gen := &mock.Generator{
		GenerateFn: func(_ context.Context, _ string) (string, error) {
			calls++
			if calls <= 2 {
				return "", noveltrans.Errorf(noveltrans.ERATELIMITED, "quota exhausted")
			}
			return "translated", nil
		},
	}
	client := &translate.Client{Generator: gen, MaxRetries: 3, InitialDelay: initial}

	var events []noveltrans.RetryEvent
	out, err := client.Translate(context.Background(), noveltrans.TranslationRequest{
		Text:       "some text",
		TargetLang: "English",
	}, func(e noveltrans.RetryEvent) { events = append(events, e) })

	require.NoError(t, err)
	assert.Equal(t, "translated", out)
	assert.Equal(t, 3, calls)

	require.Len(t, events, 2)
	assert.Equal(t, 1, events[0].Attempt)
	assert.Equal(t, 2, events[1].Attempt)
	assert.Equal(t, 4, events[0].MaxAttempts)
	assert.Equal(t, initial, events[0].Delay)
	assert.Equal(t, 2*initial, events[1].Delay)
	assert.NotEmpty(t, events[0].CallID)
	assert.Equal(t, events[0].CallID, events[1].CallID)
	assert.Equal(t, noveltrans.ERATELIMITED, noveltrans.ErrorCode(events[0].Err))
}

func TestClient_Translate_TerminalFailureReturnsImmediately(t *testing.T) {
	t.Parallel()

	calls := 0
	gen := &mock.Generator{
		GenerateFn: func(_ context.Context, _ string) (string, error) {
			calls++
			return "", noveltrans.Errorf(noveltrans.EUNAUTHORIZED, "invalid credentials")
		},
	}
	client := &translate.Client{Generator: gen, MaxRetries: 3}

	var events []noveltrans.RetryEvent
	_, err := client.Translate(context.Background(), noveltrans.TranslationRequest{
		Text:       "some text",
		TargetLang: "English",
	}, func(e noveltrans.RetryEvent) { events = append(events, e) })

	require.Error(t, err)
	assert.Equal(t, noveltrans.EUNAUTHORIZED, noveltrans.ErrorCode(err))
	assert.Equal(t, 1, calls)
	assert.Empty(t, events)
}

func TestClient_Translate_ExhaustsRetryBudget(t *testing.T) {
	t.Parallel()

	calls := 0
	gen := &mock.Generator{
		GenerateFn: func(_ context.Context, _ string) (string, error) {
			calls++
			return "", noveltrans.Errorf(noveltrans.EUNAVAILABLE, "upstream down")
		},
	}
	client := &translate.Client{Generator: gen, MaxRetries: 2}

	_, err := client.Translate(context.Background(), noveltrans.TranslationRequest{
		Text:       "some text",
		TargetLang: "English",
	}, nil)

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, noveltrans.EEXHAUSTED, noveltrans.ErrorCode(err))
	assert.Contains(t, noveltrans.ErrorMessage(err), "max retries exceeded")
	// The client has given up; an outer retry layer consulting
	// IsRetryable must not attempt the call again.
	assert.False(t, noveltrans.IsRetryable(err))
}

func TestClient_Translate_HonorsCancellationDuringBackoff(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	gen := &mock.Generator{
		GenerateFn: func(_ context.Context, _ string) (string, error) {
			return "", noveltrans.Errorf(noveltrans.EUNAVAILABLE, "upstream down")
		},
	}
	// Long delay proves the wait aborts on cancellation rather than
	// sleeping it out.
	client := &translate.Client{Generator: gen, MaxRetries: 3, InitialDelay: time.Hour}

	done := make(chan struct{})
	var err error
	go func() {
		defer close(done)
		_, err = client.Translate(ctx, noveltrans.TranslationRequest{
			Text:       "some text",
			TargetLang: "English",
		}, func(noveltrans.RetryEvent) { cancel() })
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("translate did not return after cancellation")
	}
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Translate_RejectsEmptyText(t *testing.T) {
	t.Parallel()

	client := &translate.Client{
		Generator: &mock.Generator{GenerateFn: func(context.Context, string) (string, error) {
			t.Fatal("generator should not be called")
			return "", nil
		}},
	}

	_, err := client.Translate(context.Background(), noveltrans.TranslationRequest{
		TargetLang: "English",
	}, nil)

	require.Error(t, err)
	assert.Equal(t, noveltrans.EINVALID, noveltrans.ErrorCode(err))
}

func TestClient_Translate_NormalizesLineEndings(t *testing.T) {
	t.Parallel()

	var prompt string
	gen := &mock.Generator{
		GenerateFn: func(_ context.Context, p string) (string, error) {
			prompt = p
			return "ok", nil
		},
	}
	client := &translate.Client{Generator: gen}

	_, err := client.Translate(context.Background(), noveltrans.TranslationRequest{
		Text:       "line one\r\nline two\rline three",
		TargetLang: "English",
	}, nil)

	require.NoError(t, err)
	assert.NotContains(t, prompt, "\r")
	assert.Contains(t, prompt, "line one\nline two\nline three")
}

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"bare cr", "a\rb", "a\nb"},
		{"keeps tabs and newlines", "a\tb\nc", "a\tb\nc"},
		{"strips control characters", "a\x00b\x1bc", "abc"},
		{"plain text unchanged", "hello world", "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, translate.NormalizeText(tt.in))
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	t.Run("with source language", func(t *testing.T) {
		t.Parallel()

		prompt := translate.BuildPrompt(noveltrans.TranslationRequest{
			Text:       "content here",
			SourceLang: "Chinese",
			TargetLang: "English",
		})

		assert.Contains(t, prompt, "from Chinese to English")
		assert.Contains(t, prompt, "<text>\ncontent here\n</text>")
	})

	t.Run("without source language", func(t *testing.T) {
		t.Parallel()

		prompt := translate.BuildPrompt(noveltrans.TranslationRequest{
			Text:       "content here",
			TargetLang: "English",
		})

		assert.Contains(t, prompt, "to English")
		assert.False(t, strings.Contains(prompt, "from  to"))
	})
}
