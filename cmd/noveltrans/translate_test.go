package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mwielbut/noveltrans"
	main "github.com/mwielbut/noveltrans/cmd/noveltrans"
	"github.com/mwielbut/noveltrans/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdTranslate(t *testing.T) {
	t.Parallel()

	t.Run("translates and prints markdown per chapter", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(&stdout, &stderr)
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return "markup", nil },
		}
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(string, noveltrans.RuleSet) (*noveltrans.Chapter, error) {
				return &noveltrans.Chapter{Title: "Chapter 1", Body: "source text"}, nil
			},
		}
		deps.Translator = &mock.Translator{
			TranslateFn: func(_ context.Context, req noveltrans.TranslationRequest, _ noveltrans.RetryFunc) (string, error) {
				assert.Equal(t, "source text", req.Text)
				assert.Equal(t, "English", req.TargetLang)
				return "translated text", nil
			},
		}
		deps.Converter = &mock.Converter{
			ConvertChapterFn: func(ch *noveltrans.Chapter) (string, error) {
				return "# " + ch.Title + "\n\n" + ch.Body + "\n", nil
			},
		}

		cmd := &main.TranslateCmd{
			URLs: []string{"https://example.com/ch-1"},
			To:   "English",
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "translated text")
		assert.Contains(t, stderr.String(), "Translated 1 chapters")
	})

	t.Run("translates raw text with --text", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(&stdout, &stderr)
		deps.Translator = &mock.Translator{
			TranslateFn: func(_ context.Context, req noveltrans.TranslationRequest, _ noveltrans.RetryFunc) (string, error) {
				assert.Equal(t, "bonjour", req.Text)
				return "hello", nil
			},
		}

		cmd := &main.TranslateCmd{Text: "bonjour", To: "English"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "hello\n", stdout.String())
	})

	t.Run("requires urls or text", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(&stdout, &stderr)

		cmd := &main.TranslateCmd{To: "English"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, noveltrans.EINVALID, noveltrans.ErrorCode(err))
	})

	t.Run("writes chapter files with --out", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(&stdout, &stderr)
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return "markup", nil },
		}
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(string, noveltrans.RuleSet) (*noveltrans.Chapter, error) {
				return &noveltrans.Chapter{Title: "Chapter 1", Body: "source text"}, nil
			},
		}
		deps.Translator = &mock.Translator{
			TranslateFn: func(context.Context, noveltrans.TranslationRequest, noveltrans.RetryFunc) (string, error) {
				return "translated text", nil
			},
		}
		deps.Converter = &mock.Converter{
			ConvertChapterFn: func(ch *noveltrans.Chapter) (string, error) {
				return "# " + ch.Title + "\n\n" + ch.Body + "\n", nil
			},
		}

		dir := t.TempDir()
		cmd := &main.TranslateCmd{
			URLs: []string{"https://example.com/novel/ch-1"},
			To:   "English",
			Out:  dir,
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Empty(t, stdout.String())
		data, err := os.ReadFile(filepath.Join(dir, "novel", "ch-1.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "source: https://example.com/novel/ch-1")
		assert.Contains(t, string(data), "translated text")
	})

	t.Run("failed chapters reported and surfaced as error", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(&stdout, &stderr)
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "", noveltrans.Errorf(noveltrans.ENOTFOUND, "HTTP 404")
			},
		}
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(string, noveltrans.RuleSet) (*noveltrans.Chapter, error) {
				t.Fatal("extractor should not be called")
				return nil, nil
			},
		}

		cmd := &main.TranslateCmd{
			URLs: []string{"https://example.com/ch-1"},
			To:   "English",
		}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "skip")
		assert.Contains(t, stderr.String(), "1 failed")
	})
}
