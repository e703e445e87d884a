package htmltomarkdown_test

import (
	"testing"

	"github.com/mwielbut/noveltrans"
	"github.com/mwielbut/noveltrans/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_ConvertChapter(t *testing.T) {
	t.Parallel()

	t.Run("renders heading and plain-text body", func(t *testing.T) {
		t.Parallel()

		ch := &noveltrans.Chapter{
			Title: "Chapter 3: The Summit",
			Body:  "First paragraph.\n\nSecond paragraph.",
		}

		conv := htmltomarkdown.NewConverter()
		md, err := conv.ConvertChapter(ch)

		require.NoError(t, err)
		assert.Contains(t, md, "# Chapter 3: The Summit")
		assert.Contains(t, md, "First paragraph.\n\nSecond paragraph.")
	})

	t.Run("work title becomes top-level heading", func(t *testing.T) {
		t.Parallel()

		ch := &noveltrans.Chapter{
			WorkTitle: "The Long Road",
			Title:     "Chapter 3",
			Body:      "Some body text.",
		}

		conv := htmltomarkdown.NewConverter()
		md, err := conv.ConvertChapter(ch)

		require.NoError(t, err)
		assert.Contains(t, md, "# The Long Road")
		assert.Contains(t, md, "## Chapter 3")
	})

	t.Run("converts body markup structurally", func(t *testing.T) {
		t.Parallel()

		ch := &noveltrans.Chapter{
			Title:    "Chapter 1",
			Body:     "fallback text",
			BodyHTML: "<p><strong>Bold</strong> opening.</p><p>And <em>italic</em> words.</p>",
		}

		conv := htmltomarkdown.NewConverter()
		md, err := conv.ConvertChapter(ch)

		require.NoError(t, err)
		assert.Contains(t, md, "**Bold**")
		assert.Contains(t, md, "*italic*")
		assert.NotContains(t, md, "fallback text")
	})

	t.Run("rejects nil chapter", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.ConvertChapter(nil)

		require.Error(t, err)
		assert.Equal(t, noveltrans.EINVALID, noveltrans.ErrorCode(err))
	})

	t.Run("rejects chapter without body", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.ConvertChapter(&noveltrans.Chapter{Title: "Chapter 1"})

		require.Error(t, err)
		assert.Equal(t, noveltrans.EINVALID, noveltrans.ErrorCode(err))
	})
}
