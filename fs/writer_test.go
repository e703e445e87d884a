package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mwielbut/noveltrans"
	"github.com/mwielbut/noveltrans/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "simple path",
			url:  "https://example.com/novel/chapter-12",
			want: "novel/chapter-12.md",
		},
		{
			name: "trailing slash becomes index",
			url:  "https://example.com/novel/",
			want: "novel/index.md",
		},
		{
			name: "root path becomes index",
			url:  "https://example.com/",
			want: "index.md",
		},
		{
			name: "ignores query string",
			url:  "https://example.com/novel/ch?page=2",
			want: "novel/ch.md",
		},
		{
			name: "ignores fragment",
			url:  "https://example.com/novel/ch#comments",
			want: "novel/ch.md",
		},
		{
			name: "root without trailing slash",
			url:  "https://example.com",
			want: "index.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatChapter(t *testing.T) {
	t.Parallel()

	ch := &noveltrans.Chapter{
		Title:       "Chapter 12: The Storm",
		Ordinal:     "12",
		Body:        "original body",
		ContentHash: "abc123",
	}

	got := fs.FormatChapter("https://example.com/novel/ch-12", ch, "# Chapter 12\n\ntranslated body\n")

	assert.Contains(t, got, "---\n")
	assert.Contains(t, got, "source: https://example.com/novel/ch-12")
	assert.Contains(t, got, "title: Chapter 12: The Storm")
	assert.Contains(t, got, "ordinal: 12")
	assert.Contains(t, got, "hash: abc123")
	assert.Contains(t, got, "translated body")
}

func TestWriter_WriteChapter(t *testing.T) {
	t.Parallel()

	t.Run("writes file mirroring url path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		ch := &noveltrans.Chapter{Title: "Chapter 3", Body: "body"}
		err := w.WriteChapter("https://example.com/novel/ch-3", ch, "# Chapter 3\n\ncontent\n")

		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(dir, "novel", "ch-3.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "title: Chapter 3")
		assert.Contains(t, string(data), "content")
	})

	t.Run("rejects invalid chapters", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		err := w.WriteChapter("https://example.com/novel/ch-3", &noveltrans.Chapter{Title: "Chapter 3"}, "x")

		require.Error(t, err)
		assert.Equal(t, noveltrans.EINVALID, noveltrans.ErrorCode(err))
	})
}
