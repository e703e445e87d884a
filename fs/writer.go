// Package fs provides file-based output for translated chapters.
package fs

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwielbut/noveltrans"
)

// URLToPath converts a chapter URL to a relative file path.
// Example: https://example.com/novel/chapter-12 → novel/chapter-12.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Root or trailing slash → index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	path = strings.TrimPrefix(path, "/")

	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	return path + ".md", nil
}

// FormatChapter formats a rendered chapter with YAML frontmatter.
// content is the Markdown rendering of the chapter (translated when a
// translation ran).
func FormatChapter(sourceURL string, ch *noveltrans.Chapter, content string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(sourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(ch.Title)
	if ch.Ordinal != "" {
		b.WriteString("\nordinal: ")
		b.WriteString(ch.Ordinal)
	}
	if ch.ContentHash != "" {
		b.WriteString("\nhash: ")
		b.WriteString(ch.ContentHash)
	}
	b.WriteString("\n---\n\n")
	b.WriteString(content)
	return b.String()
}

// Writer writes chapters as markdown files to a directory, mirroring
// the source site's path structure.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteChapter writes one rendered chapter to disk.
func (w *Writer) WriteChapter(sourceURL string, ch *noveltrans.Chapter, content string) error {
	if err := ch.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(sourceURL)
	if err != nil {
		return noveltrans.WrapErrorf(err, noveltrans.EINVALID, "invalid chapter url")
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatChapter(sourceURL, ch, content)), 0644)
}
