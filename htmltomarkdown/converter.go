// Package htmltomarkdown renders extracted chapters as Markdown
// documents using the html-to-markdown conversion pipeline.
package htmltomarkdown

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/mwielbut/noveltrans"
)

// Ensure Converter implements noveltrans.Converter at compile time.
var _ noveltrans.Converter = (*Converter)(nil)

// Converter renders a chapter as a Markdown document: a heading built
// from the chapter metadata followed by the converted body.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// ConvertChapter renders the chapter as Markdown. When the chapter
// carries body markup it is converted structurally; otherwise the
// plain-text body is emitted as-is, paragraph breaks preserved.
func (c *Converter) ConvertChapter(ch *noveltrans.Chapter) (string, error) {
	if ch == nil {
		return "", noveltrans.Errorf(noveltrans.EINVALID, "chapter required")
	}
	if err := ch.Validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	if ch.WorkTitle != "" {
		fmt.Fprintf(&sb, "# %s\n\n", ch.WorkTitle)
		fmt.Fprintf(&sb, "## %s\n\n", ch.Title)
	} else {
		fmt.Fprintf(&sb, "# %s\n\n", ch.Title)
	}

	body := ch.Body
	if strings.TrimSpace(ch.BodyHTML) != "" {
		converted, err := c.conv.ConvertString(ch.BodyHTML)
		if err != nil {
			return "", noveltrans.WrapErrorf(err, noveltrans.EINTERNAL, "converting chapter body")
		}
		body = converted
	}
	sb.WriteString(strings.TrimSpace(body))
	sb.WriteString("\n")

	return sb.String(), nil
}
