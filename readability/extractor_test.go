package readability_test

import (
	"strings"
	"testing"

	"github.com/mwielbut/noveltrans"
	"github.com/mwielbut/noveltrans/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_MainContent(t *testing.T) {
	t.Parallel()

	markup := `<!DOCTYPE html>
<html>
<head><title>Chapter 9 - The Harbor</title></head>
<body>
<nav><a href="/">Home</a> <a href="/chapters">Chapters</a></nav>
<article>
<h1>Chapter 9: The Harbor</h1>
<p>` + strings.Repeat("The boats came in before the storm broke over the bay. ", 8) + `</p>
<p>By morning the water was calm again.</p>
</article>
<footer>Copyright 2024</footer>
</body>
</html>`

	ext := readability.NewExtractor()
	ch, err := ext.Extract(markup, noveltrans.RuleSet{})

	require.NoError(t, err)
	assert.Contains(t, ch.Body, "The boats came in")
	assert.Contains(t, ch.Body, "water was calm")
	assert.NotContains(t, ch.Body, "Copyright")
	assert.NotEmpty(t, ch.Title)
	assert.Equal(t, "9", ch.Ordinal)
	require.NoError(t, ch.Validate())
}

func TestExtract_InsufficientContent(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()

	_, err := ext.Extract("<html><body><p>too short</p></body></html>", noveltrans.RuleSet{})

	require.Error(t, err)
	assert.Equal(t, noveltrans.EINSUFFICIENT, noveltrans.ErrorCode(err))
}

func TestExtract_EmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()

	_, err := ext.Extract("   ", noveltrans.RuleSet{})

	require.Error(t, err)
	assert.Equal(t, noveltrans.EINVALID, noveltrans.ErrorCode(err))
}
