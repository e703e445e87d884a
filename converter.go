package noveltrans

import "context"

// Converter renders an extracted chapter as Markdown.
type Converter interface {
	// ConvertChapter renders the chapter's body HTML as Markdown
	// under a title heading. The chapter must carry BodyHTML; the
	// whole-document fallback path produces plain text only.
	ConvertChapter(chapter *Chapter) (string, error)
}

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
