package crawl

import (
	"context"
	"net/url"

	"github.com/mwielbut/noveltrans"
	"github.com/mwielbut/noveltrans/bloom"
)

// Walk configuration.
const (
	// walkExpectedURLs is the expected chain length for Bloom filter sizing.
	walkExpectedURLs = 10000
	// walkFalsePositiveRate is the acceptable false positive rate for
	// loop detection.
	walkFalsePositiveRate = 0.01
	// DefaultMaxChapters bounds a walk when the caller gives no limit,
	// to prevent runaway chains.
	DefaultMaxChapters = 1000
)

// WalkBook follows next-chapter links from startURL, running each page
// through the pipeline. The walk is sequential: the next URL is only
// known after a page has been extracted. It stops when a chapter has
// no next link, when a link points back at a visited page, or when
// maxChapters pages have been processed.
//
// A failed page ends the walk, since its next link is unknown; results
// collected so far are returned along with the failed entry.
func (c *Crawler) WalkBook(ctx context.Context, startURL string, maxChapters int, progress ProgressFunc) (*Result, error) {
	if maxChapters <= 0 {
		maxChapters = DefaultMaxChapters
	}

	if _, err := url.Parse(startURL); err != nil {
		return nil, noveltrans.WrapErrorf(err, noveltrans.EINVALID, "invalid start url")
	}

	seen := bloom.NewFilter(walkExpectedURLs, walkFalsePositiveRate)
	res := &Result{}
	current := startURL

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted})
	}

	for position := 0; position < maxChapters && current != ""; position++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if seen.Test(current) {
			break
		}
		seen.Add(current)

		cr := c.processURL(ctx, position, current, progress)
		res.Chapters = append(res.Chapters, cr)

		if cr.Err != nil {
			res.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: position + 1, URL: current, Error: cr.Err})
			}
			break
		}

		res.Translated++
		res.Words += noveltrans.CountWords(cr.Chapter.Body)
		res.Tokens += cr.Tokens
		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: position + 1, URL: current})
		}

		current = resolveNext(current, cr.Chapter.NextURL)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(res.Chapters)})
	}

	return res, nil
}

// resolveNext resolves a possibly-relative next link against the page
// it was found on. Returns "" when there is no usable next link.
func resolveNext(pageURL, next string) string {
	if next == "" {
		return ""
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(next)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}
