// Package crawl provides chapter pipeline orchestration. It
// coordinates URL discovery, fetching, extraction, translation and
// rendering of web-novel chapters.
package crawl

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/mwielbut/noveltrans"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the worker limit used when none is configured.
const DefaultConcurrency = 4

// Crawler orchestrates the chapter pipeline. Source, Translator,
// Converter, TokenCounter and RateLimiter are optional; the pipeline
// skips the corresponding stage when one is nil.
type Crawler struct {
	Source       noveltrans.URLSource
	Fetcher      noveltrans.Fetcher
	Extractor    noveltrans.Extractor
	Translator   noveltrans.Translator
	Converter    noveltrans.Converter
	TokenCounter noveltrans.TokenCounter
	RateLimiter  noveltrans.DomainLimiter

	Rules       noveltrans.RuleSet
	Concurrency int
	RetryDelays []time.Duration

	// MaxWords truncates the chapter body before translation.
	// Zero means no budget.
	MaxWords int

	SourceLang string
	TargetLang string
}

// ChapterResult is the outcome of processing one chapter URL.
type ChapterResult struct {
	Position    int
	URL         string
	Chapter     *noveltrans.Chapter
	Translation string
	Markdown    string
	Tokens      int
	Err         error
}

// Result aggregates a pipeline run. Chapters holds one entry per input
// URL, in input order, failed entries included.
type Result struct {
	Chapters   []*ChapterResult
	Translated int
	Failed     int
	Words      int
	Tokens     int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressRetrying
	ProgressFinished
)

// ProgressEvent reports progress during a pipeline run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string

	// Attempt and Delay are set on ProgressRetrying events.
	Attempt int
	Delay   time.Duration

	Error error
}

// ProgressFunc is a callback for reporting pipeline progress. It may
// be called from multiple goroutines.
type ProgressFunc func(event ProgressEvent)

// TranslateBook discovers chapter URLs for the source URL and runs the
// pipeline over them.
func (c *Crawler) TranslateBook(ctx context.Context, sourceURL string, progress ProgressFunc) (*Result, error) {
	if c.Source == nil {
		return nil, noveltrans.Errorf(noveltrans.EINVALID, "url source required")
	}
	urls, err := c.Source.Discover(ctx, sourceURL)
	if err != nil {
		return nil, err
	}
	return c.TranslateChapters(ctx, urls, progress)
}

// TranslateChapters runs the pipeline over the given chapter URLs.
// URLs are processed concurrently; results are returned in input
// order. Per-URL failures are recorded, not fatal.
func (c *Crawler) TranslateChapters(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	res := &Result{Chapters: make([]*ChapterResult, len(urls))}
	if len(urls) == 0 {
		return res, nil
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, u := range urls {
		g.Go(func() error {
			cr := c.processURL(gctx, i, u, progress)
			res.Chapters[i] = cr

			done := int(completed.Add(1))
			if progress != nil {
				if cr.Err != nil {
					progress(ProgressEvent{Type: ProgressFailed, Completed: done, Total: total, URL: u, Error: cr.Err})
				} else {
					progress(ProgressEvent{Type: ProgressCompleted, Completed: done, Total: total, URL: u})
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, cr := range res.Chapters {
		if cr.Err != nil {
			res.Failed++
			continue
		}
		res.Translated++
		res.Words += noveltrans.CountWords(cr.Chapter.Body)
		res.Tokens += cr.Tokens
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return res, nil
}

// processURL runs one chapter URL through every configured stage.
func (c *Crawler) processURL(ctx context.Context, position int, chapterURL string, progress ProgressFunc) *ChapterResult {
	cr := &ChapterResult{Position: position, URL: chapterURL}

	if c.RateLimiter != nil {
		parsed, err := url.Parse(chapterURL)
		if err != nil {
			cr.Err = noveltrans.WrapErrorf(err, noveltrans.EINVALID, "invalid chapter url")
			return cr
		}
		if err := c.RateLimiter.Wait(ctx, parsed.Host); err != nil {
			cr.Err = err
			return cr
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	var fetchRetry FetchRetryFunc
	if progress != nil {
		fetchRetry = func(attempt int, delay time.Duration, err error) {
			progress(ProgressEvent{
				Type:    ProgressRetrying,
				URL:     chapterURL,
				Attempt: attempt,
				Delay:   delay,
				Error:   err,
			})
		}
	}
	markup, err := FetchWithRetryDelays(ctx, chapterURL, c.Fetcher.Fetch, fetchRetry, delays)
	if err != nil {
		cr.Err = err
		return cr
	}

	chapter, err := c.Extractor.Extract(markup, c.Rules)
	if err != nil {
		cr.Err = err
		return cr
	}
	chapter.ContentHash = ComputeHash(chapter.Body)

	if c.MaxWords > 0 {
		chapter.Body = noveltrans.LimitWords(chapter.Body, c.MaxWords)
	}
	cr.Chapter = chapter

	if c.TokenCounter != nil {
		if tokens, err := c.TokenCounter.CountTokens(ctx, chapter.Body); err == nil {
			cr.Tokens = tokens
		}
	}

	if c.Translator != nil {
		var retry noveltrans.RetryFunc
		if progress != nil {
			retry = func(e noveltrans.RetryEvent) {
				progress(ProgressEvent{
					Type:    ProgressRetrying,
					URL:     chapterURL,
					Attempt: e.Attempt,
					Delay:   e.Delay,
					Error:   e.Err,
				})
			}
		}
		translation, err := c.Translator.Translate(ctx, noveltrans.TranslationRequest{
			Text:       chapter.Body,
			SourceLang: c.SourceLang,
			TargetLang: c.TargetLang,
		}, retry)
		if err != nil {
			cr.Err = err
			return cr
		}
		cr.Translation = translation
	}

	if c.Converter != nil {
		rendered := *chapter
		if cr.Translation != "" {
			rendered.Body = cr.Translation
			// Translated text is plain, so the original markup no
			// longer describes the body.
			rendered.BodyHTML = ""
		}
		markdown, err := c.Converter.ConvertChapter(&rendered)
		if err != nil {
			cr.Err = err
			return cr
		}
		cr.Markdown = markdown
	}

	return cr
}
