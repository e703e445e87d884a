package main

import (
	"fmt"

	"github.com/mwielbut/noveltrans"
	"github.com/mwielbut/noveltrans/crawl"
	"github.com/mwielbut/noveltrans/fs"
)

// Run executes the translate command.
func (c *TranslateCmd) Run(deps *Dependencies) error {
	if c.Text != "" {
		return c.runText(deps)
	}
	if len(c.URLs) == 0 {
		return noveltrans.Errorf(noveltrans.EINVALID, "provide chapter URLs or --text")
	}

	crawler := &crawl.Crawler{
		Fetcher:     deps.Fetcher,
		Extractor:   deps.Extractor,
		Translator:  deps.Translator,
		Converter:   deps.Converter,
		Rules:       deps.Rules,
		Concurrency: c.Concurrency,
		MaxWords:    c.MaxWords,
		SourceLang:  c.From,
		TargetLang:  c.To,
	}

	res, err := crawler.TranslateChapters(deps.Ctx, c.URLs, progressPrinter(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", noveltrans.ErrorMessage(err))
		return err
	}

	if err := emitChapters(deps, c.Out, res.Chapters); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stderr, "Translated %d chapters (%s), %d failed\n",
		res.Translated, crawl.FormatWords(res.Words), res.Failed)
	if res.Failed > 0 {
		return noveltrans.Errorf(noveltrans.EUNAVAILABLE, "%d chapters failed", res.Failed)
	}
	return nil
}

// runText translates raw text directly, bypassing fetch and extraction.
func (c *TranslateCmd) runText(deps *Dependencies) error {
	req := noveltrans.TranslationRequest{
		Text:       c.Text,
		SourceLang: c.From,
		TargetLang: c.To,
	}

	out, err := deps.Translator.Translate(deps.Ctx, req, func(ev noveltrans.RetryEvent) {
		fmt.Fprintf(deps.Stderr, "  retry (attempt %d/%d, waiting %s): %v\n",
			ev.Attempt, ev.MaxAttempts, ev.Delay, ev.Err)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", noveltrans.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}

// emitChapters prints successful chapters to stdout, or writes them as
// Markdown files under outDir when set.
func emitChapters(deps *Dependencies, outDir string, chapters []*crawl.ChapterResult) error {
	var writer *fs.Writer
	if outDir != "" {
		writer = fs.NewWriter(outDir)
	}

	for _, cr := range chapters {
		if cr.Err != nil {
			continue
		}
		if writer != nil {
			if err := writer.WriteChapter(cr.URL, cr.Chapter, cr.Markdown); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", noveltrans.ErrorMessage(err))
				return err
			}
			continue
		}
		fmt.Fprint(deps.Stdout, cr.Markdown)
		fmt.Fprintln(deps.Stdout)
	}
	return nil
}

// progressPrinter renders pipeline progress on stderr.
func progressPrinter(deps *Dependencies) crawl.ProgressFunc {
	return func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			if event.Total > 0 {
				fmt.Fprintf(deps.Stderr, "  %d chapters\n", event.Total)
			}
		case crawl.ProgressRetrying:
			fmt.Fprintf(deps.Stderr, "  retry %s (attempt %d, waiting %s): %v\n",
				crawl.TruncateURL(event.URL, 60), event.Attempt, event.Delay, event.Error)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", crawl.TruncateURL(event.URL, 60), event.Error)
		}
	}
}
