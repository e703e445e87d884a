package main

import (
	"fmt"

	"github.com/mwielbut/noveltrans"
	"github.com/mwielbut/noveltrans/crawl"
)

// Run executes the book command.
func (c *BookCmd) Run(deps *Dependencies) error {
	progress := progressPrinter(deps)

	var res *crawl.Result
	var err error
	if c.Sitemap {
		res, err = deps.Crawler.TranslateBook(deps.Ctx, c.URL, progress)
	} else {
		res, err = deps.Crawler.WalkBook(deps.Ctx, c.URL, c.MaxChapters, progress)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", noveltrans.ErrorMessage(err))
		return err
	}

	if err := emitChapters(deps, c.Out, res.Chapters); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stderr, "Translated %d chapters (%s, %s), %d failed\n",
		res.Translated, crawl.FormatWords(res.Words), crawl.FormatTokens(res.Tokens), res.Failed)
	return nil
}
