package main

import (
	"encoding/json"
	"fmt"

	"github.com/mwielbut/noveltrans"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	markup, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", noveltrans.ErrorMessage(err))
		return err
	}

	chapter, err := deps.Extractor.Extract(markup, deps.Rules)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", noveltrans.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(chapter)
	}

	markdown, err := deps.Converter.ConvertChapter(chapter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", noveltrans.ErrorMessage(err))
		return err
	}
	fmt.Fprint(deps.Stdout, markdown)
	return nil
}
