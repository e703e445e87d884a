package main

import (
	"context"
	"io"
	"time"

	"github.com/mwielbut/noveltrans"
	"github.com/mwielbut/noveltrans/crawl"
)

// Dependencies holds all collaborators and configuration for command
// execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Fetcher    noveltrans.Fetcher
	Extractor  noveltrans.Extractor
	Translator noveltrans.Translator
	Source     noveltrans.URLSource
	Converter  noveltrans.Converter
	Crawler    *crawl.Crawler
	Rules      noveltrans.RuleSet
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log pipeline operations to stderr"`
	Engine  string `default:"regex" enum:"regex,goquery,trafilatura,readability" help:"Extraction engine"`
	Site    string `default:"generic" help:"Named selector rule set"`

	Fetch     FetchCmd     `cmd:"" help:"Fetch a chapter page and print the extracted chapter"`
	Translate TranslateCmd `cmd:"" help:"Fetch, extract and translate one or more chapters"`
	Book      BookCmd      `cmd:"" help:"Translate a whole book by following next links or a sitemap"`
	Sites     SitesCmd     `cmd:"" help:"List the named selector rule sets"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL  string `arg:"" help:"Chapter page URL"`
	JSON bool   `help:"Print the chapter as JSON instead of Markdown"`
}

// TranslateCmd is the "translate" subcommand.
type TranslateCmd struct {
	URLs        []string      `arg:"" optional:"" help:"Chapter page URLs"`
	Text        string        `help:"Translate raw text instead of fetching URLs"`
	From        string        `default:"" help:"Source language label"`
	To          string        `default:"English" help:"Target language label"`
	MaxWords    int           `default:"0" help:"Word budget applied to each chapter body before translation"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent chapter limit"`
	Retries     int           `default:"0" help:"Retries per translation call (0 = default schedule)"`
	Delay       time.Duration `default:"0" help:"Initial retry backoff (0 = default schedule)"`
	Out         string        `help:"Write chapters as Markdown files under this directory instead of stdout"`
}

// BookCmd is the "book" subcommand.
type BookCmd struct {
	URL         string `arg:"" help:"First chapter URL, or the work's index URL with --sitemap"`
	Sitemap     bool   `help:"Discover chapters from the site's sitemap instead of following next links"`
	MaxChapters int    `default:"0" help:"Stop after this many chapters (0 = no explicit limit)"`
	From        string `default:"" help:"Source language label"`
	To          string `default:"English" help:"Target language label"`
	MaxWords    int    `default:"0" help:"Word budget applied to each chapter body before translation"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent chapter limit (sitemap mode only)"`
	RPS         float64 `default:"1.0" help:"Requests per second per host"`
	Out         string  `help:"Write chapters as Markdown files under this directory instead of stdout"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct{}
