package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mwielbut/noveltrans"
	"github.com/mwielbut/noveltrans/crawl"
	"github.com/mwielbut/noveltrans/gemini"
	ntgoquery "github.com/mwielbut/noveltrans/goquery"
	"github.com/mwielbut/noveltrans/htmltomarkdown"
	nthttp "github.com/mwielbut/noveltrans/http"
	"github.com/mwielbut/noveltrans/readability"
	"github.com/mwielbut/noveltrans/regex"
	ntslog "github.com/mwielbut/noveltrans/slog"
	"github.com/mwielbut/noveltrans/trafilatura"
	"github.com/mwielbut/noveltrans/translate"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Model overrides the generation model. Empty selects the default.
	Model string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("noveltrans"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'noveltrans --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	rules, ok := noveltrans.RuleSetFor(cli.Site)
	if !ok {
		return noveltrans.Errorf(noveltrans.EINVALID, "unknown site %q; run 'noveltrans sites'", cli.Site)
	}
	deps.Rules = rules

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	deps.Fetcher = nthttp.NewFetcher()
	defer deps.Fetcher.Close()
	if logger != nil {
		deps.Fetcher = ntslog.NewLoggingFetcher(deps.Fetcher, logger)
	}

	deps.Extractor, err = newExtractor(cli.Engine)
	if err != nil {
		return err
	}
	deps.Source = nthttp.NewSitemapSource(nil)
	deps.Converter = htmltomarkdown.NewConverter()

	// Translation is only wired for the commands that call the model.
	if cmd == "translate" || cmd == "book" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return noveltrans.Errorf(noveltrans.EUNAUTHORIZED, "GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		tc := translate.NewClient(gemini.NewGenerator(client, m.Model))
		if cli.Translate.Retries > 0 {
			tc.MaxRetries = cli.Translate.Retries
		}
		if cli.Translate.Delay > 0 {
			tc.InitialDelay = cli.Translate.Delay
		}
		deps.Translator = tc
		if logger != nil {
			deps.Translator = ntslog.NewLoggingTranslator(deps.Translator, logger)
		}
	}

	if cmd == "book" {
		tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}

		deps.Crawler = &crawl.Crawler{
			Source:       deps.Source,
			Fetcher:      deps.Fetcher,
			Extractor:    deps.Extractor,
			Translator:   deps.Translator,
			Converter:    deps.Converter,
			TokenCounter: tokenCounter,
			RateLimiter:  crawl.NewDomainLimiter(cli.Book.RPS),
			Rules:        deps.Rules,
			Concurrency:  cli.Book.Concurrency,
			MaxWords:     cli.Book.MaxWords,
			SourceLang:   cli.Book.From,
			TargetLang:   cli.Book.To,
		}
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for token counting; the local tokenizer lags
// behind the generation model list.
const tokenizerModel = "gemini-2.5-flash"

// newExtractor builds the extraction engine selected by --engine.
func newExtractor(engine string) (noveltrans.Extractor, error) {
	switch engine {
	case "regex":
		return regex.NewExtractor(), nil
	case "goquery":
		return ntgoquery.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	default:
		return nil, noveltrans.Errorf(noveltrans.EINVALID, "unknown engine %q", engine)
	}
}
