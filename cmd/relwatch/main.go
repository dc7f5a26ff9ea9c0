package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/mjarosz/relwatch"
	"github.com/mjarosz/relwatch/fs"
	"github.com/mjarosz/relwatch/goquery"
	"github.com/mjarosz/relwatch/htmltomarkdown"
	relhttp "github.com/mjarosz/relwatch/http"
	"github.com/mjarosz/relwatch/render"
	relslog "github.com/mjarosz/relwatch/slog"
	relyaml "github.com/mjarosz/relwatch/yaml"
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
	// Overridable services for end-to-end testing. Run wires production
	// defaults for any left nil.
	Scraper   relwatch.ReleaseScraper
	Writer    relwatch.OutputWriter
	Converter relwatch.Converter
	Now       func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("relwatch"),
		kong.Description("Scrape release notes from documentation pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Months < 1 {
		return relwatch.Errorf(relwatch.EINVALID, "months must be at least 1, got %d", cli.Months)
	}

	level := stdslog.LevelWarn
	if cli.Verbose {
		level = stdslog.LevelDebug
	}
	logger := stdslog.New(stdslog.NewTextHandler(stderr, &stdslog.HandlerOptions{Level: level}))

	registry := relwatch.NewRegistry()
	if cli.Profiles != "" {
		if err := relyaml.LoadProfiles(cli.Profiles, registry); err != nil {
			return fmt.Errorf("loading profiles from %q: %w", cli.Profiles, err)
		}
	}

	now := time.Now
	if m.Now != nil {
		now = m.Now
	}
	// One timestamp per run: the scraper's filter window and the report
	// metadata both derive their cutoff from it.
	generated := now()

	scraper := m.Scraper
	if scraper == nil {
		scraper = relslog.NewLoggingScraper(&relwatch.Scraper{
			Fetcher:   relhttp.NewFetcher(relhttp.WithTimeout(cli.Timeout)),
			Extractor: goquery.NewExtractor(),
			Profiles:  relslog.NewLoggingRegistry(registry, logger),
			Now:       func() time.Time { return generated },
		}, logger)
	}

	if cli.Verbose {
		fmt.Fprintf(stderr, "Scraping: %s\n", cli.URL)
		fmt.Fprintf(stderr, "Time range: Last %d months\n", cli.Months)
		fmt.Fprintf(stderr, "Output format: %s\n", cli.Output)
	}

	// Transport and extraction failures are soft: log and render an
	// empty report so downstream tooling always gets valid output.
	groups, err := scraper.Scrape(ctx, cli.URL, cli.Months)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %s\n", relwatch.ErrorMessage(err))
		groups = nil
	}

	if cli.Verbose {
		fmt.Fprintf(stderr, "Found %d releases\n", len(groups))
	}

	report := &relwatch.Report{
		URL:       cli.URL,
		Months:    cli.Months,
		Cutoff:    relwatch.CutoffDate(generated, cli.Months),
		Generated: generated,
		Releases:  groups,
	}

	conv := m.Converter
	if conv == nil {
		conv = htmltomarkdown.NewConverter()
	}

	output, err := render.Render(render.Format(cli.Output), report, conv)
	if err != nil {
		return err
	}

	if cli.File == "" {
		fmt.Fprintln(stdout, output)
		return nil
	}

	writer := m.Writer
	if writer == nil {
		writer = fs.NewWriter()
	}
	if err := writer.WriteOutput(cli.File, output); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}
	fmt.Fprintf(stderr, "%s output saved to %s\n", strings.ToUpper(cli.Output), cli.File)

	return nil
}
