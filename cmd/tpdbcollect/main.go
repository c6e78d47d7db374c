package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/tpdb"
	"github.com/fwojciec/tpdb/fs"
	"github.com/fwojciec/tpdb/goquery"
	tpdbslog "github.com/fwojciec/tpdb/slog"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env is fine; flags fall back to their defaults.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		// Application errors have already been reported by the command.
		if tpdb.ErrorCode(err) == tpdb.EINTERNAL {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tpdbcollect"),
		kong.Description("Create Plex Meta Manager poster entries from a saved ThePosterDB set page"),
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

	opts := tpdb.Options{
		AlwaysQuote:   cli.AlwaysQuote,
		Indent:        cli.Indent,
		LeadingIndent: cli.LeadingIndent,
	}
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", tpdb.ErrorMessage(err))
		return err
	}

	// Wire dependencies
	var extractorOpts []goquery.Option
	if cli.PrimaryOnly {
		extractorOpts = append(extractorOpts, goquery.WithPrimaryOnly())
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Reader:    fs.NewPageReader(),
		Extractor: goquery.NewPosterExtractor(extractorOpts...),
	}

	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Reader = tpdbslog.NewLoggingPageReader(deps.Reader, logger)
		deps.Extractor = tpdbslog.NewLoggingPosterExtractor(deps.Extractor, logger)
	}

	cmd := &CollectCmd{
		Path:    cli.HTMLFile,
		Options: opts,
	}

	return cmd.Run(deps)
}
