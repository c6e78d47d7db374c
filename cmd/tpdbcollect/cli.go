package main

import (
	"context"
	"io"

	"github.com/fwojciec/tpdb"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Reader    tpdb.PageReader
	Extractor tpdb.PosterExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	PrimaryOnly   bool   `short:"p" help:"Only parse the primary set (ignore any Additional Sets)"`
	AlwaysQuote   bool   `short:"q" env:"TPDB_ALWAYS_QUOTE" help:"Put all titles in quotes"`
	Indent        int    `short:"i" default:"2" env:"TPDB_INDENT" help:"Spaces per indentation level"`
	LeadingIndent int    `short:"l" default:"0" env:"TPDB_LEADING_INDENT" help:"Spaces before every content line"`
	Debug         bool   `short:"d" help:"Log page loading and poster extraction to stderr"`
	HTMLFile      string `arg:"" name:"html-file" help:"File with TPDb set page HTML to scrape"`
}

// CollectCmd handles the main collect operation.
type CollectCmd struct {
	Path    string
	Options tpdb.Options
}
