package main

import (
	"fmt"

	"github.com/fwojciec/tpdb"
)

// NoContentMessage is printed when the page holds no poster overlays.
const NoContentMessage = "No content identified!"

// Run executes the collect command.
func (c *CollectCmd) Run(deps *Dependencies) error {
	html, err := deps.Reader.ReadPage(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tpdb.ErrorMessage(err))
		return err
	}

	posters, err := deps.Extractor.ExtractPosters(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tpdb.ErrorMessage(err))
		return err
	}

	registry, err := tpdb.Collect(posters, c.Options)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tpdb.ErrorMessage(err))
		return err
	}

	if registry.Len() == 0 {
		fmt.Fprintln(deps.Stdout, NoContentMessage)
		return nil
	}

	fmt.Fprint(deps.Stdout, tpdb.FormatReport(registry, c.Options))
	return nil
}
