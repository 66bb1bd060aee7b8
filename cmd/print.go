package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/sellergrid"
	"github.com/etnz/sellergrid/renderer"
	"github.com/google/subcommands"
)

type printCmd struct {
	grid   bool
	yes    bool
	output string
}

func (*printCmd) Name() string     { return "print" }
func (*printCmd) Synopsis() string { return "print the price tags, or the working grid itself" }
func (*printCmd) Usage() string {
	return `sgt print [-grid] [-y] [-o <file>]

  Runs a print cycle: the current selection is snapshotted, every item is
  selected, the run is confirmed, the tag sheet goes to the print sink and
  the prior selection is restored exactly. Printing requires a seller id
  and at least one item with a positive price. With -grid the working grid
  itself is printed instead, leaving the selection untouched.
`
}

func (p *printCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.grid, "grid", false, "Print the working grid instead of the tag sheet.")
	f.BoolVar(&p.yes, "y", false, "Do not ask for confirmation.")
	f.StringVar(&p.output, "o", "", "Write the sheet to a file instead of the terminal.")
}

func (p *printCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cfg := loadConfig()

	var confirmer sellergrid.Confirmer = terminalConfirmer{}
	if p.yes {
		confirmer = autoConfirmer{}
	}
	printer := &sheetPrinter{
		sellerID: ledger.Profile().SellerID,
		currency: cfg.Currency,
		output:   p.output,
	}

	orchestrator := sellergrid.NewOrchestrator(ledger, confirmer, printer)
	orchestrator.SetFlush(func() { os.Stdout.Sync() })

	if p.grid {
		err = orchestrator.RunGrid(ctx)
	} else {
		err = orchestrator.Run(ctx)
	}
	switch {
	case errors.Is(err, sellergrid.ErrMissingSellerID):
		fmt.Fprintln(os.Stderr, "Error: set a seller id first (sgt seller -id <id>).")
		return subcommands.ExitFailure
	case errors.Is(err, sellergrid.ErrNoValidItems):
		fmt.Fprintln(os.Stderr, "Error: no items with a positive price to print.")
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// sheetPrinter is the external print sink of the CLI: it renders the tag
// sheet (or the grid) to markdown and hands it to the terminal or a file.
type sheetPrinter struct {
	sellerID string
	currency string
	output   string
}

func (s *sheetPrinter) emit(doc string) error {
	if s.output == "" {
		printMarkdown(doc)
		return nil
	}
	if err := os.WriteFile(s.output, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("cannot write sheet %q: %w", s.output, err)
	}
	fmt.Printf("sheet written to %s\n", s.output)
	return nil
}

func (s *sheetPrinter) PrintTags(_ context.Context, tags []sellergrid.Tag) error {
	return s.emit(renderer.TagsMarkdown(s.sellerID, tags, s.currency))
}

func (s *sheetPrinter) PrintGrid(_ context.Context, items []sellergrid.Item) error {
	return s.emit(renderer.ItemsMarkdown(s.sellerID, items, s.currency))
}
