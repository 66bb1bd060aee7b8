package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/sellergrid"
	"github.com/etnz/sellergrid/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	filter string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "show the working grid" }
func (*listCmd) Usage() string {
	return `sgt list [-filter <expression>]

  Shows the grid as a table, one row per item in grid order, with the
  valid and selected totals. The optional filter expression sees the item
  fields, e.g.:

    sgt list -filter 'Price > 10 && !Donation'
    sgt list -filter 'Selected && Gender == "girl"'
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.filter, "filter", "", "Only show items matching this expression.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var pred func(sellergrid.Item) bool
	if p.filter != "" {
		pred, err = sellergrid.CompileFilter(p.filter)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	cfg := loadConfig()
	printMarkdown(renderer.GridMarkdown(ledger, pred, cfg.Currency))
	return subcommands.ExitSuccess
}
