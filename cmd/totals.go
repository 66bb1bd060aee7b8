package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/sellergrid"
	"github.com/etnz/sellergrid/renderer"
	"github.com/google/subcommands"
)

type totalsCmd struct {
	filter string
}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "show count and amount aggregates over the grid" }
func (*totalsCmd) Usage() string {
	return `sgt totals [-filter <expression>]

  Without a filter, shows the two standard aggregates: valid items and
  selected valid items. With a filter, aggregates the matching items, e.g.:

    sgt totals -filter 'Donation && Valid'
`
}

func (p *totalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.filter, "filter", "", "Aggregate only items matching this expression.")
}

func (p *totalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cfg := loadConfig()

	if p.filter != "" {
		pred, err := sellergrid.CompileFilter(p.filter)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		printMarkdown(renderer.TotalsMarkdown(p.filter, ledger.Totals(pred), cfg.Currency))
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	b.WriteString(renderer.TotalsMarkdown("Valid items", ledger.Totals(sellergrid.Valid), cfg.Currency))
	b.WriteString(renderer.TotalsMarkdown("Selected valid items", ledger.Totals(sellergrid.SelectedAndValid), cfg.Currency))
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
