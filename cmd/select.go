package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/sellergrid"
	"github.com/google/subcommands"
)

type selectCmd struct {
	index    int
	deselect bool
	all      bool
	none     bool
}

func (*selectCmd) Name() string     { return "select" }
func (*selectCmd) Synopsis() string { return "select or deselect items for printing and bulk removal" }
func (*selectCmd) Usage() string {
	return `sgt select [-i <position>] [-deselect] [-all | -none]

  Marks items as selected. Selection drives bulk removal and is the set of
  items a print run restores afterwards.
`
}

func (p *selectCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.index, "i", 0, "1-based position of the item to select.")
	f.BoolVar(&p.deselect, "deselect", false, "Deselect instead of select.")
	f.BoolVar(&p.all, "all", false, "Select every item.")
	f.BoolVar(&p.none, "none", false, "Deselect every item.")
}

func (p *selectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.all && p.none {
		fmt.Fprintln(os.Stderr, "Error: -all and -none cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case p.all:
		ledger.SetSelectAll(true)
		ledger.ToggleSelectAll()
	case p.none:
		ledger.SetSelectAll(false)
		ledger.ToggleSelectAll()
	case p.index >= 1:
		if err := ledger.SetSelected(p.index-1, !p.deselect); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	default:
		fmt.Fprintln(os.Stderr, "Error: one of -i, -all or -none is required.")
		return subcommands.ExitUsageError
	}

	count := ledger.Totals(func(it sellergrid.Item) bool { return it.Selected })
	fmt.Printf("%d items selected\n", count.Count)
	return subcommands.ExitSuccess
}
