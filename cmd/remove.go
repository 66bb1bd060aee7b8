package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/sellergrid"
	"github.com/google/subcommands"
)

type removeCmd struct {
	index    int
	selected bool
	yes      bool
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove one item, or every selected item" }
func (*removeCmd) Usage() string {
	return `sgt remove [-i <position> | -selected] [-y]

  Removes the item at the 1-based position, or with -selected every
  selected item. Removal is irreversible and asks for confirmation unless
  -y is given. The grid never ends up empty: a fresh default item is
  appended when the last one is removed.
`
}

func (p *removeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.index, "i", 0, "1-based position of the item to remove.")
	f.BoolVar(&p.selected, "selected", false, "Remove every selected item.")
	f.BoolVar(&p.yes, "y", false, "Do not ask for confirmation.")
}

func (p *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case p.selected:
		count := ledger.Totals(func(it sellergrid.Item) bool { return it.Selected }).Count
		if count == 0 {
			fmt.Fprintln(os.Stderr, sellergrid.ErrNoSelection)
			return subcommands.ExitFailure
		}
		if !confirmAction(fmt.Sprintf("Remove %d selected items?", count), p.yes) {
			return subcommands.ExitSuccess
		}
		if err := ledger.RemoveSelected(); err != nil {
			if errors.Is(err, sellergrid.ErrNoSelection) {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	case p.index >= 1:
		it, err := ledger.At(p.index - 1)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		prompt := fmt.Sprintf("Remove item %d (%q)?", p.index, it.ItemDescription)
		if !confirmAction(prompt, p.yes) {
			return subcommands.ExitSuccess
		}
		if err := ledger.RemoveItem(p.index - 1); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	default:
		fmt.Fprintln(os.Stderr, "Error: one of -i or -selected is required.")
		return subcommands.ExitUsageError
	}

	fmt.Printf("%d items remain\n", ledger.Len())
	return subcommands.ExitSuccess
}
