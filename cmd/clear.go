package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "remove every item from the grid" }
func (*clearCmd) Usage() string {
	return `sgt clear [-y]

  Empties the grid and starts over with one default item. Asks for
  confirmation unless -y is given.
`
}

func (p *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.yes, "y", false, "Do not ask for confirmation.")
}

func (p *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !confirmAction(fmt.Sprintf("Remove all %d items from the grid?", ledger.Len()), p.yes) {
		return subcommands.ExitSuccess
	}
	ledger.ClearAll()
	fmt.Println("grid cleared")
	return subcommands.ExitSuccess
}
