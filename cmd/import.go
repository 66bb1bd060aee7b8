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

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a JSON snapshot into the grid" }
func (*importCmd) Usage() string {
	return `sgt import -f <file>

  Merges a JSON snapshot into the grid: profile fields present in the
  snapshot overwrite the current ones, the item list is replaced wholesale
  when present. A malformed snapshot leaves the grid untouched.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "", "Snapshot file to import.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required.")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(p.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read %q: %v\n", p.file, err)
		return subcommands.ExitFailure
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := ledger.ImportJSON(data); err != nil {
		var parseErr *sellergrid.ImportParseError
		if errors.As(err, &parseErr) {
			fmt.Fprintln(os.Stderr, parseErr)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("imported %d items from %s\n", ledger.Len(), p.file)
	return subcommands.ExitSuccess
}
