package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/etnz/sellergrid"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the grid as JSON, CSV or XLSX" }
func (*exportCmd) Usage() string {
	return `sgt export [-format json|csv|xlsx] [-o <file>]

  Exports the grid. The JSON snapshot is full fidelity and can be imported
  back; the CSV and XLSX tables are derived views with summary totals.
  With -o "-" the JSON or CSV document goes to stdout. Default file names:
  seller-data.json, seller-grid-<seller>-<timestamp>.csv, seller-grid.xlsx.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.format, "format", "json", "Export format: json, csv or xlsx.")
	f.StringVar(&p.output, "o", "", "Output file, or \"-\" for stdout.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	write := func(name string, encode func(w io.Writer) error) subcommands.ExitStatus {
		if p.output != "" {
			name = p.output
		}
		out := os.Stdout
		if name != "-" {
			out, err = os.Create(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: cannot create %q: %v\n", name, err)
				return subcommands.ExitFailure
			}
			defer out.Close()
		}
		if err := encode(out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if name != "-" {
			fmt.Printf("exported to %s\n", name)
		}
		return subcommands.ExitSuccess
	}

	switch p.format {
	case "json":
		return write("seller-data.json", ledger.ExportJSON)
	case "csv":
		name := sellergrid.CSVFilename(ledger.Profile().SellerID, time.Now())
		return write(name, ledger.ExportCSV)
	case "xlsx":
		name := "seller-grid.xlsx"
		if p.output != "" {
			name = p.output
		}
		if err := ledger.ExportXLSX(name); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("exported to %s\n", name)
		return subcommands.ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q.\n", p.format)
		return subcommands.ExitUsageError
	}
}
