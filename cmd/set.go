package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/sellergrid"
	"github.com/google/subcommands"
)

type setCmd struct {
	index    int
	desc     string
	size     string
	gender   string
	price    float64
	donation bool
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "update fields of an existing item" }
func (*setCmd) Usage() string {
	return `sgt set -i <position> [-desc <text>] [-size <size>] [-gender <tag>] [-price <amount>] [-donation]

  Updates the given fields of the item at the 1-based position. A
  fractional or out-of-range price is silently corrected.
`
}

func (p *setCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.index, "i", 0, "1-based position of the item to update.")
	f.StringVar(&p.desc, "desc", "", "Item description.")
	f.StringVar(&p.size, "size", "", "Item size.")
	f.StringVar(&p.gender, "gender", "", "Gender tag (unmarked, boy, girl).")
	f.Float64Var(&p.price, "price", 0, "Item price in whole units.")
	f.BoolVar(&p.donation, "donation", false, "Donate the item if it does not sell.")
}

func (p *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.index < 1 {
		fmt.Fprintln(os.Stderr, "Error: -i is required and is 1-based.")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	i := p.index - 1

	var flagErr error
	f.Visit(func(fl *flag.Flag) {
		if flagErr != nil {
			return
		}
		switch fl.Name {
		case "desc":
			flagErr = ledger.SetDescription(i, p.desc)
		case "size":
			flagErr = ledger.SetSize(i, p.size)
		case "donation":
			flagErr = ledger.SetDonation(i, p.donation)
		case "gender":
			g, err := sellergrid.ParseGender(p.gender)
			if err != nil {
				flagErr = err
				return
			}
			flagErr = ledger.SetGender(i, g)
		case "price":
			price, corrected, err := ledger.SetPrice(i, p.price)
			if err != nil {
				flagErr = err
				return
			}
			if corrected {
				fmt.Printf("price corrected to %s\n", price.StringFixed())
			}
		}
	})
	if flagErr != nil {
		fmt.Fprintln(os.Stderr, flagErr)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
