package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/sellergrid"
	"github.com/google/subcommands"
)

type addCmd struct {
	desc     string
	size     string
	gender   string
	price    float64
	donation bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append a new item to the grid" }
func (*addCmd) Usage() string {
	return `sgt add [-desc <text>] [-size <size>] [-gender <tag>] [-price <amount>] [-donation]

  Appends an item to the end of the grid, seeded from the seller profile
  defaults, then applies the given fields. A fractional or out-of-range
  price is silently corrected.
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.desc, "desc", "", "Item description.")
	f.StringVar(&p.size, "size", "", "Item size.")
	f.StringVar(&p.gender, "gender", "", "Gender tag (unmarked, boy, girl).")
	f.Float64Var(&p.price, "price", 0, "Item price in whole units.")
	f.BoolVar(&p.donation, "donation", false, "Donate the item if it does not sell.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	i := ledger.AddItem()

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
		return subcommands.ExitUsageError
	}

	fmt.Printf("added item %d\n", i+1)
	return subcommands.ExitSuccess
}
