package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/sellergrid"
	"github.com/google/subcommands"
)

type sellerCmd struct {
	id       string
	donation bool
	gender   string
	size     string
}

func (*sellerCmd) Name() string     { return "seller" }
func (*sellerCmd) Synopsis() string { return "show or update the seller profile" }
func (*sellerCmd) Usage() string {
	return `sgt seller [-id <seller_id>] [-donation] [-gender <tag>] [-size <size>]

  Shows the seller profile, or updates the given fields. The defaults
  (donation, gender, size) are copied onto every newly added item.
`
}

func (p *sellerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Seller id printed into every barcode payload.")
	f.BoolVar(&p.donation, "donation", false, "Default donation flag for new items.")
	f.StringVar(&p.gender, "gender", "", "Default gender tag for new items (unmarked, boy, girl).")
	f.StringVar(&p.size, "size", "", "Default size for new items.")
}

func (p *sellerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	profile := ledger.Profile()
	changed := false
	var flagErr error
	f.Visit(func(fl *flag.Flag) {
		changed = true
		switch fl.Name {
		case "id":
			profile.SellerID = p.id
		case "donation":
			profile.DefaultDonation = p.donation
		case "size":
			profile.DefaultSize = p.size
		case "gender":
			g, err := sellergrid.ParseGender(p.gender)
			if err != nil {
				flagErr = err
				return
			}
			profile.DefaultGender = g
		}
	})
	if flagErr != nil {
		fmt.Fprintln(os.Stderr, flagErr)
		return subcommands.ExitUsageError
	}

	if changed {
		ledger.SetProfile(profile)
	}

	fmt.Printf("seller id: %q\n", profile.SellerID)
	fmt.Printf("defaults: donation=%v gender=%s size=%q\n",
		profile.DefaultDonation, profile.DefaultGender, profile.DefaultSize)
	return subcommands.ExitSuccess
}
