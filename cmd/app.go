// Package cmd implements the CLI application to manage a seller grid.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/etnz/sellergrid"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&sellerCmd{}, "profile")

	c.Register(&addCmd{}, "grid")
	c.Register(&setCmd{}, "grid")
	c.Register(&selectCmd{}, "grid")
	c.Register(&removeCmd{}, "grid")
	c.Register(&clearCmd{}, "grid")

	c.Register(&listCmd{}, "reports")
	c.Register(&totalsCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&exportCmd{}, "exchange")
	c.Register(&importCmd{}, "exchange")

	c.Register(&printCmd{}, "printing")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

const defaultDataFile = "seller-data.json"

var dataFile = flag.String("data", defaultDataFile, "Path to the seller grid data file")
var configFile = flag.String("config", "", "Path to an optional YAML config file with profile defaults")

// dataPath resolves the data file location: the -data flag wins, then the
// config file, then the default.
func dataPath(cfg *Config) string {
	if *dataFile != defaultDataFile {
		return *dataFile
	}
	if cfg.DataFile != "" {
		return cfg.DataFile
	}
	return defaultDataFile
}

// loadLedger opens the seller grid from the data file, creating a fresh one
// seeded from the config defaults when no file exists yet.
//
// The returned ledger re-saves its full state after every mutation; save
// failures are logged and never block further mutations.
func loadLedger() (*sellergrid.Ledger, error) {
	cfg := loadConfig()
	path := dataPath(cfg)

	l, err := sellergrid.LoadLedger(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, data file %q does not exist, starting a fresh grid instead", path)
		l, err = sellergrid.NewLedger(), nil
		seedProfile(l, cfg)
	}
	if err != nil {
		return nil, err
	}

	l.OnChange(func() {
		if err := sellergrid.SaveLedger(path, l); err != nil {
			log.Printf("save-failed file=%q err=%v", path, err)
		}
	})
	return l, nil
}

// seedProfile copies config defaults onto a freshly created grid.
func seedProfile(l *sellergrid.Ledger, cfg *Config) {
	gender, err := sellergrid.ParseGender(cfg.DefaultGender)
	if err != nil {
		log.Printf("config-ignored default_gender=%q err=%v", cfg.DefaultGender, err)
	}
	l.SetProfile(sellergrid.Profile{
		SellerID:        cfg.SellerID,
		DefaultDonation: cfg.DefaultDonation,
		DefaultGender:   gender,
		DefaultSize:     cfg.DefaultSize,
	})
	// The first item was seeded before the defaults were known.
	l.ClearAll()
}
