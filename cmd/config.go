package cmd

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the optional per-user configuration: where the data file
// lives, the display currency, and the profile defaults seeded into a
// fresh grid. The config file is entirely optional; every field has a
// working default.
type Config struct {
	DataFile        string `yaml:"data_file"`
	Currency        string `yaml:"currency"`
	SellerID        string `yaml:"seller_id"`
	DefaultDonation bool   `yaml:"default_donation"`
	DefaultGender   string `yaml:"default_gender"`
	DefaultSize     string `yaml:"default_size"`
}

// loadConfig reads the YAML config from -config, or ~/.sellergrid.yaml. A
// missing file yields the defaults; a malformed one is ignored with a
// warning.
func loadConfig() *Config {
	cfg := &Config{Currency: "USD"}

	path := *configFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg
		}
		path = filepath.Join(home, ".sellergrid.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		log.Printf("config-ignored file=%q err=%v", path, err)
		return &Config{Currency: "USD"}
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	return cfg
}
