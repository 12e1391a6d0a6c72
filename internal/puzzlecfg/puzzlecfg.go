// Package puzzlecfg loads the TOML configuration file the dlx CLI's solve,
// dot and tui commands take as their positional argument, describing which
// exact-cover encoder to run and with what parameters.
package puzzlecfg

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk shape of a puzzle file.
//
//	kind = "sudoku"
//	grid = [5,3,0, 0,7,0, ...]
//
//	kind = "nqueens"
//	n = 8
//
//	kind = "aztec"
//	order = 2
type Config struct {
	Kind  string `toml:"kind"`
	N     int    `toml:"n"`
	Order int    `toml:"order"`
	Grid  []int  `toml:"grid"`
	Limit int    `toml:"limit"` // 0 means unlimited
}

// Load reads and decodes a puzzle config file.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("puzzlecfg: decode %s: %w", path, err)
	}
	if cfg.Kind == "" {
		return Config{}, fmt.Errorf("puzzlecfg: %s: missing required field \"kind\"", path)
	}
	return cfg, nil
}

// MustExist returns an error wrapping os.Stat's failure if path does not
// exist, so callers get a clear message before toml even gets involved.
func MustExist(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("puzzlecfg: %w", err)
	}
	return nil
}
