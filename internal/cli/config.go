package cli

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/valvenet/network"
	"github.com/katalvlaran/valvenet/solver"
)

// Config holds the settings of the solve command. A YAML file supplies the
// base values; flags given on the command line override them.
type Config struct {
	Input       string `yaml:"input"`
	Start       string `yaml:"start"`
	Minutes     uint32 `yaml:"minutes"`
	DualMinutes uint32 `yaml:"dual_minutes"`
	Strict      bool   `yaml:"strict"`
	Plan        bool   `yaml:"plan"`
	Verbose     bool   `yaml:"verbose"`
}

// DefaultConfig returns the puzzle defaults reading from stdin.
func DefaultConfig() Config {
	b := solver.DefaultBudgets()
	return Config{
		Input:       "-",
		Start:       network.DefaultStart,
		Minutes:     b.Single,
		DualMinutes: b.Dual,
	}
}

// LoadConfig overlays the YAML file at path onto cfg. Keys absent from the
// file keep their current value.
func LoadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// overlay copies every flag the user set explicitly from f into cfg.
func (f *solveFlags) overlay(fs *pflag.FlagSet, cfg *Config) {
	if fs.Changed("file") {
		cfg.Input = f.input
	}
	if fs.Changed("start") {
		cfg.Start = f.start
	}
	if fs.Changed("minutes") {
		cfg.Minutes = f.minutes
	}
	if fs.Changed("dual-minutes") {
		cfg.DualMinutes = f.dualMinutes
	}
	if fs.Changed("strict") {
		cfg.Strict = f.strict
	}
	if fs.Changed("plan") {
		cfg.Plan = f.plan
	}
	if fs.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
}
