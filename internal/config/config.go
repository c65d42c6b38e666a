// Package config loads game configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Mine rule names accepted in the mines block.
const (
	RuleRandom = "random"
	RuleSpaced = "spaced"
)

// Config represents the complete game configuration
type Config struct {
	Game  GameSettings `hcl:"game,block"`
	Mines MinesConfig  `hcl:"mines,block"`
}

// GameSettings contains board-level configuration
type GameSettings struct {
	Radius int    `hcl:"radius,optional"`
	Theme  string `hcl:"theme,optional"`
}

// MinesConfig defines how mines are placed
type MinesConfig struct {
	// Rule selects the placement strategy: "random" (fair placement of
	// Count mines) or "spaced" (the deterministic every-Spacing-th rule).
	Rule    string `hcl:"rule,optional"`
	Count   int    `hcl:"count,optional"`
	Spacing int    `hcl:"spacing,optional"`
	Seed    int64  `hcl:"seed,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			Radius: 5,
			Theme:  "auto",
		},
		Mines: MinesConfig{
			Rule:    RuleRandom,
			Count:   12,
			Spacing: 7,
		},
	}
}

// Load loads configuration from an HCL file, falling back to defaults when
// the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Game.Radius == 0 {
		config.Game.Radius = 5
	}
	if config.Game.Theme == "" {
		config.Game.Theme = "auto"
	}
	if config.Mines.Rule == "" {
		config.Mines.Rule = RuleRandom
	}
	if config.Mines.Count == 0 {
		config.Mines.Count = config.Game.Radius*config.Game.Radius / 2
	}
	if config.Mines.Count == 0 {
		config.Mines.Count = 1
	}
	if config.Mines.Spacing == 0 {
		config.Mines.Spacing = 7
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.Radius < 0 {
		return fmt.Errorf("radius must be non-negative, got %d", c.Game.Radius)
	}
	switch c.Game.Theme {
	case "auto", "light", "dark":
	default:
		return fmt.Errorf("invalid theme %q (want auto, light or dark)", c.Game.Theme)
	}

	cells := 3*c.Game.Radius*(c.Game.Radius+1) + 1
	switch c.Mines.Rule {
	case RuleRandom:
		if c.Mines.Count < 1 {
			return fmt.Errorf("mine count must be positive, got %d", c.Mines.Count)
		}
		if c.Mines.Count >= cells {
			return fmt.Errorf("%d mines do not fit a radius-%d board (%d cells, at least one must stay clear)",
				c.Mines.Count, c.Game.Radius, cells)
		}
	case RuleSpaced:
		if c.Mines.Spacing < 2 {
			return fmt.Errorf("mine spacing must be at least 2, got %d", c.Mines.Spacing)
		}
	default:
		return fmt.Errorf("invalid mine rule %q (want %s or %s)", c.Mines.Rule, RuleRandom, RuleSpaced)
	}

	return nil
}
