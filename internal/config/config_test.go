package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hexmines.hcl")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.hcl"))
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *Default() {
		t.Errorf("got %+v, want defaults %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadFullConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
game {
  radius = 7
  theme  = "dark"
}

mines {
  rule  = "random"
  count = 30
  seed  = 42
}
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Game.Radius != 7 || cfg.Game.Theme != "dark" {
		t.Errorf("game settings = %+v", cfg.Game)
	}
	if cfg.Mines.Rule != RuleRandom || cfg.Mines.Count != 30 || cfg.Mines.Seed != 42 {
		t.Errorf("mine settings = %+v", cfg.Mines)
	}
	if cfg.Mines.Spacing != 7 {
		t.Errorf("spacing default not applied, got %d", cfg.Mines.Spacing)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("config failed validation: %v", err)
	}
}

func TestLoadAppliesDefaultsForOmittedValues(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
game {
  radius = 4
}

mines {}
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Game.Theme != "auto" {
		t.Errorf("theme = %q, want auto", cfg.Game.Theme)
	}
	if cfg.Mines.Rule != RuleRandom {
		t.Errorf("rule = %q, want %q", cfg.Mines.Rule, RuleRandom)
	}
	// Count defaults to radius²/2.
	if cfg.Mines.Count != 8 {
		t.Errorf("count = %d, want 8", cfg.Mines.Count)
	}
}

func TestLoadInvalidHCL(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `game { radius = `)
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"negative radius", func(c *Config) { c.Game.Radius = -1 }, true},
		{"bad theme", func(c *Config) { c.Game.Theme = "neon" }, true},
		{"zero mines", func(c *Config) { c.Mines.Count = 0 }, true},
		{"too many mines", func(c *Config) { c.Game.Radius = 1; c.Mines.Count = 7 }, true},
		{"max mines that fit", func(c *Config) { c.Game.Radius = 1; c.Mines.Count = 6 }, false},
		{"unknown rule", func(c *Config) { c.Mines.Rule = "clustered" }, true},
		{"spaced rule", func(c *Config) { c.Mines.Rule = RuleSpaced; c.Mines.Spacing = 5 }, false},
		{"spacing too tight", func(c *Config) { c.Mines.Rule = RuleSpaced; c.Mines.Spacing = 1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
