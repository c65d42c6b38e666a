package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/hexmines/internal/config"
	"github.com/lox/hexmines/internal/tui"
)

// PlayCmd runs an interactive game in the terminal
type PlayCmd struct {
	Config string `short:"c" default:"hexmines.hcl" help:"HCL config file (defaults apply when missing)"`
	Radius int    `short:"r" help:"Board radius, overrides config"`
	Mines  int    `short:"m" help:"Mine count, overrides config"`
	Seed   int64  `short:"s" help:"Placement seed, overrides config"`
	Debug  bool   `short:"d" help:"Write debug logs to hexmines.log"`
}

func (cmd *PlayCmd) Run() error {
	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Radius > 0 {
		cfg.Game.Radius = cmd.Radius
	}
	if cmd.Mines > 0 {
		cfg.Mines.Count = cmd.Mines
	}
	if cmd.Seed != 0 {
		cfg.Mines.Seed = cmd.Seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file.
	logger := log.New(io.Discard)
	if cmd.Debug {
		debugFile, err := os.OpenFile("hexmines.log", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
		if err != nil {
			return fmt.Errorf("failed to create debug log: %w", err)
		}
		defer func() {
			if err := debugFile.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "failed to close debug log: %v\n", err)
			}
		}()
		logger = log.NewWithOptions(debugFile, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Level:           log.DebugLevel,
		})
	}

	model := tui.New(cfg, logger, quartz.NewReal())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
