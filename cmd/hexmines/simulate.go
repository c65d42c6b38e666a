package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/lox/hexmines/internal/simulator"
)

// SimulateCmd runs batches of random-policy games
type SimulateCmd struct {
	Games   int   `short:"g" default:"1000" help:"Number of games to play"`
	Radius  int   `short:"r" default:"5" help:"Board radius"`
	Mines   int   `short:"m" default:"12" help:"Mines per board"`
	Seed    int64 `short:"s" default:"1" help:"Base seed; results are reproducible for a fixed seed"`
	Workers int   `short:"w" default:"0" help:"Worker goroutines (0 = GOMAXPROCS)"`
	Debug   bool  `short:"d" help:"Enable debug logging"`
}

func (cmd *SimulateCmd) Run() error {
	level := log.InfoLevel
	if cmd.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})

	workers := cmd.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	sim := simulator.New(simulator.Config{
		Games:   cmd.Games,
		Radius:  cmd.Radius,
		Mines:   cmd.Mines,
		Seed:    cmd.Seed,
		Workers: workers,
		Logger:  logger,
	})

	logger.Info("Starting simulation",
		"games", cmd.Games, "radius", cmd.Radius, "mines", cmd.Mines,
		"seed", cmd.Seed, "workers", workers)

	stats, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("games:          %d\n", stats.Games)
	fmt.Printf("wins:           %d (%.2f%%)\n", stats.Wins, stats.WinRate()*100)
	fmt.Printf("losses:         %d\n", stats.Losses)
	fmt.Printf("mean moves:     %.2f\n", stats.MeanMoves())
	fmt.Printf("mean revealed:  %.2f\n", stats.MeanRevealed())
	return nil
}
