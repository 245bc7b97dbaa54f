package main

import (
	"context"
	"fmt"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/pokerhand/cmd/pokerhand/shared"
	"github.com/lox/pokerhand/internal/config"
	"github.com/lox/pokerhand/internal/fileutil"
	"github.com/lox/pokerhand/internal/simulator"
	"github.com/lox/pokerhand/poker"
)

// SimulateCmd flags override the simulation block of the config file when set.
type SimulateCmd struct {
	Rounds      int    `short:"r" help:"Number of showdowns to deal"`
	Players     int    `short:"p" help:"Players per showdown"`
	Cards       int    `help:"Cards dealt to each player (at least 5)"`
	Workers     int    `short:"w" help:"Parallel workers (0 uses config or GOMAXPROCS)"`
	Seed        int64  `short:"s" help:"Seed for reproducible deals (0 uses config or time)"`
	MinCategory string `help:"Weakest category kept as a sample, e.g. 'full house'"`
	Samples     int    `help:"Maximum sample hands to print"`
	Output      string `short:"o" type:"path" help:"Write a JSON report to this file"`

	clock quartz.Clock
}

func (c *SimulateCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	settings := c.apply(*e.cfg.Simulation)
	check := config.Config{LogLevel: e.cfg.LogLevel, Display: e.cfg.Display, Simulation: &settings}
	if err := check.Validate(); err != nil {
		return err
	}
	minCategory, err := poker.ParseCategory(settings.MinCategory)
	if err != nil {
		return err
	}

	clock := c.clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	seed := settings.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}

	ctx, stop := shared.SetupSignalHandler(context.Background(), e.logger)
	defer stop()

	sim := simulator.New(simulator.Config{
		Rounds:         settings.Rounds,
		Players:        settings.Players,
		CardsPerPlayer: settings.CardsPerPlayer,
		Workers:        settings.Workers,
		Seed:           seed,
		MinCategory:    minCategory,
		Samples:        settings.Samples,
		Clock:          clock,
		Logger:         e.logger,
	})
	result, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	c.print(e, seed, minCategory, result)

	if c.Output != "" {
		if err := fileutil.WriteJSON(c.Output, simulator.NewReport(seed, result), 0o644); err != nil {
			return err
		}
		e.logger.Info("Wrote report", "file", c.Output)
	}
	return nil
}

func (c *SimulateCmd) apply(s config.SimulationConfig) config.SimulationConfig {
	if c.Rounds != 0 {
		s.Rounds = c.Rounds
	}
	if c.Players != 0 {
		s.Players = c.Players
	}
	if c.Cards != 0 {
		s.CardsPerPlayer = c.Cards
	}
	if c.Workers != 0 {
		s.Workers = c.Workers
	}
	if c.Seed != 0 {
		s.Seed = c.Seed
	}
	if c.MinCategory != "" {
		s.MinCategory = c.MinCategory
	}
	if c.Samples != 0 {
		s.Samples = c.Samples
	}
	return s
}

func (c *SimulateCmd) print(e *env, seed int64, minCategory poker.Category, result *simulator.Result) {
	fmt.Fprintf(e.out, "Dealt %d showdowns, %d hands (seed %d)\n\n", result.Rounds, result.Hands, seed)
	e.printer.Frequencies(result.Categories, result.Hands)

	fmt.Fprintln(e.out)
	for seat := range result.Wins {
		low, high := result.Equity[seat].ConfidenceInterval95()
		fmt.Fprintf(e.out, "Player%d: %d wins, %d ties, equity %.1f%% (95%% CI %.1f%% to %.1f%%)\n",
			seat+1, result.Wins[seat], result.Ties[seat],
			result.Equity[seat].Mean()*100, low*100, high*100)
	}

	if len(result.Samples) > 0 {
		fmt.Fprintf(e.out, "\nHands of %s or better:\n", minCategory)
		for _, s := range result.Samples {
			fmt.Fprintf(e.out, "  round %d Player%d: %s\n", s.Round+1, s.Seat+1, e.printer.Hand(s.Hand))
		}
	}

	fmt.Fprintf(e.out, "\nCompleted in %s (%.0f hands/sec)\n", result.Elapsed.Round(time.Millisecond), result.HandsPerSecond())
}
