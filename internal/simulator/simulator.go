// Package simulator deals random showdowns and tallies how often each hand
// category is made and won.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerhand/internal/randutil"
	"github.com/lox/pokerhand/internal/statistics"
	"github.com/lox/pokerhand/poker"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds         int
	Players        int
	CardsPerPlayer int
	Workers        int // 0 uses GOMAXPROCS
	Seed           int64
	MinCategory    poker.Category // hands at or above this are kept as samples
	Samples        int            // maximum samples kept
	Clock          quartz.Clock
	Logger         *log.Logger
}

// Sample is a dealt hand that reached the minimum category.
type Sample struct {
	Round int
	Seat  int
	Hand  poker.Hand
}

// Result summarises a simulation.
type Result struct {
	Rounds     int
	Hands      int
	Categories map[poker.Category]int
	Wins       []int                   // outright wins per seat
	Ties       []int                   // shared wins per seat
	Equity     []statistics.Statistics // per seat share of each pot won
	Samples    []Sample
	Elapsed    time.Duration
}

// HandsPerSecond returns evaluation throughput, or 0 when no time elapsed.
func (r *Result) HandsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Hands) / r.Elapsed.Seconds()
}

// Simulator runs showdown simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Workers > config.Rounds && config.Rounds > 0 {
		config.Workers = config.Rounds
	}
	return &Simulator{config: config}
}

func (s *Simulator) validate() error {
	c := s.config
	switch {
	case c.Rounds < 1:
		return fmt.Errorf("rounds must be positive, got %d", c.Rounds)
	case c.Players < 2:
		return fmt.Errorf("at least 2 players required, got %d", c.Players)
	case c.CardsPerPlayer < poker.HandSize:
		return fmt.Errorf("%w: each player needs at least %d cards, got %d", poker.ErrInvalidCardCount, poker.HandSize, c.CardsPerPlayer)
	case c.Players*c.CardsPerPlayer > poker.DeckSize:
		return fmt.Errorf("%w: %d players with %d cards each exceeds the deck", poker.ErrInvalidCardCount, c.Players, c.CardsPerPlayer)
	case c.Samples < 0:
		return errors.New("samples cannot be negative")
	}
	return nil
}

// Run deals every round and returns the combined result. Round r always uses
// the same deck for a given seed, so results do not depend on the number of
// workers.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	cfg := s.config
	logger := cfg.Logger
	start := cfg.Clock.Now()
	logger.Info("Starting simulation", "rounds", cfg.Rounds, "players", cfg.Players,
		"cards", cfg.CardsPerPlayer, "workers", cfg.Workers, "seed", cfg.Seed)

	partials := make([]*Result, cfg.Workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range cfg.Workers {
		g.Go(func() error {
			partial, err := s.runWorker(ctx, w)
			if err != nil {
				return err
			}
			partials[w] = partial
			logger.Debug("Worker finished", "worker", w, "rounds", partial.Rounds)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := s.merge(partials)
	result.Elapsed = cfg.Clock.Since(start)
	logger.Info("Simulation complete", "hands", result.Hands, "elapsed", result.Elapsed)
	return result, nil
}

// runWorker plays rounds w, w+workers, w+2*workers, ...
func (s *Simulator) runWorker(ctx context.Context, w int) (*Result, error) {
	cfg := s.config
	partial := newResult(cfg.Players)
	hands := make([]poker.Hand, cfg.Players)

	for round := w; round < cfg.Rounds; round += cfg.Workers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		deck := poker.NewDeck(randutil.Stream(cfg.Seed, round))
		for seat := range hands {
			cards, err := deck.Deal(cfg.CardsPerPlayer)
			if err != nil {
				return nil, fmt.Errorf("round %d seat %d: %w", round, seat, err)
			}
			hand, err := poker.Evaluate(cards)
			if err != nil {
				return nil, fmt.Errorf("round %d seat %d: %w", round, seat, err)
			}
			hands[seat] = hand

			partial.Categories[hand.Category()]++
			if hand.Category() >= cfg.MinCategory && len(partial.Samples) < cfg.Samples {
				partial.Samples = append(partial.Samples, Sample{Round: round, Seat: seat, Hand: hand})
			}
		}

		winners := poker.Showdown(hands)
		share := 1 / float64(len(winners))
		won := make([]float64, len(hands))
		for _, seat := range winners {
			won[seat] = share
			if len(winners) == 1 {
				partial.Wins[seat]++
			} else {
				partial.Ties[seat]++
			}
		}
		for seat, x := range won {
			partial.Equity[seat].Add(x)
		}
		partial.Rounds++
		partial.Hands += len(hands)
	}
	return partial, nil
}

// merge combines worker results. Samples are ordered by round and seat and
// trimmed, which keeps them independent of how rounds were split.
func (s *Simulator) merge(partials []*Result) *Result {
	result := newResult(s.config.Players)
	for _, p := range partials {
		result.Rounds += p.Rounds
		result.Hands += p.Hands
		for c, n := range p.Categories {
			result.Categories[c] += n
		}
		for seat := range result.Wins {
			result.Wins[seat] += p.Wins[seat]
			result.Ties[seat] += p.Ties[seat]
			result.Equity[seat].Merge(p.Equity[seat])
		}
		result.Samples = append(result.Samples, p.Samples...)
	}

	slices.SortFunc(result.Samples, func(a, b Sample) int {
		if a.Round != b.Round {
			return a.Round - b.Round
		}
		return a.Seat - b.Seat
	})
	if len(result.Samples) > s.config.Samples {
		result.Samples = result.Samples[:s.config.Samples]
	}
	return result
}

func newResult(players int) *Result {
	return &Result{
		Categories: make(map[poker.Category]int, len(poker.Categories)),
		Wins:       make([]int, players),
		Ties:       make([]int, players),
		Equity:     make([]statistics.Statistics, players),
	}
}
