package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/lox/pokerstudy/equity"
	"github.com/lox/pokerstudy/internal/randutil"
	"github.com/lox/pokerstudy/poker"
)

// SimFlags are the Monte Carlo settings shared by equity and odds. Zero
// values fall back to the configuration file.
type SimFlags struct {
	Trials    int           `short:"n" help:"Number of Monte Carlo trials (overrides config)"`
	Workers   int           `short:"w" help:"Parallel workers (overrides config)"`
	Seed      *int64        `help:"Random seed for reproducible results"`
	Budget    time.Duration `help:"Stop after this long and report a partial result (overrides config)"`
	Evaluator string        `help:"Hand evaluator backend: direct or lookup (overrides config)"`
}

func (f SimFlags) trials(e *env) int {
	if f.Trials > 0 {
		return f.Trials
	}
	return e.cfg.Simulation.Trials
}

// calculator builds the calculator and generator for a run from flags and
// configuration.
func (f SimFlags) calculator(e *env) (*equity.Calculator, equity.Rand, error) {
	workers := e.cfg.Simulation.Workers
	if f.Workers > 0 {
		workers = f.Workers
	}
	budget, err := e.cfg.BudgetDuration()
	if err != nil {
		return nil, nil, err
	}
	if f.Budget > 0 {
		budget = f.Budget
	}

	opts := []equity.Option{
		equity.WithWorkers(workers),
		equity.WithBudget(budget),
	}

	backend := e.cfg.Simulation.Evaluator
	if f.Evaluator != "" {
		backend = f.Evaluator
	}
	switch backend {
	case "direct":
	case "lookup":
		start := time.Now()
		lookup, err := poker.NewLookupEvaluator()
		if err != nil {
			return nil, nil, fmt.Errorf("building lookup evaluator: %w", err)
		}
		e.logger.Debug("Built lookup evaluator", "patterns", lookup.Len(), "elapsed", time.Since(start))
		opts = append(opts, equity.WithEvaluator(lookup))
	default:
		return nil, nil, fmt.Errorf("unknown evaluator %q, want direct or lookup", backend)
	}

	var rng equity.Rand
	switch {
	case f.Seed != nil:
		e.logger.Debug("Using deterministic seed", "seed", *f.Seed)
		rng = randutil.New(*f.Seed)
	case e.cfg.Simulation.Seed != 0:
		e.logger.Debug("Using configured seed", "seed", e.cfg.Simulation.Seed)
		rng = randutil.New(e.cfg.Simulation.Seed)
	default:
		rng = randutil.NewFast()
	}

	e.logger.Debug("Simulation settings", "workers", workers, "budget", budget, "evaluator", backend)
	return equity.NewCalculator(opts...), rng, nil
}

// parseHands parses hole card pairs such as "AcKd" or "Ac Kd".
func parseHands(handStrings []string) ([]poker.Hand, error) {
	hands := make([]poker.Hand, 0, len(handStrings))
	for i, s := range handStrings {
		h, err := poker.ParseHand(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		hands = append(hands, h)
	}
	return hands, nil
}

func parseBoard(s string) ([]poker.Card, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	b, err := poker.ParseBoard(s)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	return b.Cards(), nil
}
