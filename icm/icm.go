// Package icm converts tournament chip counts into prize equity with the
// Malmuth-Harville independent chip model: a player takes the highest open
// place with probability proportional to their share of the chips still in
// play, and the model recurses on the players left.
package icm

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"
)

var (
	// ErrInvalidPayouts is returned for an empty, negative or zero-sum payout
	// structure, or one with more places than players.
	ErrInvalidPayouts = errors.New("invalid payouts")
	// ErrInvalidChips is returned for negative or non-finite chip counts, or
	// when no chips are in play.
	ErrInvalidChips = errors.New("invalid chips")
	// ErrTooManyPlayers is returned when the field is too large to model.
	ErrTooManyPlayers = errors.New("too many players")
)

const (
	// MaxPlayers is the largest field Calculate accepts.
	MaxPlayers = 64
	// arenaPlayers is the largest field solved with the dense subset arena.
	arenaPlayers = 20
	// maxSparseStates bounds the subsets the sparse path may visit.
	maxSparseStates = 1 << 22
)

// Player is one entrant and their stack.
type Player struct {
	Name  string
	Chips float64
}

// Payouts lists the prize for each paid place, first place first. Entries may
// be fractions of the pool or absolute amounts.
type Payouts []float64

// PayoutsFromPercentages scales percentages (summing to 100) to a prize pool.
func PayoutsFromPercentages(percentages []float64, pool float64) Payouts {
	return lo.Map(percentages, func(p float64, _ int) float64 {
		return p * pool / 100
	})
}

// Total is the prize pool the payouts distribute.
func (p Payouts) Total() float64 {
	return lo.Sum(p)
}

// PlayerResult is one player's share of the tournament.
type PlayerResult struct {
	Name             string
	Chips            float64
	ChipPercentage   float64
	Equity           float64
	EquityPercentage float64
	// FinishProbabilities[k] is the chance of finishing in place k+1. Fields
	// of up to 20 players get every place and each row sums to 1; larger
	// fields get the paid places only.
	FinishProbabilities []float64
}

// Differential is EquityPercentage minus ChipPercentage. It is positive when
// the player's prize equity share exceeds their chip share.
func (r PlayerResult) Differential() float64 {
	return r.EquityPercentage - r.ChipPercentage
}

// Result holds the model output in the order players were given.
type Result struct {
	Players    []PlayerResult
	PrizePool  float64
	TotalChips float64
}

// Calculate runs the model for players against payouts.
func Calculate(players []Player, payouts Payouts) (Result, error) {
	if err := validate(players, payouts); err != nil {
		return Result{}, err
	}

	chips := lo.Map(players, func(p Player, _ int) float64 { return p.Chips })
	total := lo.Sum(chips)
	pool := payouts.Total()

	var finish [][]float64
	if len(players) <= arenaPlayers {
		finish = arenaFinish(chips)
	} else {
		var err error
		if finish, err = sparseFinish(chips, len(payouts)); err != nil {
			return Result{}, err
		}
	}

	res := Result{
		Players:    make([]PlayerResult, len(players)),
		PrizePool:  pool,
		TotalChips: total,
	}
	for i, p := range players {
		equity := 0.0
		for k, prize := range payouts {
			equity += finish[i][k] * prize
		}
		res.Players[i] = PlayerResult{
			Name:                p.Name,
			Chips:               p.Chips,
			ChipPercentage:      p.Chips / total * 100,
			Equity:              equity,
			EquityPercentage:    equity / pool * 100,
			FinishProbabilities: finish[i],
		}
	}
	return res, nil
}

func validate(players []Player, payouts Payouts) error {
	if len(players) == 0 {
		return fmt.Errorf("%w: no players", ErrInvalidChips)
	}
	if len(players) > MaxPlayers {
		return fmt.Errorf("%w: %d players, at most %d supported", ErrTooManyPlayers, len(players), MaxPlayers)
	}
	if len(payouts) == 0 {
		return fmt.Errorf("%w: no paid places", ErrInvalidPayouts)
	}
	if len(payouts) > len(players) {
		return fmt.Errorf("%w: %d paid places for %d players", ErrInvalidPayouts, len(payouts), len(players))
	}
	for k, v := range payouts {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: place %d pays %v", ErrInvalidPayouts, k+1, v)
		}
	}
	if payouts.Total() <= 0 {
		return fmt.Errorf("%w: prize pool is zero", ErrInvalidPayouts)
	}

	total := 0.0
	for _, p := range players {
		if p.Chips < 0 || math.IsNaN(p.Chips) || math.IsInf(p.Chips, 0) {
			return fmt.Errorf("%w: %q has %v chips", ErrInvalidChips, p.Name, p.Chips)
		}
		total += p.Chips
	}
	if total <= 0 {
		return fmt.Errorf("%w: no chips in play", ErrInvalidChips)
	}
	return nil
}
