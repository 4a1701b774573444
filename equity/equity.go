// Package equity estimates showdown equity by Monte Carlo simulation: a hero
// hand against a random holding, against a weighted range, or several hands
// against each other. Trials complete the board with a partial Fisher-Yates
// draw from the cards not yet seen.
package equity

import (
	"context"
	"errors"

	"github.com/lox/pokerstudy/poker"
	"github.com/lox/pokerstudy/ranges"
)

// ErrInvalidTrials is returned when a trial count is below 1.
var ErrInvalidTrials = errors.New("trial count must be at least 1")

// Rand is the source of randomness for card draws. *rand.Rand from
// math/rand/v2 satisfies it, as do the generators in internal/randutil.
type Rand = poker.Rand

// sequential plays every trial on the caller's generator.
var sequential = NewCalculator(WithWorkers(1))

// SimulateVsRandom estimates hero's equity against one opponent holding any
// two unseen cards.
func SimulateVsRandom(hero poker.Hand, board []poker.Card, trials int, rng Rand) (Result, error) {
	return sequential.VsRandom(context.Background(), hero, board, trials, rng)
}

// SimulateVsRange estimates hero's equity against a weighted opponent range.
// See Calculator.VsRange for how trials are allotted.
func SimulateVsRange(hero poker.Hand, board []poker.Card, opponents *ranges.Range, trialsPerCombo int, rng Rand) (Result, error) {
	return sequential.VsRange(context.Background(), hero, board, opponents, trialsPerCombo, rng)
}

// SimulateHands runs a multi-way showdown and returns one Result per hand.
func SimulateHands(hands []poker.Hand, board []poker.Card, trials int, rng Rand) ([]Result, error) {
	return sequential.Hands(context.Background(), hands, board, trials, rng)
}
