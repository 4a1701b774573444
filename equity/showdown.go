package equity

import (
	"github.com/lox/pokerstudy/poker"
)

// job is a block of trials against one opponent holding. A nil opp deals the
// opponent at random from deck.
type job struct {
	opp    *poker.Hand
	deck   []poker.Card
	trials int
	weight float64
}

// showdown completes boards and compares hands. Each worker owns one; the
// scratch slices are reused across trials.
type showdown struct {
	eval  poker.Evaluator
	known int
	board []poker.Card
	deck  []poker.Card
	evals []poker.HandEvaluation
}

func newShowdown(eval poker.Evaluator, board []poker.Card) *showdown {
	full := make([]poker.Card, 5)
	copy(full, board)
	return &showdown{
		eval:  eval,
		known: len(board),
		board: full,
		deck:  make([]poker.Card, 0, 52),
	}
}

// deal copies deck into scratch and draws n cards from it. Every trial starts
// from the same deck order so consecutive draws are independent.
func (s *showdown) deal(deck []poker.Card, n int, rng Rand) []poker.Card {
	s.deck = append(s.deck[:0], deck...)
	return poker.DrawN(s.deck, n, rng)
}

// heads plays one heads-up trial and returns 1 if hero wins, 2 on a split
// and 0 on a loss, matching Result.record.
func (s *showdown) heads(hero poker.Hand, j job, rng Rand) (int, error) {
	need := 5 - s.known
	var opp poker.Hand
	if j.opp != nil {
		opp = *j.opp
		copy(s.board[s.known:], s.deal(j.deck, need, rng))
	} else {
		drawn := s.deal(j.deck, need+2, rng)
		opp = poker.Hand{drawn[0], drawn[1]}
		copy(s.board[s.known:], drawn[2:])
	}

	h, err := s.eval.EvaluateBest(hero, s.board)
	if err != nil {
		return 0, err
	}
	v, err := s.eval.EvaluateBest(opp, s.board)
	if err != nil {
		return 0, err
	}
	switch poker.Compare(h, v) {
	case 1:
		return 1, nil
	case 0:
		return 2, nil
	default:
		return 0, nil
	}
}

// multi plays one trial between all hands and records it into results.
func (s *showdown) multi(hands []poker.Hand, deck []poker.Card, results []Result, rng Rand) error {
	copy(s.board[s.known:], s.deal(deck, 5-s.known, rng))

	s.evals = s.evals[:0]
	best := -1
	for i, h := range hands {
		e, err := s.eval.EvaluateBest(h, s.board)
		if err != nil {
			return err
		}
		s.evals = append(s.evals, e)
		if best < 0 || poker.Compare(e, s.evals[best]) > 0 {
			best = i
		}
	}

	winners := 0
	for _, e := range s.evals {
		if poker.Compare(e, s.evals[best]) == 0 {
			winners++
		}
	}
	for i, e := range s.evals {
		if poker.Compare(e, s.evals[best]) == 0 {
			results[i].record(winners, 1)
		} else {
			results[i].record(0, 1)
		}
	}
	return nil
}
