package poker

import (
	"fmt"

	"github.com/opencoff/go-chd"
)

// rankPrimes assigns a distinct prime to every rank so that the product of
// five ranks identifies the rank multiset regardless of order.
var rankPrimes = [Ace + 1]uint64{
	Two: 2, Three: 3, Four: 5, Five: 7, Six: 11, Seven: 13, Eight: 17,
	Nine: 19, Ten: 23, Jack: 29, Queen: 31, King: 37, Ace: 41,
}

// flushTag separates flush keys (rank bitmasks) from prime products, which
// never exceed 41^4*37.
const flushTag = uint64(1) << 40

// distinctPatterns is the number of distinct five card hand values.
const distinctPatterns = 7462

type lookupEntry struct {
	key      uint64
	category Category
	tiebreak []int
}

// LookupEvaluator answers Evaluate5 with a single minimal perfect hash
// probe. The table is built from the Direct evaluator over every distinct
// rank pattern, so both backends always agree.
type LookupEvaluator struct {
	table   *chd.Chd
	entries []lookupEntry
}

var _ Evaluator = (*LookupEvaluator)(nil)

// NewLookupEvaluator builds the perfect hash table by evaluating all 7,462
// patterns once.
func NewLookupEvaluator() (*LookupEvaluator, error) {
	patterns := rankPatterns()

	builder, err := chd.New()
	if err != nil {
		return nil, fmt.Errorf("create chd builder: %w", err)
	}
	for _, p := range patterns {
		if err := builder.Add(p.key); err != nil {
			return nil, fmt.Errorf("add key %d: %w", p.key, err)
		}
	}
	table, err := builder.Freeze(0.9)
	if err != nil {
		return nil, fmt.Errorf("freeze chd table: %w", err)
	}

	var size uint64
	for _, p := range patterns {
		size = max(size, table.Find(p.key)+1)
	}
	entries := make([]lookupEntry, size)
	for _, p := range patterns {
		entries[table.Find(p.key)] = p
	}

	return &LookupEvaluator{table: table, entries: entries}, nil
}

// Len returns the number of patterns stored.
func (l *LookupEvaluator) Len() int {
	n := 0
	for _, e := range l.entries {
		if e.key != 0 {
			n++
		}
	}
	return n
}

// Evaluate5 implements Evaluator.
func (l *LookupEvaluator) Evaluate5(cards []Card) (HandEvaluation, error) {
	five, err := checkFive(cards)
	if err != nil {
		return HandEvaluation{}, err
	}
	return l.evaluate5(five), nil
}

// EvaluateBest implements Evaluator.
func (l *LookupEvaluator) EvaluateBest(hole Hand, board []Card) (HandEvaluation, error) {
	cards, err := checkBest(hole, board)
	if err != nil {
		return HandEvaluation{}, err
	}
	return bestOf(cards, l.evaluate5), nil
}

func (l *LookupEvaluator) evaluate5(cards [5]Card) HandEvaluation {
	key := patternKey(cards)
	entry := l.entries[l.table.Find(key)]
	if entry.key != key {
		// unreachable for valid hands
		return evaluate5(cards)
	}
	wheel := (entry.category == Straight || entry.category == StraightFlush) &&
		entry.tiebreak[0] == int(Five)
	return HandEvaluation{
		Category: entry.category,
		Tiebreak: append([]int(nil), entry.tiebreak...),
		Cards:    arrange(cards, groupRanks(cards), wheel),
	}
}

func patternKey(cards [5]Card) uint64 {
	flush := true
	var mask uint64
	product := uint64(1)
	for _, c := range cards {
		if c.Suit != cards[0].Suit {
			flush = false
		}
		mask |= 1 << c.Rank
		product *= rankPrimes[c.Rank]
	}
	if flush {
		return flushTag | mask
	}
	return product
}

// rankPatterns enumerates every rank multiset of five cards (no rank more
// than four times) as an off-suit hand, plus every five distinct ranks as a
// flush.
func rankPatterns() []lookupEntry {
	patterns := make([]lookupEntry, 0, distinctPatterns)
	add := func(cards [5]Card) {
		e := evaluate5(cards)
		patterns = append(patterns, lookupEntry{
			key:      patternKey(cards),
			category: e.Category,
			tiebreak: e.Tiebreak,
		})
	}

	for a := Ace; a >= Two; a-- {
		for b := a; b >= Two; b-- {
			for c := b; c >= Two; c-- {
				for d := c; d >= Two; d-- {
					for e := d; e >= Two; e-- {
						if a == e {
							continue
						}
						ranks := [5]Rank{a, b, c, d, e}
						// Equal ranks are adjacent, so cycling suits by
						// position keeps cards distinct and never all suited.
						var cards [5]Card
						for i, r := range ranks {
							cards[i] = Card{Rank: r, Suit: Suit(i % 4)}
						}
						add(cards)

						if a > b && b > c && c > d && d > e {
							for i := range cards {
								cards[i].Suit = Spades
							}
							add(cards)
						}
					}
				}
			}
		}
	}
	return patterns
}
