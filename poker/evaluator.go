package poker

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/combin"
)

// Category is the class of a five card hand, ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a hand category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Categories lists every category from strongest to weakest.
var Categories = []Category{
	RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
	Straight, ThreeOfAKind, TwoPair, OnePair, HighCard,
}

// HandEvaluation is the value of a five card hand. Category and Tiebreak
// together totally order all five card hands; Cards are the five cards that
// make the hand, most significant first.
type HandEvaluation struct {
	Category Category
	Tiebreak []int
	Cards    [5]Card
}

// Compare returns 1 if e beats other, -1 if it loses and 0 on a tie.
func (e HandEvaluation) Compare(other HandEvaluation) int {
	return Compare(e, other)
}

// String returns e.g. "Two Pair [14 13 9]".
func (e HandEvaluation) String() string {
	parts := make([]string, len(e.Tiebreak))
	for i, v := range e.Tiebreak {
		parts[i] = strconv.Itoa(v)
	}
	return fmt.Sprintf("%s [%s]", e.Category, strings.Join(parts, " "))
}

// Compare orders two evaluations by category, then tiebreak entries left to
// right. A missing entry compares as 0.
func Compare(a, b HandEvaluation) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}
	n := max(len(a.Tiebreak), len(b.Tiebreak))
	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(a.Tiebreak) {
			av = a.Tiebreak[i]
		}
		if i < len(b.Tiebreak) {
			bv = b.Tiebreak[i]
		}
		if av != bv {
			if av > bv {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Evaluator ranks five card hands and finds the best hand from hole and
// board cards.
type Evaluator interface {
	Evaluate5(cards []Card) (HandEvaluation, error)
	EvaluateBest(hole Hand, board []Card) (HandEvaluation, error)
}

// Direct evaluates hands by counting ranks and suits. It needs no tables.
type Direct struct{}

var _ Evaluator = Direct{}

// Evaluate5 ranks exactly five distinct cards.
func Evaluate5(cards []Card) (HandEvaluation, error) {
	five, err := checkFive(cards)
	if err != nil {
		return HandEvaluation{}, err
	}
	return evaluate5(five), nil
}

// EvaluateBest returns the strongest five card hand that can be made from the
// hole cards and up to five board cards.
func EvaluateBest(hole Hand, board []Card) (HandEvaluation, error) {
	cards, err := checkBest(hole, board)
	if err != nil {
		return HandEvaluation{}, err
	}
	return bestOf(cards, evaluate5), nil
}

// Evaluate5 implements Evaluator.
func (Direct) Evaluate5(cards []Card) (HandEvaluation, error) {
	return Evaluate5(cards)
}

// EvaluateBest implements Evaluator.
func (Direct) EvaluateBest(hole Hand, board []Card) (HandEvaluation, error) {
	return EvaluateBest(hole, board)
}

func checkFive(cards []Card) ([5]Card, error) {
	var five [5]Card
	if len(cards) != 5 {
		return five, fmt.Errorf("%w: need 5 cards, got %d", ErrInvalidArity, len(cards))
	}
	var seen CardSet
	if err := seen.addUnique(cards...); err != nil {
		return five, fmt.Errorf("%w: %w", ErrInvalidArity, err)
	}
	copy(five[:], cards)
	return five, nil
}

func checkBest(hole Hand, board []Card) ([]Card, error) {
	total := len(hole) + len(board)
	if total < 5 {
		return nil, fmt.Errorf("%w: have %d cards", ErrInsufficientCards, total)
	}
	if len(board) > 5 {
		return nil, fmt.Errorf("%w: board has %d cards", ErrInvalidArity, len(board))
	}
	if _, err := DeadCards(hole[:], board); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArity, err)
	}
	cards := make([]Card, 0, total)
	cards = append(cards, hole[:]...)
	return append(cards, board...), nil
}

// bestOf evaluates every five card subset of cards and keeps the strongest.
func bestOf(cards []Card, eval func([5]Card) HandEvaluation) HandEvaluation {
	var (
		best  HandEvaluation
		found bool
		five  [5]Card
		idx   = make([]int, 5)
	)
	gen := combin.NewCombinationGenerator(len(cards), 5)
	for gen.Next() {
		gen.Combination(idx)
		for i, j := range idx {
			five[i] = cards[j]
		}
		e := eval(five)
		if !found || Compare(e, best) > 0 {
			best, found = e, true
		}
	}
	return best
}

// rankGroup is a rank and how many of the five cards carry it.
type rankGroup struct {
	rank  Rank
	count int
}

// groupRanks returns the rank groups ordered by count desc, then rank desc.
func groupRanks(cards [5]Card) []rankGroup {
	var counts [Ace + 1]int
	for _, c := range cards {
		counts[c.Rank]++
	}
	groups := make([]rankGroup, 0, 5)
	for r := Ace; r >= Two; r-- {
		if counts[r] > 0 {
			groups = append(groups, rankGroup{rank: r, count: counts[r]})
		}
	}
	slices.SortStableFunc(groups, func(a, b rankGroup) int {
		return b.count - a.count
	})
	return groups
}

// straightHigh returns the top card of a straight formed by five distinct
// ranks given in descending order, or 0. The wheel (A-5-4-3-2) is 5-high.
func straightHigh(desc []rankGroup) Rank {
	if len(desc) != 5 {
		return 0
	}
	if desc[0].rank-desc[4].rank == 4 {
		return desc[0].rank
	}
	if desc[0].rank == Ace && desc[1].rank == Five && desc[4].rank == Two {
		return Five
	}
	return 0
}

func evaluate5(cards [5]Card) HandEvaluation {
	groups := groupRanks(cards)

	flush := true
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			flush = false
			break
		}
	}
	high := straightHigh(groups)

	var category Category
	switch {
	case high != 0 && flush && high == Ace:
		category = RoyalFlush
	case high != 0 && flush:
		category = StraightFlush
	case groups[0].count == 4:
		category = FourOfAKind
	case groups[0].count == 3 && groups[1].count == 2:
		category = FullHouse
	case flush:
		category = Flush
	case high != 0:
		category = Straight
	case groups[0].count == 3:
		category = ThreeOfAKind
	case groups[0].count == 2 && groups[1].count == 2:
		category = TwoPair
	case groups[0].count == 2:
		category = OnePair
	default:
		category = HighCard
	}

	var tiebreak []int
	if high != 0 {
		tiebreak = []int{int(high)}
	} else {
		tiebreak = make([]int, len(groups))
		for i, g := range groups {
			tiebreak[i] = int(g.rank)
		}
	}

	return HandEvaluation{
		Category: category,
		Tiebreak: tiebreak,
		Cards:    arrange(cards, groups, high == Five),
	}
}

// arrange orders the cards to follow the rank groups, with the ace last in a
// wheel.
func arrange(cards [5]Card, groups []rankGroup, wheel bool) [5]Card {
	order := make(map[Rank]int, len(groups))
	for i, g := range groups {
		order[g.rank] = i
	}
	if wheel {
		order[Ace] = len(groups)
	}
	out := cards
	slices.SortStableFunc(out[:], func(a, b Card) int {
		if d := order[a.Rank] - order[b.Rank]; d != 0 {
			return d
		}
		return int(a.Suit) - int(b.Suit)
	})
	return out
}
