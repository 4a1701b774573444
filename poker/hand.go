package poker

import "fmt"

// Hand is a pair of hole cards.
type Hand [2]Card

// NewHand creates a hand from two distinct cards.
func NewHand(a, b Card) (Hand, error) {
	if a == b {
		return Hand{}, duplicateErr(a)
	}
	if !a.Valid() || !b.Valid() {
		return Hand{}, ErrInvalidCard
	}
	return Hand{a, b}, nil
}

// ParseHand parses two hole cards, e.g. "AhKh".
func ParseHand(s string) (Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Hand{}, err
	}
	if len(cards) != 2 {
		return Hand{}, fmt.Errorf("%w: hand needs 2 cards, got %d", ErrInvalidArity, len(cards))
	}
	return NewHand(cards[0], cards[1])
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}

// Cards returns the hole cards as a slice.
func (h Hand) Cards() []Card {
	return h[:]
}

// Set returns the hole cards as a CardSet.
func (h Hand) Set() CardSet {
	return NewCardSet(h[0], h[1])
}

// Blocks reports whether the hand holds any card in cs.
func (h Hand) Blocks(cs CardSet) bool {
	return cs.Contains(h[0]) || cs.Contains(h[1])
}

// String returns the hand in notation form, e.g. "AhKh".
func (h Hand) String() string {
	return h[0].String() + h[1].String()
}

// Street names the betting round implied by the board size.
type Street uint8

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// Board holds up to five community cards and only grows.
type Board struct {
	cards []Card
}

// NewBoard creates a board from the given cards.
func NewBoard(cards ...Card) (Board, error) {
	var b Board
	for _, c := range cards {
		if err := b.Add(c); err != nil {
			return Board{}, err
		}
	}
	return b, nil
}

// ParseBoard parses board notation; an empty string is the empty board.
func ParseBoard(s string) (Board, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Board{}, err
	}
	return NewBoard(cards...)
}

// Add appends a card dealt on the next street.
func (b *Board) Add(c Card) error {
	if len(b.cards) >= 5 {
		return ErrBoardFull
	}
	if !c.Valid() {
		return ErrInvalidCard
	}
	for _, existing := range b.cards {
		if existing == c {
			return duplicateErr(c)
		}
	}
	b.cards = append(b.cards, c)
	return nil
}

// Cards returns a copy of the board cards.
func (b Board) Cards() []Card {
	return append([]Card(nil), b.cards...)
}

// Len returns the number of dealt community cards.
func (b Board) Len() int {
	return len(b.cards)
}

// Street reports the betting round for the current board size.
func (b Board) Street() Street {
	switch {
	case len(b.cards) >= 5:
		return River
	case len(b.cards) == 4:
		return Turn
	case len(b.cards) >= 3:
		return Flop
	default:
		return Preflop
	}
}

func (b Board) String() string {
	return FormatCards(b.cards)
}

func duplicateErr(c Card) error {
	return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
}
