// Package poker provides the card model and hand evaluation used by the
// equity simulator and range tools.
package poker

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. Suits carry no ranking weight.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in canonical order.
var Suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the single letter used in card notation.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// Symbol returns the unicode glyph for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true for hearts and diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank with numeric value 2 (deuce) through 14 (ace).
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the rank letter used in card notation.
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string("23456789TJQKA"[r-Two])
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// ParseRank converts a rank letter (case-insensitive, T for ten) to a Rank.
func ParseRank(c byte) (Rank, error) {
	switch c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	case '9':
		return Nine, nil
	case '8':
		return Eight, nil
	case '7':
		return Seven, nil
	case '6':
		return Six, nil
	case '5':
		return Five, nil
	case '4':
		return Four, nil
	case '3':
		return Three, nil
	case '2':
		return Two, nil
	default:
		return 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, c)
	}
}

// ParseSuit converts a suit letter (s, h, d, c in either case) to a Suit.
func ParseSuit(c byte) (Suit, error) {
	switch c {
	case 's', 'S':
		return Spades, nil
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'c', 'C':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, c)
	}
}

// Card is an immutable (rank, suit) pair.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the two character notation, e.g. "As" or "Td".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Pretty returns the card with a suit glyph, e.g. "A♠".
func (c Card) Pretty() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Valid reports whether the card is one of the 52 cards of a standard deck.
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit <= Clubs
}

// Index maps the card to 0..51, grouped by rank then suit.
func (c Card) Index() int {
	return int(c.Rank-Two)*4 + int(c.Suit)
}

// CardFromIndex is the inverse of Card.Index.
func CardFromIndex(i int) Card {
	return Card{Rank: Rank(i/4) + Two, Suit: Suit(i % 4)}
}

var suitGlyphs = strings.NewReplacer("♠", "s", "♥", "h", "♦", "d", "♣", "c")

// ParseCard parses exactly one card from its two character form, e.g. "As"
// or "td". Any other length is rejected; ParseCards accepts the looser forms.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q must be 2 characters", ErrInvalidCard, s)
	}

	rank, err := ParseRank(s[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := ParseSuit(s[1])
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a run of cards such as "AsKsQs", "As Ks Qs" or "As,Ks,Qs".
// Suit glyphs and "10" for ten are accepted here.
func ParseCards(s string) ([]Card, error) {
	s = suitGlyphs.Replace(s)
	s = strings.NewReplacer(" ", "", ",", "", "10", "T").Replace(s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: card string length %d is odd", ErrInvalidCard, len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// FormatCards joins cards with spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
