// Package ranges maps the 169 starting-hand classes to and from a 13×13
// grid and expands classes into concrete two card combos.
package ranges

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/pokerstudy/poker"
)

// ErrInvalidClass is returned for malformed hand-class labels or grid
// coordinates outside the 13×13 grid.
var ErrInvalidClass = errors.New("invalid hand class")

// Size is the width and height of the starting-hand grid.
const Size = 13

// TotalCombos is C(52,2), the number of distinct two card hands.
const TotalCombos = 1326

// Kind distinguishes pocket pairs from suited and offsuit hands.
type Kind uint8

const (
	Pair Kind = iota
	Suited
	Offsuit
)

func (k Kind) String() string {
	switch k {
	case Pair:
		return "pair"
	case Suited:
		return "suited"
	case Offsuit:
		return "offsuit"
	default:
		return "unknown"
	}
}

// Combos returns how many concrete hands a class of this kind contains.
func (k Kind) Combos() int {
	switch k {
	case Pair:
		return 6
	case Suited:
		return 4
	default:
		return 12
	}
}

// Class is one of the 169 canonical starting hands. High >= Low always.
type Class struct {
	High poker.Rank
	Low  poker.Rank
	Kind Kind
}

// String returns the canonical label: "AA", "AKs" or "AKo".
func (c Class) String() string {
	switch c.Kind {
	case Pair:
		return c.High.String() + c.High.String()
	case Suited:
		return c.High.String() + c.Low.String() + "s"
	default:
		return c.High.String() + c.Low.String() + "o"
	}
}

// ParseClass parses a label such as "AA", "AKs", "kqo" or "T9s". Rank order
// is normalized so "KAs" is AKs, and "10" is read as T.
func ParseClass(label string) (Class, error) {
	s := strings.ReplaceAll(strings.TrimSpace(label), "10", "T")
	if len(s) < 2 || len(s) > 3 {
		return Class{}, fmt.Errorf("%w: %q has wrong length", ErrInvalidClass, label)
	}

	r1, err := poker.ParseRank(s[0])
	if err != nil {
		return Class{}, fmt.Errorf("%w: %q: unknown rank %q", ErrInvalidClass, label, s[0])
	}
	r2, err := poker.ParseRank(s[1])
	if err != nil {
		return Class{}, fmt.Errorf("%w: %q: unknown rank %q", ErrInvalidClass, label, s[1])
	}
	if r2 > r1 {
		r1, r2 = r2, r1
	}

	if r1 == r2 {
		if len(s) == 3 {
			return Class{}, fmt.Errorf("%w: pocket pair %q cannot be suited or offsuit", ErrInvalidClass, label)
		}
		return Class{High: r1, Low: r2, Kind: Pair}, nil
	}

	if len(s) == 2 {
		return Class{}, fmt.Errorf("%w: %q needs an s or o marker", ErrInvalidClass, label)
	}
	switch s[2] {
	case 's', 'S':
		return Class{High: r1, Low: r2, Kind: Suited}, nil
	case 'o', 'O':
		return Class{High: r1, Low: r2, Kind: Offsuit}, nil
	default:
		return Class{}, fmt.Errorf("%w: %q: invalid modifier %q", ErrInvalidClass, label, s[2])
	}
}

// MustParseClass parses a class and panics on error (for tests)
func MustParseClass(label string) Class {
	c, err := ParseClass(label)
	if err != nil {
		panic(err)
	}
	return c
}

// ClassOf returns the class a concrete hand belongs to.
func ClassOf(h poker.Hand) Class {
	high, low := h[0].Rank, h[1].Rank
	if low > high {
		high, low = low, high
	}
	switch {
	case high == low:
		return Class{High: high, Low: low, Kind: Pair}
	case h[0].Suit == h[1].Suit:
		return Class{High: high, Low: low, Kind: Suited}
	default:
		return Class{High: high, Low: low, Kind: Offsuit}
	}
}

// rankIndex orders ranks by descending strength: Ace=0 … Two=12.
func rankIndex(r poker.Rank) int {
	return int(poker.Ace - r)
}

func indexRank(i int) poker.Rank {
	return poker.Ace - poker.Rank(i)
}

// Coord returns the grid cell of the class. Suited classes sit above the
// diagonal (row < col) and offsuit classes below it.
func (c Class) Coord() (row, col int) {
	hi, lo := rankIndex(c.High), rankIndex(c.Low)
	switch c.Kind {
	case Pair:
		return hi, hi
	case Suited:
		return hi, lo
	default:
		return lo, hi
	}
}

// ClassAt returns the class stored in a grid cell.
func ClassAt(row, col int) (Class, error) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return Class{}, fmt.Errorf("%w: cell (%d,%d) outside grid", ErrInvalidClass, row, col)
	}
	switch {
	case row == col:
		return Class{High: indexRank(row), Low: indexRank(row), Kind: Pair}, nil
	case row < col:
		return Class{High: indexRank(row), Low: indexRank(col), Kind: Suited}, nil
	default:
		return Class{High: indexRank(col), Low: indexRank(row), Kind: Offsuit}, nil
	}
}

// ClassToCoord returns the grid cell for a class label.
func ClassToCoord(label string) (row, col int, err error) {
	c, err := ParseClass(label)
	if err != nil {
		return 0, 0, err
	}
	row, col = c.Coord()
	return row, col, nil
}

// CoordToClass returns the canonical label for a grid cell.
func CoordToClass(row, col int) (string, error) {
	c, err := ClassAt(row, col)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// AllClasses returns the 169 classes in row-major grid order.
func AllClasses() []Class {
	classes := make([]Class, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			c, _ := ClassAt(row, col)
			classes = append(classes, c)
		}
	}
	return classes
}
