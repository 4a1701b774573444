package ranges

import (
	"github.com/samber/lo"

	"github.com/lox/pokerstudy/poker"
)

// Combos returns every concrete hand of the class: 6 for a pair, 4 suited,
// 12 offsuit.
func (c Class) Combos() []poker.Hand {
	combos := make([]poker.Hand, 0, c.Kind.Combos())
	switch c.Kind {
	case Pair:
		for i, s1 := range poker.Suits {
			for _, s2 := range poker.Suits[i+1:] {
				combos = append(combos, poker.Hand{
					poker.NewCard(c.High, s1),
					poker.NewCard(c.Low, s2),
				})
			}
		}
	case Suited:
		for _, s := range poker.Suits {
			combos = append(combos, poker.Hand{
				poker.NewCard(c.High, s),
				poker.NewCard(c.Low, s),
			})
		}
	case Offsuit:
		for _, s1 := range poker.Suits {
			for _, s2 := range poker.Suits {
				if s1 == s2 {
					continue
				}
				combos = append(combos, poker.Hand{
					poker.NewCard(c.High, s1),
					poker.NewCard(c.Low, s2),
				})
			}
		}
	}
	return combos
}

// ExpandClassToCombos parses a class label and returns its combos.
func ExpandClassToCombos(label string) ([]poker.Hand, error) {
	c, err := ParseClass(label)
	if err != nil {
		return nil, err
	}
	return c.Combos(), nil
}

// FilterBlocked drops every combo that shares a card with blocked. The
// result may be empty.
func FilterBlocked(combos []poker.Hand, blocked poker.CardSet) []poker.Hand {
	return lo.Filter(combos, func(h poker.Hand, _ int) bool {
		return !h.Blocks(blocked)
	})
}
