package poker

import "math/bits"

// CardSet represents a set of cards using a bitset for fast operations.
// Each card maps to the bit at Card.Index.
type CardSet uint64

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << card.Index()
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<card.Index()) != 0
}

// Len returns the number of cards in the set.
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

// Union returns the cards present in either set.
func (cs CardSet) Union(other CardSet) CardSet {
	return cs | other
}

// Intersects reports whether the sets share any card.
func (cs CardSet) Intersects(other CardSet) bool {
	return cs&other != 0
}

// Cards returns the members in index order.
func (cs CardSet) Cards() []Card {
	cards := make([]Card, 0, cs.Len())
	for rest := uint64(cs); rest != 0; rest &= rest - 1 {
		cards = append(cards, CardFromIndex(bits.TrailingZeros64(rest)))
	}
	return cards
}

// addUnique adds each card and fails on the first repeat.
func (cs *CardSet) addUnique(cards ...Card) error {
	for _, card := range cards {
		if !card.Valid() {
			return ErrInvalidCard
		}
		if cs.Contains(card) {
			return duplicateErr(card)
		}
		cs.Add(card)
	}
	return nil
}

// DeadCards builds a set from any number of card groups and rejects repeats
// across all of them.
func DeadCards(groups ...[]Card) (CardSet, error) {
	var cs CardSet
	for _, g := range groups {
		if err := cs.addUnique(g...); err != nil {
			return 0, err
		}
	}
	return cs, nil
}
