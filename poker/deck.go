package poker

// Rand is the source of randomness used for dealing. *math/rand/v2.Rand
// satisfies it, as do the generators in internal/randutil.
type Rand interface {
	IntN(n int) int
}

// FullDeck returns all 52 cards in index order.
func FullDeck() []Card {
	cards := make([]Card, 52)
	for i := range cards {
		cards[i] = CardFromIndex(i)
	}
	return cards
}

// RemainingDeck returns every card not in dead, in index order.
func RemainingDeck(dead CardSet) []Card {
	cards := make([]Card, 0, 52-dead.Len())
	for i := 0; i < 52; i++ {
		c := CardFromIndex(i)
		if !dead.Contains(c) {
			cards = append(cards, c)
		}
	}
	return cards
}

// DrawN moves n uniformly chosen cards to the front of cards and returns
// that prefix. It is a Fisher-Yates shuffle stopped after n swaps, so the
// slice is permuted in place and the remaining positions stay unshuffled.
func DrawN(cards []Card, n int, rng Rand) []Card {
	if n > len(cards) {
		n = len(cards)
	}
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(cards)-i)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return cards[:n]
}
