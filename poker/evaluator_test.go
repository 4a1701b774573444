package poker

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate5(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		category Category
		tiebreak []int
	}{
		{"royal flush", "AhKhQhJhTh", RoyalFlush, []int{14}},
		{"straight flush king high", "9hThJhQhKh", StraightFlush, []int{13}},
		{"steel wheel", "5s4s3s2sAs", StraightFlush, []int{5}},
		{"four of a kind", "9s9h9d9cKs", FourOfAKind, []int{9, 13}},
		{"full house", "3s3h3dKsKh", FullHouse, []int{3, 13}},
		{"flush", "As9s7s4s2s", Flush, []int{14, 9, 7, 4, 2}},
		{"broadway straight", "AsKhQdJcTs", Straight, []int{14}},
		{"wheel", "Ah2d3c4s5h", Straight, []int{5}},
		{"three of a kind", "7s7h7dAs2c", ThreeOfAKind, []int{7, 14, 2}},
		{"two pair", "AhAdKcKs9h", TwoPair, []int{14, 13, 9}},
		{"one pair", "QsQh9d5c2s", OnePair, []int{12, 9, 5, 2}},
		{"high card", "Ks9h7d4c2s", HighCard, []int{13, 9, 7, 4, 2}},
		{"ace-king-queen-jack-nine is not a straight", "AsKhQdJc9s", HighCard, []int{14, 13, 12, 11, 9}},
		{"queen-king-ace-two-three does not wrap", "QsKhAd2c3s", HighCard, []int{14, 13, 12, 3, 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			eval, err := Evaluate5(MustParseCards(tc.cards))
			require.NoError(t, err)
			assert.Equal(t, tc.category, eval.Category)
			assert.Equal(t, tc.tiebreak, eval.Tiebreak)
		})
	}
}

func TestEvaluate5Arity(t *testing.T) {
	t.Parallel()
	for _, cards := range []string{"AsKs", "AsKsQsJsTs9s", "AsAsKdQcJh"} {
		_, err := Evaluate5(MustParseCards(cards))
		assert.ErrorIs(t, err, ErrInvalidArity, cards)
	}
}

func TestEvaluate5ContributingCards(t *testing.T) {
	t.Parallel()
	eval, err := Evaluate5(MustParseCards("9hKcAhKsAd"))
	require.NoError(t, err)
	assert.Equal(t, MustParseCards("AhAdKsKc9h"), eval.Cards[:])

	eval, err = Evaluate5(MustParseCards("Ah2d3c4s5h"))
	require.NoError(t, err)
	assert.Equal(t, MustParseCards("5h4s3c2dAh"), eval.Cards[:])
}

func TestEvaluate5OrderIndependent(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(42, 0))
	for i := 0; i < 500; i++ {
		cards := DrawN(FullDeck(), 5, rng)
		want, err := Evaluate5(cards)
		require.NoError(t, err)

		shuffled := append([]Card(nil), cards...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got, err := Evaluate5(shuffled)
		require.NoError(t, err)

		assert.Equal(t, want.Category, got.Category)
		assert.Equal(t, 0, Compare(want, got))
	}
}

func TestEvaluateBest(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		hole     string
		board    string
		category Category
		tiebreak []int
	}{
		{"royal on the board draw", "AhKh", "QhJhTh2d3c", RoyalFlush, []int{14}},
		{"flop only", "AsAd", "AcKsKd", FullHouse, []int{14, 13}},
		{"turn picks best kicker", "AsKd", "AhQc7d2s", OnePair, []int{14, 13, 12, 7}},
		{"two trips make a full house", "7s7h", "7dQsQhQd2c", FullHouse, []int{12, 7}},
		{"three pairs keep best two", "KsQs", "KdQd5c5s2h", TwoPair, []int{13, 12, 5}},
		{"board plays", "2c3d", "AsKsQsJsTs", RoyalFlush, []int{14}},
		{"six card straight", "6h7c", "2s3d4h5cTs", Straight, []int{7}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			eval, err := EvaluateBest(MustParseHand(tc.hole), MustParseCards(tc.board))
			require.NoError(t, err)
			assert.Equal(t, tc.category, eval.Category)
			assert.Equal(t, tc.tiebreak, eval.Tiebreak)
		})
	}
}

func TestEvaluateBestErrors(t *testing.T) {
	t.Parallel()
	hole := MustParseHand("AsKs")

	_, err := EvaluateBest(hole, MustParseCards("2c3c"))
	assert.ErrorIs(t, err, ErrInsufficientCards)

	_, err = EvaluateBest(hole, MustParseCards("2c3c4cAs"))
	assert.ErrorIs(t, err, ErrInvalidArity)
	assert.ErrorIs(t, err, ErrDuplicateCard)

	_, err = EvaluateBest(hole, MustParseCards("2c3c4c5c6c7c"))
	assert.ErrorIs(t, err, ErrInvalidArity)
}

func TestCompare(t *testing.T) {
	t.Parallel()
	eval := func(s string) HandEvaluation {
		e, err := Evaluate5(MustParseCards(s))
		require.NoError(t, err)
		return e
	}

	pairAces := eval("AsAhKd7c2s")
	pairAcesWorseKicker := eval("AdAcQd7c2s")
	twoPair := eval("3s3h2d2cKs")
	sameTwoPair := eval("3d3c2s2hKh")

	assert.Equal(t, 0, Compare(pairAces, pairAces))
	assert.Equal(t, 1, Compare(pairAces, pairAcesWorseKicker))
	assert.Equal(t, -1, Compare(pairAcesWorseKicker, pairAces))
	assert.Equal(t, 1, Compare(twoPair, pairAces))
	assert.Equal(t, 0, Compare(twoPair, sameTwoPair), "suits never break ties")

	// transitivity across category and vector comparisons
	assert.Equal(t, 1, Compare(twoPair, pairAcesWorseKicker))

	// shorter vectors pad with zero
	short := HandEvaluation{Category: HighCard, Tiebreak: []int{14, 13}}
	long := HandEvaluation{Category: HighCard, Tiebreak: []int{14, 13, 2}}
	assert.Equal(t, -1, Compare(short, long))
	assert.Equal(t, 1, Compare(long, short))
}

func TestCompareStrictWeakOrdering(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(9, 9))
	evals := make([]HandEvaluation, 60)
	for i := range evals {
		e, err := Evaluate5(DrawN(FullDeck(), 5, rng))
		require.NoError(t, err)
		evals[i] = e
	}
	for _, a := range evals {
		for _, b := range evals {
			assert.Equal(t, -Compare(b, a), Compare(a, b), "antisymmetry")
			for _, c := range evals {
				if Compare(a, b) >= 0 && Compare(b, c) >= 0 {
					assert.GreaterOrEqual(t, Compare(a, c), 0, "transitivity")
				}
			}
		}
	}
}

func BenchmarkEvaluateBest(b *testing.B) {
	rng := rand.New(rand.NewPCG(42, 0))
	hands := make([][]Card, 1000)
	for i := range hands {
		hands[i] = append([]Card(nil), DrawN(FullDeck(), 7, rng)...)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		cards := hands[i%len(hands)]
		_, _ = EvaluateBest(Hand{cards[0], cards[1]}, cards[2:])
	}
}
