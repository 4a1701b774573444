package equity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerstudy/internal/randutil"
	"github.com/lox/pokerstudy/poker"
	"github.com/lox/pokerstudy/ranges"
)

func TestSimulateVsRandomPocketAces(t *testing.T) {
	t.Parallel()

	res, err := SimulateVsRandom(poker.MustParseHand("AsAh"), nil, 4000, randutil.New(1))
	require.NoError(t, err)

	assert.Equal(t, 4000, res.Samples)
	assert.False(t, res.Partial)
	assert.InDelta(t, 0.85, res.Equity(), 0.03)
	assert.InDelta(t, 1.0, res.WinRate()+res.TieRate()+res.LossRate(), 1e-9)
	assert.InDelta(t, res.Weight, res.Wins+res.Ties+res.Losses, 1e-9)
}

func TestSimulateVsRandomSettledBoards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		hero     string
		board    string
		win, tie float64
	}{
		{"royal on board always splits", "2c3d", "AsKsQsJsTs", 0, 1},
		{"hero holds the only royal", "AsKs", "QsJsTs2h3d", 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := SimulateVsRandom(poker.MustParseHand(tc.hero), poker.MustParseCards(tc.board), 300, randutil.New(2))
			require.NoError(t, err)
			assert.Equal(t, tc.win, res.WinRate())
			assert.Equal(t, tc.tie, res.TieRate())
		})
	}
}

func TestSimulateVsRandomErrors(t *testing.T) {
	t.Parallel()

	hero := poker.MustParseHand("AsAh")
	rng := randutil.New(3)

	_, err := SimulateVsRandom(hero, nil, 0, rng)
	assert.ErrorIs(t, err, ErrInvalidTrials)

	_, err = SimulateVsRandom(hero, poker.MustParseCards("2c3c4c5c6c7c"), 10, rng)
	assert.ErrorIs(t, err, poker.ErrInvalidArity)

	_, err = SimulateVsRandom(hero, poker.MustParseCards("As2c3c"), 10, rng)
	assert.ErrorIs(t, err, poker.ErrDuplicateCard)
}

func TestSimulateVsRandomIsDeterministic(t *testing.T) {
	t.Parallel()

	hero := poker.MustParseHand("JcTc")
	board := poker.MustParseCards("9c8d2h")

	a, err := SimulateVsRandom(hero, board, 500, randutil.New(99))
	require.NoError(t, err)
	b, err := SimulateVsRandom(hero, board, 500, randutil.New(99))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSimulateVsRange(t *testing.T) {
	t.Parallel()

	t.Run("aces against the last aces mostly split", func(t *testing.T) {
		t.Parallel()
		res, err := SimulateVsRange(poker.MustParseHand("AhAd"), nil, ranges.MustParseRange("AA"), 200, randutil.New(4))
		require.NoError(t, err)
		assert.Equal(t, 200, res.Samples, "one unblocked combo gets every trial")
		assert.InDelta(t, 0.5, res.Equity(), 0.1)
	})

	t.Run("aces against kings", func(t *testing.T) {
		t.Parallel()
		res, err := SimulateVsRange(poker.MustParseHand("AsAh"), nil, ranges.MustParseRange("KK"), 3000, randutil.New(5))
		require.NoError(t, err)
		assert.InDelta(t, 0.82, res.Equity(), 0.03)
	})

	t.Run("fully blocked range", func(t *testing.T) {
		t.Parallel()
		res, err := SimulateVsRange(poker.MustParseHand("AhAd"), poker.MustParseCards("AsKd2c"), ranges.MustParseRange("AA"), 100, randutil.New(6))
		require.NoError(t, err)
		assert.Equal(t, 0, res.Samples)
		assert.Equal(t, 0.5, res.Equity())
	})

	t.Run("zero weight classes are skipped", func(t *testing.T) {
		t.Parallel()
		res, err := SimulateVsRange(poker.MustParseHand("AsAh"), nil, ranges.MustParseRange("KK,QQ:0"), 600, randutil.New(7))
		require.NoError(t, err)
		assert.Equal(t, 600, res.Samples)
	})

	t.Run("trials per combo round up", func(t *testing.T) {
		t.Parallel()
		res, err := SimulateVsRange(poker.MustParseHand("2c2d"), nil, ranges.MustParseRange("AKo"), 100, randutil.New(8))
		require.NoError(t, err)
		assert.Equal(t, 12*9, res.Samples)
	})

	t.Run("trials count with the class weight", func(t *testing.T) {
		t.Parallel()
		res, err := SimulateVsRange(poker.MustParseHand("AsAh"), nil, ranges.MustParseRange("KK:0.5"), 1000, randutil.New(9))
		require.NoError(t, err)
		assert.Equal(t, 6*84, res.Samples)
		assert.InDelta(t, float64(res.Samples)*0.5, res.Weight, 1e-9)
	})

	t.Run("nil range", func(t *testing.T) {
		t.Parallel()
		res, err := SimulateVsRange(poker.MustParseHand("AsAh"), nil, nil, 10, randutil.New(10))
		require.NoError(t, err)
		assert.Equal(t, 0.5, res.Equity())
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		_, err := SimulateVsRange(poker.MustParseHand("AsAh"), nil, ranges.MustParseRange("KK"), 0, randutil.New(11))
		assert.ErrorIs(t, err, ErrInvalidTrials)
		_, err = SimulateVsRange(poker.MustParseHand("AsAh"), poker.MustParseCards("Ah"), ranges.MustParseRange("KK"), 10, randutil.New(11))
		assert.ErrorIs(t, err, poker.ErrDuplicateCard)
	})
}

func TestSimulateHands(t *testing.T) {
	t.Parallel()

	hands := []poker.Hand{
		poker.MustParseHand("AsAh"),
		poker.MustParseHand("KsKh"),
		poker.MustParseHand("7c2d"),
	}
	results, err := SimulateHands(hands, nil, 2000, randutil.New(12))
	require.NoError(t, err)
	require.Len(t, results, 3)

	total := 0.0
	for _, r := range results {
		assert.Equal(t, 2000, r.Samples)
		total += r.Equity()
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.Greater(t, results[0].Equity(), results[1].Equity())
	assert.Greater(t, results[1].Equity(), results[2].Equity())
}

func TestSimulateHandsSplitPot(t *testing.T) {
	t.Parallel()

	hands := []poker.Hand{
		poker.MustParseHand("2c3d"),
		poker.MustParseHand("4c5d"),
		poker.MustParseHand("6c7d"),
	}
	results, err := SimulateHands(hands, poker.MustParseCards("AsKsQsJsTs"), 50, randutil.New(13))
	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, 1.0, r.TieRate())
		assert.InDelta(t, 1.0/3, r.Equity(), 1e-9)
	}
}

func TestSimulateHandsErrors(t *testing.T) {
	t.Parallel()

	rng := randutil.New(14)
	_, err := SimulateHands([]poker.Hand{poker.MustParseHand("AsAh")}, nil, 10, rng)
	assert.ErrorIs(t, err, poker.ErrInvalidArity)

	_, err = SimulateHands([]poker.Hand{poker.MustParseHand("AsAh"), poker.MustParseHand("AsKd")}, nil, 10, rng)
	assert.ErrorIs(t, err, poker.ErrDuplicateCard)

	_, err = SimulateHands([]poker.Hand{poker.MustParseHand("AsAh"), poker.MustParseHand("KsKd")}, nil, 0, rng)
	assert.ErrorIs(t, err, ErrInvalidTrials)
}
