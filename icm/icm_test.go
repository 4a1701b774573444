package icm

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func players(chips ...float64) []Player {
	out := make([]Player, len(chips))
	for i, c := range chips {
		out[i] = Player{Name: fmt.Sprintf("p%d", i+1), Chips: c}
	}
	return out
}

func TestEqualStacksWinnerTakeAll(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{1, 1500, 1e9} {
		res, err := Calculate(players(x, x), Payouts{1})
		require.NoError(t, err)
		assert.Equal(t, 0.5, res.Players[0].Equity)
		assert.Equal(t, 0.5, res.Players[1].Equity)
	}
}

func TestThreePlayerKnownValues(t *testing.T) {
	t.Parallel()

	res, err := Calculate(players(50, 30, 20), Payouts{0.5, 0.3, 0.2})
	require.NoError(t, err)

	a := res.Players[0]
	assert.InDelta(t, 0.5, a.FinishProbabilities[0], 1e-12)
	assert.InDelta(t, 0.3*50/70+0.2*50/80, a.FinishProbabilities[1], 1e-12)
	assert.InDelta(t, 0.3839286, a.Equity, 1e-6)
	assert.InDelta(t, 50.0, a.ChipPercentage, 1e-12)
	assert.InDelta(t, 38.39286, a.EquityPercentage, 1e-4)
}

func TestConservationAndFinishRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		chips   []float64
		payouts Payouts
	}{
		{"four handed", []float64{5000, 3000, 1500, 500}, Payouts{50, 30, 20}},
		{"final table", []float64{42, 31, 25, 18, 15, 12, 9, 6, 2}, PayoutsFromPercentages([]float64{30, 20, 14, 10, 8, 6, 5, 4, 3}, 10000)},
		{"heads up", []float64{7, 3}, Payouts{0.65, 0.35}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := Calculate(players(tc.chips...), tc.payouts)
			require.NoError(t, err)

			equity := 0.0
			placeTotals := make([]float64, len(tc.chips))
			for _, p := range res.Players {
				equity += p.Equity
				require.Len(t, p.FinishProbabilities, len(tc.chips))
				row := 0.0
				for k, q := range p.FinishProbabilities {
					row += q
					placeTotals[k] += q
				}
				assert.InDelta(t, 1.0, row, 1e-9, "finish row for %s", p.Name)
			}
			assert.InDelta(t, res.PrizePool, equity, 1e-9*res.PrizePool)
			for k, total := range placeTotals {
				assert.InDelta(t, 1.0, total, 1e-9, "place %d", k+1)
			}
		})
	}
}

func TestDifferentialSigns(t *testing.T) {
	t.Parallel()

	res, err := Calculate(players(7000, 2000, 1000), Payouts{50, 30, 20})
	require.NoError(t, err)

	assert.Negative(t, res.Players[0].Differential(), "chip leader")
	assert.Positive(t, res.Players[2].Differential(), "short stack")
}

func TestZeroChipPlayersShareTheBottom(t *testing.T) {
	t.Parallel()

	res, err := Calculate(players(100, 0, 0), Payouts{0.5, 0.3, 0.2})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 0, 0}, res.Players[0].FinishProbabilities)
	assert.Equal(t, []float64{0, 0.5, 0.5}, res.Players[1].FinishProbabilities)
	assert.InDelta(t, 0.25, res.Players[2].Equity, 1e-12)
}

func TestAbsolutePayouts(t *testing.T) {
	t.Parallel()

	res, err := Calculate(players(10, 10, 10), Payouts{600, 300, 100})
	require.NoError(t, err)

	assert.Equal(t, 1000.0, res.PrizePool)
	assert.Equal(t, 30.0, res.TotalChips)
	for _, p := range res.Players {
		assert.InDelta(t, 1000.0/3, p.Equity, 1e-9)
		assert.InDelta(t, 0.0, p.Differential(), 1e-9)
	}
}

func TestLargeFieldUsesPaidPlaces(t *testing.T) {
	t.Parallel()

	chips := make([]float64, 30)
	for i := range chips {
		chips[i] = 100
	}
	res, err := Calculate(players(chips...), Payouts{50, 30, 20})
	require.NoError(t, err)

	for _, p := range res.Players {
		assert.Len(t, p.FinishProbabilities, 3)
		assert.InDelta(t, 100.0/30, p.Equity, 1e-9)
	}
}

func TestArenaAndSparseAgree(t *testing.T) {
	t.Parallel()

	chips := []float64{120, 95, 80, 61, 40, 33, 20, 9}
	dense := arenaFinish(chips)
	sparse, err := sparseFinish(chips, 4)
	require.NoError(t, err)

	for i := range chips {
		for k := 0; k < 4; k++ {
			assert.InDelta(t, dense[i][k], sparse[i][k], 1e-12, "player %d place %d", i, k+1)
		}
	}
}

func TestCalculateErrors(t *testing.T) {
	t.Parallel()

	many := make([]float64, MaxPlayers+1)
	for i := range many {
		many[i] = 1
	}
	wide := make(Payouts, 10)
	for i := range wide {
		wide[i] = 1
	}

	tests := []struct {
		name    string
		players []Player
		payouts Payouts
		want    error
	}{
		{"no payouts", players(1, 2), nil, ErrInvalidPayouts},
		{"negative payout", players(1, 2), Payouts{1, -0.1}, ErrInvalidPayouts},
		{"nan payout", players(1, 2), Payouts{math.NaN()}, ErrInvalidPayouts},
		{"more places than players", players(1, 2), Payouts{0.5, 0.3, 0.2}, ErrInvalidPayouts},
		{"zero pool", players(1, 2), Payouts{0, 0}, ErrInvalidPayouts},
		{"negative chips", players(10, -1), Payouts{1}, ErrInvalidChips},
		{"nan chips", players(10, math.NaN()), Payouts{1}, ErrInvalidChips},
		{"no chips", players(0, 0), Payouts{1}, ErrInvalidChips},
		{"no players", nil, Payouts{1}, ErrInvalidChips},
		{"too many players", players(many...), Payouts{1}, ErrTooManyPlayers},
		{"too many subsets", players(many[:64]...), wide, ErrTooManyPlayers},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Calculate(tc.players, tc.payouts)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPayoutsFromPercentages(t *testing.T) {
	t.Parallel()

	p := PayoutsFromPercentages([]float64{50, 30, 20}, 1000)
	assert.Equal(t, Payouts{500, 300, 200}, p)
	assert.Equal(t, 1000.0, p.Total())
}

func BenchmarkCalculateTenPlayers(b *testing.B) {
	ps := players(100, 90, 80, 70, 60, 50, 40, 30, 20, 10)
	payouts := Payouts{50, 30, 20}
	for i := 0; i < b.N; i++ {
		_, _ = Calculate(ps, payouts)
	}
}
