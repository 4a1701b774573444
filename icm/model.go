package icm

import (
	"fmt"
	"maps"
	"math/bits"
	"slices"

	"gonum.org/v1/gonum/stat/combin"
)

// takeTop calls fn for every player in remaining with the probability that
// they take the highest open place. With no chips left among them the place
// is shared evenly.
func takeTop(chips []float64, remaining uint64, fn func(i int, p float64)) {
	sum := 0.0
	for m := remaining; m != 0; m &= m - 1 {
		sum += chips[bits.TrailingZeros64(m)]
	}
	count := float64(bits.OnesCount64(remaining))
	for m := remaining; m != 0; m &= m - 1 {
		i := bits.TrailingZeros64(m)
		if sum > 0 {
			fn(i, chips[i]/sum)
		} else {
			fn(i, 1/count)
		}
	}
}

func fullMask(n int) uint64 {
	if n == 64 {
		return ^uint64(0)
	}
	return uint64(1)<<n - 1
}

func newFinish(n, places int) [][]float64 {
	finish := make([][]float64, n)
	for i := range finish {
		finish[i] = make([]float64, places)
	}
	return finish
}

// arenaFinish solves every place with a dense arena indexed by the bitmask of
// players still in. reach[s] is the probability that exactly the players in s
// are left; removing a player always lowers the mask, so a descending sweep
// visits each subset after all of its supersets.
func arenaFinish(chips []float64) [][]float64 {
	n := len(chips)
	finish := newFinish(n, n)
	full := fullMask(n)
	reach := make([]float64, full+1)
	reach[full] = 1

	for s := full; s > 0; s-- {
		p := reach[s]
		if p == 0 {
			continue
		}
		place := n - bits.OnesCount64(s)
		takeTop(chips, s, func(i int, q float64) {
			finish[i][place] += p * q
			reach[s&^(1<<i)] += p * q
		})
	}
	return finish
}

// sparseFinish solves the first depth places level by level, keeping only the
// subsets reachable at each level.
func sparseFinish(chips []float64, depth int) ([][]float64, error) {
	n := len(chips)
	states := 0.0
	for k := 0; k < depth; k++ {
		states += combin.GeneralizedBinomial(float64(n), float64(k))
	}
	if states > maxSparseStates {
		return nil, fmt.Errorf("%w: %d players with %d paid places needs %.3g subsets", ErrTooManyPlayers, n, depth, states)
	}

	finish := newFinish(n, depth)
	level := map[uint64]float64{fullMask(n): 1}
	for place := 0; place < depth; place++ {
		next := make(map[uint64]float64, len(level)*(n-place))
		for _, s := range slices.Sorted(maps.Keys(level)) {
			p := level[s]
			takeTop(chips, s, func(i int, q float64) {
				finish[i][place] += p * q
				next[s&^(1<<i)] += p * q
			})
		}
		level = next
	}
	return finish, nil
}
