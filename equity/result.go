package equity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Result aggregates simulated showdowns from the hero's point of view.
// Wins, Ties and Losses are weighted counts; in a range simulation each trial
// counts with the weight of the opponent's class.
type Result struct {
	Wins   float64
	Ties   float64
	Losses float64
	// TieShare is the pot share won on ties: half a pot per heads-up tie, a
	// k-th of a pot per k-way tie.
	TieShare float64
	// Weight is Wins+Ties+Losses.
	Weight float64
	// WeightSq is the sum of squared trial weights.
	WeightSq float64
	Samples  int
	// Partial is set when the run stopped early on its time budget or on
	// cancellation. The aggregate is still unbiased, only noisier.
	Partial bool
}

func (r Result) rate(v float64) float64 {
	if r.Weight <= 0 {
		return 0
	}
	return v / r.Weight
}

// WinRate is the weighted fraction of trials won outright.
func (r Result) WinRate() float64 { return r.rate(r.Wins) }

// TieRate is the weighted fraction of trials that split the pot.
func (r Result) TieRate() float64 { return r.rate(r.Ties) }

// LossRate is the weighted fraction of trials lost.
func (r Result) LossRate() float64 { return r.rate(r.Losses) }

// Equity is the expected share of the pot. With no samples it is 0.5.
func (r Result) Equity() float64 {
	if r.Samples == 0 || r.Weight <= 0 {
		return 0.5
	}
	return (r.Wins + r.TieShare) / r.Weight
}

// EffectiveSamples is the Kish effective sample size Weight²/WeightSq. It
// equals Samples when every trial has the same weight.
func (r Result) EffectiveSamples() float64 {
	if r.WeightSq <= 0 {
		return float64(r.Samples)
	}
	return r.Weight * r.Weight / r.WeightSq
}

// ConfidenceInterval returns the normal approximation interval around Equity
// at the given level, e.g. 0.95, using EffectiveSamples as the sample size.
// With no samples the interval is [0, 1].
func (r Result) ConfidenceInterval(level float64) (lo, hi float64) {
	eq := r.Equity()
	switch {
	case r.Samples == 0 || level >= 1:
		return 0, 1
	case level <= 0:
		return eq, eq
	}
	z := distuv.UnitNormal.Quantile(0.5 + level/2)
	se := math.Sqrt(eq * (1 - eq) / r.EffectiveSamples())
	return max(0, eq-z*se), min(1, eq+z*se)
}

// Merge returns the sum of two results.
func (r Result) Merge(other Result) Result {
	return Result{
		Wins:     r.Wins + other.Wins,
		Ties:     r.Ties + other.Ties,
		Losses:   r.Losses + other.Losses,
		TieShare: r.TieShare + other.TieShare,
		Weight:   r.Weight + other.Weight,
		WeightSq: r.WeightSq + other.WeightSq,
		Samples:  r.Samples + other.Samples,
		Partial:  r.Partial || other.Partial,
	}
}

// String renders e.g. "equity 85.20% (win 84.90% tie 0.60%, 10000 samples)".
func (r Result) String() string {
	s := fmt.Sprintf("equity %.2f%% (win %.2f%% tie %.2f%%, %d samples)",
		r.Equity()*100, r.WinRate()*100, r.TieRate()*100, r.Samples)
	if r.Partial {
		s += " partial"
	}
	return s
}

// record adds one trial. winners is the number of hands sharing the best
// hand when the hero is among them, or 0 when the hero lost.
func (r *Result) record(winners int, weight float64) {
	r.Samples++
	r.Weight += weight
	r.WeightSq += weight * weight
	switch {
	case winners == 0:
		r.Losses += weight
	case winners == 1:
		r.Wins += weight
	default:
		r.Ties += weight
		r.TieShare += weight / float64(winners)
	}
}
