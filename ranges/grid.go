package ranges

import (
	"fmt"
	"math"
	"strings"
)

// Grid holds a frequency in [0,1] for every starting-hand class, addressed
// by (row, col) with row/col 0 = Ace. The diagonal holds pairs, the upper
// triangle suited hands and the lower triangle offsuit hands.
type Grid [Size][Size]float64

// CombosForCell returns the number of concrete hands in a cell: 6 on the
// diagonal, 4 above it and 12 below.
func CombosForCell(row, col int) int {
	switch {
	case row == col:
		return 6
	case row < col:
		return 4
	default:
		return 12
	}
}

func clamp(freq float64) float64 {
	switch {
	case math.IsNaN(freq), freq < 0:
		return 0
	case freq > 1:
		return 1
	default:
		return freq
	}
}

// Set writes a frequency, clamped to [0,1].
func (g *Grid) Set(row, col int, freq float64) error {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return fmt.Errorf("%w: cell (%d,%d) outside grid", ErrInvalidClass, row, col)
	}
	g[row][col] = clamp(freq)
	return nil
}

// Get returns the frequency of a cell, or 0 outside the grid.
func (g *Grid) Get(row, col int) float64 {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return 0
	}
	return g[row][col]
}

// SetClass writes the frequency of the cell holding label.
func (g *Grid) SetClass(label string, freq float64) error {
	row, col, err := ClassToCoord(label)
	if err != nil {
		return err
	}
	return g.Set(row, col, freq)
}

// Class returns the frequency stored for a class.
func (g *Grid) Class(c Class) float64 {
	row, col := c.Coord()
	return g[row][col]
}

// Fill sets every cell to freq.
func (g *Grid) Fill(freq float64) {
	freq = clamp(freq)
	for row := range g {
		for col := range g[row] {
			g[row][col] = freq
		}
	}
}

// CountWeightedCombos sums combosForCell × frequency over all 169 cells.
func (g *Grid) CountWeightedCombos() float64 {
	var total float64
	for row := range g {
		for col, freq := range g[row] {
			total += float64(CombosForCell(row, col)) * freq
		}
	}
	return total
}

// PercentageOfAllHands returns the weighted combo count as a percentage of
// all 1326 two card hands.
func (g *Grid) PercentageOfAllHands() float64 {
	return g.CountWeightedCombos() / TotalCombos * 100
}

// Range expands the non-zero cells into a weighted range in grid order.
func (g *Grid) Range() *Range {
	r := NewRange()
	for _, c := range AllClasses() {
		if freq := g.Class(c); freq > 0 {
			r.Add(c, freq)
		}
	}
	return r
}

// GridFromRange collapses a range into a grid. Weights above 1 are clamped.
func GridFromRange(r *Range) Grid {
	var g Grid
	for _, e := range r.Entries() {
		row, col := e.Class.Coord()
		g[row][col] = clamp(e.Weight)
	}
	return g
}

// String renders the grid as 13 rows of class labels, with cells at zero
// frequency shown as dots and partial frequencies shown as percentages.
func (g *Grid) String() string {
	var b strings.Builder
	for row := range g {
		for col, freq := range g[row] {
			if col > 0 {
				b.WriteByte(' ')
			}
			label, _ := CoordToClass(row, col)
			switch {
			case freq == 0:
				fmt.Fprintf(&b, "%-4s", ".")
			case freq == 1:
				fmt.Fprintf(&b, "%-4s", label)
			default:
				fmt.Fprintf(&b, "%-4s", fmt.Sprintf("%d%%", int(math.Round(freq*100))))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
