package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokerstudy/poker"
	"github.com/lox/pokerstudy/ranges"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	redSuitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// signedPercent renders an already scaled percentage with its sign, green
// when positive and red when negative.
func signedPercent(v float64) string {
	s := fmt.Sprintf("%+.2f%%", v)
	switch {
	case v > 0.005:
		return winStyle.Render(s)
	case v < -0.005:
		return lossStyle.Render(s)
	default:
		return s
	}
}

func formatCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.Suit.IsRed() {
			parts[i] = redSuitStyle.Render(c.Pretty())
		} else {
			parts[i] = c.Pretty()
		}
	}
	return strings.Join(parts, " ")
}

// renderGrid draws the 13x13 grid with each cell shaded by frequency.
func renderGrid(g *ranges.Grid) string {
	var b strings.Builder
	for row := 0; row < ranges.Size; row++ {
		for col := 0; col < ranges.Size; col++ {
			label, _ := ranges.CoordToClass(row, col)
			cell := fmt.Sprintf("%-4s", label)
			switch freq := g.Get(row, col); {
			case freq >= 1:
				cell = winStyle.Render(cell)
			case freq > 0:
				cell = tieStyle.Render(cell)
			default:
				cell = dimStyle.Render(cell)
			}
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
