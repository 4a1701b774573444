package main

import (
	"fmt"

	"github.com/lox/pokerstudy/poker"
	"github.com/lox/pokerstudy/ranges"
)

// RangeCmd shows a range on the 13x13 grid
type RangeCmd struct {
	Notation string `arg:"" help:"Range notation, e.g. 'TT+,AKs,AQo:0.5'"`
	Dead     string `short:"d" help:"Known cards that remove combos (hero and board)"`
}

func (c *RangeCmd) Run(g *Globals) error {
	return run(g, c)
}

func (c *RangeCmd) run(e *env) error {
	r, err := ranges.ParseRange(c.Notation)
	if err != nil {
		return err
	}
	var dead poker.CardSet
	if c.Dead != "" {
		cards, err := poker.ParseCards(c.Dead)
		if err != nil {
			return fmt.Errorf("dead cards: %w", err)
		}
		if dead, err = poker.DeadCards(cards); err != nil {
			return fmt.Errorf("dead cards: %w", err)
		}
	}
	e.logger.Debug("Parsed range", "classes", r.Len(), "notation", r.String())

	grid := ranges.GridFromRange(r)
	fmt.Fprint(e.out, renderGrid(&grid))
	fmt.Fprintf(e.out, "\n%s %s\n", headerStyle.Render("range"), r.String())
	fmt.Fprintf(e.out, "%s %.1f combos (%.2f%% of all hands)\n",
		headerStyle.Render("size"), grid.CountWeightedCombos(), grid.PercentageOfAllHands())

	if dead.Len() > 0 {
		live := 0.0
		for _, cc := range r.Expand(dead) {
			live += float64(len(cc.Combos)) * cc.Weight
		}
		fmt.Fprintf(e.out, "%s %.1f combos after removing %s\n",
			headerStyle.Render("live"), live, poker.FormatCards(dead.Cards()))
	}
	return nil
}
