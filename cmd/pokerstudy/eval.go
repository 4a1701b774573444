package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lox/pokerstudy/poker"
)

// EvalCmd evaluates the best five card hand from hole and board cards
type EvalCmd struct {
	Hand  string `arg:"" help:"Hole cards, e.g. 'AhKh'"`
	Board string `arg:"" optional:"" help:"Board cards, e.g. 'QhJhTh2d3c'"`
}

func (c *EvalCmd) Run(g *Globals) error {
	return run(g, c)
}

func (c *EvalCmd) run(e *env) error {
	hand, err := poker.ParseHand(c.Hand)
	if err != nil {
		return err
	}
	board, err := parseBoard(c.Board)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("hand"), handStyle.Render(formatCards(hand.Cards())))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("preflop"), categoryStyle.Render(string(poker.CategorizeHoleCards(hand))))

	if len(board) > 0 {
		fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("board"), formatCards(board))
	}
	if len(board) >= 3 {
		best, err := poker.EvaluateBest(hand, board)
		if err != nil {
			return err
		}
		tiebreak := make([]string, len(best.Tiebreak))
		for i, v := range best.Tiebreak {
			tiebreak[i] = poker.Rank(v).String()
		}
		fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("best"), categoryStyle.Render(best.Category.String()))
		fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("cards"), formatCards(best.Cards[:]))
		fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("kickers"), strings.Join(tiebreak, " "))
		e.logger.Debug("Evaluated hand", "hand", hand, "board", poker.FormatCards(board), "result", best)
	}
	return w.Flush()
}
