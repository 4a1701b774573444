package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/lox/pokerstudy/equity"
	"github.com/lox/pokerstudy/poker"
)

// OddsCmd runs a multi-way showdown between known hands
type OddsCmd struct {
	SimFlags

	Hands []string `arg:"" help:"Player hands in format 'AcKd QhJs' (space separated)" required:"true"`
	Board string   `short:"b" help:"Community board cards (e.g., 'Td7s8h')"`
}

func (c *OddsCmd) Run(g *Globals) error {
	return run(g, c)
}

func (c *OddsCmd) run(e *env) error {
	hands, err := parseHands(c.Hands)
	if err != nil {
		return err
	}
	board, err := parseBoard(c.Board)
	if err != nil {
		return err
	}
	calc, rng, err := c.calculator(e)
	if err != nil {
		return err
	}

	trials := c.trials(e)
	e.logger.Info("Running showdown", "hands", len(hands), "board", poker.FormatCards(board), "trials", trials)

	start := time.Now()
	results, err := calc.Hands(e.ctx, hands, board, trials, rng)
	if errors.Is(err, context.Canceled) {
		e.logger.Warn("Interrupted, reporting partial result")
	} else if err != nil {
		return err
	}
	return writeOdds(e, hands, board, results, time.Since(start))
}

func writeOdds(e *env, hands []poker.Hand, board []poker.Card, results []equity.Result, elapsed time.Duration) error {
	if len(board) > 0 {
		fmt.Fprintf(e.out, "%s\n%s\n\n", headerStyle.Render("board"), formatCards(board))
	}

	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("equity"))

	samples := 0
	partial := false
	for i, res := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			handStyle.Render(formatCards(hands[i].Cards())),
			winStyle.Render(percent(res.WinRate())),
			tieStyle.Render(percent(res.TieRate())),
			percent(res.Equity()))
		samples = res.Samples
		partial = partial || res.Partial
	}
	if err := w.Flush(); err != nil {
		return err
	}

	footer := fmt.Sprintf("\n%d iterations in %v", samples, elapsed.Truncate(time.Millisecond))
	if partial {
		footer += " (partial)"
	}
	_, err := fmt.Fprintln(e.out, dimStyle.Render(footer))
	return err
}
