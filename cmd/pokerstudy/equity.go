package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/lox/pokerstudy/equity"
	"github.com/lox/pokerstudy/poker"
	"github.com/lox/pokerstudy/ranges"
)

// EquityCmd estimates a hand's equity against a random hand or a range
type EquityCmd struct {
	SimFlags

	Hand  string `arg:"" help:"Hero hole cards, e.g. 'AsAh'"`
	Board string `short:"b" help:"Community board cards (e.g., 'Td7s8h')"`
	Range string `short:"r" help:"Opponent range, e.g. 'TT+,AKs,AQo:0.5' (default: any two cards)"`
	Combo int    `help:"Trials per combo for range simulations (overrides config)"`
}

func (c *EquityCmd) Run(g *Globals) error {
	return run(g, c)
}

func (c *EquityCmd) run(e *env) error {
	hero, err := poker.ParseHand(c.Hand)
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

	start := time.Now()
	var res equity.Result
	var opponent string
	if c.Range == "" {
		opponent = "random"
		trials := c.trials(e)
		e.logger.Info("Simulating against a random hand", "hand", hero, "board", poker.FormatCards(board), "trials", trials)
		res, err = calc.VsRandom(e.ctx, hero, board, trials, rng)
	} else {
		r, perr := ranges.ParseRange(c.Range)
		if perr != nil {
			return perr
		}
		opponent = r.String()
		perCombo := e.cfg.Simulation.TrialsPerCombo
		if c.Combo > 0 {
			perCombo = c.Combo
		}
		e.logger.Info("Simulating against a range", "hand", hero, "board", poker.FormatCards(board), "range", opponent, "trials_per_combo", perCombo)
		res, err = calc.VsRange(e.ctx, hero, board, r, perCombo, rng)
	}
	if errors.Is(err, context.Canceled) {
		e.logger.Warn("Interrupted, reporting partial result", "samples", res.Samples)
	} else if err != nil {
		return err
	}
	elapsed := time.Since(start)
	e.logger.Debug("Simulation finished", "samples", res.Samples, "partial", res.Partial, "elapsed", elapsed)

	return writeEquity(e, hero, board, opponent, res, elapsed)
}

func writeEquity(e *env, hero poker.Hand, board []poker.Card, opponent string, res equity.Result, elapsed time.Duration) error {
	if res.Samples == 0 {
		e.logger.Warn("Every opponent combo is blocked, equity is undefined")
	}

	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("hand"), handStyle.Render(formatCards(hero.Cards())))
	if len(board) > 0 {
		fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("board"), formatCards(board))
	}
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("versus"), opponent)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("equity"), handStyle.Render(percent(res.Equity())))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("win"), winStyle.Render(percent(res.WinRate())))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("tie"), tieStyle.Render(percent(res.TieRate())))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("loss"), lossStyle.Render(percent(res.LossRate())))
	if res.Samples > 0 {
		lo, hi := res.ConfidenceInterval(0.95)
		fmt.Fprintf(w, "%s\t%s - %s\n", headerStyle.Render("95% ci"), percent(lo), percent(hi))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	footer := fmt.Sprintf("\n%d samples in %v", res.Samples, elapsed.Truncate(time.Millisecond))
	if res.Partial {
		footer += " (partial)"
	}
	_, err := fmt.Fprintln(e.out, dimStyle.Render(footer))
	return err
}
