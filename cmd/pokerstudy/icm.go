package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/lox/pokerstudy/icm"
)

// ICMCmd converts tournament stacks into prize equity
type ICMCmd struct {
	Stacks  []string  `arg:"" help:"Stacks as 'name=chips' or just 'chips'" required:"true"`
	Payouts []float64 `short:"p" sep:"," help:"Payout percentages, e.g. 50,30,20"`
	Preset  string    `short:"P" help:"Named payout preset (see 'presets')"`
	Pool    float64   `default:"100" help:"Prize pool the percentages are paid from"`
	Places  bool      `help:"Show finish probabilities for each place"`
}

func (c *ICMCmd) Run(g *Globals) error {
	return run(g, c)
}

func (c *ICMCmd) run(e *env) error {
	players, err := parseStacks(c.Stacks)
	if err != nil {
		return err
	}
	percentages, err := c.percentages(e)
	if err != nil {
		return err
	}

	payouts := icm.PayoutsFromPercentages(percentages, c.Pool)
	e.logger.Debug("Running ICM", "players", len(players), "payouts", payouts)

	res, err := icm.Calculate(players, payouts)
	if err != nil {
		return err
	}
	return writeICM(e, res, c.Places)
}

func (c *ICMCmd) percentages(e *env) ([]float64, error) {
	switch {
	case c.Preset != "" && len(c.Payouts) > 0:
		return nil, errors.New("use either --preset or --payouts, not both")
	case c.Preset != "":
		p, ok := e.cfg.GetPreset(c.Preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", c.Preset)
		}
		return p.Payouts, nil
	case len(c.Payouts) > 0:
		return c.Payouts, nil
	default:
		return nil, errors.New("payouts required: pass --payouts or --preset")
	}
}

// parseStacks parses "name=chips" or bare "chips" arguments. Unnamed
// players are called P1, P2 and so on.
func parseStacks(args []string) ([]icm.Player, error) {
	players := make([]icm.Player, 0, len(args))
	for i, arg := range args {
		name, chips, ok := strings.Cut(arg, "=")
		if !ok {
			name, chips = fmt.Sprintf("P%d", i+1), arg
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(chips), 64)
		if err != nil {
			return nil, fmt.Errorf("stack %d: invalid chip count %q", i+1, chips)
		}
		players = append(players, icm.Player{Name: strings.TrimSpace(name), Chips: v})
	}
	return players, nil
}

func writeICM(e *env, res icm.Result, places bool) error {
	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := []string{"player", "chips", "chip %", "equity", "equity %", "diff"}
	if places {
		for k := range res.Players[0].FinishProbabilities {
			header = append(header, ordinal(k+1))
		}
	}
	for _, h := range header {
		fmt.Fprintf(w, "%s\t", headerStyle.Render(h))
	}
	fmt.Fprintln(w)

	for _, p := range res.Players {
		fmt.Fprintf(w, "%s\t%.0f\t%.2f%%\t%.2f\t%.2f%%\t%s\t",
			handStyle.Render(p.Name), p.Chips, p.ChipPercentage, p.Equity, p.EquityPercentage, signedPercent(p.Differential()))
		if places {
			for _, q := range p.FinishProbabilities {
				fmt.Fprintf(w, "%s\t", percent(q))
			}
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(e.out, dimStyle.Render(fmt.Sprintf("\nprize pool %.2f, %.0f chips in play", res.PrizePool, res.TotalChips)))
	return err
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}
