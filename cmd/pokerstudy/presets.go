package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
)

// PresetsCmd lists the built-in and configured payout presets
type PresetsCmd struct{}

func (c *PresetsCmd) Run(g *Globals) error {
	return run(g, c)
}

func (c *PresetsCmd) run(e *env) error {
	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("preset"),
		headerStyle.Render("places"),
		headerStyle.Render("payouts"))
	for _, p := range e.cfg.AllPresets() {
		payouts := lo.Map(p.Payouts, func(v float64, _ int) string {
			return strconv.FormatFloat(v, 'f', -1, 64) + "%"
		})
		fmt.Fprintf(w, "%s\t%d\t%s\n", handStyle.Render(p.Name), len(p.Payouts), strings.Join(payouts, " "))
	}
	return w.Flush()
}
