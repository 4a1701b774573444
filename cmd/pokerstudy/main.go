package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/pokerstudy/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"pokerstudy.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
	NoColor  bool   `help:"Disable colored output"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Eval    EvalCmd          `cmd:"" help:"Evaluate the best five card hand"`
	Equity  EquityCmd        `cmd:"" help:"Estimate equity against a random hand or a range"`
	Odds    OddsCmd          `cmd:"" help:"Multi-way showdown odds between known hands"`
	Range   RangeCmd         `cmd:"" help:"Show a range on the 13x13 grid"`
	ICM     ICMCmd           `cmd:"icm" help:"Convert tournament stacks into prize equity"`
	Presets PresetsCmd       `cmd:"" help:"List payout presets"`
	Init    InitCmd          `cmd:"" help:"Write a starter configuration file"`
}

// env is what a command runs against
type env struct {
	ctx    context.Context
	cfg    *config.Config
	logger *log.Logger
	out    io.Writer
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerstudy"),
		kong.Description("Poker study tools: hand evaluation, equity, ranges and ICM"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// setup loads the configuration, applies flag overrides and builds the
// logger. The returned cancel func releases the signal handler.
func (g *Globals) setup() (*env, context.CancelFunc, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if g.LogLevel != "" {
		cfg.Logging.Level = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(os.Stderr, cfg.Logging.Level)
	if err != nil {
		return nil, nil, err
	}
	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	logger.Debug("Loaded configuration", "path", g.Config, "level", cfg.Logging.Level)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return &env{ctx: ctx, cfg: cfg, logger: logger, out: os.Stdout}, cancel, nil
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "pokerstudy",
		ReportTimestamp: lvl == log.DebugLevel,
	}), nil
}

// runner is implemented by every command
type runner interface {
	run(e *env) error
}

func run(g *Globals, cmd runner) error {
	e, cancel, err := g.setup()
	if err != nil {
		return err
	}
	defer cancel()
	return cmd.run(e)
}
