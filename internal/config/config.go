// Package config loads the pokerstudy HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/samber/lo"
)

const (
	DefaultTrials         = 10000
	DefaultTrialsPerCombo = 1000
	DefaultWorkers        = 4
	DefaultLogLevel       = "info"
	DefaultEvaluator      = "direct"
)

// Config represents the complete configuration file
type Config struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Logging    *LoggingSettings    `hcl:"logging,block"`
	Presets    []Preset            `hcl:"preset,block"`
}

// SimulationSettings holds defaults for the equity commands
type SimulationSettings struct {
	Trials         int    `hcl:"trials,optional"`
	TrialsPerCombo int    `hcl:"trials_per_combo,optional"`
	Workers        int    `hcl:"workers,optional"`
	Seed           int64  `hcl:"seed,optional"`
	Budget         string `hcl:"budget,optional"`
	Evaluator      string `hcl:"evaluator,optional"`
}

// LoggingSettings controls CLI log output
type LoggingSettings struct {
	Level string `hcl:"level,optional"`
}

// Preset is a named payout structure in percentages of the prize pool
type Preset struct {
	Name        string    `hcl:"name,label"`
	Description string    `hcl:"description,optional"`
	Payouts     []float64 `hcl:"payouts"`
}

// BuiltinPresets are always available and may be overridden by name.
var BuiltinPresets = []Preset{
	{Name: "winner-take-all", Description: "first place takes the pool", Payouts: []float64{100}},
	{Name: "heads-up", Description: "two paid places", Payouts: []float64{65, 35}},
	{Name: "6-max", Description: "six handed sit and go", Payouts: []float64{50, 30, 20}},
	{Name: "9-max final table", Description: "nine paid places", Payouts: []float64{30, 20, 14, 10, 8, 6, 5, 4, 3}},
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

// Encode renders the configuration as HCL that Load reads back.
func (c *Config) Encode() []byte {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(c, f.Body())
	return hclwrite.Format(f.Bytes())
}

func (c *Config) applyDefaults() {
	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	if c.Simulation.Trials == 0 {
		c.Simulation.Trials = DefaultTrials
	}
	if c.Simulation.TrialsPerCombo == 0 {
		c.Simulation.TrialsPerCombo = DefaultTrialsPerCombo
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = DefaultWorkers
	}
	if c.Simulation.Evaluator == "" {
		c.Simulation.Evaluator = DefaultEvaluator
	}

	if c.Logging == nil {
		c.Logging = &LoggingSettings{}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	s := c.Simulation
	if s.Trials < 1 {
		return fmt.Errorf("simulation: trials must be positive, got %d", s.Trials)
	}
	if s.TrialsPerCombo < 1 {
		return fmt.Errorf("simulation: trials_per_combo must be positive, got %d", s.TrialsPerCombo)
	}
	if s.Workers < 1 || s.Workers > 256 {
		return fmt.Errorf("simulation: workers must be between 1 and 256, got %d", s.Workers)
	}
	if _, err := c.BudgetDuration(); err != nil {
		return err
	}
	if s.Evaluator != "direct" && s.Evaluator != "lookup" {
		return fmt.Errorf("simulation: evaluator must be direct or lookup, got %q", s.Evaluator)
	}

	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	seen := make(map[string]bool)
	for _, p := range c.Presets {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("preset: name must not be empty")
		}
		if seen[p.Name] {
			return fmt.Errorf("preset %s: defined more than once", p.Name)
		}
		seen[p.Name] = true
		if err := p.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// BudgetDuration parses the simulation budget. An empty budget is zero.
func (c *Config) BudgetDuration() (time.Duration, error) {
	if c.Simulation.Budget == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Simulation.Budget)
	if err != nil {
		return 0, fmt.Errorf("simulation: invalid budget %q: %w", c.Simulation.Budget, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("simulation: budget must not be negative, got %s", d)
	}
	return d, nil
}

// Validate checks the payouts are non-negative percentages summing to 100.
func (p Preset) Validate() error {
	if len(p.Payouts) == 0 {
		return fmt.Errorf("preset %s: no payouts", p.Name)
	}
	for i, v := range p.Payouts {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("preset %s: place %d pays %v", p.Name, i+1, v)
		}
	}
	if sum := lo.Sum(p.Payouts); math.Abs(sum-100) > 0.01 {
		return fmt.Errorf("preset %s: payouts sum to %.2f, want 100", p.Name, sum)
	}
	return nil
}

// GetPreset returns a preset by name, preferring the file's definition over
// a built-in one.
func (c *Config) GetPreset(name string) (Preset, bool) {
	if p, ok := lo.Find(c.Presets, func(p Preset) bool { return p.Name == name }); ok {
		return p, true
	}
	return lo.Find(BuiltinPresets, func(p Preset) bool { return p.Name == name })
}

// AllPresets returns the built-in and configured presets sorted by name.
func (c *Config) AllPresets() []Preset {
	byName := make(map[string]Preset, len(BuiltinPresets)+len(c.Presets))
	for _, p := range BuiltinPresets {
		byName[p.Name] = p
	}
	for _, p := range c.Presets {
		byName[p.Name] = p
	}
	presets := lo.Values(byName)
	slices.SortFunc(presets, func(a, b Preset) int {
		return strings.Compare(a.Name, b.Name)
	})
	return presets
}
