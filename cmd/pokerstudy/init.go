package main

import (
	"fmt"
	"os"

	"github.com/lox/pokerstudy/internal/config"
	"github.com/lox/pokerstudy/internal/fileutil"
)

// InitCmd writes a starter configuration file
type InitCmd struct {
	Force bool `short:"f" help:"Overwrite an existing file"`
}

// Run does not load the configuration first, so a broken file can be
// replaced with --force.
func (c *InitCmd) Run(g *Globals) error {
	logger, err := newLogger(os.Stderr, config.DefaultLogLevel)
	if err != nil {
		return err
	}
	if err := c.write(g.Config); err != nil {
		return err
	}
	logger.Info("Wrote configuration", "path", g.Config)
	return nil
}

func (c *InitCmd) write(path string) error {
	if fileutil.Exists(path) && !c.Force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	return fileutil.WriteFileAtomic(path, config.Default().Encode(), 0o644)
}
