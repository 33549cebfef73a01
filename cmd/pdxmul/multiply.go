package main

import (
	"fmt"
	"path/filepath"

	"github.com/eu4tools/pdxmul/config"
	"github.com/eu4tools/pdxmul/modtable"
	"github.com/eu4tools/pdxmul/walk"

	"github.com/scott-cotton/cli"
)

func multiply(cfg *MultiplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Multiply.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: multiply takes no arguments", cli.ErrUsage)
	}
	conf, err := cfg.loadConfig()
	if err != nil {
		return err
	}
	mul := &conf.Multiply
	if len(mul.Targets) == 0 {
		return fmt.Errorf("no targets configured")
	}
	if mul.Destination == "" {
		return fmt.Errorf("no destination configured")
	}
	tbl, err := modtable.Load(cfg.table())
	if err != nil {
		return err
	}
	w := &walk.Walker{
		Table:        tbl,
		IgnoreBlocks: config.Set(mul.IgnoreBlocks),
		StaticIgnore: config.Set(mul.IgnoreStatic),
		IgnoreDirs:   config.Set(mul.IgnoreDirs),
		KeepGoing:    cfg.KeepGoing,
		ShowDiff:     cfg.Diff,
		Out:          cc.Out,
	}
	for _, target := range mul.Targets {
		dst := filepath.Join(mul.Destination, filepath.Base(target))
		if err := w.Run(target, dst); err != nil {
			return fmt.Errorf("processing %s: %w", target, err)
		}
	}
	return nil
}
