package main

import (
	"fmt"
	"os"

	"github.com/eu4tools/pdxmul/discover"
	"github.com/eu4tools/pdxmul/modtable"

	"github.com/scott-cotton/cli"
)

func genModifiers(cfg *GenModifiersConfig, cc *cli.Context, args []string) error {
	args, err := cfg.GenModifiers.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: gen-modifiers takes no arguments", cli.ErrUsage)
	}
	conf, err := cfg.loadConfig()
	if err != nil {
		return err
	}
	gm := &conf.GenModifiers

	estates, err := discover.Estates(gm.Estates)
	if err != nil {
		return fmt.Errorf("discovering estates: %w", err)
	}
	fmt.Fprintf(cc.Out, "found %d estates\n", len(estates))
	factions, err := discover.Factions(gm.Factions, gm.IgnoreFactions)
	if err != nil {
		return fmt.Errorf("discovering factions: %w", err)
	}
	fmt.Fprintf(cc.Out, "found %d factions\n", len(factions))
	powers, err := discover.Powers(gm.GovernmentMechanics)
	if err != nil {
		return fmt.Errorf("discovering government powers: %w", err)
	}
	fmt.Fprintf(cc.Out, "found %d government powers\n", len(powers))

	in, err := os.Open(cfg.input())
	if err != nil {
		return err
	}
	defer in.Close()
	tbl, err := modtable.Build(in, &modtable.Options{
		Multiplier: gm.Multiplier,
		Ignores:    gm.Ignores,
		Overrides:  gm.Alternatives,
		Sets: modtable.Sets{
			Estates:  estates,
			Factions: factions,
			Powers:   powers,
			Techs:    gm.TechTypes,
		},
	})
	if err != nil {
		return fmt.Errorf("building table from %s: %w", cfg.input(), err)
	}
	if cfg.Patch != "" {
		patch, err := os.ReadFile(cfg.Patch)
		if err != nil {
			return err
		}
		tbl, err = modtable.MergePatch(tbl, patch)
		if err != nil {
			return fmt.Errorf("applying patch %s: %w", cfg.Patch, err)
		}
	}
	if err := modtable.Save(cfg.output(), tbl); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "wrote %d modifiers to %s\n", len(tbl), cfg.output())
	return nil
}
